// Package boards содержит HTTP-обработчики для управления досками.
package boards

import (
	"context"
	"unicode/utf8"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/notes/adapters/http/common"
	"noteboard/internal/notes/adapters/http/dto"
	"noteboard/internal/notes/domain/entities"
	"noteboard/internal/notes/ports/api"
	"noteboard/internal/notes/ports/repositories"
	"noteboard/pkg/logger"
)

// Константы сообщений.
const (
	LogHandlerCreateBoard = "handling create board request"
	LogHandlerListBoards  = "handling list boards request"
	LogHandlerGetBoard    = "handling get board request"
	LogHandlerUpdateBoard = "handling update board request"
	LogHandlerDeleteBoard = "handling delete board request"
	LogHandlerPinNote     = "handling pin note request"
	LogHandlerUnpinNote   = "handling unpin note request"

	MsgBoardCreated   = "Board successfully created"
	MsgBoardsListed   = "Boards successfully retrieved"
	MsgBoardRetrieved = "Board successfully retrieved"
	MsgBoardUpdated   = "Board successfully updated"
	MsgBoardDeleted   = "Board successfully deleted"
	MsgNotePinned     = "Note successfully pinned to board"
	MsgNoteUnpinned   = "Note successfully unpinned from board"

	ErrMsgTitleRequired  = "board_title is required"
	ErrMsgTitleTooLong   = "board_title must be at most 255 characters"
	ErrMsgNoteIDRequired = "note_id is required"

	ParamBoardID = "board_id"

	// MaxTitleLength совпадает с размером колонки boards.title.
	MaxTitleLength = 255
)

// Handler обрабатывает HTTP-запросы к доскам.
type Handler struct {
	boards api.BoardUseCase
}

// NewHandler создает новый экземпляр обработчика досок.
func NewHandler(boards api.BoardUseCase) *Handler {
	return &Handler{boards: boards}
}

// CreateBoard обрабатывает POST /boards.
func (h *Handler) CreateBoard(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateBoard"))
	log.Debug(requestCtx, LogHandlerCreateBoard)

	var req dto.BoardRequest
	if err := common.Bind(ctx, &req); err != nil {
		log.Debug(requestCtx, common.ErrMsgInvalidRequest, zap.Error(err))
		return common.InvalidRequest(ctx, common.ErrMsgInvalidRequest)
	}
	if msg, ok := validateTitle(req.BoardTitle); !ok {
		return common.InvalidRequest(ctx, msg)
	}

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	board, err := h.boards.CreateBoard(requestCtx, db, *req.BoardTitle)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	shaped := dto.NewBoardInDB(board)
	return common.Respond(ctx, fiber.StatusCreated, dto.BoardResponse{Message: MsgBoardCreated, Board: &shaped})
}

// ListBoards обрабатывает GET /boards.
func (h *Handler) ListBoards(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListBoards"))
	log.Debug(requestCtx, LogHandlerListBoards)

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	boards, err := h.boards.ListBoards(requestCtx, db)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	return common.Respond(ctx, fiber.StatusOK, dto.BoardListResponse{
		Message: MsgBoardsListed,
		Boards:  dto.NewBoardList(boards),
	})
}

// GetBoard обрабатывает GET /boards/:board_id.
func (h *Handler) GetBoard(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetBoard"))
	log.Debug(requestCtx, LogHandlerGetBoard)

	boardID, err := common.ParseID(ctx, ParamBoardID)
	if err != nil {
		return common.InvalidRequest(ctx, err.Error())
	}

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	board, err := h.boards.GetBoard(requestCtx, db, boardID)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	shaped := dto.NewBoardInDB(board)
	return common.Respond(ctx, fiber.StatusOK, dto.BoardResponse{Message: MsgBoardRetrieved, Board: &shaped})
}

// UpdateBoard обрабатывает PUT /boards/:board_id.
func (h *Handler) UpdateBoard(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateBoard"))
	log.Debug(requestCtx, LogHandlerUpdateBoard)

	boardID, err := common.ParseID(ctx, ParamBoardID)
	if err != nil {
		return common.InvalidRequest(ctx, err.Error())
	}

	var req dto.BoardRequest
	if err := common.Bind(ctx, &req); err != nil {
		log.Debug(requestCtx, common.ErrMsgInvalidRequest, zap.Error(err))
		return common.InvalidRequest(ctx, common.ErrMsgInvalidRequest)
	}
	if msg, ok := validateTitle(req.BoardTitle); !ok {
		return common.InvalidRequest(ctx, msg)
	}

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	board, err := h.boards.UpdateBoard(requestCtx, db, boardID, *req.BoardTitle)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	shaped := dto.NewBoardInDB(board)
	return common.Respond(ctx, fiber.StatusOK, dto.BoardResponse{Message: MsgBoardUpdated, Board: &shaped})
}

// DeleteBoard обрабатывает DELETE /boards/:board_id.
func (h *Handler) DeleteBoard(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteBoard"))
	log.Debug(requestCtx, LogHandlerDeleteBoard)

	boardID, err := common.ParseID(ctx, ParamBoardID)
	if err != nil {
		return common.InvalidRequest(ctx, err.Error())
	}

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	if err := h.boards.DeleteBoard(requestCtx, db, boardID); err != nil {
		return common.HandleError(ctx, log, err)
	}

	return common.Respond(ctx, fiber.StatusOK, dto.MessageResponse{Message: MsgBoardDeleted})
}

// PinNote обрабатывает PUT /boards/pin-note/:board_id.
func (h *Handler) PinNote(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.PinNote"))
	log.Debug(requestCtx, LogHandlerPinNote)

	return h.changePin(ctx, log, h.boards.PinNote, MsgNotePinned)
}

// UnpinNote обрабатывает PUT /boards/unpin-note/:board_id.
func (h *Handler) UnpinNote(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UnpinNote"))
	log.Debug(requestCtx, LogHandlerUnpinNote)

	return h.changePin(ctx, log, h.boards.UnpinNote, MsgNoteUnpinned)
}

func validateTitle(title *string) (string, bool) {
	switch {
	case title == nil || *title == "":
		return ErrMsgTitleRequired, false
	case utf8.RuneCountInString(*title) > MaxTitleLength:
		return ErrMsgTitleTooLong, false
	}
	return "", true
}

type pinFunc = func(ctx context.Context, db repositories.DB, boardID, noteID int64) (*entities.Board, error)

func (h *Handler) changePin(ctx fiber.Ctx, log *logger.Logger, apply pinFunc, message string) error {
	requestCtx := common.RequestContext(ctx)

	boardID, err := common.ParseID(ctx, ParamBoardID)
	if err != nil {
		return common.InvalidRequest(ctx, err.Error())
	}

	var req dto.PinNoteRequest
	if err := common.Bind(ctx, &req); err != nil {
		log.Debug(requestCtx, common.ErrMsgInvalidRequest, zap.Error(err))
		return common.InvalidRequest(ctx, common.ErrMsgInvalidRequest)
	}
	if req.NoteID == nil {
		return common.InvalidRequest(ctx, ErrMsgNoteIDRequired)
	}

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	board, err := apply(requestCtx, db, boardID, *req.NoteID)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	shaped := dto.NewBoardInDB(board)
	return common.Respond(ctx, fiber.StatusOK, dto.BoardResponse{Message: message, Board: &shaped})
}
