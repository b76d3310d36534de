// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/notes/adapters/http/common"
	"noteboard/internal/notes/adapters/http/dto"
	"noteboard/internal/notes/ports/api"
	"noteboard/pkg/logger"
)

// Константы сообщений.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	MsgNoteCreated   = "Note successfully created"
	MsgNotesListed   = "Notes successfully retrieved"
	MsgNoteRetrieved = "Note successfully retrieved"
	MsgNoteUpdated   = "Note successfully updated"
	MsgNoteDeleted   = "Note successfully deleted"

	ErrMsgTextRequired = "text is required"

	ParamNoteID = "note_id"
)

// Handler обрабатывает HTTP-запросы к заметкам.
type Handler struct {
	notes api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notes api.NoteUseCase) *Handler {
	return &Handler{notes: notes}
}

// CreateNote обрабатывает POST /notes.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := common.Bind(ctx, &req); err != nil {
		log.Debug(requestCtx, common.ErrMsgInvalidRequest, zap.Error(err))
		return common.InvalidRequest(ctx, common.ErrMsgInvalidRequest)
	}
	if req.Text == nil {
		return common.InvalidRequest(ctx, ErrMsgTextRequired)
	}

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	note, err := h.notes.CreateNote(requestCtx, db, *req.Text, req.BoardID)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	shaped := dto.NewNoteInDB(note)
	return common.Respond(ctx, fiber.StatusCreated, dto.NoteResponse{Message: MsgNoteCreated, Note: &shaped})
}

// ListNotes обрабатывает GET /notes.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	notes, err := h.notes.ListNotes(requestCtx, db)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	return common.Respond(ctx, fiber.StatusOK, dto.NoteListResponse{
		Message: MsgNotesListed,
		Notes:   dto.NewNoteList(notes),
	})
}

// GetNote обрабатывает GET /notes/:note_id. Каждый вызов увеличивает счетчик просмотров.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, LogHandlerGetNote)

	noteID, err := common.ParseID(ctx, ParamNoteID)
	if err != nil {
		return common.InvalidRequest(ctx, err.Error())
	}

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	note, err := h.notes.GetNote(requestCtx, db, noteID)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	shaped := dto.NewNoteInDB(note)
	return common.Respond(ctx, fiber.StatusOK, dto.NoteResponse{Message: MsgNoteRetrieved, Note: &shaped})
}

// UpdateNote обрабатывает PUT /notes/:note_id.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	noteID, err := common.ParseID(ctx, ParamNoteID)
	if err != nil {
		return common.InvalidRequest(ctx, err.Error())
	}

	var req dto.UpdateNoteRequest
	if err := common.Bind(ctx, &req); err != nil {
		log.Debug(requestCtx, common.ErrMsgInvalidRequest, zap.Error(err))
		return common.InvalidRequest(ctx, common.ErrMsgInvalidRequest)
	}

	var text string
	if req.NoteText != nil {
		text = *req.NoteText
	}

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	note, err := h.notes.UpdateNote(requestCtx, db, noteID, text, req.BoardID)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	shaped := dto.NewNoteInDB(note)
	return common.Respond(ctx, fiber.StatusOK, dto.NoteResponse{Message: MsgNoteUpdated, Note: &shaped})
}

// DeleteNote обрабатывает DELETE /notes/:note_id.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := common.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	noteID, err := common.ParseID(ctx, ParamNoteID)
	if err != nil {
		return common.InvalidRequest(ctx, err.Error())
	}

	db, err := common.Session(ctx)
	if err != nil {
		return common.HandleError(ctx, log, err)
	}

	if err := h.notes.DeleteNote(requestCtx, db, noteID); err != nil {
		return common.HandleError(ctx, log, err)
	}

	return common.Respond(ctx, fiber.StatusOK, dto.MessageResponse{Message: MsgNoteDeleted})
}
