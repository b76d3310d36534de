package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"noteboard/internal/notes/domain/entities"
	"noteboard/internal/notes/ports/cache"
	"noteboard/internal/notes/ports/repositories"
	"noteboard/pkg/logger"
)

// BoardUseCase реализует операции над досками.
type BoardUseCase struct {
	boardRepo repositories.BoardRepository
	noteRepo  repositories.NoteRepository
	boards    *boardCache
}

// NewBoardUseCase создает новый экземпляр BoardUseCase.
func NewBoardUseCase(
	boardRepo repositories.BoardRepository,
	noteRepo repositories.NoteRepository,
	boardCache cache.Cache,
	cacheTTL time.Duration,
) *BoardUseCase {
	return &BoardUseCase{
		boardRepo: boardRepo,
		noteRepo:  noteRepo,
		boards:    newBoardCache(boardCache, cacheTTL),
	}
}

// CreateBoard создает доску.
func (uc *BoardUseCase) CreateBoard(ctx context.Context, db repositories.DB, title string) (*entities.Board, error) {
	board, err := uc.boardRepo.Create(ctx, db, repositories.Fields{repositories.ColumnTitle: title})
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	board.Notes = []*entities.Note{}

	logger.Log(ctx).Info(ctx, "board created", zap.Int64("boardID", board.ID))
	return board, nil
}

// ListBoards возвращает все доски вместе с прикрепленными заметками.
func (uc *BoardUseCase) ListBoards(ctx context.Context, db repositories.DB) ([]*entities.Board, error) {
	boards, err := uc.boardRepo.GetAll(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	notes, err := uc.noteRepo.GetAll(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	byBoard := make(map[int64][]*entities.Note, len(boards))
	for _, note := range notes {
		if note.IsPinned() {
			byBoard[*note.BoardID] = append(byBoard[*note.BoardID], note)
		}
	}
	for _, board := range boards {
		board.AttachNotes(byBoard[board.ID])
	}

	return boards, nil
}

// GetBoard возвращает доску с заметками, сначала пытаясь взять ее из кэша.
func (uc *BoardUseCase) GetBoard(ctx context.Context, db repositories.DB, boardID int64) (*entities.Board, error) {
	cached, version, cacheable := uc.boards.get(ctx, boardID)
	if cached != nil {
		logger.Log(ctx).Debug(ctx, "board served from cache", zap.Int64("boardID", boardID))
		return cached, nil
	}

	board, err := findBoard(ctx, db, uc.boardRepo, boardID)
	if err != nil {
		return nil, err
	}

	if err := uc.loadNotes(ctx, db, board); err != nil {
		return nil, err
	}

	if cacheable {
		uc.boards.set(ctx, board, version)
	}
	return board, nil
}

// UpdateBoard заменяет заголовок доски.
func (uc *BoardUseCase) UpdateBoard(ctx context.Context, db repositories.DB, boardID int64, title string) (*entities.Board, error) {
	board, err := findBoard(ctx, db, uc.boardRepo, boardID)
	if err != nil {
		return nil, err
	}

	fields := repositories.Fields{}
	if title != board.Title {
		fields[repositories.ColumnTitle] = title
	}

	board, err = uc.boardRepo.Update(ctx, db, board, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update board: %w", notFoundAs(err, entities.ErrBoardNotFound))
	}
	uc.boards.invalidate(ctx, &board.ID)

	if err := uc.loadNotes(ctx, db, board); err != nil {
		return nil, err
	}

	return board, nil
}

// DeleteBoard удаляет доску. Прикрепленные заметки удаляются каскадно.
func (uc *BoardUseCase) DeleteBoard(ctx context.Context, db repositories.DB, boardID int64) error {
	board, err := findBoard(ctx, db, uc.boardRepo, boardID)
	if err != nil {
		return err
	}

	if err := uc.boardRepo.Delete(ctx, db, board); err != nil {
		return fmt.Errorf("failed to delete board: %w", notFoundAs(err, entities.ErrBoardNotFound))
	}
	uc.boards.invalidate(ctx, &board.ID)

	logger.Log(ctx).Info(ctx, "board deleted", zap.Int64("boardID", boardID))
	return nil
}

// PinNote прикрепляет заметку к доске и возвращает доску.
func (uc *BoardUseCase) PinNote(ctx context.Context, db repositories.DB, boardID, noteID int64) (*entities.Board, error) {
	board, err := findBoard(ctx, db, uc.boardRepo, boardID)
	if err != nil {
		return nil, err
	}

	note, err := findNote(ctx, db, uc.noteRepo, noteID)
	if err != nil {
		return nil, err
	}

	if !note.IsPinnedTo(board.ID) {
		previous := note.BoardID
		if _, err := uc.noteRepo.Update(ctx, db, note, repositories.Fields{repositories.ColumnBoardID: board.ID}); err != nil {
			return nil, fmt.Errorf("failed to pin note: %w", notFoundAs(err, entities.ErrNoteNotFound))
		}
		uc.boards.invalidate(ctx, &board.ID, previous)
	}

	if err := uc.loadNotes(ctx, db, board); err != nil {
		return nil, err
	}

	return board, nil
}

// UnpinNote открепляет заметку от доски. Заметка должна быть прикреплена именно к этой доске.
func (uc *BoardUseCase) UnpinNote(ctx context.Context, db repositories.DB, boardID, noteID int64) (*entities.Board, error) {
	board, err := findBoard(ctx, db, uc.boardRepo, boardID)
	if err != nil {
		return nil, err
	}

	note, err := findNote(ctx, db, uc.noteRepo, noteID)
	if err != nil {
		return nil, err
	}

	if !note.IsPinnedTo(board.ID) {
		return nil, entities.ErrNoteNotOnBoard
	}

	if _, err := uc.noteRepo.Update(ctx, db, note, repositories.Fields{repositories.ColumnBoardID: nil}); err != nil {
		return nil, fmt.Errorf("failed to unpin note: %w", notFoundAs(err, entities.ErrNoteNotFound))
	}
	uc.boards.invalidate(ctx, &board.ID)

	if err := uc.loadNotes(ctx, db, board); err != nil {
		return nil, err
	}

	return board, nil
}

func (uc *BoardUseCase) loadNotes(ctx context.Context, db repositories.DB, board *entities.Board) error {
	notes, err := uc.noteRepo.ListByBoard(ctx, db, board.ID)
	if err != nil {
		return fmt.Errorf("failed to load board notes: %w", err)
	}
	board.AttachNotes(notes)
	return nil
}
