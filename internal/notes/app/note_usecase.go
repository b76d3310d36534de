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

// NoteUseCase реализует операции над заметками.
type NoteUseCase struct {
	noteRepo  repositories.NoteRepository
	boardRepo repositories.BoardRepository
	boards    *boardCache
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(
	noteRepo repositories.NoteRepository,
	boardRepo repositories.BoardRepository,
	boardCache cache.Cache,
	cacheTTL time.Duration,
) *NoteUseCase {
	return &NoteUseCase{
		noteRepo:  noteRepo,
		boardRepo: boardRepo,
		boards:    newBoardCache(boardCache, cacheTTL),
	}
}

// CreateNote создает заметку, прикрепляя ее к доске boardID, если он задан.
func (uc *NoteUseCase) CreateNote(ctx context.Context, db repositories.DB, text string, boardID *int64) (*entities.Note, error) {
	fields := repositories.Fields{repositories.ColumnText: text}

	if boardID != nil {
		board, err := findBoard(ctx, db, uc.boardRepo, *boardID)
		if err != nil {
			return nil, err
		}
		fields[repositories.ColumnBoardID] = board.ID
	}

	note, err := uc.noteRepo.Create(ctx, db, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	uc.boards.invalidate(ctx, note.BoardID)

	logger.Log(ctx).Info(ctx, "note created", zap.Int64("noteID", note.ID))
	return note, nil
}

// ListNotes возвращает все заметки.
func (uc *NoteUseCase) ListNotes(ctx context.Context, db repositories.DB) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.GetAll(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetNote возвращает заметку и сохраняет увеличенный на единицу счетчик просмотров.
func (uc *NoteUseCase) GetNote(ctx context.Context, db repositories.DB, noteID int64) (*entities.Note, error) {
	note, err := findNote(ctx, db, uc.noteRepo, noteID)
	if err != nil {
		return nil, err
	}

	note, err = uc.noteRepo.IncrementViews(ctx, db, note)
	if err != nil {
		return nil, fmt.Errorf("failed to count note view: %w", notFoundAs(err, entities.ErrNoteNotFound))
	}
	uc.boards.invalidate(ctx, note.BoardID)

	return note, nil
}

// UpdateNote заменяет текст, если он не пустой, и доску, если передана другая существующая доска.
func (uc *NoteUseCase) UpdateNote(
	ctx context.Context,
	db repositories.DB,
	noteID int64,
	text string,
	boardID *int64,
) (*entities.Note, error) {
	note, err := findNote(ctx, db, uc.noteRepo, noteID)
	if err != nil {
		return nil, err
	}

	fields := repositories.Fields{}
	if text != "" && text != note.Text {
		fields[repositories.ColumnText] = text
	}

	if boardID != nil && !note.IsPinnedTo(*boardID) {
		board, err := findBoard(ctx, db, uc.boardRepo, *boardID)
		if err != nil {
			return nil, err
		}
		fields[repositories.ColumnBoardID] = board.ID
	}

	previous := note.BoardID
	note, err = uc.noteRepo.Update(ctx, db, note, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", notFoundAs(err, entities.ErrNoteNotFound))
	}
	if len(fields) > 0 {
		uc.boards.invalidate(ctx, previous, note.BoardID)
	}

	return note, nil
}

// DeleteNote удаляет заметку.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, db repositories.DB, noteID int64) error {
	note, err := findNote(ctx, db, uc.noteRepo, noteID)
	if err != nil {
		return err
	}

	if err := uc.noteRepo.Delete(ctx, db, note); err != nil {
		return fmt.Errorf("failed to delete note: %w", notFoundAs(err, entities.ErrNoteNotFound))
	}
	uc.boards.invalidate(ctx, note.BoardID)

	logger.Log(ctx).Info(ctx, "note deleted", zap.Int64("noteID", noteID))
	return nil
}
