package repositories

import (
	"context"

	"noteboard/internal/notes/domain/entities"
)

// BoardRepository - репозиторий досок.
type BoardRepository interface {
	Repository[entities.Board]
}

// NoteRepository - репозиторий заметок.
type NoteRepository interface {
	Repository[entities.Note]

	// IncrementViews атомарно увеличивает views_count на единицу.
	IncrementViews(ctx context.Context, db DB, note *entities.Note) (*entities.Note, error)
	// ListByBoard возвращает заметки, прикрепленные к доске.
	ListByBoard(ctx context.Context, db DB, boardID int64) ([]*entities.Note, error)
}
