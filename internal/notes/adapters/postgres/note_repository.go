package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"noteboard/internal/notes/domain/entities"
	"noteboard/internal/notes/ports/repositories"
	"noteboard/pkg/logger"
)

// NotesTable - таблица notes.
const NotesTable = "notes"

var noteColumns = []string{
	repositories.ColumnID,
	repositories.ColumnText,
	repositories.ColumnViewsCount,
	repositories.ColumnBoardID,
	repositories.ColumnCreatedAt,
	repositories.ColumnUpdatedAt,
}

// NoteRepository реализует repositories.NoteRepository.
type NoteRepository struct {
	*Store[entities.Note]
}

// NewNoteRepository создает репозиторий заметок.
func NewNoteRepository() repositories.NoteRepository {
	return &NoteRepository{
		Store: NewStore(Table[entities.Note]{
			Name:    NotesTable,
			Columns: noteColumns,
			Writable: []string{
				repositories.ColumnText,
				repositories.ColumnViewsCount,
				repositories.ColumnBoardID,
			},
			Scan: scanNote,
			ID:   func(n *entities.Note) int64 { return n.ID },
		}),
	}
}

// IncrementViews увеличивает счетчик просмотров одним запросом, без чтения текущего значения.
func (r *NoteRepository) IncrementViews(ctx context.Context, db repositories.DB, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", NotesTable), zap.String("method", "IncrementViews"))

	query := `UPDATE notes SET views_count = views_count + 1, updated_at = now() WHERE id = $1 RETURNING ` +
		strings.Join(noteColumns, ", ")

	updated, err := scanNote(db.QueryRow(ctx, query, note.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("noteID", note.ID))
			return nil, repositories.ErrRecordNotFound
		}
		log.Error(ctx, "failed to increment views", zap.Error(err))
		return nil, fmt.Errorf("failed to increment views: %w", err)
	}

	return updated, nil
}

// ListByBoard возвращает заметки, прикрепленные к доске boardID.
func (r *NoteRepository) ListByBoard(ctx context.Context, db repositories.DB, boardID int64) ([]*entities.Note, error) {
	return r.Find(ctx, db, repositories.Filter{repositories.ColumnBoardID: boardID})
}

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(&note.ID, &note.Text, &note.ViewsCount, &note.BoardID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &note, nil
}
