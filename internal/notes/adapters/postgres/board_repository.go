package postgres

import (
	"github.com/jackc/pgx/v5"

	"noteboard/internal/notes/domain/entities"
	"noteboard/internal/notes/ports/repositories"
)

// BoardsTable - таблица boards.
const BoardsTable = "boards"

var boardColumns = []string{
	repositories.ColumnID,
	repositories.ColumnTitle,
	repositories.ColumnCreatedAt,
	repositories.ColumnUpdatedAt,
}

// BoardRepository реализует repositories.BoardRepository.
type BoardRepository struct {
	*Store[entities.Board]
}

// NewBoardRepository создает репозиторий досок.
func NewBoardRepository() repositories.BoardRepository {
	return &BoardRepository{
		Store: NewStore(Table[entities.Board]{
			Name:     BoardsTable,
			Columns:  boardColumns,
			Writable: []string{repositories.ColumnTitle},
			Scan:     scanBoard,
			ID:       func(b *entities.Board) int64 { return b.ID },
		}),
	}
}

func scanBoard(row pgx.Row) (*entities.Board, error) {
	var board entities.Board
	if err := row.Scan(&board.ID, &board.Title, &board.CreatedAt, &board.UpdatedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &board, nil
}
