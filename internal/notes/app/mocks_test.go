package app_test

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	"noteboard/internal/notes/domain/entities"
	"noteboard/internal/notes/ports/repositories"
)

var errDatabase = errors.New("database error")

// stubDB нигде не используется репозиториями-моками и нужен только как значение сессии.
type stubDB struct{}

func (stubDB) QueryRow(context.Context, string, ...any) pgx.Row { return nil }

func (stubDB) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, errDatabase }

func (stubDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errDatabase
}

type mockBoardRepository struct {
	mock.Mock
}

func (m *mockBoardRepository) Create(ctx context.Context, db repositories.DB, fields repositories.Fields) (*entities.Board, error) {
	args := m.Called(ctx, db, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Board), args.Error(1)
}

func (m *mockBoardRepository) Get(ctx context.Context, db repositories.DB, filter repositories.Filter) (*entities.Board, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Board), args.Error(1)
}

func (m *mockBoardRepository) Find(ctx context.Context, db repositories.DB, filter repositories.Filter) ([]*entities.Board, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Board), args.Error(1)
}

func (m *mockBoardRepository) GetAll(ctx context.Context, db repositories.DB) ([]*entities.Board, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Board), args.Error(1)
}

func (m *mockBoardRepository) Update(
	ctx context.Context, db repositories.DB, record *entities.Board, fields repositories.Fields,
) (*entities.Board, error) {
	args := m.Called(ctx, db, record, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Board), args.Error(1)
}

func (m *mockBoardRepository) Delete(ctx context.Context, db repositories.DB, record *entities.Board) error {
	args := m.Called(ctx, db, record)
	return args.Error(0)
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, db repositories.DB, fields repositories.Fields) (*entities.Note, error) {
	args := m.Called(ctx, db, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Get(ctx context.Context, db repositories.DB, filter repositories.Filter) (*entities.Note, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Find(ctx context.Context, db repositories.DB, filter repositories.Filter) ([]*entities.Note, error) {
	args := m.Called(ctx, db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetAll(ctx context.Context, db repositories.DB) ([]*entities.Note, error) {
	args := m.Called(ctx, db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(
	ctx context.Context, db repositories.DB, record *entities.Note, fields repositories.Fields,
) (*entities.Note, error) {
	args := m.Called(ctx, db, record, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, db repositories.DB, record *entities.Note) error {
	args := m.Called(ctx, db, record)
	return args.Error(0)
}

func (m *mockNoteRepository) IncrementViews(ctx context.Context, db repositories.DB, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, db, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) ListByBoard(ctx context.Context, db repositories.DB, boardID int64) ([]*entities.Note, error) {
	args := m.Called(ctx, db, boardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func byID(id int64) repositories.Filter {
	return repositories.Filter{repositories.ColumnID: id}
}

func ptr[T any](v T) *T {
	return &v
}

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
