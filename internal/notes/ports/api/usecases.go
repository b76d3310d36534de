// Package api определяет входные порты сервиса, которые используют HTTP-обработчики.
package api

import (
	"context"

	"noteboard/internal/notes/domain/entities"
	"noteboard/internal/notes/ports/repositories"
)

// BoardUseCase - операции над досками.
type BoardUseCase interface {
	CreateBoard(ctx context.Context, db repositories.DB, title string) (*entities.Board, error)
	ListBoards(ctx context.Context, db repositories.DB) ([]*entities.Board, error)
	GetBoard(ctx context.Context, db repositories.DB, boardID int64) (*entities.Board, error)
	UpdateBoard(ctx context.Context, db repositories.DB, boardID int64, title string) (*entities.Board, error)
	DeleteBoard(ctx context.Context, db repositories.DB, boardID int64) error
	PinNote(ctx context.Context, db repositories.DB, boardID, noteID int64) (*entities.Board, error)
	UnpinNote(ctx context.Context, db repositories.DB, boardID, noteID int64) (*entities.Board, error)
}

// NoteUseCase - операции над заметками.
type NoteUseCase interface {
	CreateNote(ctx context.Context, db repositories.DB, text string, boardID *int64) (*entities.Note, error)
	ListNotes(ctx context.Context, db repositories.DB) ([]*entities.Note, error)
	GetNote(ctx context.Context, db repositories.DB, noteID int64) (*entities.Note, error)
	UpdateNote(ctx context.Context, db repositories.DB, noteID int64, text string, boardID *int64) (*entities.Note, error)
	DeleteNote(ctx context.Context, db repositories.DB, noteID int64) error
}
