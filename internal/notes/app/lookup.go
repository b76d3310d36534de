// Package app реализует прикладную логику сервиса досок и заметок.
package app

import (
	"context"
	"errors"
	"fmt"

	"noteboard/internal/notes/domain/entities"
	"noteboard/internal/notes/ports/repositories"
)

func findBoard(ctx context.Context, db repositories.DB, repo repositories.BoardRepository, id int64) (*entities.Board, error) {
	board, err := repo.Get(ctx, db, repositories.Filter{repositories.ColumnID: id})
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, entities.ErrBoardNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}
	return board, nil
}

func findNote(ctx context.Context, db repositories.DB, repo repositories.NoteRepository, id int64) (*entities.Note, error) {
	note, err := repo.Get(ctx, db, repositories.Filter{repositories.ColumnID: id})
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, entities.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// notFoundAs заменяет ErrRecordNotFound доменной ошибкой: запись могла исчезнуть между чтением и записью.
func notFoundAs(err, domainErr error) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
