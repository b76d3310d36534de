package entities

import "errors"

// Доменные ошибки. Текст ошибки возвращается клиенту как есть.
var (
	ErrBoardNotFound  = errors.New("Board not found")              //nolint:staticcheck
	ErrNoteNotFound   = errors.New("Note not found")               //nolint:staticcheck
	ErrNoteNotOnBoard = errors.New("Note doesn't belong to board") //nolint:staticcheck
)
