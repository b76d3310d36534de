// Package dto содержит объекты запросов и ответов HTTP API.
package dto

import (
	"time"

	"noteboard/internal/notes/domain/entities"
)

// BoardRequest - параметры создания и обновления доски.
type BoardRequest struct {
	BoardTitle *string `json:"board_title" query:"board_title"`
}

// PinNoteRequest - параметры прикрепления и открепления заметки.
type PinNoteRequest struct {
	NoteID *int64 `json:"note_id" query:"note_id"`
}

// CreateNoteRequest - параметры создания заметки.
type CreateNoteRequest struct {
	Text    *string `json:"text" query:"text"`
	BoardID *int64  `json:"board_id" query:"board_id"`
}

// UpdateNoteRequest - параметры обновления заметки. Все поля необязательные.
type UpdateNoteRequest struct {
	NoteText *string `json:"note_text" query:"note_text"`
	BoardID  *int64  `json:"board_id" query:"board_id"`
}

// NoteInDB - представление заметки.
type NoteInDB struct {
	ID         int64      `json:"id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
	Text       string     `json:"text"`
	ViewsCount int        `json:"views_count"`
	BoardID    *int64     `json:"board_id"`
}

// BoardInDB - представление доски вместе с прикрепленными заметками.
type BoardInDB struct {
	ID        int64      `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	Title     string     `json:"title"`
	Notes     []NoteInDB `json:"notes"`
}

// MessageResponse - ответ без данных.
type MessageResponse struct {
	Message string `json:"message"`
}

// BoardResponse - ответ с одной доской.
type BoardResponse struct {
	Message string     `json:"message"`
	Board   *BoardInDB `json:"board"`
}

// BoardListResponse - ответ со списком досок.
type BoardListResponse struct {
	Message string      `json:"message"`
	Boards  []BoardInDB `json:"boards"`
}

// NoteResponse - ответ с одной заметкой.
type NoteResponse struct {
	Message string    `json:"message"`
	Note    *NoteInDB `json:"note"`
}

// NoteListResponse - ответ со списком заметок.
type NoteListResponse struct {
	Message string     `json:"message"`
	Notes   []NoteInDB `json:"notes"`
}

// ErrorResponse - тело ответа об ошибке.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// NewNoteInDB преобразует сущность в представление.
func NewNoteInDB(note *entities.Note) NoteInDB {
	return NoteInDB{
		ID:         note.ID,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
		Text:       note.Text,
		ViewsCount: note.ViewsCount,
		BoardID:    note.BoardID,
	}
}

// NewNoteList преобразует список заметок. Пустой список кодируется как [].
func NewNoteList(notes []*entities.Note) []NoteInDB {
	result := make([]NoteInDB, 0, len(notes))
	for _, note := range notes {
		result = append(result, NewNoteInDB(note))
	}
	return result
}

// NewBoardInDB преобразует доску вместе с заметками.
func NewBoardInDB(board *entities.Board) BoardInDB {
	return BoardInDB{
		ID:        board.ID,
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
		Title:     board.Title,
		Notes:     NewNoteList(board.Notes),
	}
}

// NewBoardList преобразует список досок.
func NewBoardList(boards []*entities.Board) []BoardInDB {
	result := make([]BoardInDB, 0, len(boards))
	for _, board := range boards {
		result = append(result, NewBoardInDB(board))
	}
	return result
}
