package entities

import "time"

// Note - текстовая заметка, которая может быть прикреплена не более чем к одной доске.
type Note struct {
	ID         int64      `json:"id"`
	Text       string     `json:"text"`
	ViewsCount int        `json:"views_count"`
	BoardID    *int64     `json:"board_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// IsPinned сообщает, прикреплена ли заметка к какой-либо доске.
func (n *Note) IsPinned() bool {
	return n.BoardID != nil
}

// IsPinnedTo сообщает, прикреплена ли заметка к доске boardID.
func (n *Note) IsPinnedTo(boardID int64) bool {
	return n.BoardID != nil && *n.BoardID == boardID
}
