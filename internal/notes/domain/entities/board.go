// Package entities определяет доменные сущности сервиса досок и заметок.
package entities

import "time"

// Board - доска, к которой можно прикрепить заметки.
type Board struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`

	// Notes заполняется прикладным слоем; в таблице boards не хранится.
	Notes []*Note `json:"notes"`
}

// AttachNotes заменяет список заметок доски заметками, у которых board_id совпадает с ID доски.
func (b *Board) AttachNotes(notes []*Note) {
	b.Notes = make([]*Note, 0, len(notes))
	for _, note := range notes {
		if note.IsPinnedTo(b.ID) {
			b.Notes = append(b.Notes, note)
		}
	}
}
