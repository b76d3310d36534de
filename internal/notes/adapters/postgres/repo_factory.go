package postgres

import (
	"noteboard/internal/notes/ports/repositories"
)

// RepositoryFactory создает репозитории для работы с базой данных.
type RepositoryFactory struct {
	boardRepo repositories.BoardRepository
	noteRepo  repositories.NoteRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		boardRepo: NewBoardRepository(),
		noteRepo:  NewNoteRepository(),
	}
}

// BoardRepository возвращает репозиторий досок.
func (f *RepositoryFactory) BoardRepository() repositories.BoardRepository {
	return f.boardRepo
}

// NoteRepository возвращает репозиторий заметок.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return f.noteRepo
}
