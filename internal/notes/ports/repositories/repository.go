// Package repositories определяет порты хранилища сервиса досок и заметок.
package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Ошибки хранилища.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUnknownColumn  = errors.New("unknown column")
)

// DB - соединение, через которое выполняются запросы одного HTTP-запроса.
// Каждая операция репозитория получает его явно.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Session - соединение, взятое из пула на время запроса.
type Session interface {
	DB
	Release()
}

// SessionProvider выдает соединения на время обработки запроса.
type SessionProvider interface {
	Open(ctx context.Context) (Session, error)
}

// Fields - значения колонок для записи. nil записывается как NULL.
type Fields map[string]any

// Filter - условия точного совпадения, объединяемые через AND. nil означает IS NULL.
type Filter map[string]any

// Repository - единый CRUD-контракт для записей типа T.
type Repository[T any] interface {
	// Create вставляет запись и возвращает ее с присвоенным id и значениями по умолчанию.
	Create(ctx context.Context, db DB, fields Fields) (*T, error)
	// Get возвращает первую запись по фильтру или ErrRecordNotFound.
	Get(ctx context.Context, db DB, filter Filter) (*T, error)
	// Find возвращает все записи по фильтру.
	Find(ctx context.Context, db DB, filter Filter) ([]*T, error)
	// GetAll возвращает все записи.
	GetAll(ctx context.Context, db DB) ([]*T, error)
	// Update применяет изменения и обновляет updated_at. Пустой набор полей ничего не пишет.
	Update(ctx context.Context, db DB, record *T, fields Fields) (*T, error)
	// Delete удаляет запись.
	Delete(ctx context.Context, db DB, record *T) error
}
