package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"noteboard/internal/notes/ports/repositories"
)

// ErrOpenSession - ошибка получения соединения из пула.
const ErrOpenSession = "failed to open database session"

// ConnAcquirer выдает соединения из пула.
type ConnAcquirer interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// SessionProvider реализует repositories.SessionProvider поверх пула pgx.
type SessionProvider struct {
	pool ConnAcquirer
}

// NewSessionProvider создает провайдер сессий.
func NewSessionProvider(pool ConnAcquirer) *SessionProvider {
	return &SessionProvider{pool: pool}
}

// Open берет соединение из пула. Запросы через него выполняются в режиме autocommit.
func (p *SessionProvider) Open(ctx context.Context) (repositories.Session, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrOpenSession, err)
	}
	return conn, nil
}
