// Package cache определяет порт кэша.
package cache

import (
	"context"
	"time"
)

// Cache - хранилище строк по ключу с временем жизни.
// Get возвращает пустую строку без ошибки, если ключа нет.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Incr атомарно увеличивает счетчик и возвращает новое значение. Ключ хранится без ttl.
	Incr(ctx context.Context, key string) (int64, error)
	Close() error
}
