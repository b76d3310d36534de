package cache

import (
	"context"
	"time"

	"noteboard/internal/notes/ports/cache"
)

// NopCache ничего не хранит. Используется, когда Redis отключен.
type NopCache struct{}

// NewNopCache создает пустой кэш.
func NewNopCache() cache.Cache {
	return NopCache{}
}

// Get всегда возвращает промах.
func (NopCache) Get(context.Context, string) (string, error) { return "", nil }

// Set ничего не делает.
func (NopCache) Set(context.Context, string, string, time.Duration) error { return nil }

// Delete ничего не делает.
func (NopCache) Delete(context.Context, ...string) error { return nil }

// Incr ничего не делает.
func (NopCache) Incr(context.Context, string) (int64, error) { return 0, nil }

// Close ничего не делает.
func (NopCache) Close() error { return nil }
