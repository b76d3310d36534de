package app

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"noteboard/internal/notes/domain/entities"
	"noteboard/internal/notes/ports/cache"
	"noteboard/pkg/logger"
)

const (
	boardKeyPrefix     = "board:"
	boardVersionSuffix = ":v"
)

// boardCache хранит доски вместе с заметками. Ошибки кэша только логируются.
//
// Каждая запись помечена версией доски, прочитанной до обращения к БД.
// invalidate увеличивает версию, поэтому запись, собранная из данных,
// прочитанных до завершившейся записи, больше не отдается.
type boardCache struct {
	cache cache.Cache
	ttl   time.Duration
}

type cachedBoard struct {
	Version int64           `json:"version"`
	Board   *entities.Board `json:"board"`
}

func newBoardCache(c cache.Cache, ttl time.Duration) *boardCache {
	return &boardCache{cache: c, ttl: ttl}
}

func boardKey(id int64) string {
	return boardKeyPrefix + strconv.FormatInt(id, 10)
}

func boardVersionKey(id int64) string {
	return boardKey(id) + boardVersionSuffix
}

// version возвращает текущую версию доски. ok == false, если версию прочитать не удалось.
func (bc *boardCache) version(ctx context.Context, id int64) (int64, bool) {
	raw, err := bc.cache.Get(ctx, boardVersionKey(id))
	if err != nil {
		return 0, false
	}
	if raw == "" {
		return 0, true
	}

	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Log(ctx).Warn(ctx, "invalid cached board version", zap.Int64("boardID", id), zap.Error(err))
		return 0, false
	}
	return version, true
}

// get возвращает доску, если запись есть и ее версия совпадает с текущей.
// Вместе с доской возвращается версия, под которой можно сохранить свежие данные.
func (bc *boardCache) get(ctx context.Context, id int64) (board *entities.Board, version int64, cacheable bool) {
	version, cacheable = bc.version(ctx, id)
	if !cacheable {
		return nil, 0, false
	}

	raw, err := bc.cache.Get(ctx, boardKey(id))
	if err != nil || raw == "" {
		return nil, version, true
	}

	var entry cachedBoard
	if err := json.Unmarshal([]byte(raw), &entry); err != nil || entry.Board == nil {
		logger.Log(ctx).Warn(ctx, "failed to decode cached board", zap.Int64("boardID", id), zap.Error(err))
		return nil, version, true
	}
	if entry.Version != version {
		return nil, version, true
	}
	return entry.Board, version, true
}

func (bc *boardCache) set(ctx context.Context, board *entities.Board, version int64) {
	raw, err := json.Marshal(cachedBoard{Version: version, Board: board})
	if err != nil {
		logger.Log(ctx).Warn(ctx, "failed to encode board for cache", zap.Int64("boardID", board.ID), zap.Error(err))
		return
	}
	_ = bc.cache.Set(ctx, boardKey(board.ID), string(raw), bc.ttl)
}

// invalidate увеличивает версию и удаляет доски с указанными id. nil пропускается.
func (bc *boardCache) invalidate(ctx context.Context, ids ...*int64) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != nil {
			_, _ = bc.cache.Incr(ctx, boardVersionKey(*id))
			keys = append(keys, boardKey(*id))
		}
	}
	if len(keys) == 0 {
		return
	}
	_ = bc.cache.Delete(ctx, keys...)
}
