package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/kasuboski/cineprime/pkg/cache"
	"github.com/kasuboski/cineprime/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultListTTL is how long curated lists are reused
const DefaultListTTL = 15 * time.Minute

// ListCache keeps normalized curated lists. A failing cache behaves like a miss.
type ListCache interface {
	Get(ctx context.Context, key string) ([]Summary, bool)
	Set(ctx context.Context, key string, summaries []Summary)
}

type memoryCache struct {
	entries *cache.Cache[string, []Summary]
}

// NewMemoryCache keeps lists in process for ttl
func NewMemoryCache(ttl time.Duration) ListCache {
	return memoryCache{entries: cache.New[string, []Summary](cache.WithTTL(ttl))}
}

func (m memoryCache) Get(ctx context.Context, key string) ([]Summary, bool) {
	return m.entries.Get(key)
}

func (m memoryCache) Set(ctx context.Context, key string, summaries []Summary) {
	m.entries.Set(key, summaries)
}

type redisCache struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
}

// NewRedisCache stores lists as JSON under cineprime:metadata:<key> with an expiry of ttl
func NewRedisCache(client redis.Cmdable, ttl time.Duration) ListCache {
	return redisCache{client: client, ttl: ttl, prefix: "cineprime:metadata:"}
}

func (r redisCache) Get(ctx context.Context, key string) ([]Summary, bool) {
	log := logger.FromCtx(ctx)

	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warnw("failed to read list cache", "key", key, zap.Error(err))
		}
		return nil, false
	}

	var summaries []Summary
	if err := json.Unmarshal(b, &summaries); err != nil {
		log.Warnw("failed to decode cached list", "key", key, zap.Error(err))
		return nil, false
	}

	return summaries, true
}

func (r redisCache) Set(ctx context.Context, key string, summaries []Summary) {
	log := logger.FromCtx(ctx)

	b, err := json.Marshal(summaries)
	if err != nil {
		log.Warnw("failed to encode list for cache", "key", key, zap.Error(err))
		return
	}

	if err := r.client.Set(ctx, r.prefix+key, b, r.ttl).Err(); err != nil {
		log.Warnw("failed to write list cache", "key", key, zap.Error(err))
	}
}
