package postcache

import (
	"context"
	"encoding/json"
	"log"

	"github.com/EgorLis/micro-posts/internal/domain"
)

// RedisListCache реализует кеш списков постов поверх k/v кеша (Redis).
// В отличие от процессного варианта (infra/cache/memory) записи видны
// всем репликам сервиса, TTL считает сам Redis. Ошибки кеша не
// фатальны: промах вместо падения, источник истины — БД.
type RedisListCache struct {
	KV     domain.Cache
	TTL    int // секунд
	Logger *log.Logger
}

func New(kv domain.Cache, ttlSeconds int, logger *log.Logger) *RedisListCache {
	if ttlSeconds <= 0 {
		ttlSeconds = domain.PostListTTLSeconds
	}
	return &RedisListCache{KV: kv, TTL: ttlSeconds, Logger: logger}
}

var _ domain.PostListCache = (*RedisListCache)(nil)

func (c *RedisListCache) Get(ctx context.Context, owner domain.UserID) ([]domain.PostSummary, bool) {
	b, err := c.KV.Get(ctx, domain.CacheKeyPostList(owner))
	if err != nil || b == nil {
		return nil, false
	}
	var posts []domain.PostSummary
	if err := json.Unmarshal(b, &posts); err != nil {
		c.Logger.Printf("unmarshal cached list user_id=%d: %v", owner, err)
		return nil, false
	}
	return posts, true
}

func (c *RedisListCache) Put(ctx context.Context, owner domain.UserID, posts []domain.PostSummary) {
	b, err := json.Marshal(posts)
	if err != nil {
		c.Logger.Printf("marshal list user_id=%d: %v", owner, err)
		return
	}
	if err := c.KV.Set(ctx, domain.CacheKeyPostList(owner), b, c.TTL); err != nil {
		c.Logger.Printf("set list user_id=%d: %v", owner, err)
	}
}

func (c *RedisListCache) Invalidate(ctx context.Context, owner domain.UserID) {
	if err := c.KV.Del(ctx, domain.CacheKeyPostList(owner)); err != nil {
		c.Logger.Printf("del list user_id=%d: %v", owner, err)
	}
}
