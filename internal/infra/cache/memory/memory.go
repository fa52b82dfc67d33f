package memory

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/EgorLis/micro-posts/internal/domain"
)

// PostListCache — процессный кеш списков постов: map под мьютексом,
// запись живёт TTL с момента Put. Инстанс принадлежит сервису постов,
// живёт столько же, сколько процесс. Между процессами ничего не
// разделяется: за load balancer'ом у каждой реплики свой кеш, и запись
// на реплике A не инвалидирует кеш реплики B (известное ограничение).
type PostListCache struct {
	mu      sync.Mutex
	entries map[domain.UserID]entry
	ttl     time.Duration
	logger  *log.Logger
	now     func() time.Time // подменяется в тестах
}

type entry struct {
	posts      []domain.PostSummary
	capturedAt time.Time
}

func New(ttl time.Duration, logger *log.Logger) *PostListCache {
	return &PostListCache{
		entries: make(map[domain.UserID]entry),
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
	}
}

var _ domain.PostListCache = (*PostListCache)(nil)

// Get отдаёт запись, только пока now - capturedAt < TTL.
// Протухшую сразу выкидываем, чтобы map не рос.
func (c *PostListCache) Get(_ context.Context, owner domain.UserID) ([]domain.PostSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[owner]
	if !ok {
		c.logger.Printf("GET user_id=%d: miss", owner)
		return nil, false
	}
	if c.now().Sub(e.capturedAt) >= c.ttl {
		delete(c.entries, owner)
		c.logger.Printf("GET user_id=%d: expired", owner)
		return nil, false
	}
	c.logger.Printf("GET user_id=%d: hit (%d posts)", owner, len(e.posts))
	return e.posts, true
}

// Put перетирает предыдущую запись: при гонке двух промахов по одному
// пользователю выживает последняя запись, обе одинаково свежие.
func (c *PostListCache) Put(_ context.Context, owner domain.UserID, posts []domain.PostSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[owner] = entry{posts: posts, capturedAt: c.now()}
	c.logger.Printf("PUT user_id=%d (%d posts)", owner, len(posts))
}

func (c *PostListCache) Invalidate(_ context.Context, owner domain.UserID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, owner)
	c.logger.Printf("INVALIDATE user_id=%d", owner)
}
