package memory

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/EgorLis/micro-posts/internal/domain"
)

func newTestCache(ttl time.Duration) (*PostListCache, *time.Time) {
	c := New(ttl, log.New(io.Discard, "", 0))
	now := time.Now()
	c.now = func() time.Time { return now }
	return c, &now
}

func TestPutGet(t *testing.T) {
	c, _ := newTestCache(300 * time.Second)
	ctx := context.Background()

	if _, ok := c.Get(ctx, 1); ok {
		t.Fatal("empty cache must miss")
	}

	posts := []domain.PostSummary{{ID: 1, Text: "hello"}}
	c.Put(ctx, 1, posts)

	got, ok := c.Get(ctx, 1)
	if !ok {
		t.Fatal("fresh entry must hit")
	}
	if len(got) != 1 || got[0].Text != "hello" {
		t.Errorf("Get = %+v", got)
	}

	// другой пользователь — свой ключ
	if _, ok := c.Get(ctx, 2); ok {
		t.Error("other user must miss")
	}
}

// Запись валидна строго пока now - capturedAt < TTL
func TestTTLExpiry(t *testing.T) {
	c, now := newTestCache(300 * time.Second)
	ctx := context.Background()

	c.Put(ctx, 1, []domain.PostSummary{{ID: 1, Text: "hello"}})

	*now = now.Add(299 * time.Second)
	if _, ok := c.Get(ctx, 1); !ok {
		t.Error("entry within TTL must hit")
	}

	*now = now.Add(time.Second) // ровно TTL — уже протухла
	if _, ok := c.Get(ctx, 1); ok {
		t.Error("entry at TTL must miss")
	}

	// протухшая запись выкинута насовсем
	if len(c.entries) != 0 {
		t.Errorf("expired entry not evicted: %d left", len(c.entries))
	}
}

func TestPutOverwrites(t *testing.T) {
	c, now := newTestCache(300 * time.Second)
	ctx := context.Background()

	c.Put(ctx, 1, []domain.PostSummary{{ID: 1, Text: "old"}})
	*now = now.Add(200 * time.Second)
	c.Put(ctx, 1, []domain.PostSummary{{ID: 1, Text: "new"}})

	// свежесть отсчитывается от второго Put
	*now = now.Add(250 * time.Second)
	got, ok := c.Get(ctx, 1)
	if !ok {
		t.Fatal("rewritten entry must still be fresh")
	}
	if got[0].Text != "new" {
		t.Errorf("Get = %q, want new", got[0].Text)
	}
}

func TestInvalidate(t *testing.T) {
	c, _ := newTestCache(300 * time.Second)
	ctx := context.Background()

	c.Put(ctx, 1, []domain.PostSummary{{ID: 1, Text: "hello"}})
	c.Invalidate(ctx, 1)

	if _, ok := c.Get(ctx, 1); ok {
		t.Error("invalidated entry must miss")
	}

	// no-op для отсутствующего ключа
	c.Invalidate(ctx, 42)
}
