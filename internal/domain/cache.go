package domain

import (
	"context"
	"strconv"
)

// TTL кеша списков, секунд (5 минут)
const PostListTTLSeconds = 300

// Ключи кеша — единое место, чтобы не расползались по коду.
func CacheKeyPostList(owner UserID) string { return "posts:" + strconv.FormatInt(owner, 10) }

// Простой k/v интерфейс. Реализация — Redis.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
	Ping(context.Context) error
	Close()
}

// Кеш материализованных списков постов, по одному на пользователя.
// Производное, одноразовое представление: источником истины всегда
// остаётся PostsRepo, запись можно восстановить в любой момент.
type PostListCache interface {
	// Get возвращает (nil, false) при промахе или протухшей записи —
	// промах не ошибка.
	Get(ctx context.Context, owner UserID) ([]PostSummary, bool)
	Put(ctx context.Context, owner UserID, posts []PostSummary)
	Invalidate(ctx context.Context, owner UserID)
}
