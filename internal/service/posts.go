package service

import (
	"context"
	"fmt"
	"log"

	"github.com/EgorLis/micro-posts/internal/domain"
)

// PostService оркестрирует создание/выдачу/удаление постов поверх
// репозитория и кеша списков. Кеш — производное представление и
// принадлежит сервису; источник истины всегда PostsRepo.
type PostService struct {
	Log   *log.Logger
	Posts domain.PostsRepo
	Cache domain.PostListCache
}

func NewPosts(logger *log.Logger, posts domain.PostsRepo, cache domain.PostListCache) *PostService {
	return &PostService{Log: logger, Posts: posts, Cache: cache}
}

// CreatePost создаёт пост и синхронно инвалидирует кеш списка владельца:
// инвалидация случается после коммита записи и до возврата вызывающему.
func (s *PostService) CreatePost(ctx context.Context, owner domain.UserID, text string) (domain.PostID, error) {
	p, err := s.Posts.CreatePost(ctx, owner, text)
	if err != nil {
		return 0, err
	}

	s.Cache.Invalidate(ctx, owner)

	s.Log.Printf("post created id=%d user_id=%d", p.ID, owner)
	return p.ID, nil
}

// GetPosts отдаёт список постов пользователя. Свежая запись кеша
// возвращается как есть; на промахе ходим в БД и кладём результат в кеш.
func (s *PostService) GetPosts(ctx context.Context, owner domain.UserID) ([]domain.PostSummary, error) {
	if cached, ok := s.Cache.Get(ctx, owner); ok {
		return cached, nil
	}

	posts, err := s.Posts.PostsByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	out := make([]domain.PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, domain.PostSummary{ID: p.ID, Text: p.Text, CreatedAt: p.CreatedAt})
	}

	s.Cache.Put(ctx, owner, out)
	return out, nil
}

// DeletePost удаляет пост, если он существует и принадлежит owner.
// Оба отказа неразличимы снаружи: не раскрываем существование чужих постов.
func (s *PostService) DeletePost(ctx context.Context, owner domain.UserID, id domain.PostID) error {
	deleted, err := s.Posts.DeletePost(ctx, id, owner)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFoundOrForbidden
	}

	s.Cache.Invalidate(ctx, owner)

	s.Log.Printf("post deleted id=%d user_id=%d", id, owner)
	return nil
}
