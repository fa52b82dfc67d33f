package post

import (
	"context"
	"log"

	"github.com/EgorLis/micro-posts/internal/domain"
)

// PostService — то, что нужно обработчикам от сервиса постов
type PostService interface {
	CreatePost(ctx context.Context, owner domain.UserID, text string) (domain.PostID, error)
	GetPosts(ctx context.Context, owner domain.UserID) ([]domain.PostSummary, error)
	DeletePost(ctx context.Context, owner domain.UserID, id domain.PostID) error
}

type Handler struct {
	Log   *log.Logger
	Posts PostService
}
