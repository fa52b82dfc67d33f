package web

import (
	"github.com/EgorLis/micro-posts/internal/domain"
	"github.com/EgorLis/micro-posts/internal/transport/web/v1/auth"
	"github.com/EgorLis/micro-posts/internal/transport/web/v1/health"
	"github.com/EgorLis/micro-posts/internal/transport/web/v1/post"
)

type Services struct {
	Auth  auth.AuthService
	Posts post.PostService
}

type Deps struct {
	Resolver domain.UserResolver // "токен -> пользователь" для RequireAuth
	DB       health.Pinger
	Cache    health.Pinger // nil без Redis
}
