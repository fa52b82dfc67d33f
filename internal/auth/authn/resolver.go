package authn

import (
	"context"

	"github.com/EgorLis/micro-posts/internal/domain"
)

// Resolver — единая точка "токен -> пользователь" для всех защищённых
// операций. Владение конкретным ресурсом здесь не проверяется — это
// забота хранилища постов.
type Resolver struct {
	Tokens domain.TokenManager
	Users  domain.UsersRepo
}

func New(tm domain.TokenManager, users domain.UsersRepo) *Resolver {
	return &Resolver{Tokens: tm, Users: users}
}

var _ domain.UserResolver = (*Resolver)(nil)

// Resolve валидирует токен и находит пользователя по subject (email).
// Любой отказ — битый токен, просрочка, исчезнувший пользователь —
// схлопывается в ErrUnauth: наружу причину не раскрываем.
func (r *Resolver) Resolve(ctx context.Context, t domain.Token) (domain.User, error) {
	claims, err := r.Tokens.Parse(ctx, t)
	if err != nil {
		return domain.User{}, domain.ErrUnauth
	}

	u, ok, err := r.Users.UserByEmail(ctx, claims.Subject)
	if err != nil {
		return domain.User{}, err
	}
	if !ok {
		// пользователь удалён после выдачи токена либо subject битый
		return domain.User{}, domain.ErrUnauth
	}
	return u, nil
}
