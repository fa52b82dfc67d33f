package domain

import (
	"context"
	"time"
)

// Сырой bearer-токен (JWT HS256)
type Token = string

type TokenClaims struct {
	JTI       string // уникальный id токена
	Subject   string // email пользователя
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Хеширование паролей
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain string, encodedHash string) (bool, error)
}

// Управление токенами. ttl <= 0 — использовать TTL по умолчанию.
type TokenManager interface {
	Issue(ctx context.Context, subject string, ttl time.Duration) (Token, TokenClaims, error)
	// Parse возвращает ErrExpiredToken для просроченного токена и
	// ErrInvalidToken для всего остального (подпись, структура, пустой subject).
	Parse(ctx context.Context, t Token) (TokenClaims, error)
}

// Резолвер "токен -> пользователь"; единственная точка входа
// для всех защищённых операций.
type UserResolver interface {
	Resolve(ctx context.Context, t Token) (User, error)
}
