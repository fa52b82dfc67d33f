package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/EgorLis/micro-posts/internal/domain"
)

type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration // TTL по умолчанию, если Issue вызван с ttl <= 0
}

func New(secret string, issuer string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Ensure: Manager implements domain.TokenManager
var _ domain.TokenManager = (*Manager)(nil)

// Issue выпускает JWT с sub = email пользователя и возвращает доменные клеймы.
// Токен нигде не хранится: он восстановим только подписью секретом.
func (m *Manager) Issue(_ context.Context, subject string, ttl time.Duration) (domain.Token, domain.TokenClaims, error) {
	if ttl <= 0 {
		ttl = m.ttl
	}
	now := time.Now().UTC()
	jti := uuid.NewString()

	cl := jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        jti,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	tokenStr, err := t.SignedString(m.secret)
	if err != nil {
		return "", domain.TokenClaims{}, fmt.Errorf("sign token: %w", err)
	}

	return tokenStr, domain.TokenClaims{
		JTI:       jti,
		Subject:   subject,
		IssuedAt:  cl.IssuedAt.Time,
		ExpiresAt: cl.ExpiresAt.Time,
	}, nil
}

// Parse валидирует подпись и сроки. Просрочка отличима от битого токена:
// ErrExpiredToken против ErrInvalidToken. jwt/v5 сравнивает exp в UTC,
// так что несовпадений таймзон тут не бывает.
func (m *Manager) Parse(_ context.Context, raw domain.Token) (domain.TokenClaims, error) {
	var out jwt.RegisteredClaims
	tkn, err := jwt.ParseWithClaims(string(raw), &out, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.TokenClaims{}, domain.ErrExpiredToken
		}
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}
	if !tkn.Valid || out.Subject == "" {
		return domain.TokenClaims{}, domain.ErrInvalidToken
	}

	claims := domain.TokenClaims{
		JTI:     out.ID,
		Subject: out.Subject,
	}
	if out.IssuedAt != nil {
		claims.IssuedAt = out.IssuedAt.Time
	}
	if out.ExpiresAt != nil {
		claims.ExpiresAt = out.ExpiresAt.Time
	}
	return claims, nil
}
