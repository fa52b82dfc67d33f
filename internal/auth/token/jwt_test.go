package token

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/EgorLis/micro-posts/internal/domain"
)

func newTestManager() *Manager {
	return New("test-secret", "micro-posts-test", 30*time.Minute)
}

func TestIssueAndParse(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	raw, claims, err := m.Issue(ctx, "user@example.com", 0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if claims.Subject != "user@example.com" {
		t.Errorf("issued subject = %q", claims.Subject)
	}
	// TTL по умолчанию — 30 минут
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != 30*time.Minute {
		t.Errorf("default ttl = %s, want 30m", got)
	}

	parsed, err := m.Parse(ctx, raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Subject != "user@example.com" {
		t.Errorf("parsed subject = %q", parsed.Subject)
	}
	if !parsed.ExpiresAt.Equal(claims.ExpiresAt.Truncate(time.Second)) {
		t.Errorf("parsed exp = %s, issued exp = %s", parsed.ExpiresAt, claims.ExpiresAt)
	}
}

func TestIssueCustomTTL(t *testing.T) {
	m := newTestManager()

	_, claims, err := m.Issue(context.Background(), "user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != time.Hour {
		t.Errorf("ttl = %s, want 1h", got)
	}
}

// Уже просроченный токен (ttl = -1s) отличим от битого
func TestParseExpired(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	raw, _, err := m.Issue(ctx, "user@example.com", -time.Second)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = m.Parse(ctx, raw)
	if !errors.Is(err, domain.ErrExpiredToken) {
		t.Errorf("Parse expired = %v, want ErrExpiredToken", err)
	}
}

func TestParseInvalid(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	raw, _, err := m.Issue(ctx, "user@example.com", 0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cases := []struct {
		name string
		raw  string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"tampered payload", tamper(raw)},
		{"wrong secret", signedWithOtherSecret(t)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := m.Parse(ctx, c.raw); !errors.Is(err, domain.ErrInvalidToken) {
				t.Errorf("Parse = %v, want ErrInvalidToken", err)
			}
		})
	}
}

// Токен без subject невалиден, даже если подпись сошлась
func TestParseMissingSubject(t *testing.T) {
	m := newTestManager()
	ctx := context.Background()

	raw, _, err := m.Issue(ctx, "", 0)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.Parse(ctx, raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Parse = %v, want ErrInvalidToken", err)
	}
}

// портим середину payload, сохраняя структуру header.payload.signature
func tamper(raw string) string {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return raw + "x"
	}
	p := []byte(parts[1])
	p[len(p)/2] ^= 1
	if p[len(p)/2] == '.' { // не ломаем структуру
		p[len(p)/2] = 'A'
	}
	parts[1] = string(p)
	return strings.Join(parts, ".")
}

func signedWithOtherSecret(t *testing.T) string {
	t.Helper()
	other := New("another-secret", "micro-posts-test", 30*time.Minute)
	raw, _, err := other.Issue(context.Background(), "user@example.com", 0)
	if err != nil {
		t.Fatalf("Issue with other secret: %v", err)
	}
	return raw
}
