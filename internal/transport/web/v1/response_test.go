package v1

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/EgorLis/micro-posts/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantCode   int
	}{
		{domain.ErrBadParams, http.StatusBadRequest, domain.ErrCodeBadParams},
		{domain.ErrValidation, http.StatusUnprocessableEntity, domain.ErrCodeValidation},
		{domain.ErrEmailTaken, http.StatusConflict, domain.ErrCodeEmailTaken},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, domain.ErrCodeUnauth},
		{domain.ErrUnauth, http.StatusUnauthorized, domain.ErrCodeUnauth},
		{domain.ErrInvalidToken, http.StatusUnauthorized, domain.ErrCodeUnauth},
		{domain.ErrExpiredToken, http.StatusUnauthorized, domain.ErrCodeUnauth},
		{domain.ErrNotFoundOrForbidden, http.StatusNotFound, domain.ErrCodeNotFound},
		{domain.ErrMethodNotAllowed, http.StatusMethodNotAllowed, domain.ErrCodeMethodNotAllowed},
		{errors.New("db exploded"), http.StatusInternalServerError, domain.ErrCodeUnexpected},
	}
	for _, c := range cases {
		t.Run(c.err.Error(), func(t *testing.T) {
			status, env := MapDomainError(c.err)
			if status != c.wantStatus {
				t.Errorf("status = %d, want %d", status, c.wantStatus)
			}
			if env.Error == nil || env.Error.Code != c.wantCode {
				t.Errorf("env = %+v, want code %d", env, c.wantCode)
			}
		})
	}
}

// Обёрнутые ошибки маппятся так же, как голые
func TestMapWrappedError(t *testing.T) {
	status, _ := MapDomainError(fmt.Errorf("lookup user: %w", domain.ErrInvalidCredentials))
	if status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
}

// Внутренности ошибок не утекают в текст ответа
func TestNoInternalLeak(t *testing.T) {
	_, env := MapDomainError(errors.New("pq: connection refused host=10.0.0.5"))
	if env.Error.Text != "unexpected" {
		t.Errorf("leaked internals: %q", env.Error.Text)
	}
}
