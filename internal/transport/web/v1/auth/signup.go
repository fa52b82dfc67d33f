package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/EgorLis/micro-posts/internal/domain"
	"github.com/EgorLis/micro-posts/internal/transport/web/logx"
	"github.com/EgorLis/micro-posts/internal/transport/web/mw"
	v1 "github.com/EgorLis/micro-posts/internal/transport/web/v1"
)

// AuthService — то, что нужно обработчикам от сервиса аутентификации
type AuthService interface {
	Signup(ctx context.Context, email, password string) (domain.TokenPair, error)
	Login(ctx context.Context, email, password string) (domain.TokenPair, error)
}

// HandlerSignup обрабатывает POST /api/signup
type HandlerSignup struct {
	Log  *log.Logger
	Auth AuthService
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup godoc
// @Summary     Register new user
// @Description Регистрация по email+паролю; сразу возвращает bearer-токен.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body signupRequest true "email, password"
// @Success     200 {object} domain.APIEnvelope{response=domain.TokenPair}
// @Failure     409 {object} domain.APIEnvelope
// @Failure     422 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/signup [post]
func (h *HandlerSignup) Signup(w http.ResponseWriter, r *http.Request) {
	const op = "auth.signup"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req signupRequest
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logx.Error(h.Log, reqID, op, "bad json", err)
			v1.WriteDomainError(w, r, domain.ErrBadParams)
			return
		}
	} else {
		// form / query (для ручного теста)
		_ = r.ParseForm()
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")
	}

	// Валидация на границе: дальше сервис полям доверяет
	if !domain.ValidEmail(req.Email) || !domain.ValidPassword(req.Password) {
		logx.Error(h.Log, reqID, op, "validation failed", domain.ErrValidation, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrValidation)
		return
	}

	pair, err := h.Auth.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "signup failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "email", req.Email)
	v1.WriteOKResponse(w, r, pair)
}
