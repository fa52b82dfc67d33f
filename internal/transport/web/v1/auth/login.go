package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/EgorLis/micro-posts/internal/domain"
	"github.com/EgorLis/micro-posts/internal/transport/web/logx"
	"github.com/EgorLis/micro-posts/internal/transport/web/mw"
	v1 "github.com/EgorLis/micro-posts/internal/transport/web/v1"
)

// HandlerLogin обрабатывает POST /api/login
type HandlerLogin struct {
	Log  *log.Logger
	Auth AuthService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary     Authenticate user
// @Description Возвращает bearer-токен при валидных email и пароле.
// @Description Принимает JSON либо OAuth2-форму (username/password).
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body loginRequest true "email, password"
// @Success     200 {object} domain.APIEnvelope{response=domain.TokenPair}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/login [post]
func (h *HandlerLogin) Login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req loginRequest
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logx.Error(h.Log, reqID, op, "bad json", err)
			v1.WriteDomainError(w, r, domain.ErrBadParams)
			return
		}
	} else {
		// OAuth2-форма шлёт email в поле username
		_ = r.ParseForm()
		req.Email = r.FormValue("username")
		if req.Email == "" {
			req.Email = r.FormValue("email")
		}
		req.Password = r.FormValue("password")
	}

	// простая проверка наличия полей (строгая валидация была на регистрации)
	if req.Email == "" || req.Password == "" {
		logx.Error(h.Log, reqID, op, "empty email or password", domain.ErrBadParams)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	pair, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "login failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "email", req.Email)
	v1.WriteOKResponse(w, r, pair)
}
