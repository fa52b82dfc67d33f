package post

import (
	"encoding/json"
	"net/http"

	"github.com/EgorLis/micro-posts/internal/domain"
	"github.com/EgorLis/micro-posts/internal/transport/web/logx"
	"github.com/EgorLis/micro-posts/internal/transport/web/mw"
	v1 "github.com/EgorLis/micro-posts/internal/transport/web/v1"
)

type createRequest struct {
	Text string `json:"text"`
}

type createResponse struct {
	PostID domain.PostID `json:"post_id"`
}

// Create godoc
// @Summary     Create post
// @Description Создаёт пост текущего пользователя; текст до 1 МБ UTF-8.
// @Tags        posts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body createRequest true "text"
// @Success     200 {object} domain.APIEnvelope{response=createResponse}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     422 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/posts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "post.create"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	me, ok := domain.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	if !domain.ValidPostText(req.Text) {
		logx.Error(h.Log, reqID, op, "text validation failed", domain.ErrValidation, "bytes", len(req.Text))
		v1.WriteDomainError(w, r, domain.ErrValidation)
		return
	}

	id, err := h.Posts.CreatePost(r.Context(), me.ID, req.Text)
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err, "user_id", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "post_id", id, "user_id", me.ID)
	v1.WriteOKResponse(w, r, createResponse{PostID: id})
}
