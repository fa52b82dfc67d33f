package post

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/EgorLis/micro-posts/internal/domain"
	"github.com/EgorLis/micro-posts/internal/transport/web/logx"
	"github.com/EgorLis/micro-posts/internal/transport/web/mw"
	v1 "github.com/EgorLis/micro-posts/internal/transport/web/v1"
)

type deleteRequest struct {
	PostID domain.PostID `json:"post_id"`
}

// Delete godoc
// @Summary     Delete own post
// @Description Удаляет пост текущего пользователя. "Нет такого поста" и
// @Description "пост чужой" дают одинаковый 404 — существование чужих
// @Description постов не раскрываем.
// @Tags        posts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body deleteRequest true "post_id"
// @Success     200 {object} domain.APIEnvelope{response=object}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/posts [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "post.delete"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	me, ok := domain.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// поддержим и ?post_id= для ручного теста
		if s := r.URL.Query().Get("post_id"); s != "" {
			n, perr := strconv.ParseInt(s, 10, 64)
			if perr != nil {
				v1.WriteDomainError(w, r, domain.ErrBadParams)
				return
			}
			req.PostID = n
		} else {
			logx.Error(h.Log, reqID, op, "bad json", err)
			v1.WriteDomainError(w, r, domain.ErrBadParams)
			return
		}
	}
	if req.PostID <= 0 {
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	if err := h.Posts.DeletePost(r.Context(), me.ID, req.PostID); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "post_id", req.PostID, "user_id", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "post_id", req.PostID, "user_id", me.ID)
	v1.WriteOKResponse(w, r, map[string]bool{"success": true})
}
