package post

import (
	"net/http"

	"github.com/EgorLis/micro-posts/internal/domain"
	"github.com/EgorLis/micro-posts/internal/transport/web/logx"
	"github.com/EgorLis/micro-posts/internal/transport/web/mw"
	v1 "github.com/EgorLis/micro-posts/internal/transport/web/v1"
)

// List godoc
// @Summary     List own posts
// @Description Посты текущего пользователя; листинг кешируется на 5 минут.
// @Tags        posts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} domain.APIEnvelope{data=[]domain.PostSummary}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/posts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "post.list"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	me, ok := domain.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	posts, err := h.Posts.GetPosts(r.Context(), me.ID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err, "user_id", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", me.ID, "count", len(posts))
	v1.WriteOKData(w, r, posts)
}
