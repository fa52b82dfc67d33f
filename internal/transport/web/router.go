package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/EgorLis/micro-posts/internal/docs"
	"github.com/EgorLis/micro-posts/internal/domain"
	"github.com/EgorLis/micro-posts/internal/transport/web/mw"
	authv1 "github.com/EgorLis/micro-posts/internal/transport/web/v1/auth"
	"github.com/EgorLis/micro-posts/internal/transport/web/v1/health"
	postv1 "github.com/EgorLis/micro-posts/internal/transport/web/v1/post"
)

func newRouter(svc Services, deps Deps, logger *log.Logger) http.Handler {
	authLog := log.New(logger.Writer(), logger.Prefix()+"[auth] ", logger.Flags())
	postLog := log.New(logger.Writer(), logger.Prefix()+"[post] ", logger.Flags())
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())

	signupHandler := &authv1.HandlerSignup{Log: authLog, Auth: svc.Auth}
	loginHandler := &authv1.HandlerLogin{Log: authLog, Auth: svc.Auth}
	postHandler := &postv1.Handler{Log: postLog, Posts: svc.Posts}
	healthHandler := &health.Handler{Log: healthLog, DB: deps.DB, Cache: deps.Cache}

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /api/healthz", healthHandler.Liveness)
	mux.HandleFunc("GET /api/readyz", healthHandler.Readiness)

	// auth
	mux.HandleFunc("POST /api/signup", signupHandler.Signup)
	mux.HandleFunc("POST /api/login", loginHandler.Login)

	// posts (под RequireAuth; лимит тела чуть выше лимита текста)
	requireAuth := func(h http.HandlerFunc) http.Handler {
		return mw.RequireAuth(deps.Resolver, h)
	}
	mux.Handle("POST /api/posts", limitBody(int64(domain.MaxPostBytes)+4096, requireAuth(postHandler.Create)))
	mux.Handle("GET /api/posts", requireAuth(postHandler.List))
	mux.Handle("DELETE /api/posts", requireAuth(postHandler.Delete))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// приветствие на корне
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Welcome to micro-posts"}`))
	})

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mw.CORS(mux)))
}

func limitBody(n int64, h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h.ServeHTTP(w, r)
	})
}
