package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/EgorLis/micro-posts/internal/auth/authn"
	"github.com/EgorLis/micro-posts/internal/auth/password"
	"github.com/EgorLis/micro-posts/internal/auth/token"
	"github.com/EgorLis/micro-posts/internal/config"
	"github.com/EgorLis/micro-posts/internal/domain"
	"github.com/EgorLis/micro-posts/internal/infra/cache/memory"
	"github.com/EgorLis/micro-posts/internal/infra/cache/postcache"
	redisx "github.com/EgorLis/micro-posts/internal/infra/cache/redis"
	"github.com/EgorLis/micro-posts/internal/infra/database/postgres"
	"github.com/EgorLis/micro-posts/internal/service"
	"github.com/EgorLis/micro-posts/internal/transport/web"
)

type App struct {
	config *config.Config
	server *web.Server
	log    *log.Logger
	repo   *postgres.PGRepo
	cache  domain.Cache // nil без Redis
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	cacheLog := log.New(base.Writer(), base.Prefix()+"[cache] ", base.Flags())
	svcLog := log.New(base.Writer(), base.Prefix()+"[service] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	// Кеш списков: Redis, если задан адрес, иначе процессный in-memory.
	// Процессный вариант не делится между репликами — см. README.
	var (
		kv        domain.Cache
		listCache domain.PostListCache
	)
	if cfg.RedisAddr != "" {
		base.Println("init Redis")
		rc := redisx.New(redisx.Config{
			Addr:     cfg.RedisAddr,
			DB:       cfg.RedisDB,
			Password: cfg.RedisPassword,
		}, cacheLog)
		if err := rc.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed init redis: %w", err)
		}
		kv = rc
		listCache = postcache.New(rc, cfg.CacheListTTL, cacheLog)
		base.Println("Redis is initialized")
	} else {
		base.Println("REDIS_ADDR is empty, using in-process list cache")
		listCache = memory.New(time.Duration(cfg.CacheListTTL)*time.Second, cacheLog)
	}

	// Auth primitives
	hasher := password.NewDefault()
	tm := token.New(cfg.AuthJWTSecret, cfg.AuthIssuer, cfg.AuthTokenTTL)
	resolver := authn.New(tm, pgRepo)

	// Services
	authSvc := service.NewAuth(svcLog, pgRepo, hasher, tm)
	postSvc := service.NewPosts(svcLog, pgRepo, listCache)

	base.Println("init Server")
	svc := web.Services{Auth: authSvc, Posts: postSvc}
	deps := web.Deps{Resolver: resolver, DB: pgRepo}
	if kv != nil {
		deps.Cache = kv
	}
	server := web.New(serverLog, cfg, svc, deps)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config: cfg,
		server: server,
		log:    base,
		repo:   pgRepo,
		cache:  kv,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.repo.Close()
	if a.cache != nil {
		a.cache.Close()
	}

	return nil
}
