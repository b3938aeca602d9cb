// @title           HCM Sandbox API
// @version         1.0
// @description     Emulated HCM vendor API with per-tenant mock data.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token from v1 login or the v2 token grant.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hcmnotify/sandbox/internal/api"
	"github.com/hcmnotify/sandbox/internal/core/ports"
	"github.com/hcmnotify/sandbox/internal/infrastructure/db/redis"
	"github.com/hcmnotify/sandbox/internal/infrastructure/db/sqlite"
	"github.com/hcmnotify/sandbox/internal/infrastructure/queue"
	"github.com/hcmnotify/sandbox/internal/infrastructure/ratelimit"
	"github.com/hcmnotify/sandbox/internal/pkg/config"
	"github.com/hcmnotify/sandbox/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "hcm-sandbox",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting sandbox")

	db, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("open database")
	}
	defer func() {
		if err := sqlite.Close(db); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	var (
		rdb    *goredis.Client
		stores = ratelimit.MemoryStores()
	)
	if cfg.RateLimit.Storage == config.StorageRedis {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("connect redis")
		}
		defer rdb.Close()
		stores = ratelimit.RedisStores(rdb)
	}
	log.Info().Str("storage", cfg.RateLimit.Storage).Msg("rate limiter ready")

	dispatcher := queue.NewDispatcher(
		cfg.Webhook.Workers,
		cfg.Webhook.TestDelay,
		queue.NewHTTPSender(cfg.Webhook.Timeout),
		log.With().Str("component", "webhooks").Logger(),
	)
	dispatcher.Start(ctx)

	var limiter ports.RateLimiter = ratelimit.New(stores)
	e, err := api.NewRouter(api.Options{
		DB:         db,
		Redis:      rdb,
		Limiter:    limiter,
		Dispatcher: dispatcher,
		Config:     cfg,
		Logger:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Str("base_url", cfg.BaseURL).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
