package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/quillboard/quillboard-web/internal/core/ports"
	"github.com/quillboard/quillboard-web/internal/core/service"
	"github.com/quillboard/quillboard-web/internal/infrastructure/config"
	"github.com/quillboard/quillboard-web/internal/infrastructure/db/memory"
	"github.com/quillboard/quillboard-web/internal/infrastructure/db/redis"
	"github.com/quillboard/quillboard-web/internal/infrastructure/upstream"
	"github.com/quillboard/quillboard-web/internal/web"
	"github.com/quillboard/quillboard-web/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	log := logger.Init(logger.Options{Level: os.Getenv("LOG_LEVEL"), Pretty: os.Getenv("ENV") != "production"})

	cfg := config.Load(log)
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("api_base_url", cfg.APIBaseURL).
		Str("session_storage", cfg.SessionStorage).
		Msg("starting quillboard-web")

	// --- Session storage ---
	var storage ports.SessionStorage
	var rdb *goredis.Client
	switch cfg.SessionStorage {
	case "memory":
		storage = memory.NewSessionStorage(cfg.SessionTTL)
	default:
		var err error
		rdb, err = redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		storage = redis.NewSessionStorage(rdb, cfg.SessionTTL)
	}
	sessions := service.NewSessionService(storage, log)

	// --- Remote API client ---
	client := upstream.New(cfg.APIBaseURL, cfg.APITimeout, log)

	e, err := web.NewRouter(cfg, web.Deps{
		Accounts: client,
		Articles: client,
		Admin:    upstream.NewAdmin(client),
		Sessions: sessions,
		Redis:    rdb,
		Log:      log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
