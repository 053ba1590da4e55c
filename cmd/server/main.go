package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/skillsaathi/skill-swap/internal/api"
	"github.com/skillsaathi/skill-swap/internal/core/ports"
	"github.com/skillsaathi/skill-swap/internal/core/service"
	"github.com/skillsaathi/skill-swap/internal/infrastructure/config"
	"github.com/skillsaathi/skill-swap/internal/infrastructure/db/redis"
	"github.com/skillsaathi/skill-swap/internal/infrastructure/memory"
	"github.com/skillsaathi/skill-swap/internal/infrastructure/queue"
	"github.com/skillsaathi/skill-swap/internal/infrastructure/ws"
	"github.com/skillsaathi/skill-swap/pkg/logger"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "skill-swap",
	})
	log := component("server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := memory.NewStore(memory.WithSeed(memory.SeedUsers(), memory.SeedSwapRequests()))

	var (
		rdb  *goredis.Client
		idem ports.IdempotencyStore
	)
	redisCfg := redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	if redisCfg.Enabled() {
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()
		rdb = client
		idem = redis.NewIdempotencyStore(client, cfg.Redis.IdempotencyTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotency keys enabled")
	}

	hub := ws.NewHub(component("ws"))
	go hub.Run()
	defer hub.Stop()

	swaps := service.NewSwapService(store, idem, component("swaps"))
	directory := service.NewDirectoryService(store, component("directory"))
	admin := service.NewAdminService(store, memory.SeedFlaggedContent(), hub, component("admin"))
	auth, err := service.NewAuthService(store, service.Credentials{
		Email:    cfg.Session.Email,
		Password: cfg.Session.Password,
		UserID:   cfg.Session.UserID,
	}, cfg.JWTSecret, cfg.Session.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build auth service")
	}

	if cfg.Events.RatingAggregation {
		ratings := component("ratings")
		dispatcher := queue.NewDispatcher(cfg.Events.Workers, service.NewRatingAggregator(store, ratings), ratings)
		dispatcher.Start(ctx)
		swaps.OnSwapCompleted(dispatcher.Handler())
		log.Info().Int("workers", cfg.Events.Workers).Msg("rating aggregation enabled")
	}

	e := api.NewRouter(api.Dependencies{
		Auth:      auth,
		Directory: directory,
		Swaps:     swaps,
		Admin:     admin,
		Feed:      hub,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Log:       component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown error")
		}
		log.Info().Msg("server stopped")
	}
}

// component returns the process logger tagged with the subsystem name.
func component(name string) zerolog.Logger {
	return logger.Get().With().Str("component", name).Logger()
}
