package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beneficios/portal-api/internal/api"
	"github.com/beneficios/portal-api/internal/core/service"
	mongodb "github.com/beneficios/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/beneficios/portal-api/internal/infrastructure/db/redis"
	"github.com/beneficios/portal-api/internal/infrastructure/memory"
	"github.com/beneficios/portal-api/internal/infrastructure/queue"
	"github.com/beneficios/portal-api/internal/pkg/config"
	"github.com/beneficios/portal-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	directory := memory.NewDirectory(memory.SeedUsers())
	fixtures := memory.NewFixtureStore()
	activityRepo := mongodb.NewActivityRepository(db)

	dispatcher := queue.NewDispatcher(0, activityRepo, log)
	dispatcher.Start(ctx)

	sessions := service.NewSessionService(directory, redisdb.NewPointerStore(rdb), dispatcher, log)
	sessions.Restore(ctx)

	e := api.NewRouter(api.Deps{
		Sessions:  sessions,
		Directory: directory,
		Activity:  activityRepo,
		Fixtures:  fixtures,
		Mongo:     db,
		Redis:     rdb,
		Log:       log,
		DemoLogin: cfg.DemoLogin,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("port", cfg.Port).Bool("demo_login", cfg.DemoLogin).Msg("benefits portal started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
