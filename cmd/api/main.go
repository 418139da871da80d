package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glossario/glossary-api/internal/api"
	"github.com/glossario/glossary-api/internal/api/metrics"
	"github.com/glossario/glossary-api/internal/core/domain"
	"github.com/glossario/glossary-api/internal/core/ports"
	"github.com/glossario/glossary-api/internal/infrastructure/config"
	mongodb "github.com/glossario/glossary-api/internal/infrastructure/db/mongo"
	"github.com/glossario/glossary-api/internal/infrastructure/memory"
	"github.com/glossario/glossary-api/pkg/logger"

	driver "go.mongodb.org/mongo-driver/mongo"
)

// @title        Glossary Admin API
// @version      1.0
// @description  Session-based authentication, role-based authorization and the admin-gated item collection.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.Env == "development")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		users ports.UserRepository
		db    *driver.Database
	)
	switch cfg.UserStore {
	case config.StoreMongo:
		client, database, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		users = mongodb.NewUserRepository(database)
		db = database
	default:
		users = memory.NewUserRepository()
	}

	if err := users.Seed(ctx, domain.SeedUsers()); err != nil {
		log.Fatal().Err(err).Msg("user seed failed")
	}

	sessions := memory.NewSessionStore(cfg.SessionTTL)
	metrics.RegisterSessionsActive(func() float64 {
		return float64(sessions.Len())
	})

	e := api.NewRouter(api.Dependencies{
		Users:    users,
		Sessions: sessions,
		Items:    memory.NewItemRepository(),
		Mongo:    db,
		Cookie:   cfg.SessionCookie,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("user_store", cfg.UserStore).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
