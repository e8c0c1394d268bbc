package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shopcore/ecommerce-api/internal/api"
	"github.com/shopcore/ecommerce-api/internal/infrastructure/db/mongo"
	"github.com/shopcore/ecommerce-api/internal/pkg/config"
	"github.com/shopcore/ecommerce-api/pkg/logger"
)

// @title        E-commerce Backend API
// @version      1.0
// @description  CRUD API for products and users backed by MongoDB.
// @BasePath     /
func main() {
	// A missing .env is fine; the environment still wins.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Str("uri", cfg.Mongo.URI).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("failed to ensure indexes")
	}

	e := api.NewRouter(db, cfg.CORSOrigin, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Str("mongo_db", cfg.Mongo.Database).
		Str("cors_origin", cfg.CORSOrigin).
		Msg("e-commerce backend started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
