// ABOUTME: Main entry point for the news hub API server
// ABOUTME: Wires configuration, logging, storage, data sources, and HTTP serving

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newshub-api/api"
	"newshub-api/core/articles"
	"newshub-api/core/favorites"
	"newshub-api/core/interfaces"
	"newshub-api/infrastructure/datasource/preview"
	"newshub-api/infrastructure/datasource/rss"
	logruslogger "newshub-api/infrastructure/logger/logrus"
	memorystorage "newshub-api/infrastructure/storage/memory"
	redisstorage "newshub-api/infrastructure/storage/redis"
	sqlitestorage "newshub-api/infrastructure/storage/sqlite"
	"newshub-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logruslogger.NewLogger(os.Stdout, cfg.LogLevel)

	storage, closeStorage, err := buildStorage(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	defer closeStorage()

	dataSource := buildDataSource(cfg, logger)

	articleService := articles.NewArticleService(interfaces.Dependencies{
		DataSource: dataSource,
		Logger:     logger,
	})
	favoriteService := favorites.NewFavoritesService(storage)

	server := api.NewServer(api.Config{
		Port:      cfg.Server.Port,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	}, api.Services{
		Articles:  articleService,
		Favorites: favoriteService,
		Logger:    logger,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server stopped unexpectedly", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("Received shutdown signal", map[string]interface{}{"signal": sig.String()})

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
			os.Exit(1)
		}
	}

	logger.Info("Server stopped", nil)
}

// buildStorage creates the configured favorite storage backend.
// Falls back to in-memory storage when an external backend is unreachable.
func buildStorage(cfg *config.Config, logger interfaces.Logger) (interfaces.FavoriteStorage, func(), error) {
	switch cfg.Storage.Kind {
	case "sqlite":
		store, err := sqlitestorage.NewFavoriteStorage(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite storage: %w", err)
		}
		logger.Info("Using SQLite favorite storage", map[string]interface{}{"path": cfg.Storage.SQLitePath})
		return store, func() { store.Close() }, nil

	case "redis":
		store, err := redisstorage.NewFavoriteStorage(
			cfg.Storage.Redis.Address,
			cfg.Storage.Redis.Password,
			cfg.Storage.Redis.DB,
		)
		if err != nil {
			logger.Warn("Redis unreachable, falling back to in-memory favorite storage", map[string]interface{}{
				"address": cfg.Storage.Redis.Address,
				"error":   err.Error(),
			})
			return memorystorage.NewFavoriteStorage(), func() {}, nil
		}
		logger.Info("Using Redis favorite storage", map[string]interface{}{"address": cfg.Storage.Redis.Address})
		return store, func() { store.Close() }, nil

	default:
		logger.Info("Using in-memory favorite storage", nil)
		return memorystorage.NewFavoriteStorage(), func() {}, nil
	}
}

// buildDataSource creates the configured article data source
func buildDataSource(cfg *config.Config, logger interfaces.Logger) interfaces.ArticleDataSource {
	if cfg.DataSource.Kind == "rss" {
		logger.Info("Using RSS data source", map[string]interface{}{"feeds": len(cfg.DataSource.Feeds)})
		return rss.NewSource(rss.Config{
			Feeds:    cfg.DataSource.Feeds,
			Timeout:  time.Duration(cfg.DataSource.TimeoutSeconds) * time.Second,
			RetryMax: cfg.DataSource.RetryMax,
		}, logger)
	}

	logger.Info("Using preview data source", nil)
	return preview.NewSource()
}
