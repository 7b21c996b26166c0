// ABOUTME: Main entry point for the ReadStash API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"readstash-api/api"
	"readstash-api/api/handlers"
	"readstash-api/core/extract"
	"readstash-api/core/feedimport"
	"readstash-api/core/interfaces"
	"readstash-api/core/store"
	memoryblob "readstash-api/infrastructure/blob/memory"
	redisblob "readstash-api/infrastructure/blob/redis"
	sqliteblob "readstash-api/infrastructure/blob/sqlite"
	memorycache "readstash-api/infrastructure/cache/memory"
	rediscache "readstash-api/infrastructure/cache/redis"
	stdhttp "readstash-api/infrastructure/http/standard"
	logruslogger "readstash-api/infrastructure/logger/logrus"
	"readstash-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logruslogger.NewLogrusLogger(cfg.LogLevel)
	logger.Info("Starting ReadStash API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"blob_backend": cfg.Storage.Backend,
		"chunk_size":   cfg.Content.ChunkSize,
	})

	// Create blob store
	var blob interfaces.BlobStore
	switch cfg.Storage.Backend {
	case "redis":
		redisStore, err := redisblob.NewRedisBlobStore(cfg.Storage.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis blob store: %v", err)
		}
		defer redisStore.Close()
		blob = redisStore
		logger.Info("Using Redis blob store", map[string]interface{}{
			"address": cfg.Storage.Redis.Address,
		})
	case "memory":
		blob = memoryblob.NewMemoryBlobStore()
		logger.Info("Using in-memory blob store", nil)
	default:
		sqliteStore, err := sqliteblob.NewSQLiteBlobStore(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open SQLite blob store: %v", err)
		}
		defer sqliteStore.Close()
		blob = sqliteStore
		logger.Info("Using SQLite blob store", map[string]interface{}{
			"path": cfg.Storage.SQLitePath,
		})
	}

	// Create extraction cache
	var cache interfaces.Cache
	if cfg.Cache.Backend == "redis" {
		redisCache, err := rediscache.NewRedisCache(cfg.Storage.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redisCache.Close()
			cache = redisCache
		}
	}
	if cache == nil {
		cache = memorycache.NewMemoryCache(
			time.Duration(cfg.Cache.DefaultExpiration)*time.Second,
			10*time.Minute,
		)
	}
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Blob:       blob,
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create services
	articleStore := store.NewArticleStore(deps, store.Config{
		ChunkSize:     cfg.Content.ChunkSize,
		PreviewLength: cfg.Content.PreviewLength,
	})
	extractService := extract.NewService(deps)
	importService := feedimport.NewService(articleStore, deps)

	// Create router and register handlers
	router := api.NewRouter(api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
	})
	api.Register(router,
		handlers.NewArticleHandler(articleStore, extractService, logger),
		handlers.NewFeedHandler(importService, logger),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
