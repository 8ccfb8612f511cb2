package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/pillowcase/pillowcase/internal/adapter/handler"
	adapterstorage "github.com/pillowcase/pillowcase/internal/adapter/storage"
	"github.com/pillowcase/pillowcase/internal/infrastructure/cache"
	"github.com/pillowcase/pillowcase/internal/infrastructure/config"
	"github.com/pillowcase/pillowcase/internal/infrastructure/middleware"
	"github.com/pillowcase/pillowcase/internal/infrastructure/observability"
	"github.com/pillowcase/pillowcase/internal/infrastructure/server"
	"github.com/pillowcase/pillowcase/internal/infrastructure/storage"
	"github.com/pillowcase/pillowcase/internal/usecase/images"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logFormat := cfg.Log.Format
	if cfg.Server.DebugMode {
		logFormat = "console"
	}
	logger, err := observability.NewLogger(cfg.Log.Level, logFormat)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Storage
	diskStore, err := storage.NewDiskStore(cfg.Storage.ImageDirectory)
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}
	transformer := storage.NewTransformer(cfg.Upload.MaxImagePixels)

	var archive adapterstorage.ImageArchive
	if cfg.S3.ArchiveEnabled {
		s3Archive, err := storage.NewS3Archive(cfg.S3)
		if err != nil {
			logger.Fatal("failed to create s3 archive", zap.Error(err))
		}
		archive = s3Archive
	}

	// Use cases
	imageSvc := images.NewService(diskStore, transformer, archive, logger)

	// Handlers
	imageHandler := handler.NewImageHandler(imageSvc, cfg.Upload.MaxUploadSize)
	transformHandler := handler.NewTransformHandler(imageSvc, cfg.Upload.MaxUploadSize)

	// Rate limiting
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		ImageHandler:     imageHandler,
		TransformHandler: transformHandler,
		RateLimiter:      rateLimiter,
		AllowedOrigins:   cfg.Server.AllowedOrigins(),
		Logger:           logger,
		DebugMode:        cfg.Server.DebugMode,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Addr:         cfg.Server.Addr(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		Handler:      router.Engine(),
		Logger:       logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
