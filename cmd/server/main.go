// cmd/server/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/domain/i18n"
	"github.com/your-org/storefront-engine/internal/infrastructure/storage"
	"github.com/your-org/storefront-engine/internal/infrastructure/storage/memory"
	redisinfra "github.com/your-org/storefront-engine/internal/infrastructure/storage/redis"
	"github.com/your-org/storefront-engine/internal/interfaces/http"
	"github.com/your-org/storefront-engine/internal/storefront"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	logger := newLogger(cfg)

	// Connect to Redis for session persistence; fall back to the
	// in-memory store when Redis is unavailable in development.
	var kv storage.Store
	var redisClient *redisinfra.Client

	redisClient, err = redisinfra.NewConnection(cfg)
	if err != nil {
		if cfg.IsProduction() {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Printf("Warning: Redis unavailable, using in-memory session store: %v", err)
		redisClient = nil
		kv = memory.NewStore()
	} else {
		defer redisClient.Close()
		kv = redisinfra.NewStore(redisClient.GetClient())
	}

	// Load catalog and translation dictionaries before serving. The default
	// sources are the data files shipped alongside the binary; remote URLs
	// are only used when configured explicitly.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Catalog.FetchTimeout)
	defer cancelLoad()

	catalogService := catalog.NewService(cfg, logger)
	if err := catalogService.Load(loadCtx); err != nil {
		log.Fatalf("Catalog load failed: %v", err)
	}

	dictionaries := i18n.NewDictionaries(cfg, logger)
	if err := dictionaries.Load(loadCtx); err != nil {
		log.Fatalf("Dictionary load failed: %v", err)
	}

	log.Println("✅ All systems operational!")

	// Session registry - one storefront per visitor session
	registry := storefront.NewRegistry(kv, catalogService, dictionaries, cfg, logger)

	// Create and start HTTP server
	server := http.NewServer(cfg, registry, redisClient)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
