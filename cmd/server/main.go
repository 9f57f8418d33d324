package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/forfeolab/forfeo-be/internal/assistant"
	"github.com/forfeolab/forfeo-be/internal/auth"
	"github.com/forfeolab/forfeo-be/internal/config"
	"github.com/forfeolab/forfeo-be/internal/server"
	"github.com/forfeolab/forfeo-be/internal/storage"
	"github.com/forfeolab/forfeo-be/internal/storage/memory"
	"github.com/forfeolab/forfeo-be/internal/storage/postgres"
)

// seedCredential is the demo account's credential; only its bcrypt hash is
// ever persisted.
const seedCredential = "1234"

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	seedHash, err := auth.HashCredential(seedCredential)
	if err != nil {
		logger.Fatal("hash seed credential", zap.Error(err))
	}

	var store storage.AccountStore
	var closeStore func()
	if cfg.DemoMode() {
		logger.Warn("DATABASE_URL not set; running in demo mode without persistence")
		mem := memory.NewAccountStore()
		if err := mem.SeedDemo(ctx, seedHash); err != nil {
			logger.Fatal("seed demo store", zap.Error(err))
		}
		store = mem
		closeStore = func() {}
	} else {
		pg, err := postgres.NewAccountStore(ctx, cfg.DatabaseURL, seedHash)
		if err != nil {
			logger.Fatal("init database", zap.Error(err))
		}
		store = pg
		closeStore = pg.Close
	}
	defer closeStore()

	var generator assistant.Generator
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; assistant replies will fall back")
		generator = assistant.Unavailable{}
	} else {
		generator, err = assistant.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Fatal("init generator", zap.Error(err))
		}
	}

	srv := server.New(cfg, store, generator, logger)

	go func() {
		logger.Info("Forfeo Lab backend listening", zap.String("addr", cfg.HTTPAddress()))
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown error", zap.Error(err))
	}
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
