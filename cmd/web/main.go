package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/castororo/Rajabakkiam-traders/internal/config"
	apphttp "github.com/castororo/Rajabakkiam-traders/internal/http"
	"github.com/castororo/Rajabakkiam-traders/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	assets, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to init asset storage: %v", err)
	}
	logger.Info("asset storage ready", "driver", assets.Driver)

	r := apphttp.NewRouter(logger, cfg, assets)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
