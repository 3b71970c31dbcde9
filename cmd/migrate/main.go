// Command migrate applies pending database migrations and exits.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shelfwatch-backend/internal/app"
	"github.com/heartmarshall/shelfwatch-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, m := range applied {
		logger.Info("migration applied",
			slog.Int64("version", m.Version),
			slog.String("source", m.Source),
		)
	}
	logger.Info("migrations up to date", slog.Int("applied", len(applied)))
}
