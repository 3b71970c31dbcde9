// Command seeder creates the demo tenant: an owner account, the "Downtown
// Grocery" store, two aisle cameras and five alerts across all statuses.
// Re-running it is safe; existing rows are matched and skipped.
//
// Flags:
//
//	--dry-run        report what would be created without touching the DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/alert"
	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/camera"
	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/store"
	"github.com/heartmarshall/shelfwatch-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/shelfwatch-backend/internal/app"
	"github.com/heartmarshall/shelfwatch-backend/internal/app/seeder"
	"github.com/heartmarshall/shelfwatch-backend/internal/config"
)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "report without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, seeder.Repos{
		Users:   user.New(pool),
		Stores:  store.New(pool),
		Cameras: camera.New(pool),
		Alerts:  alert.New(pool),
		Tx:      postgres.NewTxManager(pool),
	}, *seederCfg)

	if err := pipeline.Run(ctx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("demo data ready",
		slog.String("owner_email", seederCfg.OwnerEmail),
		slog.String("store", seederCfg.StoreName),
	)
}
