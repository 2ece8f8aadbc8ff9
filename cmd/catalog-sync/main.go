// Command catalog-sync upserts the gift catalog from a YAML asset file.
// Gifts are matched by code; existing ids are preserved.
//
// Flags:
//
//	--file     path to the catalog YAML file (default: assets/gifts.yaml)
//	--dry-run  validate and log the catalog without writing to DB
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

	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres"
	"github.com/heartmarshall/petmemorial-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/petmemorial-backend/internal/app"
	"github.com/heartmarshall/petmemorial-backend/internal/app/catalogsync"
	"github.com/heartmarshall/petmemorial-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "assets/gifts.yaml", "path to the catalog YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "validate the catalog without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	file, err := catalogsync.LoadFile(*fileFlag)
	if err != nil {
		logger.Error("load catalog", slog.String("file", *fileFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if cfg.Database.AutoMigrate && !*dryRunFlag {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	res, err := catalogsync.NewSyncer(logger, catalog.New(pool)).Run(ctx, file, *dryRunFlag)
	if err != nil {
		logger.Error("catalog sync failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("catalog sync completed",
		slog.String("file", *fileFlag),
		slog.Bool("dry_run", *dryRunFlag),
		slog.Int("inserted", res.Inserted),
		slog.Int("updated", res.Updated),
		slog.Duration("duration", res.Duration),
	)
}
