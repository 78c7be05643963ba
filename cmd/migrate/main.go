package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hseconsult/backend/internal/config"
	"github.com/hseconsult/backend/internal/logging"
	"github.com/hseconsult/backend/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  up (default)  apply all pending migrations
  down          roll back the most recent migration
  status        list migrations and whether they are applied`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log)

	if cfg.Store.DatabaseURL == "" {
		logging.Fatal("DATABASE_URL is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := repository.OpenMigrationDB(ctx, cfg.Store.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer db.Close()

	provider, err := repository.NewMigrator(db)
	if err != nil {
		logging.Fatal("init migrations failed", "error", err)
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			logging.Fatal("migration failed", "error", err)
		}
		for _, r := range results {
			slog.Info("migration completed", "version", r.Source.Version, "migration", r.Source.Path, "duration", r.Duration)
		}
		if len(results) == 0 {
			slog.Info("all migrations already applied")
		} else {
			slog.Info("migrations completed", "count", len(results))
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			logging.Fatal("rollback failed", "error", err)
		}
		slog.Info("migration rolled back", "version", r.Source.Version, "migration", r.Source.Path)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			logging.Fatal("status failed", "error", err)
		}
		for _, s := range statuses {
			slog.Info("migration", "version", s.Source.Version, "migration", s.Source.Path, "state", s.State, "applied_at", s.AppliedAt)
		}
	default:
		usage()
	}
}
