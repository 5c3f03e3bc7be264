// Command migrate applies the SQL files under migrations/ with the atlas CLI.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"halisaha-api/internal/handler/middleware"
	"halisaha-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	statusOnly := flag.Bool("status", false, "print migration status and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, logger, cfg.DB.BuildDSN(), *dir, *statusOnly); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dsn, dir string, statusOnly bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	bin := os.Getenv("ATLAS_BIN")
	if bin == "" {
		bin = "atlas"
	}
	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	if statusOnly {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: dsn})
		if err != nil {
			return err
		}
		logger.Info("migration status",
			"current", st.Current,
			"next", st.Next,
			"pending", len(st.Pending))
		return nil
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: dsn})
	if err != nil {
		return err
	}
	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
