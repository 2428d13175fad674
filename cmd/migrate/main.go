package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"trainer-booking/internal/handler/middleware"
	"trainer-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// migrate applies migrations/ with the atlas CLI.
//
//	go run ./cmd/migrate            apply pending migrations
//	go run ./cmd/migrate -status    show the current revision only
func main() {
	var (
		dir    = flag.String("dir", "file://migrations", "migration directory URL")
		bin    = flag.String("atlas", "atlas", "path to the atlas binary")
		status = flag.Bool("status", false, "print migration status and exit")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	client, err := atlasexec.NewClient(".", *bin)
	if err != nil {
		logger.Error("failed to init atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *status {
		st, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    cfg.DB.BuildDSN(),
			DirURL: *dir,
		})
		if err != nil {
			logger.Error("failed to read migration status", "error", err)
			os.Exit(1)
		}
		logger.Info("migration status", "status", st.Status, "current", st.Current, "next", st.Next, "pending", len(st.Pending))
		return
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: *dir,
	})
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
}
