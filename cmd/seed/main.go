// Copyright (c) 2026 LearnHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed loads default master data from a YAML document into every
// reference table that is still empty.
//
// It reads DATABASE_URL and MIGRATION_PATH like the API server and applies
// pending migrations first, so it can run against a brand-new database.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/learnhub/internal/core/reference"
	"github.com/taibuivan/learnhub/internal/platform/constants"
	"github.com/taibuivan/learnhub/internal/platform/ctxutil"
	"github.com/taibuivan/learnhub/internal/platform/migration"
	pgstore "github.com/taibuivan/learnhub/internal/platform/postgres"
)

// seedConfig is the subset of the server configuration the seeder needs.
type seedConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
}

func main() {
	file := flag.String("file", "./data/seed/master_data.yaml", "seed document")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", "learnhub-seed"))

	var cfg seedConfig
	must(log, env.Parse(&cfg), "load configuration")

	document, err := os.Open(*file)
	must(log, err, "open seed file")
	defer document.Close()

	seed, err := reference.DecodeSeed(document)
	must(log, err, "decode seed file")

	ctx, cancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer cancel()
	ctx = ctxutil.WithLogger(ctx, log)

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	service := reference.NewService(reference.NewPostgresRepository(pool), 0)
	report, err := service.ApplySeed(ctx, seed)
	must(log, err, "apply seed")

	log.Info("seed_complete",
		slog.Any("inserted", report.Inserted),
		slog.Any("skipped", report.Skipped),
	)
}

// must logs and exits on a setup failure.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("seed_failure", slog.String("step", step), slog.Any("error", err))
		os.Exit(1)
	}
}
