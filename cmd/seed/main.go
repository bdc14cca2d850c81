package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/metinatakli/movie-catalog/internal/app"
	"github.com/metinatakli/movie-catalog/internal/repository"
	"github.com/metinatakli/movie-catalog/internal/seed"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := app.ParseSeedConfig(os.Args[1:])
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if cfg.File != "-" {
		f, err := os.Open(cfg.File)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	if cfg.DB.Migrate {
		if err := app.RunMigrations(cfg.DB.DSN); err != nil {
			return err
		}
	}

	db, err := app.NewDatabasePool(app.Config{DB: cfg.DB})
	if err != nil {
		return err
	}
	defer db.Close()

	loader := seed.NewLoader(
		repository.NewPostgresMovieRepository(db),
		appvalidator.NewValidator(),
		logger,
	)

	_, err = loader.Load(context.Background(), in)

	return err
}
