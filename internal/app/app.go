package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movie-catalog/internal/domain"
	"github.com/metinatakli/movie-catalog/internal/repository"
	appvalidator "github.com/metinatakli/movie-catalog/internal/validator"
	"github.com/metinatakli/movie-catalog/internal/vcs"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "movie-catalog-api"

var (
	version = vcs.Version()
)

type Application struct {
	config    Config
	logger    *slog.Logger
	db        *pgxpool.Pool
	validator *validator.Validate

	movieRepo      domain.MovieRepository
	collectionRepo domain.CollectionRepository
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	validator *validator.Validate,
	movieRepo domain.MovieRepository,
	collectionRepo domain.CollectionRepository,
) *Application {
	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		validator:      validator,
		movieRepo:      movieRepo,
		collectionRepo: collectionRepo,
	}
}

func Run() error {
	cfg, displayVersion, err := ParseConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	stdoutHandler := slog.NewTextHandler(os.Stdout, nil)

	app := &Application{
		config:    cfg,
		logger:    slog.New(stdoutHandler),
		validator: appvalidator.NewValidator(),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(stdoutHandler, otelslog.NewHandler(serviceName)))
	}

	swagger, err := loadSwagger()
	if err != nil {
		return fmt.Errorf("load openapi document: %w", err)
	}

	if err := swagger.Validate(context.Background()); err != nil {
		return fmt.Errorf("invalid openapi document: %w", err)
	}

	if cfg.DB.Migrate {
		if err := RunMigrations(cfg.DB.DSN); err != nil {
			app.logger.Error("failed to apply migrations", "error", err)
			return err
		}
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		app.logger.Error("failed to connect to database", "error", err)
		return err
	}
	defer db.Close()

	app.db = db
	app.movieRepo = repository.NewPostgresMovieRepository(db)
	app.collectionRepo = repository.NewPostgresCollectionRepository(db)

	return app.run()
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
