// Package server wires the diary feed server together: it opens the store
// (PostgreSQL or in-memory), runs migrations, and serves the gRPC API next to
// the operational HTTP endpoints until the context is cancelled or a signal
// arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/diaryfeed/internal/dbx"
	"github.com/dmitrijs2005/diaryfeed/internal/logging"
	"github.com/dmitrijs2005/diaryfeed/internal/server/config"
	gs "github.com/dmitrijs2005/diaryfeed/internal/server/grpc"
	"github.com/dmitrijs2005/diaryfeed/internal/server/metrics"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/memory"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/diaryfeed/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	repos    repomanager.RepositoryManager
	tx       dbx.Transactor
	registry *prometheus.Registry
}

// NewApp opens the store selected by c.DatabaseDSN. Nothing is served until
// Run is called.
func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app := &App{config: c, logger: logger, registry: registry}

	if c.UsesMemoryStore() {
		store := memory.New()
		if c.SeedFile != "" {
			var err error
			if store, err = memory.LoadSeedFile(c.SeedFile); err != nil {
				return nil, fmt.Errorf("seed load error: %w", err)
			}
		}
		app.repos = memory.NewManager(store)
		app.tx = dbx.NoTx{}
		return app, nil
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	db.SetConnMaxLifetime(c.DBConnMaxLifetime)
	registry.MustRegister(collectors.NewDBStatsCollector(db, "diary"))

	app.db = db
	app.repos = repomanager.NewPostgresRepositoryManager()
	app.tx = dbx.NewSQLTransactor(db)
	return app, nil
}

// pool is the handle for reads outside a transaction; nil for the in-memory
// store.
func (app *App) pool() dbx.DBTX {
	if app.db == nil {
		return nil
	}
	return app.db
}

func (app *App) ready(r *http.Request) error {
	if app.db == nil {
		return nil
	}
	return app.db.PingContext(r.Context())
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "memory_store", app.db == nil)

	if app.db != nil {
		defer app.db.Close()
		if err := app.repos.RunMigrations(ctx, app.db); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	m := metrics.New(app.registry)
	feed := services.NewFeedService(app.tx, app.repos, app.logger, m)
	viewers := services.NewViewerService(app.repos.Profiles(app.pool()), app.config.SecretKey)
	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, feed, viewers)

	ops := metrics.NewServer(app.config.EndpointAddrOps, metrics.NewRouter(app.registry, app.ready))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return grpcServer.Run(gctx)
	})

	g.Go(func() error {
		app.logger.Info(gctx, "Starting ops server", "address", ops.Addr)
		if err := ops.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		return ops.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}
