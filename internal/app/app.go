// Package app wires the full service: configuration, stores, engine service,
// router, and background workers. Both the server binary and the CLI's serve
// command run through here.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"codecheck/internal/audit"
	checklisthandler "codecheck/internal/checklist/handler"
	"codecheck/internal/checklist/metrics"
	checklistservice "codecheck/internal/checklist/service"
	"codecheck/internal/definitions"
	"codecheck/internal/floorarea"
	httpapi "codecheck/internal/http"
	"codecheck/internal/lawref"
	lawrefhandler "codecheck/internal/lawref/handler"
	"codecheck/internal/platform/config"
	"codecheck/internal/platform/httpserver"
)

const lawCacheTTL = 10 * time.Minute

// Run starts the HTTP server and its background workers, blocking until the
// context is canceled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Server, logger *slog.Logger) error {
	defs := definitions.NewFileStore(cfg.DefinitionsDir, logger)

	laws, cleanup, err := buildLawStore(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	inbox := make(chan audit.Event, 256)
	auditStore := audit.NewMemoryStore()
	auditPub := audit.NewPublisher(inbox, logger)
	auditWorker := audit.NewWorker(auditStore, inbox, logger)

	svc := checklistservice.New(defs, laws, auditPub, logger, metrics.New())

	router := httpapi.NewRouter(
		checklisthandler.New(svc, logger),
		lawrefhandler.New(laws, logger),
		floorarea.NewHandler(logger),
	)
	srv := httpserver.New(cfg.Addr, router)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go func() {
		if err := auditWorker.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("audit worker stopped", "error", err)
		}
	}()

	if cfg.WatchDefinitions {
		watcher, err := definitions.NewWatcher(defs, logger)
		if err != nil {
			logger.Warn("definition watcher unavailable", "error", err)
		} else {
			go func() {
				if err := watcher.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("definition watcher stopped", "error", err)
				}
			}()
		}
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting codecheck", "addr", cfg.Addr, "definitions", cfg.DefinitionsDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// buildLawStore assembles the law reference store from config: memory by
// default, PostgreSQL when configured, with an optional Redis read-through
// cache in front.
func buildLawStore(cfg config.Server, logger *slog.Logger) (lawref.Store, func(), error) {
	cleanup := func() {}

	var store lawref.Store
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return nil, cleanup, fmt.Errorf("open postgres: %w", err)
		}
		store = lawref.NewPostgresStore(db)
		cleanup = func() { _ = db.Close() }
	} else {
		memStore, err := lawref.NewMemoryStoreFromFile(cfg.LawsPath)
		if err != nil {
			return nil, cleanup, err
		}
		store = memStore
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, cleanup, fmt.Errorf("parse redis URL: %w", err)
		}
		client := redis.NewClient(opts)
		prev := cleanup
		cleanup = func() {
			_ = client.Close()
			prev()
		}
		store = lawref.NewRedisCache(store, client, lawCacheTTL)
		logger.Info("law reference cache enabled")
	}

	return store, cleanup, nil
}
