// @title Events API
// @version 1.0
// @description Create, fetch, list and update events with hypermedia links.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventsapi/config"
	transporthttp "eventsapi/internal/delivery/http"
	"eventsapi/internal/delivery/http/controllers"
	"eventsapi/internal/domain"
	"eventsapi/internal/repository/postgres"
	"eventsapi/internal/repository/sqlite"
	"eventsapi/internal/services"
)

const startupTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, repo, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database ready", "driver", cfg.DBDriver)

	eventService := services.NewEventService(repo, cfg.RequestTimeout)
	eventController := controllers.NewEventController(logger, eventService)
	eventController.TrustProxyHeaders = cfg.TrustProxyHeaders
	mux := transporthttp.NewRouter(
		eventController,
		controllers.NewHealthController(logger, db),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           transporthttp.NewHandler(logger, cfg.CORSOrigins, mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (*sql.DB, domain.EventRepository, error) {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, sqlite.NewEventRepository(db), nil
	default:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		return db, postgres.NewEventRepository(db), nil
	}
}
