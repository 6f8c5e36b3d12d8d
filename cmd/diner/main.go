package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/diner/internal/catalog"
	"github.com/mmynk/diner/internal/config"
	"github.com/mmynk/diner/internal/membership"
	"github.com/mmynk/diner/internal/metrics"
	"github.com/mmynk/diner/internal/middleware"
	"github.com/mmynk/diner/internal/storage"
	"github.com/mmynk/diner/internal/storage/csvfile"
	"github.com/mmynk/diner/internal/storage/sqlite"
	"github.com/mmynk/diner/internal/workflow"
	"github.com/mmynk/diner/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Restore default signal handling so a second Ctrl-C kills the process.
	context.AfterFunc(ctx, stop)

	os.Exit(run(ctx, cfg))
}

func run(ctx context.Context, cfg *config.Config) int {
	menu, err := catalog.Load(cfg.MenuPath)
	if err != nil {
		slog.Error("Failed to load menu", "path", cfg.MenuPath, "error", err)
		return 1
	}
	slog.Info("Menu loaded", "path", cfg.MenuPath, "items", menu.Len())

	store, err := openStore(cfg.Store)
	if err != nil {
		slog.Error("Failed to initialize storage", "backend", cfg.Store.Backend, "error", err)
		return 1
	}
	defer store.Close()

	loaded, err := store.LoadMembers(ctx)
	if err != nil {
		slog.Error("Failed to load members", "error", err)
		return 1
	}
	members := membership.New(loaded)
	slog.Info("Members loaded", "backend", cfg.Store.Backend, "count", members.Len())

	m := metrics.New(prometheus.DefaultRegisterer)
	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			shutdownMetrics(shutdownCtx, srv)
		}()
	}

	session := workflow.New(menu, members, workflow.Config{
		Discount:    cfg.Billing.Discount,
		ExactTender: cfg.Billing.ExactTender,
	}, workflow.WithMetrics(m))

	if err := workflow.Run(ctx, session, store, os.Stdin, os.Stdout); err != nil {
		switch {
		case errors.Is(err, workflow.ErrInputExhausted):
			slog.Error("Session ended without completing", "state", session.State())
		case errors.Is(err, context.Canceled):
			slog.Warn("Session interrupted", "state", session.State())
		default:
			slog.Error("Session failed", "error", err)
		}
		return 1
	}
	return 0
}

func openStore(cfg config.StoreConfig) (storage.Store, error) {
	switch cfg.Backend {
	case config.StoreSQLite:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "database", cfg.DBPath)
		return store, nil
	default:
		slog.Info("Storage initialized", "members", cfg.MembersPath)
		return csvfile.New(cfg.MembersPath), nil
	}
}

func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              addr,
		Handler:           middleware.Logging(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func serveMetrics(addr string) *http.Server {
	srv := newMetricsServer(addr)
	go func() {
		slog.Info("Metrics server starting", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
	return srv
}

// shutdownMetrics stops srv, logging a failure to drain before ctx ends.
func shutdownMetrics(ctx context.Context, srv *http.Server) error {
	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("Failed to shut down metrics server", "error", err)
		return err
	}
	return nil
}
