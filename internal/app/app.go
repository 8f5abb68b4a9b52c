package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"malacara/go_backend/internal/app/config"
	apphttp "malacara/go_backend/internal/app/http"
	"malacara/go_backend/internal/app/logger"
	"malacara/go_backend/internal/app/session"
	"malacara/go_backend/internal/domain/catalog"
	"malacara/go_backend/internal/infra/db/postgres"
)

const shutdownTimeout = 10 * time.Second

func Run() error {
	cfg := config.MustLoad()
	log := logger.New(logger.Options{Service: "malacara-quotes", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}

	sessions := session.NewStore(cfg.SessionTTL)
	go sweepSessions(ctx, sessions, cfg.SessionTTL, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(cfg, cat, sessions, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// loadCatalog reads prices from Postgres when configured, seeding the table
// from the built-in list on first use.
func loadCatalog(ctx context.Context, cfg config.Config, log *slog.Logger) (*catalog.Catalog, error) {
	if cfg.DatabaseURL == "" {
		log.Info("catalog: using built-in price list")
		return catalog.Default(), nil
	}

	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	seeded, err := db.EnsureCatalog(ctx, catalog.DefaultGrades())
	if err != nil {
		return nil, err
	}
	if seeded {
		log.Info("catalog: seeded rental_prices from built-in price list")
	}
	cat, err := db.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("catalog: loaded from postgres", "grades", len(cat.Grades()))
	return cat, nil
}

func sweepSessions(ctx context.Context, sessions *session.Store, ttl time.Duration, log *slog.Logger) {
	if ttl <= 0 {
		return
	}
	interval := max(ttl/2, time.Minute)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := sessions.Sweep(); n > 0 {
				log.Debug("sessions expired", "count", n, "active", sessions.Len())
			}
		}
	}
}
