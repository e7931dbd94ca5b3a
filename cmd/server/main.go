package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maropost_fixtures/internal/api"
	"maropost_fixtures/internal/cache"
	"maropost_fixtures/internal/config"
	"maropost_fixtures/internal/logging"
	"maropost_fixtures/internal/storage"
	"maropost_fixtures/internal/validation"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	logger := logging.Setup("fixture-server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, logger)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("Server failed")
		os.Exit(1)
	}
	log.Info().Msg("Server stopped")
}

func run(ctx context.Context, logger zerolog.Logger) error {
	cfg, err := config.LoadOrDefault(config.DefaultConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Load fixtures; the file may have been edited by hand since generation.
	ds, err := storage.Load(cfg.Server.FixturePath)
	if err != nil {
		return err
	}
	if err := validation.ValidateDataset(ds); err != nil {
		return fmt.Errorf("%s: %w", cfg.Server.FixturePath, err)
	}
	log.Info().
		Str("path", cfg.Server.FixturePath).
		Int("orders", len(ds.Orders)).
		Int("customers", len(ds.Customers)).
		Int("products", len(ds.Products)).
		Msg("Fixtures loaded")

	store, err := api.NewStore(ds, cache.Options{
		ShardCount:      cfg.Cache.ShardCount,
		MaxItems:        cfg.Cache.MaxItems,
		TTL:             cfg.Cache.TTL,
		CleanupInterval: cfg.Cache.CleanupInterval,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	orders, customers, products := store.Indexed()
	log.Info().Int("orders", orders).Int("customers", customers).Int("products", products).Msg("Records indexed")

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      api.NewRouter(store, logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Starting HTTP server")
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

	log.Info().Msg("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
