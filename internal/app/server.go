package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pet-health-log/internal/config"
	"pet-health-log/internal/platform/logger"
	"pet-health-log/internal/router"
)

const shutdownTimeout = 10 * time.Second

// Serve abre el store, levanta el HTTP server y bloquea hasta que ctx se cancele.
func Serve(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	st, closer, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn("error closing store", map[string]any{"err": err})
		}
	}()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Store: st, Logger: log}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
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

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
