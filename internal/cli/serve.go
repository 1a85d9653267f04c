package cli

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

	"github.com/aretw0/pipework"
	"github.com/aretw0/pipework/internal/game"
	"github.com/aretw0/pipework/internal/logging"
	"github.com/aretw0/pipework/pkg/adapters/httpapi"
	"github.com/aretw0/pipework/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServeOptions contains the configuration for the serve command.
type ServeOptions struct {
	Addr  string
	Debug bool
	JSON  bool
}

// Serve exposes a goblin game engine over HTTP, with Prometheus metrics
// on /metrics.
func Serve(opts ServeOptions) error {
	logger := logging.New(slog.LevelInfo, opts.JSON)
	if opts.Debug {
		logger = logging.New(slog.LevelDebug, opts.JSON)
	}

	collector := observability.NewCollector()
	registry := prometheus.NewRegistry()
	if err := registry.Register(collector); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	engine := pipework.New(
		pipework.WithLogger(logger),
		pipework.WithLifecycleHooks(collector.Hooks()),
	)
	game.Register(engine, game.NewState(nil))

	mux := http.NewServeMux()
	mux.Handle("/", httpapi.NewHandler(engine, logger))
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              opts.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving pipework", "addr", opts.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return server.Shutdown(shutdownCtx)
}
