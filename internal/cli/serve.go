package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/jornada/internal/logging"
	httpAdapter "github.com/aretw0/jornada/pkg/adapters/http"
	"github.com/aretw0/jornada/pkg/observability"
	"github.com/aretw0/jornada/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures the HTTP server.
type ServeOptions struct {
	Options
	Addr string
}

// NewServeHandler builds the HTTP API backed by opts, with Prometheus
// metrics served on /metrics. The returned closer releases the store.
func NewServeHandler(ctx context.Context, opts Options, logger *slog.Logger) (http.Handler, func() error, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, nil, err
	}

	hooks := metrics.Hooks()
	if opts.Debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}
	engine, err := createEngine(opts, logger, hooks)
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := createStore(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	manager := session.NewManager(engine, store, session.WithLogger(logger))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.Handle("/", httpAdapter.NewHandler(manager, httpAdapter.WithLogger(logger)))
	return mux, closeStore, nil
}

// Serve runs the HTTP API until SIGINT or SIGTERM.
func Serve(opts ServeOptions) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.NewJSON(os.Stderr, level)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	handler, closeStore, err := NewServeHandler(sigCtx, opts.Options, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting jornada server", "addr", srv.Addr, "store", opts.Store)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-sigCtx.Done():
		logger.Info("shutting down", "signal", fmt.Sprint(sigCtx.Signal()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			return srv.Close()
		}
		logger.Info("server stopped gracefully")
		return nil
	}
}
