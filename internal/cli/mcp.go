package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/aretw0/jornada/internal/logging"
	"github.com/aretw0/jornada/pkg/adapters/mcp"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/session"
)

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// MCPOptions configures the MCP server.
type MCPOptions struct {
	Options
	Transport string
	Port      int
}

// ServeMCP exposes the onboarding as MCP tools. Logs always go to stderr so
// the stdio transport keeps stdout for JSON-RPC.
func ServeMCP(opts MCPOptions) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	var hooks domain.LifecycleHooks
	if opts.Debug {
		hooks = createDebugHooks(logger)
	}
	engine, err := createEngine(opts.Options, logger, hooks)
	if err != nil {
		return err
	}
	store, closeStore, err := createStore(sigCtx, opts.Options)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := mcp.NewServer(session.NewManager(engine, store, session.WithLogger(logger)), mcp.WithLogger(logger))

	switch opts.Transport {
	case "", TransportStdio:
		logger.Info("starting MCP server", "transport", TransportStdio)
		return srv.ServeStdio()
	case TransportSSE:
		logger.Info("starting MCP server", "transport", TransportSSE, "port", opts.Port)
		err := srv.ServeSSE(sigCtx, opts.Port)
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Info("MCP server stopped gracefully")
		return nil
	default:
		fmt.Fprintf(os.Stderr, "supported transports: %s, %s\n", TransportStdio, TransportSSE)
		return fmt.Errorf("unknown transport %q", opts.Transport)
	}
}
