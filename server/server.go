package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/admingraph/shopify-mcp/tools"
)

const (
	// Name identifies this server to MCP clients.
	Name = "shopify-admin-mcp"

	// shutdownGrace bounds how long ListenAndServe waits for in-flight
	// requests after its context is cancelled.
	shutdownGrace = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	// Version is the server version reported to clients.
	Version string

	// Deps are the capabilities handed to every tool handler.
	Deps tools.Deps

	// Logger receives server diagnostics. Nil falls back to
	// slog.Default().
	Logger *slog.Logger
}

// Server owns the MCP server with every tool registered and runs it
// over stdio or HTTP.
type Server struct {
	mcp *mcp.Server
	log *slog.Logger
}

// New builds the MCP server and registers the full tool surface.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    Name,
		Version: opts.Version,
	}, nil)
	tools.Register(srv, opts.Deps)

	return &Server{mcp: srv, log: log}
}

// MCP exposes the underlying SDK server, for embedding and for tests
// that connect over in-memory transports.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves MCP over stdio until the client disconnects or ctx is
// cancelled. Stdout carries the protocol; all logging must go to
// stderr.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("serving MCP over stdio", "server", Name)
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the HTTP surface: the streamable MCP endpoint at
// /mcp and a liveness probe at /healthz.
func (s *Server) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/mcp", streamable)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

// ListenAndServe serves the HTTP surface on addr until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("serving MCP over HTTP", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}
