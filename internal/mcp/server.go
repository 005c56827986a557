package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-stats/internal/mcp/tools"
	"github.com/honeycarbs/vacancy-stats/pkg/logging"
)

const (
	serverName    = "vacancy-stats"
	serverVersion = "0.1.0"
)

// Server exposes the statistics tools over MCP streamable HTTP
type Server struct {
	logger *logging.Logger

	srv     *http.Server
	started atomic.Bool
}

// NewServer builds the MCP server and registers the given tools
func NewServer(log *logging.Logger, host, port string, opts ...tools.Option) *Server {
	mcpServer := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	names := tools.Register(mcpServer, log, opts...)
	log.Info("MCP tools registered", "tools", names)

	handler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp/stream", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &Server{
		logger: log,
		srv: &http.Server{
			Addr:              net.JoinHostPort(host, port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Addr() string {
	return s.srv.Addr
}

// Handler returns the HTTP routes without starting a listener
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.Info("MCP HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("MCP HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("MCP HTTP server shutdown complete")
	return nil
}
