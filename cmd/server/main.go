package main

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/vacancy-stats/internal/app"
	"github.com/honeycarbs/vacancy-stats/internal/config"
	"github.com/honeycarbs/vacancy-stats/internal/mcp"
	"github.com/honeycarbs/vacancy-stats/internal/mcp/tools"
	"github.com/honeycarbs/vacancy-stats/pkg/logging"
	"github.com/honeycarbs/vacancy-stats/pkg/shutdown"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	a, cleanup, err := app.Initialize(ctx, cfg, logger, nil)
	if err != nil {
		logger.Error("failed to initialize application", "err", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	defer cleanup()

	srv := mcp.NewServer(logger, cfg.Host, cfg.Port,
		tools.WithLanguageStats(a.Stats, cfg.Languages, a.Sinks...),
		tools.WithEstimate(),
	)

	go func() {
		_ = shutdown.Graceful(ctx,
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			srv,
			10*time.Second,
			logger,
		)
	}()

	logger.Info("MCP server initialized and starting", "addr", srv.Addr(), "providers", a.Stats.Providers())

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
		return
	}
	logger.Info("MCP server stopped")
}
