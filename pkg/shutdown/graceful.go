package shutdown

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/vacancy-stats/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful blocks until one of signals arrives or ctx ends, then gives s
// timeout to stop.
func Graceful(ctx context.Context, signals []os.Signal, s Stoppable, timeout time.Duration, log *logging.Logger) error {
	sigCtx, stop := signal.NotifyContext(ctx, signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
		return err
	}
	log.Info("graceful shutdown completed")
	return nil
}
