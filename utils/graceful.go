package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// GracefulContext returns a context that is cancelled on SIGINT or SIGTERM.
func GracefulContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
