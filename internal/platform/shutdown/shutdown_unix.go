//go:build !windows

// Package shutdown provides a context cancelled by process termination signals.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// NewContext returns a context cancelled on SIGINT or SIGTERM.
func NewContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
