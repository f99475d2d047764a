//go:build windows

// Package shutdown provides a context cancelled by process termination signals.
package shutdown

import (
	"context"
	"os"
	"os/signal"
)

// NewContext returns a context cancelled on Ctrl+C. Windows console apps do
// not reliably receive SIGTERM.
func NewContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
