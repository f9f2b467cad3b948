// Package timeouts provides centralized timeout values for outbound I/O made
// while serving a request.
//
// Timeouts can be configured at startup using Configure(). If not configured,
// sensible defaults are used.
//
// Guidelines for choosing a timeout:
//   - SMTP: one complete relay conversation (dial, TLS, auth, send, quit)
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultSMTP = 30 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var smtp = DefaultSMTP

// SMTP returns the budget for a single relay conversation.
func SMTP() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return smtp
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	SMTP time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values. This should be called during
// application startup before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.SMTP > 0 {
		smtp = cfg.SMTP
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	smtp = DefaultSMTP
}

// Current returns the current timeout configuration as a Config struct.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{SMTP: smtp}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the context was canceled due to deadline exceeded.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.SMTP(), h.Log, "contact relay")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
