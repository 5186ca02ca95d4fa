package logger

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/aalemi-dev/tracelog/observability"
)

// pipelineStats aggregates a client's lifetime counters. All fields are
// updated atomically on the logging path.
type pipelineStats struct {
	emitted     atomic.Uint64
	dropped     atomic.Uint64
	writeErrors atomic.Uint64
	fallbacks   atomic.Uint64
}

// Stats is a point-in-time snapshot of a client's pipeline counters.
// It is the cheap, always-on diagnostic surface; the observer hook is
// the richer, per-operation one.
type Stats struct {
	// Emitted counts records that cleared the level gate and were handed
	// to the router, including records that ultimately landed on the
	// stderr fallback.
	Emitted uint64

	// Dropped counts records rejected before formatting: debug records
	// while debug is off, and non-fatal records logged after Close.
	Dropped uint64

	// WriteErrors counts failed write attempts, including failed retries
	// on the fallback.
	WriteErrors uint64

	// Fallbacks counts sinks that switched to stderr after an open or
	// write failure. At most one per sink over a client's lifetime.
	Fallbacks uint64
}

// Stats returns a snapshot of the client's counters. Clients derived
// with Scoped share one engine and therefore one set of counters.
func (c *LoggerClient) Stats() Stats {
	return Stats{
		Emitted:     c.eng.stats.emitted.Load(),
		Dropped:     c.eng.stats.dropped.Load(),
		WriteErrors: c.eng.stats.writeErrors.Load(),
		Fallbacks:   c.eng.stats.fallbacks.Load(),
	}
}

// observe reports one facade operation to the configured observer.
// Sink operations report themselves from sinks.go with component
// "sink"; this helper covers the "logger" component.
func (e *engine) observe(op string, lvl zapcore.Level, d time.Duration, size int64) {
	e.observer.ObserveOperation(observability.OperationContext{
		Component: "logger",
		Operation: op,
		Resource:  lvl.String(),
		Duration:  d,
		Size:      size,
	})
}
