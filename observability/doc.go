// Package observability provides a unified interface for observing the
// internal operations of the logging pipeline.
//
// # Overview
//
// The observability package defines a single Observer interface that the
// logger and its sinks use to emit operation events. This allows applications
// to meter, trace, or audit what the logging library itself is doing - how
// many records it emits, how many it drops, when it opens files, and when it
// falls back to stderr - without the library depending on any particular
// metrics stack.
//
// # Design Philosophy
//
// 1. **Optional**: the logger works perfectly without an observer
// 2. **Unified**: one interface covers the facade, the router, and the sinks
// 3. **Flexible**: Observer can implement metrics, tracing, logging, or all three
// 4. **Generic**: OperationContext works across every pipeline stage
// 5. **Non-intrusive**: the hot path pays a single interface call
//
// # Usage in the Pipeline
//
// Pipeline code reports operations as they complete:
//
//	func (e *engine) observe(op string, lvl zapcore.Level, d time.Duration, size int64) {
//	    e.observer.ObserveOperation(observability.OperationContext{
//	        Component: "logger",
//	        Operation: op,
//	        Resource:  lvl.String(),
//	        Duration:  d,
//	        Size:      size,
//	    })
//	}
//
// The observer is configured once at construction time and defaults to
// NoOpObserver, so call sites never need a nil check.
//
// # Usage in Applications
//
// Applications implement the Observer interface to handle operations:
//
//	type MetricsObserver struct {
//	    emitted *prometheus.CounterVec
//	    dropped *prometheus.CounterVec
//	}
//
//	func (o *MetricsObserver) ObserveOperation(ctx observability.OperationContext) {
//	    switch ctx.Operation {
//	    case "emit":
//	        o.emitted.WithLabelValues(ctx.Resource).Inc()
//	    case "drop":
//	        o.dropped.WithLabelValues(ctx.Resource).Inc()
//	    }
//	}
//
// The metrics package in this module ships a ready-made prometheus-backed
// implementation of exactly this shape.
//
// # FX Integration
//
// Wire the observer through dependency injection:
//
//	fx.Provide(
//	    fx.Annotate(
//	        metrics.NewLogMetrics,
//	        fx.As(new(observability.Observer)),
//	    ),
//	)
//
// # OperationContext Fields
//
// The OperationContext struct provides a flexible way to describe any
// pipeline operation:
//
//   - Component: which part of the library ("logger", "sink")
//   - Operation: what was done ("emit", "drop", "open", "fallback", ...)
//   - Resource:  level name, or "all" for a shared sink
//   - SubResource: resolved sink target (path, "stdout", "stderr")
//   - Duration:  how long it took
//   - Error:     any error that occurred
//   - Size:      bytes involved
//   - Metadata:  additional context
//
// # Examples Across Pipeline Stages
//
// A record emitted through the facade:
//
//	OperationContext{
//	    Component: "logger",
//	    Operation: "emit",
//	    Resource:  "info",
//	    Duration:  3 * time.Microsecond,
//	    Size:      42, // rendered message bytes
//	}
//
// A record dropped by the level gate:
//
//	OperationContext{
//	    Component: "logger",
//	    Operation: "drop",
//	    Resource:  "debug",
//	}
//
// A sink lazily opened on first write:
//
//	OperationContext{
//	    Component:   "sink",
//	    Operation:   "open",
//	    Resource:    "error",
//	    SubResource: "/var/log/app/myapp_error.log",
//	    Duration:    180 * time.Microsecond,
//	}
//
// A sink switching to the stderr fallback after a write failure:
//
//	OperationContext{
//	    Component:   "sink",
//	    Operation:   "fallback",
//	    Resource:    "error",
//	    SubResource: "stderr",
//	    Error:       err,
//	}
//
// # Performance
//
// The observer pattern adds minimal overhead:
//   - One interface call per operation
//   - NoOpObserver compiles down to an empty method
//   - No allocations beyond the OperationContext value
//
// # Thread Safety
//
// Observer implementations must be thread-safe. They will be called
// concurrently from multiple goroutines.
package observability
