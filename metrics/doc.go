// Package metrics exports the logging pipeline's operational counters as
// Prometheus metrics.
//
// The package adapts the observability.Observer contract to Prometheus:
// a LogMetrics instance attached to a logger client turns the client's
// emit, drop, and sink events into counter and histogram series on a
// dedicated registry, exposed over a /metrics HTTP endpoint for
// scraping.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - observability.Observer interface: The contract the logger reports through
//   - LogMetrics struct: Concrete implementation backed by Prometheus collectors
//   - NewLogMetrics constructor: Returns *LogMetrics (concrete type)
//   - FX module: Provides both *LogMetrics and the Observer interface for dependency injection
//
// # Exported Metric Families
//
// All families live on one registry and carry a level label. When
// Config.ServiceName is set, a constant service label is added to every
// series.
//
//   - tracelog_lines_emitted_total{level}: records encoded and handed to a sink
//   - tracelog_lines_dropped_total{level}: records rejected before a sink
//     (debug while debug is off, records logged after Close)
//   - tracelog_write_errors_total{level}: failed sink write attempts
//   - tracelog_sink_fallbacks_total{level}: sinks switched permanently to stderr
//   - tracelog_sink_events_total{level,event}: sink opens, syncs, and closes
//   - tracelog_emit_duration_seconds{level}: encode+write latency histogram
//
// For logger events the level label is the record's level ("debug"
// through "fatal"); for sink events it is the sink's label, which is the
// level in multi-file mode and "all" for a shared single-file sink.
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create the metrics and attach them to
// a logger directly:
//
//	import (
//		"github.com/aalemi-dev/tracelog/logger"
//		"github.com/aalemi-dev/tracelog/metrics"
//	)
//
//	m := metrics.NewLogMetrics(metrics.Config{
//		MetricsAddress: metrics.Ptr(":9090"),
//		ServiceName:    "search-store",
//	})
//
//	log := logger.NewLoggerClient(logger.Config{
//		LogPath: "/var/log/search-store",
//		AppName: "search-store",
//	}, logger.WithObserver(m))
//
//	go m.Server.ListenAndServe()
//
//	log.Info("pipeline instrumented")
//
//	// Scrape at http://localhost:9090/metrics
//
// # FX Module Integration
//
// For production applications using Uber's fx, add the module next to the
// logger module. Because FXModule provides observability.Observer, the
// logger module finds the observer in the container and attaches it on
// its own; no explicit wiring is needed:
//
//	import (
//		"go.uber.org/fx"
//		"github.com/aalemi-dev/tracelog/logger"
//		"github.com/aalemi-dev/tracelog/metrics"
//	)
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{LogPath: "/var/log/app", AppName: "api"}
//		}),
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{ServiceName: "api"}
//		}),
//	)
//	app.Run()
//
// The lifecycle hooks start the metrics server on application start and
// shut it down gracefully on stop.
//
// # Mounting on an Existing Mux
//
// Applications that already run an HTTP server can disable the built-in
// one and mount the handler themselves:
//
//	m := metrics.NewLogMetrics(metrics.Config{
//		MetricsAddress: metrics.Ptr(""), // no built-in server
//		ServiceName:    "api",
//	})
//
//	mux := http.NewServeMux()
//	mux.Handle("/metrics", m.Handler())
//
// # Additional Application Metrics
//
// The registry is exposed through Registry(), so application-specific
// collectors can share the endpoint:
//
//	queueDepth := prometheus.NewGauge(prometheus.GaugeOpts{
//		Name: "ingest_queue_depth",
//		Help: "Records waiting for ingestion.",
//	})
//	m.Registry().MustRegister(queueDepth)
//
// # Useful Queries
//
// The families are shaped for the usual pipeline-health questions:
//
//	// Drop ratio over 5 minutes
//	sum(rate(tracelog_lines_dropped_total[5m]))
//	  / sum(rate(tracelog_lines_emitted_total[5m]))
//
//	// Any sink running on the stderr fallback?
//	tracelog_sink_fallbacks_total > 0
//
//	// p99 emit latency per level
//	histogram_quantile(0.99,
//	  sum by (level, le) (rate(tracelog_emit_duration_seconds_bucket[5m])))
//
// # System Metrics
//
// Setting Config.SystemMetrics registers the Go runtime, process, and
// build info collectors on the same registry. Leave it off when the host
// application already exports those elsewhere, to avoid duplicate
// series.
//
// # Performance Considerations
//
//   - ObserveOperation only increments Prometheus collectors; it does no
//     I/O and never blocks the emit path
//   - Counter increments are lock-free in the common case
//   - Label cardinality is bounded: five levels plus "all", and a fixed
//     event vocabulary
//
// # Thread Safety
//
// All LogMetrics methods are safe for concurrent use. Prometheus
// collectors handle synchronization internally, so one instance can
// observe any number of logger clients.
//
// # Observability
//
// ObserveOperation silently ignores operations outside the pipeline
// vocabulary. A logger that grows new event kinds keeps working against
// an older metrics package; the new events simply are not counted.
package metrics
