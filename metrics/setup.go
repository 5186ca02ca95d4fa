package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// defaultEmitBuckets spans microsecond in-memory encodes up to writes
// that blocked on a slow disk.
var defaultEmitBuckets = []float64{
	.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5,
}

// LogMetrics exports the logging pipeline's operational counters as
// Prometheus metrics. It implements observability.Observer, so a logger
// client built with logger.WithObserver (or wired through the Fx modules)
// feeds it directly from its emit and sink events.
//
// The exported families are:
//
//	tracelog_lines_emitted_total{level}    records handed to a sink
//	tracelog_lines_dropped_total{level}    records dropped before a sink
//	tracelog_write_errors_total{level}     sink write failures
//	tracelog_sink_fallbacks_total{level}   sinks switched to stderr
//	tracelog_sink_events_total{level,event} sink opens, syncs, closes
//	tracelog_emit_duration_seconds{level}  encode+write latency histogram
//
// The level label carries the record's level for logger events and the
// sink's label for sink events ("all" for the shared single-file sink).
type LogMetrics struct {
	// Server defines the HTTP server for the /metrics endpoint. It is nil
	// when the endpoint is disabled via Config.MetricsAddress = Ptr("").
	Server *http.Server

	registry *prometheus.Registry

	linesEmitted  *prometheus.CounterVec
	linesDropped  *prometheus.CounterVec
	writeErrors   *prometheus.CounterVec
	sinkFallbacks *prometheus.CounterVec
	sinkEvents    *prometheus.CounterVec
	emitDuration  *prometheus.HistogramVec
}

// NewLogMetrics initializes and returns a new instance of the LogMetrics
// struct. It sets up a dedicated Prometheus registry, registers the
// pipeline collectors on it, and prepares an HTTP server for scraping
// (unless the address is explicitly disabled).
//
// Parameters:
//   - cfg: Configuration for the metrics endpoint, including address,
//     service name, and optional system collectors
//
// Returns:
//   - *LogMetrics: A configured instance ready for lifecycle management
//     and Fx module integration
//
// When cfg.ServiceName is set, the registry wraps every metric with a
// constant `service` label for easier aggregation and filtering in
// multi-service environments.
//
// Example:
//
//	cfg := metrics.Config{
//	    MetricsAddress: metrics.Ptr(":9090"),
//	    ServiceName:    "document-index",
//	}
//	m := metrics.NewLogMetrics(cfg)
//	log := logger.NewLoggerClient(logCfg, logger.WithObserver(m))
//	go m.Server.ListenAndServe()
//
// Access metrics at http://localhost:9090/metrics.
func NewLogMetrics(cfg Config) *LogMetrics {
	registry := prometheus.NewRegistry()

	// Wrap with service label
	var registerer prometheus.Registerer = registry
	if cfg.ServiceName != "" {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"service": cfg.ServiceName},
			registry,
		)
	}

	// Register standard system collectors if requested
	if cfg.SystemMetrics {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	buckets := cfg.EmitDurationBuckets
	if buckets == nil {
		buckets = defaultEmitBuckets
	}

	m := &LogMetrics{
		registry: registry,
		linesEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracelog_lines_emitted_total",
			Help: "Log records encoded and handed to a sink, by level.",
		}, []string{"level"}),
		linesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracelog_lines_dropped_total",
			Help: "Log records dropped before reaching a sink, by level.",
		}, []string{"level"}),
		writeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracelog_write_errors_total",
			Help: "Sink write failures, by sink level.",
		}, []string{"level"}),
		sinkFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracelog_sink_fallbacks_total",
			Help: "Sinks switched permanently to stderr after a failure, by sink level.",
		}, []string{"level"}),
		sinkEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracelog_sink_events_total",
			Help: "Sink lifecycle events (open, sync, close), by sink level.",
		}, []string{"level", "event"}),
		emitDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tracelog_emit_duration_seconds",
			Help:    "Time spent encoding and writing one record, by level.",
			Buckets: buckets,
		}, []string{"level"}),
	}

	registerer.MustRegister(
		m.linesEmitted,
		m.linesDropped,
		m.writeErrors,
		m.sinkFallbacks,
		m.sinkEvents,
		m.emitDuration,
	)

	// Determine the endpoint address
	addr := DefaultMetricsAddress
	if cfg.MetricsAddress != nil {
		addr = *cfg.MetricsAddress
	}

	// Setup the HTTP server (if not explicitly disabled)
	if addr != "" {
		m.Server = &http.Server{
			Addr:    addr,
			Handler: m.Handler(),
		}
	}

	return m
}

// Registry returns the dedicated Prometheus registry holding the pipeline
// collectors (and the system collectors when enabled). Use it to register
// additional application metrics on the same endpoint, or to gather the
// families programmatically.
func (m *LogMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an http.Handler serving the registry in the Prometheus
// exposition format. It is the handler the built-in server uses; mount it
// on an existing mux when the endpoint is disabled:
//
//	mux.Handle("/metrics", m.Handler())
func (m *LogMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
