package metrics

// DefaultMetricsAddress is the address the metrics endpoint listens on
// if none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration structure for the Prometheus metrics
// endpoint. It controls where the pipeline's metrics are exposed and how
// they are labeled.
type Config struct {
	// MetricsAddress determines the network address where the metrics
	// HTTP server listens. The endpoint exposes every pipeline metric
	// registered by this package.
	//
	// Example values:
	//   - ":9090"          → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9090" → Listen only on localhost, port 9090
	//   - nil (or omitted) → Use default ":9090"
	//
	// To disable the HTTP endpoint entirely, use an empty string pointer:
	//   MetricsAddress: metrics.Ptr(""),
	// The registry keeps working without the server, so the handler can
	// still be mounted on an existing mux via Handler().
	//
	// Default: ":9090"
	MetricsAddress *string `yaml:"metrics_address" envconfig:"METRICS_ADDRESS"`

	// ServiceName identifies the service whose log pipeline is being
	// measured. When set, every metric carries a constant service label,
	// which keeps the series apart when several services scrape into the
	// same Prometheus.
	//
	// Example:
	//   ServiceName: "document-index"
	//   → metrics include label service="document-index"
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// SystemMetrics additionally registers the Go runtime, process, and
	// build info collectors on the same registry. Off by default so a
	// host application that already exports those elsewhere does not end
	// up with duplicate series.
	SystemMetrics bool `yaml:"system_metrics" envconfig:"METRICS_SYSTEM_METRICS"`

	// EmitDurationBuckets overrides the histogram buckets used for
	// tracelog_emit_duration_seconds. Leave nil for the default spread,
	// which covers microsecond encodes up to sub-second blocking writes.
	EmitDurationBuckets []float64 `yaml:"emit_duration_buckets" envconfig:"-"`
}

// Ptr returns a pointer to the given string value.
// Helper function for disabling the endpoint in configuration.
//
// Example:
//
//	cfg := metrics.Config{
//	    MetricsAddress: metrics.Ptr(""), // Registry only, no server
//	    ServiceName:    "my-service",
//	}
func Ptr(s string) *string {
	return &s
}
