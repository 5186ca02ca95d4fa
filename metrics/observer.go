package metrics

import (
	"github.com/aalemi-dev/tracelog/observability"
)

// ObserveOperation implements observability.Observer by mapping pipeline
// events onto the Prometheus collectors. The context's Resource carries
// the level label: the record's level for logger events, the sink's
// label for sink events.
//
// Operations outside the pipeline vocabulary are ignored, so a newer
// logger reporting new event kinds does not break an older consumer.
//
// The method only touches Prometheus collectors, which are safe for
// concurrent use, so it never blocks the emit path and never logs back
// through the client it observes.
func (m *LogMetrics) ObserveOperation(ctx observability.OperationContext) {
	switch ctx.Operation {
	case "emit":
		m.linesEmitted.WithLabelValues(ctx.Resource).Inc()
		m.emitDuration.WithLabelValues(ctx.Resource).Observe(ctx.Duration.Seconds())
	case "drop":
		m.linesDropped.WithLabelValues(ctx.Resource).Inc()
	case "write_error":
		m.writeErrors.WithLabelValues(ctx.Resource).Inc()
	case "fallback":
		m.sinkFallbacks.WithLabelValues(ctx.Resource).Inc()
	case "open", "sync", "close":
		m.sinkEvents.WithLabelValues(ctx.Resource, ctx.Operation).Inc()
	}
}
