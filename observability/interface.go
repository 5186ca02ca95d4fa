package observability

import "time"

// Observer is a unified interface for observing the logging pipeline itself.
// It allows external code to watch what the library is doing internally
// (records emitted, records dropped, sinks opened, fallback switches, write
// failures) without coupling the library to a specific metrics or tracing
// implementation.
//
// This interface is optional - the logger works perfectly fine without an observer.
type Observer interface {
	// ObserveOperation is called when a pipeline operation completes.
	// It provides all context about the operation in a structured format.
	ObserveOperation(ctx OperationContext)
}

// OperationContext contains all information about a single pipeline operation.
// This struct is designed to be generic enough to describe every stage of the
// pipeline while providing enough detail for comprehensive observability.
type OperationContext struct {
	// Component identifies which part of the library performed the operation.
	// Examples: "logger", "sink", "metrics"
	Component string

	// Operation describes what operation was performed.
	// Examples:
	//   Facade: "emit", "drop"
	//   Sink:   "open", "write_error", "fallback", "sync", "close"
	Operation string

	// Resource identifies the primary resource being operated on.
	// Examples:
	//   Facade: level name ("debug", "info", "warn", "error", "fatal")
	//   Sink:   level name, or "all" for a shared single-file sink
	Resource string

	// SubResource provides additional resource context (optional).
	// Examples:
	//   Sink: resolved target path ("/var/log/app/myapp_error.log"),
	//         or "stdout" / "stderr" for stream targets
	SubResource string

	// Duration is how long the operation took from start to completion.
	Duration time.Duration

	// Error is the error encountered by the operation, if any.
	// nil indicates success. Note that the logger never surfaces these
	// errors to logging callers; the observer is the place to see them.
	Error error

	// Size represents the size of data involved in the operation (optional).
	// Examples:
	//   Facade: rendered message length in bytes
	//   Sink:   encoded line length in bytes
	Size int64

	// Metadata provides additional operation-specific information (optional).
	// This map can contain any extra context that doesn't fit in the standard fields.
	// Examples:
	//   Facade: {"trace_id": "req-123"}
	//   Sink:   {"attempt": "reopen"}
	Metadata map[string]interface{}
}
