// Package logger provides structured JSON logging with trace-id
// propagation and per-level file routing.
//
// Every record is a single JSON line with a fixed field order:
//
//	{"level":"info","event_time":"1702540800","msg":"hello world","trace_id":"req-123"}
//
// The level is one of debug, info, warn, error, fatal; event_time is the
// Unix second count encoded as a string; msg is the rendered message;
// trace_id appears only when a trace id is in effect. Consumers can diff
// and parse lines byte-for-byte, so the shape never varies.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: Defines the contract for logging operations
//   - LoggerClient struct: Concrete implementation of the Logger interface
//   - NewLoggerClient constructor: Returns *LoggerClient (concrete type)
//   - FXModule: Provides both *LoggerClient and Logger interface for dependency injection
//
// Core Features:
//   - Fixed-shape JSON records, one per line
//   - Five levels with a debug on/off gate (Debug, Info, Warn, Error, Fatal)
//   - Plain, formatted, explicit-trace-id, and context-aware method variants
//   - Token-based ambient trace ids with LIFO nesting
//   - Context-carrier trace ids and OpenTelemetry span fallback
//   - Single-file or per-level file routing with lazy opens
//   - Permanent stderr fallback on sink failure; logging never returns errors
//   - Pipeline counters and an optional observability hook
//
// # Direct Usage (Without FX)
//
// Create a client and log:
//
//	import "github.com/aalemi-dev/tracelog/logger"
//
//	log := logger.NewLoggerClient(logger.Config{
//		LogPath: "/var/log/app",
//		AppName: "billing",
//		Debug:   true,
//	})
//	defer log.Close()
//
//	log.Info("service started")
//	log.Infof("listening on %s", addr)
//
// With MultiFile set, each level writes its own file
// ("billing_info.log", "billing_error.log", ...); otherwise all levels
// share "billing.log". With an empty LogPath records go to stdout.
//
// # Trace IDs
//
// Three ways to attach a trace id, in increasing order of explicitness:
//
// Ambient scope - set once, picked up by every subsequent call on the
// client until reset:
//
//	token := log.WithTraceID("req-123")
//	defer log.ResetTraceID(token)
//	log.Info("handling request") // carries trace_id "req-123"
//
// WithTraceID calls nest LIFO, and a Token restores exactly the state it
// captured even when inner tokens were never reset. The ambient scope
// belongs to the client; give each goroutine its own derived client:
//
//	worker := log.Scoped()
//	worker.WithTraceID(logger.NewTraceID())
//
// Context carrier - the id travels with a context.Context through the
// call chain:
//
//	ctx = logger.ContextWithTraceID(ctx, "req-123")
//	log.InfoContext(ctx, "handling request")
//
// Explicit argument - for call sites that hold the id in a variable:
//
//	log.CtxInfo("req-123", "handling request")
//
// When Config.EnableTracing is set and the context carries no explicit
// id, the *Context methods fall back to the active OpenTelemetry span's
// trace id, correlating log lines with distributed traces.
//
// # Package-Level Facade
//
// For single-path programs the package-level functions mirror the full
// client API over a swappable default client:
//
//	logger.Init(logger.Config{LogPath: "/var/log/app", AppName: "tool"})
//	logger.Info("starting up")
//	token := logger.WithTraceID("batch-7")
//	defer logger.ResetTraceID(token)
//
// Before any Init, the default client writes to stdout with debug
// enabled, so the functions work out of the box.
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule which provides
// both the concrete type and interface. You must supply a logger.Config to the
// dependency injection container:
//
//	import (
//		"github.com/aalemi-dev/tracelog/logger"
//		"go.uber.org/fx"
//	)
//
//	app := fx.New(
//		logger.FXModule, // Provides *LoggerClient and logger.Logger interface
//		fx.Provide(func() logger.Config {
//			return logger.Config{
//				LogPath:   "/var/log/app",
//				AppName:   "api",
//				MultiFile: true,
//			}
//		}),
//		fx.Invoke(func(log *logger.LoggerClient) {
//			log.Info("service started")
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// The module closes the client on shutdown, flushing every open log file.
// When the container also holds an observability.Observer (for example
// from metrics.FXModule), the module attaches it to the client
// automatically.
//
// # Fatal Semantics
//
// Fatal, Fatalf, CtxFatal, CtxFatalf, and FatalContext write their
// record, flush the owning sink, and then terminate the process with a
// non-zero exit status. The last line is on disk before the process is
// gone. Tests override the exit with WithFatalHook.
//
// # Error Handling
//
// Logging calls never return errors and never panic. A sink that cannot
// be opened or written switches to stderr permanently, announcing the
// switch once; a malformed format call emits the degraded fmt rendering
// rather than dropping the record. What went wrong is visible through
// Stats counters and the observability hook. Only the lifecycle surfaces
// (Sync, Close) return errors.
//
// # Performance Considerations
//
// Suppressed levels short-circuit before message rendering. The encoder
// is zap's JSON encoder; the only additions on top are one atomic
// counter bump and one observer call per record.
//
// # Thread Safety
//
// All methods on the Logger interface are safe for concurrent use by
// multiple goroutines. Writes to one sink are serialized, so lines are
// never interleaved. The ambient trace scope is the one deliberately
// path-local piece of state; see Scoped.
package logger
