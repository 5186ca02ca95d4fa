package logger

import (
	"context"
)

// Logger provides a high-level interface for structured logging.
// Every method emits exactly one JSON record (or none, when gated by
// level), with the message rendered from its arguments and an optional
// trace id attached.
//
// This interface is implemented by the concrete *LoggerClient type,
// which additionally offers Scoped, Sync, Close, Stats, and direct Zap
// access. Accept Logger in code that only logs; hold *LoggerClient
// where lifecycle or scope derivation is needed.
type Logger interface {
	// Plain methods render arguments Sprintln-style and use the ambient
	// trace id.

	// Debug logs a debug-level message, useful for development and troubleshooting.
	Debug(args ...interface{})

	// Info logs an informational message about general application progress.
	Info(args ...interface{})

	// Warn logs a warning message, indicating potential issues.
	Warn(args ...interface{})

	// Error logs an error-level message.
	Error(args ...interface{})

	// Fatal logs a fatal message and terminates the process after the
	// record is written and flushed.
	Fatal(args ...interface{})

	// Formatted methods render fmt.Sprintf-style; with no operands the
	// format string is emitted verbatim.

	// Debugf logs a debug-level message rendered from a format string.
	Debugf(format string, args ...interface{})

	// Infof logs an informational message rendered from a format string.
	Infof(format string, args ...interface{})

	// Warnf logs a warning message rendered from a format string.
	Warnf(format string, args ...interface{})

	// Errorf logs an error-level message rendered from a format string.
	Errorf(format string, args ...interface{})

	// Fatalf logs a fatal message rendered from a format string, then
	// terminates the process.
	Fatalf(format string, args ...interface{})

	// Ctx methods take the trace id explicitly, bypassing the ambient
	// scope.

	// CtxDebug logs a debug-level message under an explicit trace id.
	CtxDebug(traceID string, args ...interface{})

	// CtxInfo logs an informational message under an explicit trace id.
	CtxInfo(traceID string, args ...interface{})

	// CtxWarn logs a warning message under an explicit trace id.
	CtxWarn(traceID string, args ...interface{})

	// CtxError logs an error-level message under an explicit trace id.
	CtxError(traceID string, args ...interface{})

	// CtxFatal logs a fatal message under an explicit trace id, then
	// terminates the process.
	CtxFatal(traceID string, args ...interface{})

	// CtxDebugf logs a debug-level formatted message under an explicit trace id.
	CtxDebugf(traceID, format string, args ...interface{})

	// CtxInfof logs an informational formatted message under an explicit trace id.
	CtxInfof(traceID, format string, args ...interface{})

	// CtxWarnf logs a warning formatted message under an explicit trace id.
	CtxWarnf(traceID, format string, args ...interface{})

	// CtxErrorf logs an error-level formatted message under an explicit trace id.
	CtxErrorf(traceID, format string, args ...interface{})

	// CtxFatalf logs a fatal formatted message under an explicit trace id,
	// then terminates the process.
	CtxFatalf(traceID, format string, args ...interface{})

	// Context methods resolve the trace id from a context.Context
	// (ContextWithTraceID value first, then the active OpenTelemetry
	// span when tracing is enabled).

	// DebugContext logs a debug-level message with the trace id carried by ctx.
	DebugContext(ctx context.Context, args ...interface{})

	// InfoContext logs an informational message with the trace id carried by ctx.
	InfoContext(ctx context.Context, args ...interface{})

	// WarnContext logs a warning message with the trace id carried by ctx.
	WarnContext(ctx context.Context, args ...interface{})

	// ErrorContext logs an error-level message with the trace id carried by ctx.
	ErrorContext(ctx context.Context, args ...interface{})

	// FatalContext logs a fatal message with the trace id carried by ctx,
	// then terminates the process.
	FatalContext(ctx context.Context, args ...interface{})

	// Ambient trace scope control.

	// WithTraceID sets the ambient trace id and returns a Token undoing
	// exactly this call.
	WithTraceID(id string) Token

	// ResetTraceID restores the state captured in token; foreign and
	// zero tokens are ignored.
	ResetTraceID(token Token)
}
