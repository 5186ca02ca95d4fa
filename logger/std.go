package logger

import (
	"context"
	"sync/atomic"
)

// defaultClient backs the package-level logging functions. It starts
// nil and is built lazily so importing the package has no side effects.
var defaultClient atomic.Pointer[LoggerClient]

// Init builds a client from cfg and installs it as the package default.
// The replaced default, if any, is closed best-effort; callers still
// holding it will have their non-fatal records dropped from then on.
//
// Applications call Init once at startup. Libraries should accept a
// Logger or *LoggerClient instead of relying on the package default.
func Init(cfg Config, opts ...Option) {
	c := NewLoggerClient(cfg, opts...)
	if old := defaultClient.Swap(c); old != nil {
		_ = old.Close()
	}
}

// Default returns the package default client. Before any Init it lazily
// builds one from DefaultConfig, so the package-level functions work
// out of the box: stdout output with debug records enabled.
func Default() *LoggerClient {
	if c := defaultClient.Load(); c != nil {
		return c
	}
	c := NewLoggerClient(DefaultConfig())
	if defaultClient.CompareAndSwap(nil, c) {
		return c
	}
	// Lost the race; the abandoned client opened no files.
	return defaultClient.Load()
}

// ReplaceDefault swaps the package default for c and returns a function
// that restores the previous default. Unlike Init it closes nothing, so
// tests can temporarily point the package-level functions at a scratch
// client:
//
//	restore := logger.ReplaceDefault(testClient)
//	defer restore()
func ReplaceDefault(c *LoggerClient) func() {
	old := defaultClient.Swap(c)
	return func() { defaultClient.Store(old) }
}

// The package-level functions mirror the client API on the default
// client. The ambient trace scope they use is the default client's own,
// which suits single-path programs; concurrent paths should derive
// clients with Scoped instead.

// Debug logs a debug-level message through the package default client.
func Debug(args ...interface{}) { Default().Debug(args...) }

// Info logs an informational message through the package default client.
func Info(args ...interface{}) { Default().Info(args...) }

// Warn logs a warning message through the package default client.
func Warn(args ...interface{}) { Default().Warn(args...) }

// Error logs an error-level message through the package default client.
func Error(args ...interface{}) { Default().Error(args...) }

// Fatal logs a fatal message through the package default client, then
// terminates the process.
func Fatal(args ...interface{}) { Default().Fatal(args...) }

// Debugf logs a debug-level formatted message through the package default client.
func Debugf(format string, args ...interface{}) { Default().Debugf(format, args...) }

// Infof logs an informational formatted message through the package default client.
func Infof(format string, args ...interface{}) { Default().Infof(format, args...) }

// Warnf logs a warning formatted message through the package default client.
func Warnf(format string, args ...interface{}) { Default().Warnf(format, args...) }

// Errorf logs an error-level formatted message through the package default client.
func Errorf(format string, args ...interface{}) { Default().Errorf(format, args...) }

// Fatalf logs a fatal formatted message through the package default
// client, then terminates the process.
func Fatalf(format string, args ...interface{}) { Default().Fatalf(format, args...) }

// CtxDebug logs a debug-level message under an explicit trace id
// through the package default client.
func CtxDebug(traceID string, args ...interface{}) { Default().CtxDebug(traceID, args...) }

// CtxInfo logs an informational message under an explicit trace id
// through the package default client.
func CtxInfo(traceID string, args ...interface{}) { Default().CtxInfo(traceID, args...) }

// CtxWarn logs a warning message under an explicit trace id through the
// package default client.
func CtxWarn(traceID string, args ...interface{}) { Default().CtxWarn(traceID, args...) }

// CtxError logs an error-level message under an explicit trace id
// through the package default client.
func CtxError(traceID string, args ...interface{}) { Default().CtxError(traceID, args...) }

// CtxFatal logs a fatal message under an explicit trace id through the
// package default client, then terminates the process.
func CtxFatal(traceID string, args ...interface{}) { Default().CtxFatal(traceID, args...) }

// CtxDebugf logs a debug-level formatted message under an explicit
// trace id through the package default client.
func CtxDebugf(traceID, format string, args ...interface{}) {
	Default().CtxDebugf(traceID, format, args...)
}

// CtxInfof logs an informational formatted message under an explicit
// trace id through the package default client.
func CtxInfof(traceID, format string, args ...interface{}) {
	Default().CtxInfof(traceID, format, args...)
}

// CtxWarnf logs a warning formatted message under an explicit trace id
// through the package default client.
func CtxWarnf(traceID, format string, args ...interface{}) {
	Default().CtxWarnf(traceID, format, args...)
}

// CtxErrorf logs an error-level formatted message under an explicit
// trace id through the package default client.
func CtxErrorf(traceID, format string, args ...interface{}) {
	Default().CtxErrorf(traceID, format, args...)
}

// CtxFatalf logs a fatal formatted message under an explicit trace id
// through the package default client, then terminates the process.
func CtxFatalf(traceID, format string, args ...interface{}) {
	Default().CtxFatalf(traceID, format, args...)
}

// DebugContext logs a debug-level message with the trace id carried by
// ctx through the package default client.
func DebugContext(ctx context.Context, args ...interface{}) { Default().DebugContext(ctx, args...) }

// InfoContext logs an informational message with the trace id carried
// by ctx through the package default client.
func InfoContext(ctx context.Context, args ...interface{}) { Default().InfoContext(ctx, args...) }

// WarnContext logs a warning message with the trace id carried by ctx
// through the package default client.
func WarnContext(ctx context.Context, args ...interface{}) { Default().WarnContext(ctx, args...) }

// ErrorContext logs an error-level message with the trace id carried by
// ctx through the package default client.
func ErrorContext(ctx context.Context, args ...interface{}) { Default().ErrorContext(ctx, args...) }

// FatalContext logs a fatal message with the trace id carried by ctx
// through the package default client, then terminates the process.
func FatalContext(ctx context.Context, args ...interface{}) { Default().FatalContext(ctx, args...) }

// WithTraceID sets the default client's ambient trace id and returns a
// Token undoing exactly this call.
func WithTraceID(id string) Token { return Default().WithTraceID(id) }

// ResetTraceID restores the default client's ambient trace id from
// token; foreign and zero tokens are ignored.
func ResetTraceID(token Token) { Default().ResetTraceID(token) }
