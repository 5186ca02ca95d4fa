package logger

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// renderJoin renders variadic operands the way Sprintln would, minus
// the trailing newline: every pair of operands separated by one space,
// each operand in its default %v form. A single string argument passes
// through unchanged, and no arguments render as the empty message.
func renderJoin(args []interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// renderFormat renders a format string against its operands. With no
// operands the format string itself is the message, verbatim, percent
// signs included. A mismatched format degrades to fmt's %!-marked
// output; it never panics and never costs the record.
func renderFormat(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// skip reports whether a record at lvl would be rejected regardless of
// its message: non-fatal records on a closed client, and records below
// the configured verbosity. Skipped records are counted as dropped.
// Fatal records never skip; even on a closed client they must reach the
// pipeline so the process terminates.
func (c *LoggerClient) skip(lvl zapcore.Level) bool {
	if lvl == zapcore.FatalLevel {
		return false
	}
	if c.eng.closed.Load() || !c.Zap.Core().Enabled(lvl) {
		c.eng.stats.dropped.Add(1)
		c.eng.observe("drop", lvl, 0, 0)
		return true
	}
	return false
}

// logJoin gates, renders Sprintln-style, and hands off to emit. The
// gate runs first so suppressed records never pay for rendering.
func (c *LoggerClient) logJoin(lvl zapcore.Level, traceID string, args []interface{}) {
	if c.skip(lvl) {
		return
	}
	c.emit(lvl, traceID, renderJoin(args))
}

// logFormat is logJoin's Sprintf-style counterpart.
func (c *LoggerClient) logFormat(lvl zapcore.Level, traceID, format string, args []interface{}) {
	if c.skip(lvl) {
		return
	}
	c.emit(lvl, traceID, renderFormat(format, args))
}

// emit is the single funnel every public logging method collapses
// into. The message arrives fully rendered; emit re-checks the gates
// (skip may have raced against Close), attaches the trace id field when
// one applies, and hands the record to the zapcore pipeline. For fatal
// records the pipeline also flushes the owning sink and then runs the
// fatal hook, so the process only terminates after the record is on its
// way out.
func (c *LoggerClient) emit(lvl zapcore.Level, traceID, msg string) {
	if c.eng.closed.Load() && lvl != zapcore.FatalLevel {
		c.eng.stats.dropped.Add(1)
		c.eng.observe("drop", lvl, 0, 0)
		return
	}

	start := c.eng.clock.Now()
	ce := c.Zap.Check(lvl, msg)
	if ce == nil {
		c.eng.stats.dropped.Add(1)
		c.eng.observe("drop", lvl, 0, 0)
		return
	}

	if traceID != "" {
		ce.Write(zap.String(traceIDKey, traceID))
	} else {
		ce.Write()
	}

	c.eng.stats.emitted.Add(1)
	c.eng.observe("emit", lvl, c.eng.clock.Now().Sub(start), int64(len(msg)))
}

// Plain methods render their arguments Sprintln-style (spaces between
// operands, no trailing newline) and pick up the client's ambient trace
// id, if one is set.

// Debug logs a debug-level message, useful for development and troubleshooting.
// Debug records are emitted only when the client was configured with
// Debug: true; otherwise the call returns before rendering costs anything
// beyond the argument slice.
//
// Example:
//
//	log.Debug("cache miss for", userID)
func (c *LoggerClient) Debug(args ...interface{}) {
	c.logJoin(zapcore.DebugLevel, c.scope.current(), args)
}

// Info logs an informational message about general application progress.
//
// Example:
//
//	log.Info("user", userID, "logged in")
func (c *LoggerClient) Info(args ...interface{}) {
	c.logJoin(zapcore.InfoLevel, c.scope.current(), args)
}

// Warn logs a warning message, indicating potential issues that aren't errors.
func (c *LoggerClient) Warn(args ...interface{}) {
	c.logJoin(zapcore.WarnLevel, c.scope.current(), args)
}

// Error logs an error-level message.
func (c *LoggerClient) Error(args ...interface{}) {
	c.logJoin(zapcore.ErrorLevel, c.scope.current(), args)
}

// Fatal logs a fatal message and terminates the process with a non-zero
// exit status. The record is written and flushed to its sink before
// termination, so the last line is never lost.
//
// Note: This function does not return unless a custom fatal hook was
// installed with WithFatalHook.
func (c *LoggerClient) Fatal(args ...interface{}) {
	c.logJoin(zapcore.FatalLevel, c.scope.current(), args)
}

// Formatted methods render fmt.Sprintf-style. Called with a format
// string and no operands, they emit the format string verbatim, so a
// literal "100% done" never trips the formatter.

// Debugf logs a debug-level message rendered from a format string.
//
// Example:
//
//	log.Debugf("retrying in %s (attempt %d)", delay, attempt)
func (c *LoggerClient) Debugf(format string, args ...interface{}) {
	c.logFormat(zapcore.DebugLevel, c.scope.current(), format, args)
}

// Infof logs an informational message rendered from a format string.
func (c *LoggerClient) Infof(format string, args ...interface{}) {
	c.logFormat(zapcore.InfoLevel, c.scope.current(), format, args)
}

// Warnf logs a warning message rendered from a format string.
func (c *LoggerClient) Warnf(format string, args ...interface{}) {
	c.logFormat(zapcore.WarnLevel, c.scope.current(), format, args)
}

// Errorf logs an error-level message rendered from a format string.
func (c *LoggerClient) Errorf(format string, args ...interface{}) {
	c.logFormat(zapcore.ErrorLevel, c.scope.current(), format, args)
}

// Fatalf logs a fatal message rendered from a format string and
// terminates the process with a non-zero exit status after the record
// is written and flushed.
func (c *LoggerClient) Fatalf(format string, args ...interface{}) {
	c.logFormat(zapcore.FatalLevel, c.scope.current(), format, args)
}

// Ctx methods take the trace id explicitly as their first argument.
// The ambient scope is bypassed and left untouched, which suits call
// sites that already hold the id in a variable.

// CtxDebug logs a debug-level message under an explicit trace id.
//
// Example:
//
//	log.CtxDebug(reqID, "cache miss for", userID)
func (c *LoggerClient) CtxDebug(traceID string, args ...interface{}) {
	c.logJoin(zapcore.DebugLevel, traceID, args)
}

// CtxInfo logs an informational message under an explicit trace id.
func (c *LoggerClient) CtxInfo(traceID string, args ...interface{}) {
	c.logJoin(zapcore.InfoLevel, traceID, args)
}

// CtxWarn logs a warning message under an explicit trace id.
func (c *LoggerClient) CtxWarn(traceID string, args ...interface{}) {
	c.logJoin(zapcore.WarnLevel, traceID, args)
}

// CtxError logs an error-level message under an explicit trace id.
func (c *LoggerClient) CtxError(traceID string, args ...interface{}) {
	c.logJoin(zapcore.ErrorLevel, traceID, args)
}

// CtxFatal logs a fatal message under an explicit trace id, then
// terminates the process like Fatal.
func (c *LoggerClient) CtxFatal(traceID string, args ...interface{}) {
	c.logJoin(zapcore.FatalLevel, traceID, args)
}

// CtxDebugf logs a debug-level formatted message under an explicit trace id.
func (c *LoggerClient) CtxDebugf(traceID, format string, args ...interface{}) {
	c.logFormat(zapcore.DebugLevel, traceID, format, args)
}

// CtxInfof logs an informational formatted message under an explicit trace id.
func (c *LoggerClient) CtxInfof(traceID, format string, args ...interface{}) {
	c.logFormat(zapcore.InfoLevel, traceID, format, args)
}

// CtxWarnf logs a warning formatted message under an explicit trace id.
func (c *LoggerClient) CtxWarnf(traceID, format string, args ...interface{}) {
	c.logFormat(zapcore.WarnLevel, traceID, format, args)
}

// CtxErrorf logs an error-level formatted message under an explicit trace id.
func (c *LoggerClient) CtxErrorf(traceID, format string, args ...interface{}) {
	c.logFormat(zapcore.ErrorLevel, traceID, format, args)
}

// CtxFatalf logs a fatal formatted message under an explicit trace id,
// then terminates the process like Fatal.
func (c *LoggerClient) CtxFatalf(traceID, format string, args ...interface{}) {
	c.logFormat(zapcore.FatalLevel, traceID, format, args)
}

// Context methods resolve the trace id from a context.Context: an id
// installed with ContextWithTraceID wins; failing that, with tracing
// enabled, the active OpenTelemetry span's trace id is used.

// DebugContext logs a debug-level message with the trace id carried by ctx.
//
// Example:
//
//	ctx := logger.ContextWithTraceID(ctx, reqID)
//	log.DebugContext(ctx, "cache miss for", userID)
func (c *LoggerClient) DebugContext(ctx context.Context, args ...interface{}) {
	c.logJoin(zapcore.DebugLevel, c.extractTraceID(ctx), args)
}

// InfoContext logs an informational message with the trace id carried by ctx.
func (c *LoggerClient) InfoContext(ctx context.Context, args ...interface{}) {
	c.logJoin(zapcore.InfoLevel, c.extractTraceID(ctx), args)
}

// WarnContext logs a warning message with the trace id carried by ctx.
func (c *LoggerClient) WarnContext(ctx context.Context, args ...interface{}) {
	c.logJoin(zapcore.WarnLevel, c.extractTraceID(ctx), args)
}

// ErrorContext logs an error-level message with the trace id carried by ctx.
func (c *LoggerClient) ErrorContext(ctx context.Context, args ...interface{}) {
	c.logJoin(zapcore.ErrorLevel, c.extractTraceID(ctx), args)
}

// FatalContext logs a fatal message with the trace id carried by ctx,
// then terminates the process like Fatal.
func (c *LoggerClient) FatalContext(ctx context.Context, args ...interface{}) {
	c.logJoin(zapcore.FatalLevel, c.extractTraceID(ctx), args)
}
