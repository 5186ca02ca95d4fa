package logger

import "go.uber.org/zap/zapcore"

// Level name constants for the five severities the pipeline routes.
// These string constants appear as the "level" field of every emitted
// record and are accepted by options such as WithStacktrace.
const (
	// LevelDebug represents the most verbose logging level, intended for development and troubleshooting.
	// Debug records are emitted only when Config.Debug is true.
	LevelDebug = "debug"

	// LevelInfo represents the standard logging level for general operational information.
	LevelInfo = "info"

	// LevelWarn represents the logging level for potential issues that aren't errors.
	LevelWarn = "warn"

	// LevelError represents the logging level for error conditions.
	LevelError = "error"

	// LevelFatal represents the logging level for unrecoverable conditions.
	// Emitting a fatal record terminates the process after the record is
	// written and flushed.
	LevelFatal = "fatal"
)

// levels enumerates every routed level in severity order. Multi-file
// routing builds one sink per entry.
var levels = []zapcore.Level{
	zapcore.DebugLevel,
	zapcore.InfoLevel,
	zapcore.WarnLevel,
	zapcore.ErrorLevel,
	zapcore.FatalLevel,
}

// levelByName maps a level name constant to its zapcore level.
// Unknown names map to info.
func levelByName(name string) zapcore.Level {
	switch name {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	}
	return zapcore.InfoLevel
}

// Config defines the configuration structure for the logger.
// It contains settings that control routing, verbosity, and trace
// integration. The zero value is a valid configuration: records go to
// stdout and debug records are suppressed.
type Config struct {
	// LogPath is the directory log files are written under.
	// When empty, file routing is disabled entirely and all records go
	// to stdout regardless of MultiFile.
	//
	// The directory (and any missing parents) is created on the first
	// write. If it cannot be created or a log file cannot be opened, the
	// affected sink falls back to stderr permanently; logging calls never
	// fail because of sink trouble.
	LogPath string

	// AppName is the base name for log files under LogPath.
	// A single-file client writes to "{AppName}.log"; a multi-file client
	// writes to "{AppName}_{level}.log" per level. The name is used only
	// for file naming and never appears inside emitted records.
	AppName string

	// Debug controls whether debug-level records are emitted.
	// When false, Debug/Debugf calls are dropped before formatting and,
	// in multi-file mode, no debug log file is ever created.
	Debug bool

	// MultiFile selects per-level routing.
	// When true (and LogPath is set), every level gets its own sink and
	// its own "{AppName}_{level}.log" file. When false, all enabled
	// levels share one "{AppName}.log" sink.
	MultiFile bool

	// EnableTracing controls whether the *Context logging methods fall
	// back to the active OpenTelemetry span when the context carries no
	// explicit trace id. When set, a record logged inside a recording
	// span picks up that span's trace id as its "trace_id" field.
	//
	// Explicit trace ids (ContextWithTraceID, CtxInfo, WithTraceID) are
	// honored regardless of this setting.
	EnableTracing bool
}

// DefaultConfig returns the configuration used when the package-level
// facade is exercised before Init: stdout output with debug enabled.
// Note that this differs from the zero Config, which suppresses debug.
func DefaultConfig() Config {
	return Config{Debug: true}
}
