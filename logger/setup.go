package logger

import (
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aalemi-dev/tracelog/observability"
)

// LoggerClient is a wrapper around Uber's Zap logger.
// It renders every record as one JSON line with a fixed field order
// (level, event_time, msg, then trace_id when present), routes lines to
// the sinks selected by Config, and carries an ambient trace id scope.
//
// LoggerClient implements the Logger interface.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance
	// This is exposed to allow direct access to Zap-specific functionality
	// when needed, but most logging should go through the wrapper methods.
	Zap *zap.Logger

	// eng owns the sinks, counters, and observer shared by this client
	// and every client derived from it with Scoped.
	eng *engine

	// scope holds this client's ambient trace id stack.
	scope *traceScope

	// tracingEnabled indicates whether the *Context methods fall back to
	// the active OpenTelemetry span when the context carries no explicit
	// trace id.
	tracingEnabled bool
}

// engine is the shared half of a client: routing targets, diagnostics,
// and the clock. Scoped clients alias one engine, so their records
// interleave in the same sinks and show up in the same Stats.
type engine struct {
	cfg      Config
	stdout   zapcore.WriteSyncer
	fallback zapcore.WriteSyncer
	sinks    []*sink
	observer observability.Observer
	clock    zapcore.Clock
	closed   atomic.Bool
	stats    pipelineStats
}

func newEngine(cfg Config, o options) *engine {
	return &engine{
		cfg:      cfg,
		stdout:   zapcore.Lock(os.Stdout),
		fallback: zapcore.Lock(os.Stderr),
		observer: o.observer,
		clock:    o.clock,
	}
}

func (e *engine) addSink(label, path string) *sink {
	s := newSink(e, label, path)
	e.sinks = append(e.sinks, s)
	return s
}

// buildCore assembles the zapcore pipeline the router contract asks
// for: a single shared core, or one exact-match core per level in
// multi-file mode, plus an optional stdout tee. Debug cores are simply
// never built when debug is off, so no debug file is ever created.
func (e *engine) buildCore(o options) zapcore.Core {
	encCfg := newEncoderConfig(o.stacktraceLevel != "")
	threshold := zapcore.LevelEnabler(zapcore.InfoLevel)
	if e.cfg.Debug {
		threshold = zapcore.DebugLevel
	}

	var cores []zapcore.Core
	switch {
	case e.cfg.LogPath == "":
		s := e.addSink("all", "")
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), s, threshold))
	case e.cfg.MultiFile:
		for _, lvl := range levels {
			if lvl == zapcore.DebugLevel && !e.cfg.Debug {
				continue
			}
			match := lvl
			only := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l == match })
			s := e.addSink(lvl.String(), levelFilePath(e.cfg, lvl))
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), s, only))
		}
	default:
		s := e.addSink("all", singleFilePath(e.cfg))
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), s, threshold))
	}

	if o.console && e.cfg.LogPath != "" {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), e.stdout, threshold))
	}

	return zapcore.NewTee(cores...)
}

// newEncoderConfig fixes the wire format: keys level, event_time, msg
// in that order, lowercase level names, and the event time rendered as
// a string-encoded Unix second count. The stacktrace key exists only
// when WithStacktrace asked for it, so the default record shape never
// grows extra fields.
func newEncoderConfig(withStacktrace bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "event_time",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     epochSecondsTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
	if withStacktrace {
		cfg.StacktraceKey = "stacktrace"
	}
	return cfg
}

// epochSecondsTimeEncoder renders a timestamp as the decimal Unix
// second count inside a JSON string, e.g. "1702540800". Sub-second
// precision is deliberately discarded.
func epochSecondsTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(strconv.FormatInt(t.Unix(), 10))
}

// NewLoggerClient initializes and returns a new instance of the logger based on configuration.
// This function wires a Zap logger whose encoder and sinks implement the
// library's record and routing contracts.
//
// Parameters:
//   - cfg: Configuration selecting output directory, file layout, debug
//     verbosity, and tracing integration
//   - opts: Optional construction hooks (observer, fatal hook, console
//     tee, stack traces, clock)
//
// Returns:
//   - *LoggerClient: A configured logger instance ready for use
//
// The logger is configured with:
//   - JSON encoding, one record per line
//   - Field order level, event_time, msg, trace_id
//   - Unix-second string timestamps
//   - Lowercase level names ("debug" through "fatal")
//   - Lazily opened file sinks with a permanent stderr fallback
//
// Construction performs no I/O: files are opened on first write, so a
// misconfigured path surfaces as a stderr fallback at logging time, not
// as a constructor failure.
//
// Example (single shared file):
//
//	log := logger.NewLoggerClient(logger.Config{
//	    LogPath: "/var/log/app",
//	    AppName: "billing",
//	    Debug:   true,
//	})
//	log.Info("service started")
//
// Example (per-level files):
//
//	log := logger.NewLoggerClient(logger.Config{
//	    LogPath:   "/var/log/app",
//	    AppName:   "billing",
//	    MultiFile: true,
//	})
func NewLoggerClient(cfg Config, opts ...Option) *LoggerClient {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	eng := newEngine(cfg, o)
	zapOpts := []zap.Option{zap.WithClock(eng.clock)}
	if o.stacktraceLevel != "" {
		zapOpts = append(zapOpts, zap.AddStacktrace(levelByName(o.stacktraceLevel)))
	}
	if o.fatalHook != nil {
		zapOpts = append(zapOpts, zap.WithFatalHook(o.fatalHook))
	}

	return &LoggerClient{
		Zap:            zap.New(eng.buildCore(o), zapOpts...),
		eng:            eng,
		scope:          &traceScope{},
		tracingEnabled: cfg.EnableTracing,
	}
}

// Config returns the configuration the client was built with.
func (c *LoggerClient) Config() Config {
	return c.eng.cfg
}

// Sync flushes every open sink file to stable storage. It returns
// ErrClientClosed after Close; sync failures for individual sinks are
// combined into one error.
func (c *LoggerClient) Sync() error {
	if c.eng.closed.Load() {
		return ErrClientClosed
	}
	var err error
	for _, s := range c.eng.sinks {
		err = multierr.Append(err, s.Sync())
	}
	return err
}

// Close flushes and closes every sink file. The client and all clients
// derived from it with Scoped share those sinks, so Close retires them
// together. Records logged after Close are dropped, except fatal ones,
// which still reach stderr before the process exits. A second Close
// returns ErrClientClosed.
func (c *LoggerClient) Close() error {
	if !c.eng.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}
	var err error
	for _, s := range c.eng.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}
