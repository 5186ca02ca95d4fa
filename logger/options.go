package logger

import (
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/aalemi-dev/tracelog/observability"
)

// options collects construction-time knobs applied by Option values.
// Everything here has a working default; Config alone fully describes a
// production client.
type options struct {
	observer        observability.Observer
	fatalHook       zapcore.CheckWriteHook
	console         bool
	stacktraceLevel string
	clock           zapcore.Clock
}

func defaultOptions() options {
	return options{
		observer: observability.NewNoOpObserver(),
		clock:    zapcore.DefaultClock,
	}
}

// Option customizes a client at construction time. Options are applied
// in order, so a later option overrides an earlier one.
type Option func(*options)

// WithObserver installs an observability hook that receives every
// pipeline operation (emits, drops, sink opens, fallbacks, write
// errors). A nil observer is ignored.
//
// The observer must not log back through the client it observes.
func WithObserver(obs observability.Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithFatalHook overrides what happens after a fatal record has been
// written and flushed. The default terminates the process with exit
// status 1; tests install a recording hook to keep the process alive:
//
//	log := logger.NewLoggerClient(cfg,
//	    logger.WithFatalHook(zapcore.WriteThenPanic))
func WithFatalHook(hook zapcore.CheckWriteHook) Option {
	return func(o *options) { o.fatalHook = hook }
}

// WithConsole tees every record to stdout in addition to the configured
// file sinks, which helps when watching a service interactively. It has
// no effect when LogPath is empty, since records already go to stdout.
func WithConsole() Option {
	return func(o *options) { o.console = true }
}

// WithStacktrace attaches a "stacktrace" field to records at or above
// minLevel (one of the Level* constants). Off by default, keeping the
// record shape at the documented fields.
func WithStacktrace(minLevel string) Option {
	return func(o *options) { o.stacktraceLevel = minLevel }
}

// WithClock substitutes the timestamp source used for event_time,
// letting tests pin records to a known second.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = funcClock(now)
		}
	}
}

// funcClock adapts a plain time source to zapcore.Clock.
type funcClock func() time.Time

func (f funcClock) Now() time.Time { return f() }

func (f funcClock) NewTicker(d time.Duration) *time.Ticker { return time.NewTicker(d) }
