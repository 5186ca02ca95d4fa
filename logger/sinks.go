package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/aalemi-dev/tracelog/observability"
)

// singleFilePath is the target of a shared sink: "{AppName}.log" under
// LogPath.
func singleFilePath(cfg Config) string {
	return filepath.Join(cfg.LogPath, cfg.AppName+".log")
}

// levelFilePath is the target of a per-level sink in multi-file mode:
// "{AppName}_{level}.log" under LogPath.
func levelFilePath(cfg Config, lvl zapcore.Level) string {
	return filepath.Join(cfg.LogPath, fmt.Sprintf("%s_%s.log", cfg.AppName, lvl.String()))
}

// sink is one output target of the router. It implements
// zapcore.WriteSyncer over a lazily opened file, stdout when no path is
// configured, or stderr after a failure.
//
// All state transitions happen under mu, so concurrent writers are
// serialized per sink and a record line is never interleaved with
// another. A sink that fails to open or write switches to the engine's
// fallback permanently; sink trouble is reported through stats and the
// observer, never to the logging caller.
type sink struct {
	eng   *engine
	label string // level name, or "all" for a shared sink
	path  string // "" means stdout

	mu     sync.Mutex
	ws     zapcore.WriteSyncer
	file   *os.File
	failed bool
}

func newSink(eng *engine, label, path string) *sink {
	return &sink{eng: eng, label: label, path: path}
}

// Write appends one encoded record line to the sink's target, opening
// it first if this is the sink's first write. Failures reroute the line
// to stderr; the returned error is always nil so the encoder pipeline
// above never sees sink trouble.
func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	var events []observability.OperationContext
	if s.ws == nil {
		events = s.openLocked(events)
	}
	if _, err := s.ws.Write(p); err != nil {
		s.eng.stats.writeErrors.Add(1)
		events = append(events, s.event("write_error", s.targetLocked(), 0, err, int64(len(p))))
		if !s.failed {
			events = s.failLocked(events, err)
			if _, err := s.ws.Write(p); err != nil {
				s.eng.stats.writeErrors.Add(1)
			}
		}
	}
	s.mu.Unlock()

	// Fired outside mu so an observer that logs through this same
	// client cannot deadlock against its own sink.
	for _, ev := range events {
		s.eng.observer.ObserveOperation(ev)
	}
	return len(p), nil
}

// Sync flushes the sink's file to stable storage. Stream targets have
// nothing to flush.
func (s *sink) Sync() error {
	s.mu.Lock()
	if s.file == nil {
		s.mu.Unlock()
		return nil
	}
	start := s.eng.clock.Now()
	err := s.file.Sync()
	ev := s.event("sync", s.path, s.eng.clock.Now().Sub(start), err, 0)
	s.mu.Unlock()

	s.eng.observer.ObserveOperation(ev)
	if err != nil {
		return fmt.Errorf("sync %s sink: %w", s.label, err)
	}
	return nil
}

// Close flushes and closes the sink's file. Writes arriving afterwards
// land on stderr. Closing a sink that never opened a file is a no-op.
func (s *sink) Close() error {
	s.mu.Lock()
	if s.file == nil {
		s.mu.Unlock()
		return nil
	}
	err := multierr.Append(s.file.Sync(), s.file.Close())
	if err != nil {
		err = fmt.Errorf("close %s sink: %w", s.label, err)
	}
	s.file = nil
	s.ws = s.eng.fallback
	ev := s.event("close", s.path, 0, err, 0)
	s.mu.Unlock()

	s.eng.observer.ObserveOperation(ev)
	return err
}

// openLocked resolves the sink's target on first write. Open failures
// switch straight to the fallback.
func (s *sink) openLocked(events []observability.OperationContext) []observability.OperationContext {
	if s.path == "" {
		s.ws = s.eng.stdout
		return append(events, s.event("open", "stdout", 0, nil, 0))
	}

	start := s.eng.clock.Now()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		events = append(events, s.event("open", s.path, 0, err, 0))
		return s.failLocked(events, err)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		events = append(events, s.event("open", s.path, 0, err, 0))
		return s.failLocked(events, err)
	}
	s.file = f
	s.ws = f
	return append(events, s.event("open", s.path, s.eng.clock.Now().Sub(start), nil, 0))
}

// failLocked reroutes the sink to stderr permanently and announces the
// switch once through the fallback itself.
func (s *sink) failLocked(events []observability.OperationContext, cause error) []observability.OperationContext {
	s.failed = true
	s.ws = s.eng.fallback
	s.eng.stats.fallbacks.Add(1)
	fmt.Fprintf(s.eng.fallback, "tracelog: %s sink unavailable, writing to stderr: %v\n", s.label, cause)
	return append(events, s.event("fallback", "stderr", 0, cause, 0))
}

// targetLocked names where writes currently land, for diagnostics.
func (s *sink) targetLocked() string {
	switch {
	case s.failed:
		return "stderr"
	case s.path == "":
		return "stdout"
	}
	return s.path
}

func (s *sink) event(op, target string, d time.Duration, err error, size int64) observability.OperationContext {
	return observability.OperationContext{
		Component:   "sink",
		Operation:   op,
		Resource:    s.label,
		SubResource: target,
		Duration:    d,
		Error:       err,
		Size:        size,
	}
}
