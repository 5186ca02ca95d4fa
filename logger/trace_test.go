package logger

import (
	"context"
	"strings"
	"sync"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func lastTraceID(t *testing.T, lines []string) (string, bool) {
	t.Helper()
	if len(lines) == 0 {
		t.Fatal("no lines emitted")
	}
	rec := decodeRecord(t, lines[len(lines)-1])
	id, ok := rec["trace_id"].(string)
	return id, ok
}

// --- Ambient scope ---

func TestWithTraceID_AppliesToSubsequentRecords(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger(t, Config{Debug: true})

	l.Info("before")
	token := l.WithTraceID("req-1")
	l.Info("during")
	l.ResetTraceID(token)
	l.Info("after")

	lines := buf.Lines()
	if _, ok := lastTraceID(t, lines[:1]); ok {
		t.Error("record before WithTraceID must carry no trace id")
	}
	if id, _ := lastTraceID(t, lines[:2]); id != "req-1" {
		t.Errorf("expected trace id 'req-1', got %q", id)
	}
	if _, ok := lastTraceID(t, lines); ok {
		t.Error("record after ResetTraceID must carry no trace id")
	}
}

func TestWithTraceID_NestsLIFO(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger(t, Config{Debug: true})

	outer := l.WithTraceID("outer")
	inner := l.WithTraceID("inner")
	l.Info("innermost")
	l.ResetTraceID(inner)
	l.Info("back to outer")
	l.ResetTraceID(outer)
	l.Info("back to none")

	lines := buf.Lines()
	if id, _ := lastTraceID(t, lines[:1]); id != "inner" {
		t.Errorf("expected 'inner', got %q", id)
	}
	if id, _ := lastTraceID(t, lines[:2]); id != "outer" {
		t.Errorf("expected 'outer', got %q", id)
	}
	if _, ok := lastTraceID(t, lines); ok {
		t.Error("expected no trace id after both resets")
	}
}

func TestResetTraceID_RestoresCapturedStateRegardless(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger(t, Config{Debug: true})

	outer := l.WithTraceID("outer")
	l.WithTraceID("inner") // token deliberately discarded
	l.ResetTraceID(outer)  // outer reset while inner still installed
	l.Info("x")

	// The outer token restores the state it captured: no trace id.
	if _, ok := lastTraceID(t, buf.Lines()); ok {
		t.Error("outer token must restore its captured state even past an unreset inner id")
	}
}

func TestResetTraceID_ForeignAndZeroTokensAreNoOps(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger(t, Config{Debug: true})
	other, _ := newBufferLogger(t, Config{Debug: true})

	l.WithTraceID("mine")
	foreign := other.WithTraceID("theirs")

	l.ResetTraceID(foreign) // foreign token
	l.ResetTraceID(Token{}) // zero token
	l.Info("still mine")

	if id, _ := lastTraceID(t, buf.Lines()); id != "mine" {
		t.Errorf("expected 'mine' to survive foreign/zero resets, got %q", id)
	}
}

// --- Scoped ---

func TestScoped_IndependentAmbientScopes(t *testing.T) {
	t.Parallel()
	base, buf := newBufferLogger(t, Config{Debug: true})
	worker := base.Scoped()

	base.WithTraceID("base-id")
	worker.Info("from worker")
	worker.WithTraceID("worker-id")
	base.Info("from base")

	lines := buf.Lines()
	if _, ok := lastTraceID(t, lines[:1]); ok {
		t.Error("a fresh scope must start empty")
	}
	if id, _ := lastTraceID(t, lines[:2]); id != "base-id" {
		t.Errorf("base scope leaked: got %q", id)
	}
}

func TestScoped_SharesSinksAndStats(t *testing.T) {
	t.Parallel()
	base, buf := newBufferLogger(t, Config{Debug: true})
	worker := base.Scoped()

	base.Info("one")
	worker.Info("two")

	if len(buf.Lines()) != 2 {
		t.Fatalf("scoped clients must share sinks, got %d lines", len(buf.Lines()))
	}
	if base.Stats().Emitted != 2 || worker.Stats().Emitted != 2 {
		t.Error("scoped clients must share counters")
	}
}

func TestScoped_ConcurrentPathsDoNotBleed(t *testing.T) {
	t.Parallel()
	base, buf := newBufferLogger(t, Config{Debug: true})

	const paths = 4
	const perPath = 25

	var wg sync.WaitGroup
	for p := 0; p < paths; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			l := base.Scoped()
			id := string(rune('A' + p))
			l.WithTraceID(id)
			for i := 0; i < perPath; i++ {
				l.Info("path", id, "line", i)
			}
		}(p)
	}
	wg.Wait()

	lines := buf.Lines()
	if len(lines) != paths*perPath {
		t.Fatalf("expected %d lines, got %d", paths*perPath, len(lines))
	}
	for _, line := range lines {
		rec := decodeRecord(t, line)
		id := rec["trace_id"].(string)
		if !strings.Contains(rec["msg"].(string), "path "+id) {
			t.Fatalf("trace id bled across paths: %s", line)
		}
	}
}

// --- Explicit trace id methods ---

func TestCtxMethods_BypassAndPreserveAmbientScope(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger(t, Config{Debug: true})

	l.WithTraceID("ambient")
	l.CtxInfo("explicit", "via ctx method")
	l.Info("via plain method")

	lines := buf.Lines()
	if id, _ := lastTraceID(t, lines[:1]); id != "explicit" {
		t.Errorf("expected 'explicit', got %q", id)
	}
	if id, _ := lastTraceID(t, lines); id != "ambient" {
		t.Errorf("ambient scope must survive Ctx calls, got %q", id)
	}
}

func TestCtxMethods_EmptyIDOmitsField(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger(t, Config{Debug: true})

	l.CtxInfo("", "no id")

	if _, ok := lastTraceID(t, buf.Lines()); ok {
		t.Error("empty explicit id must omit the trace_id field")
	}
}

// --- Context carrier ---

func TestContextWithTraceID_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := ContextWithTraceID(context.Background(), "req-77")

	id, ok := TraceIDFromContext(ctx)
	if !ok || id != "req-77" {
		t.Errorf("expected ('req-77', true), got (%q, %v)", id, ok)
	}

	if _, ok := TraceIDFromContext(context.Background()); ok {
		t.Error("background context must carry no trace id")
	}
	if _, ok := TraceIDFromContext(ContextWithTraceID(context.Background(), "")); ok {
		t.Error("an empty installed id reads back as absent")
	}
}

func TestContextMethods_UseCarrierID(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger(t, Config{Debug: true})

	ctx := ContextWithTraceID(context.Background(), "req-88")
	l.InfoContext(ctx, "carried")
	l.InfoContext(context.Background(), "not carried")

	lines := buf.Lines()
	if id, _ := lastTraceID(t, lines[:1]); id != "req-88" {
		t.Errorf("expected 'req-88', got %q", id)
	}
	if _, ok := lastTraceID(t, lines); ok {
		t.Error("plain context must produce no trace id")
	}
}

// --- OpenTelemetry span fallback ---

func TestContextMethods_SpanFallbackWhenTracingEnabled(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger(t, Config{Debug: true, EnableTracing: true})

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	l.InfoContext(ctx, "inside span")

	want := span.SpanContext().TraceID().String()
	if id, _ := lastTraceID(t, buf.Lines()); id != want {
		t.Errorf("expected span trace id %q, got %q", want, id)
	}
}

func TestContextMethods_CarrierWinsOverSpan(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger(t, Config{Debug: true, EnableTracing: true})

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	ctx = ContextWithTraceID(ctx, "explicit-wins")

	l.InfoContext(ctx, "both present")

	if id, _ := lastTraceID(t, buf.Lines()); id != "explicit-wins" {
		t.Errorf("expected the carrier id to win, got %q", id)
	}
}

func TestContextMethods_SpanIgnoredWhenTracingDisabled(t *testing.T) {
	t.Parallel()
	l, buf := newBufferLogger(t, Config{Debug: true})

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	l.InfoContext(ctx, "span but disabled")

	if _, ok := lastTraceID(t, buf.Lines()); ok {
		t.Error("span trace id must be ignored without EnableTracing")
	}
}

func TestExtractTraceID_NilContext(t *testing.T) {
	t.Parallel()
	l, _ := newBufferLogger(t, Config{Debug: true, EnableTracing: true})
	//nolint:staticcheck // intentionally passing nil to test guard
	if id := l.extractTraceID(nil); id != "" {
		t.Errorf("expected empty id for nil context, got %q", id)
	}
}

// --- NewTraceID ---

func TestNewTraceID_ShortAndUnique(t *testing.T) {
	t.Parallel()
	a := NewTraceID()
	b := NewTraceID()

	if len(a) != 8 {
		t.Errorf("expected 8 characters, got %d (%q)", len(a), a)
	}
	if a == b {
		t.Error("consecutive ids must differ")
	}
	for _, r := range a {
		if !strings.ContainsRune("0123456789abcdef-", r) {
			t.Errorf("unexpected character %q in trace id %q", r, a)
		}
	}
}
