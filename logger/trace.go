package logger

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// traceIDKey is the record field ambient and explicit trace ids are
// emitted under.
const traceIDKey = "trace_id"

// traceNode is one frame of a scope's stack of active trace ids.
// Nodes are immutable once published; the scope only ever swaps its
// head pointer, so readers never see a partially written frame.
type traceNode struct {
	id   string
	prev *traceNode
}

// traceScope holds the ambient trace id for one logical logging path.
// Every client owns exactly one scope; Scoped derives a client with a
// fresh scope for an independent path (one request, one worker).
//
// A scope is meant to be driven by a single goroutine. The atomic head
// makes concurrent misuse memory-safe, but interleaved pushes from two
// goroutines produce an interleaved stack, which is rarely what anyone
// wants. Use Scoped per goroutine instead.
type traceScope struct {
	head atomic.Pointer[traceNode]
}

// push installs id as the scope's current trace id and returns a Token
// that restores whatever was current before.
func (s *traceScope) push(id string) Token {
	n := &traceNode{id: id, prev: s.head.Load()}
	s.head.Store(n)
	return Token{scope: s, prev: n.prev}
}

// reset restores the state captured in t. Tokens minted by another
// scope, and the zero Token, are ignored.
func (s *traceScope) reset(t Token) {
	if t.scope != s {
		return
	}
	s.head.Store(t.prev)
}

// current returns the scope's active trace id, or "" when none is set.
func (s *traceScope) current() string {
	if n := s.head.Load(); n != nil {
		return n.id
	}
	return ""
}

// Token is the opaque restoration handle returned by WithTraceID.
// Passing it to ResetTraceID restores the trace id that was current when
// the Token was minted, regardless of what happened in between.
//
// The zero Token is valid and inert: resetting it is a no-op. A Token is
// bound to the scope that created it; handing it to a different client's
// ResetTraceID does nothing.
type Token struct {
	scope *traceScope
	prev  *traceNode
}

// WithTraceID sets id as the client's ambient trace id and returns a
// Token that undoes exactly this call. Every record emitted through this
// client afterwards carries the id in its "trace_id" field until the
// Token is reset or a nested WithTraceID overrides it.
//
// Calls nest: resetting the inner Token re-exposes the outer id, and
// resetting an outer Token restores its captured state even if inner
// Tokens were never reset. The conventional shape is:
//
//	token := log.WithTraceID("req-123")
//	defer log.ResetTraceID(token)
//
// The ambient id is per client. Derive one client per concurrent path
// with Scoped; two goroutines pushing onto the same scope interleave.
func (c *LoggerClient) WithTraceID(id string) Token {
	return c.scope.push(id)
}

// ResetTraceID restores the trace id captured in token. Tokens from a
// different client and the zero Token are ignored, so a stale or
// misrouted token can never corrupt the scope.
func (c *LoggerClient) ResetTraceID(token Token) {
	c.scope.reset(token)
}

// Scoped returns a client that shares this client's configuration and
// sinks but owns a fresh, empty trace scope. Records from the two
// clients interleave in the shared sinks exactly as before; only the
// ambient trace id is independent.
//
// Use it to give each goroutine, request, or worker its own ambient
// trace id without any coordination:
//
//	go func() {
//	    log := base.Scoped()
//	    log.WithTraceID(logger.NewTraceID())
//	    log.Info("worker started")
//	}()
func (c *LoggerClient) Scoped() *LoggerClient {
	return &LoggerClient{
		Zap:            c.Zap,
		eng:            c.eng,
		scope:          &traceScope{},
		tracingEnabled: c.tracingEnabled,
	}
}

// traceIDContextKey is the private context key for explicit trace ids.
type traceIDContextKey struct{}

// ContextWithTraceID returns a context carrying id for the *Context
// logging methods. The id travels with the context through the call
// chain, so handing the context to another goroutine moves the trace id
// with it, which the client-bound ambient scope cannot do.
func ContextWithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDContextKey{}, id)
}

// TraceIDFromContext reports the trace id carried by ctx, if any.
// It only inspects ids installed with ContextWithTraceID; OpenTelemetry
// span ids are a separate, lower-precedence source handled inside the
// *Context logging methods.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(traceIDContextKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// extractTraceID resolves the trace id for a *Context logging call:
// an explicit ContextWithTraceID value wins; otherwise, when tracing is
// enabled, the active recording span's trace id is used; otherwise the
// record carries no trace id.
func (c *LoggerClient) extractTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := TraceIDFromContext(ctx); ok {
		return id
	}
	if !c.tracingEnabled {
		return ""
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return ""
	}

	spanContext := span.SpanContext()
	if !spanContext.IsValid() {
		return ""
	}

	return spanContext.TraceID().String()
}

// NewTraceID generates a short random trace id suitable for tagging a
// request or worker at a path boundary. Eight hex characters of a UUID
// are plenty for correlating lines within one deployment's logs; use
// ContextWithTraceID or WithTraceID to install it.
func NewTraceID() string {
	return uuid.New().String()[:8]
}
