package observability_test

import (
	"errors"
	"testing"
	"time"

	"github.com/aalemi-dev/tracelog/observability"
)

func TestOperationContext(t *testing.T) {
	ctx := observability.OperationContext{
		Component:   "sink",
		Operation:   "open",
		Resource:    "error",
		SubResource: "/var/log/app/myapp_error.log",
		Duration:    180 * time.Microsecond,
		Error:       nil,
		Size:        0,
		Metadata: map[string]interface{}{
			"attempt": "first",
		},
	}

	if ctx.Component != "sink" {
		t.Errorf("expected component 'sink', got '%s'", ctx.Component)
	}

	if ctx.Operation != "open" {
		t.Errorf("expected operation 'open', got '%s'", ctx.Operation)
	}

	if ctx.Duration != 180*time.Microsecond {
		t.Errorf("expected duration 180us, got %v", ctx.Duration)
	}
}

func TestNoOpObserver(t *testing.T) {
	observer := observability.NewNoOpObserver()

	// Should not panic
	observer.ObserveOperation(observability.OperationContext{
		Component: "logger",
		Operation: "emit",
	})
}

// Mock observer for testing
type mockObserver struct {
	called bool
	ctx    observability.OperationContext
}

func (m *mockObserver) ObserveOperation(ctx observability.OperationContext) {
	m.called = true
	m.ctx = ctx
}

func TestMockObserver(t *testing.T) {
	mock := &mockObserver{}

	ctx := observability.OperationContext{
		Component: "logger",
		Operation: "emit",
		Resource:  "info",
		Duration:  3 * time.Microsecond,
		Error:     errors.New("boom"),
	}

	mock.ObserveOperation(ctx)

	if !mock.called {
		t.Error("expected observer to be called")
	}

	if mock.ctx.Operation != "emit" {
		t.Errorf("expected operation 'emit', got '%s'", mock.ctx.Operation)
	}

	if mock.ctx.Error == nil {
		t.Error("expected error to be carried through")
	}
}
