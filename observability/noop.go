package observability

// NoOpObserver is an Observer that discards every operation.
// It is the default observer when none is configured, so pipeline
// code can always call ObserveOperation without a nil check.
type NoOpObserver struct{}

// ObserveOperation does nothing (no-op).
func (n *NoOpObserver) ObserveOperation(ctx OperationContext) {
	// No-op
}

// NewNoOpObserver creates a new NoOpObserver.
func NewNoOpObserver() Observer {
	return &NoOpObserver{}
}
