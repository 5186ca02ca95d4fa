package logger

import "errors"

// Sentinel errors returned by lifecycle methods.
//
// The logging path itself never returns an error: a failed open or write
// reroutes the affected sink to stderr and is reported through Stats and
// the configured observer instead. Only the explicit lifecycle surfaces
// (Sync, Close) surface errors, and they wrap the underlying cause so
// callers can unwrap with errors.Is / errors.As.
var (
	// ErrClientClosed is returned by Sync and Close once the client has
	// already been closed.
	ErrClientClosed = errors.New("logger: client closed")
)
