package logger

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/tracelog/observability"
)

// FXModule defines the Fx module for the logger package.
// This module integrates the logger into an Fx-based application by providing
// the logger factory and registering its lifecycle hooks.
//
// The module provides:
// 1. *LoggerClient (concrete type) for direct use
// 2. Logger interface for dependency injection
// 3. Lifecycle management for proper cleanup
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{LogPath: "/var/log/app", AppName: "api"}
//	    }),
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A logger.Config instance must be available in the dependency injection container
// - An observability.Observer is picked up when present (for example from
//   metrics.FXModule) and attached to the client
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClientWithDI, // Provides *LoggerClient
		// Also provide the Logger interface
		fx.Annotate(
			func(l *LoggerClient) Logger { return l },
			fx.As(new(Logger)),
		),
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

type LoggerParams struct {
	fx.In

	Config   Config
	Observer observability.Observer `optional:"true"`
}

func NewLoggerClientWithDI(params LoggerParams) *LoggerClient {
	var opts []Option

	// Attach the observer if the container has one
	if params.Observer != nil {
		opts = append(opts, WithObserver(params.Observer))
	}

	return NewLoggerClient(params.Config, opts...)
}

// RegisterLoggerLifecycle handles flushing and closing the client's sinks.
// This function registers a shutdown hook with the Fx lifecycle system that
// ensures every open log file is flushed to stable storage and closed when
// the application terminates.
//
// Parameters:
//   - lc: The Fx lifecycle controller
//   - client: The logger instance to be managed
//
// The lifecycle hook:
//   - OnStop: Calls Close() on the client, which syncs and closes every
//     sink file the client lazily opened during its lifetime
//
// This ensures that no log lines are lost to page cache if the host goes
// down right after the application exits.
//
// Note: This function is automatically invoked by the FXModule and does not need
// to be called directly in application code.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close() // syncs, then closes, every open sink
		},
	})
}
