package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/tracelog/logger"
	"github.com/aalemi-dev/tracelog/observability"
)

// FXModule defines the Fx module for the metrics package.
// This module integrates the Prometheus metrics endpoint into an Fx-based
// application by providing the LogMetrics factory and registering
// lifecycle hooks for its HTTP server.
//
// The module provides:
// 1. *LogMetrics (concrete type) for direct use
// 2. observability.Observer interface for dependency injection
// 3. Lifecycle management for the metrics HTTP server
//
// Because the module provides observability.Observer, adding it next to
// logger.FXModule is enough to get an instrumented pipeline: the logger
// module picks the observer up from the container and every emit, drop,
// and sink event lands in the Prometheus registry.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{LogPath: "/var/log/app", AppName: "api"}
//	    }),
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ServiceName: "api"}
//	    }),
//	)
//
// Dependencies required by this module:
// - A metrics.Config instance must be available in the dependency injection container
// - A logger.LoggerClient instance for startup/shutdown logs
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewLogMetrics, // Provides *LogMetrics
		// Also provide the Observer interface
		fx.Annotate(
			func(m *LogMetrics) observability.Observer { return m },
			fx.As(new(observability.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle), // Registers the lifecycle hooks
)

// RegisterMetricsLifecycle manages the startup and shutdown lifecycle
// of the Prometheus metrics HTTP server.
//
// Parameters:
//   - lc: The Fx lifecycle controller
//   - m: The LogMetrics instance containing the HTTP server
//   - log: The logger instance for structured lifecycle logging
//
// The lifecycle hook:
//   - OnStart: Launches the metrics server in a background goroutine
//   - OnStop: Gracefully shuts down the server
//
// When the endpoint is disabled (Config.MetricsAddress = Ptr("")), the
// hooks do nothing; the registry keeps serving Handler() consumers.
//
// Note: This function is automatically invoked by the FXModule and does not need
// to be called directly in application code.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *LogMetrics, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if m.Server == nil {
				return nil
			}

			go func() {
				log.Infof("starting metrics server on %s", m.Server.Addr)

				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorf("metrics server failed: %v", err)
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if m.Server == nil {
				return nil
			}

			log.Info("shutting down metrics server")
			return m.Server.Shutdown(ctx)
		},
	})
}
