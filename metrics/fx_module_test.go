package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/tracelog/logger"
	"github.com/aalemi-dev/tracelog/metrics"
	"github.com/aalemi-dev/tracelog/observability"
)

func TestFXModuleProvidesLogMetrics(t *testing.T) {
	t.Parallel()
	var m *metrics.LogMetrics

	app := fxtest.New(t,
		metrics.FXModule,
		fx.Provide(func() metrics.Config {
			return metrics.Config{ServiceName: "fx-test", MetricsAddress: metrics.Ptr("")}
		}),
		fx.Provide(func() *logger.LoggerClient {
			return logger.NewLoggerClient(logger.Config{AppName: "fx-test"})
		}),
		fx.Populate(&m),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, m)
}

func TestFXModuleProvidesObserverInterface(t *testing.T) {
	t.Parallel()
	var obs observability.Observer

	app := fxtest.New(t,
		metrics.FXModule,
		fx.Provide(func() metrics.Config {
			return metrics.Config{ServiceName: "fx-test", MetricsAddress: metrics.Ptr("")}
		}),
		fx.Provide(func() *logger.LoggerClient {
			return logger.NewLoggerClient(logger.Config{AppName: "fx-test"})
		}),
		fx.Populate(&obs),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, obs)
}

// TestFXModuleWiresObserverIntoLogger runs both modules side by side and
// checks that the logger module picks the observer up from the container
// without any explicit wiring.
func TestFXModuleWiresObserverIntoLogger(t *testing.T) {
	t.Parallel()
	var client *logger.LoggerClient
	var m *metrics.LogMetrics

	app := fxtest.New(t,
		logger.FXModule,
		metrics.FXModule,
		fx.Supply(logger.Config{LogPath: t.TempDir(), AppName: "fxapp"}),
		fx.Supply(metrics.Config{ServiceName: "fxapp", MetricsAddress: metrics.Ptr("")}),
		fx.Populate(&client, &m),
	)

	app.RequireStart()
	client.Info("counted")
	app.RequireStop()

	body := scrape(t, m)
	assert.Contains(t, body, `tracelog_lines_emitted_total{level="info",service="fxapp"} 1`)
	assert.Contains(t, body, `tracelog_sink_events_total{event="close",level="all",service="fxapp"} 1`)
}

func TestRegisterMetricsLifecycleStartsAndStops(t *testing.T) {
	t.Parallel()
	addr := "127.0.0.1:0"

	m := metrics.NewLogMetrics(metrics.Config{
		ServiceName:    "lifecycle-test",
		MetricsAddress: &addr,
	})
	log := logger.NewLoggerClient(logger.Config{AppName: "lifecycle-test"})

	app := fxtest.New(t,
		fx.Provide(func() *metrics.LogMetrics { return m }),
		fx.Provide(func() *logger.LoggerClient { return log }),
		fx.Invoke(metrics.RegisterMetricsLifecycle),
	)

	app.RequireStart()
	assert.NotPanics(t, func() { app.RequireStop() })
}

func TestRegisterMetricsLifecycleDisabledServer(t *testing.T) {
	t.Parallel()

	m := metrics.NewLogMetrics(metrics.Config{
		ServiceName:    "disabled-test",
		MetricsAddress: metrics.Ptr(""),
	})
	require.Nil(t, m.Server)

	log := logger.NewLoggerClient(logger.Config{AppName: "disabled-test"})

	app := fxtest.New(t,
		fx.Provide(func() *metrics.LogMetrics { return m }),
		fx.Provide(func() *logger.LoggerClient { return log }),
		fx.Invoke(metrics.RegisterMetricsLifecycle),
	)

	app.RequireStart()
	assert.NotPanics(t, func() { app.RequireStop() })
}
