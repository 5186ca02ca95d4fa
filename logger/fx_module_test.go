package logger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"github.com/aalemi-dev/tracelog/observability"
)

func TestFXModule_ProvidesClientAndInterface(t *testing.T) {
	dir := t.TempDir()

	var client *LoggerClient
	var iface Logger

	app := fxtest.New(t,
		fx.Supply(Config{LogPath: dir, AppName: "fxsvc", Debug: true}),
		FXModule,
		fx.Populate(&client, &iface),
	)
	app.RequireStart()

	require.NotNil(t, client)
	require.NotNil(t, iface)
	assert.Same(t, client, iface.(*LoggerClient), "interface and concrete must be the same instance")

	client.Info("from fx")
	app.RequireStop()

	lines := readLines(t, filepath.Join(dir, "fxsvc.log"))
	require.Len(t, lines, 1)
	assert.Equal(t, "from fx", decodeRecord(t, lines[0])["msg"])
}

func TestFXModule_OnStopClosesSinks(t *testing.T) {
	dir := t.TempDir()

	var client *LoggerClient
	app := fxtest.New(t,
		fx.Supply(Config{LogPath: dir, AppName: "fxsvc"}),
		FXModule,
		fx.Populate(&client),
	)
	app.RequireStart()
	client.Info("before stop")
	app.RequireStop()

	err := client.Close()
	assert.True(t, errors.Is(err, ErrClientClosed), "lifecycle should have closed the client, got %v", err)
}

func TestFXModule_AttachesObserverWhenProvided(t *testing.T) {
	obs := &recordingObserver{}

	var client *LoggerClient
	app := fxtest.New(t,
		fx.Supply(Config{Debug: true}),
		fx.Provide(func() observability.Observer { return obs }),
		FXModule,
		fx.Populate(&client),
	)
	app.RequireStart()
	defer app.RequireStop()

	client.eng.stdout = &zaptest.Buffer{}
	client.Info("observed")

	require.NotEmpty(t, obs.find("logger", "emit"), "observer from the container should see emits")
}

func TestRegisterLoggerLifecycle_Direct(t *testing.T) {
	dir := t.TempDir()
	client := NewLoggerClient(Config{LogPath: dir, AppName: "direct"})

	lc := fxtest.NewLifecycle(t)
	RegisterLoggerLifecycle(lc, client)

	lc.RequireStart()
	client.Info("alive")
	lc.RequireStop()

	assert.True(t, errors.Is(client.Sync(), ErrClientClosed), "OnStop must close the client")
}
