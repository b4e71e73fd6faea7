package integration

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/adhan-alarm/internal/config"
	"github.com/oshokin/adhan-alarm/internal/service/common"
	"github.com/oshokin/adhan-alarm/internal/service/daemon"
)

// testDaemon is a running adhand with a connected client.
type testDaemon struct {
	addr        string
	metricsAddr string
	storePath   string
	client      *common.Client
}

// startDaemon runs the daemon with a temporary config, a sleeping player and
// the log notifier. The daemon is stopped when the test ends.
func startDaemon(t *testing.T, prepare func(storePath string)) *testDaemon {
	t.Helper()

	dir := t.TempDir()
	assetsDir := filepath.Join(dir, "assets")
	require.NoError(t, os.MkdirAll(assetsDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "adhan_default.mp3"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "adhan_makkah.ogg"), nil, 0o600))

	d := &testDaemon{
		addr:        reservePort(t),
		metricsAddr: reservePort(t),
		storePath:   filepath.Join(dir, "schedule.json"),
	}

	if prepare != nil {
		prepare(d.storePath)
	}

	cfg := config.Default()
	cfg.ServerAddress = d.addr
	cfg.MetricsAddress = d.metricsAddr
	cfg.Timeout = 3 * time.Second
	cfg.Store.Path = d.storePath
	cfg.Store.Watch = true
	cfg.Timer.ExactAllowed = true
	cfg.Notifier.Backends = []string{config.NotifierLog}
	cfg.Player.Command = []string{"sh", "-c", "exec sleep 30", "%s"}
	cfg.Player.AssetsDir = assetsDir

	cfgPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, config.Save(cfgPath, cfg))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- daemon.Run(ctx, &daemon.Options{
			ConfigPath:    cfgPath,
			WatchDebounce: 50 * time.Millisecond,
		})
	}()

	client, err := common.Dial(ctx, d.addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	d.client = client

	// Wait until the control API answers.
	require.Eventually(t, func() bool {
		_, listErr := client.ListAlarms(ctx)
		return listErr == nil
	}, 5*time.Second, 20*time.Millisecond)

	t.Cleanup(func() {
		_ = client.Close()

		cancel()

		select {
		case runErr := <-done:
			require.NoError(t, runErr)
		case <-time.After(20 * time.Second):
			t.Error("daemon did not stop")
		}
	})

	return d
}

// reservePort returns address on a free TCP port and closes it.
func reservePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}
