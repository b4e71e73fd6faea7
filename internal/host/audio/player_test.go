package audio

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
)

var alarmAttrs = adhan.AudioAttributes{
	Usage:       adhan.UsageAlarm,
	ContentType: adhan.ContentTypeMusic,
}

func TestNewProcessPlayer_EmptyCommand(t *testing.T) {
	t.Parallel()

	_, err := NewProcessPlayer(nil, NewCatalog(t.TempDir(), nil))
	require.ErrorIs(t, err, ErrEmptyCommand)
}

func TestInvocation(t *testing.T) {
	t.Parallel()

	templated, err := NewProcessPlayer([]string{"mpv", "--no-video", "--audio-file=%s"}, NewCatalog("", nil))
	require.NoError(t, err)

	name, args := templated.invocation("/a/b.mp3")
	require.Equal(t, "mpv", name)
	require.Equal(t, []string{"--no-video", "--audio-file=/a/b.mp3"}, args)

	appended, err := NewProcessPlayer([]string{"paplay"}, NewCatalog("", nil))
	require.NoError(t, err)

	name, args = appended.invocation("/a/b.mp3")
	require.Equal(t, "paplay", name)
	require.Equal(t, []string{"/a/b.mp3"}, args)
}

func TestEnvironment(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"PULSE_PROP=media.role=alarm media.category=Playback"}, environment(alarmAttrs))
	require.Nil(t, environment(adhan.AudioAttributes{}))
}

func TestProcessPlayer_Lifecycle(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	var (
		ctx = context.Background()
		dir = t.TempDir()
	)

	writeAsset(t, dir, AssetDefault+".mp3")

	player, err := NewProcessPlayer([]string{"sh", "-c", "exec sleep 30", "%s"}, NewCatalog(dir, nil))
	require.NoError(t, err)

	handle, err := player.Load(ctx, AssetDefault, alarmAttrs)
	require.NoError(t, err)
	require.NotZero(t, handle)
	require.False(t, player.IsPlaying(handle))

	require.NoError(t, player.Start(ctx, handle))
	require.True(t, player.IsPlaying(handle))

	require.NoError(t, player.Stop(ctx, handle))
	require.False(t, player.IsPlaying(handle))
	require.NoError(t, player.Stop(ctx, handle))

	require.NoError(t, player.Release(ctx, handle))
	require.NoError(t, player.Release(ctx, handle))
	require.ErrorIs(t, player.Start(ctx, handle), ErrUnknownHandle)
}

func TestProcessPlayer_FinishedTrack(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	var (
		ctx = context.Background()
		dir = t.TempDir()
	)

	writeAsset(t, dir, "short.wav")

	player, err := NewProcessPlayer([]string{"sh", "-c", "exit 0", "%s"}, NewCatalog(dir, nil))
	require.NoError(t, err)

	handle, err := player.Load(ctx, "short", alarmAttrs)
	require.NoError(t, err)
	require.NoError(t, player.Start(ctx, handle))

	require.Eventually(t, func() bool {
		return !player.IsPlaying(handle)
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, player.Release(ctx, handle))
}

func TestProcessPlayer_LoadMissing(t *testing.T) {
	t.Parallel()

	player, err := NewProcessPlayer([]string{"paplay"}, NewCatalog(t.TempDir(), nil))
	require.NoError(t, err)

	_, err = player.Load(context.Background(), AssetMadinah, alarmAttrs)
	require.ErrorIs(t, err, ErrAssetNotFound)
}
