package playback

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
	"github.com/oshokin/adhan-alarm/internal/metrics"
)

// Player failure stages reported to metrics.
const (
	stageLoad  = "load"
	stageStart = "start"
	stageStop  = "stop"
)

// alarmAudio is requested for every Adhan.
//
//nolint:gochecknoglobals // Read-only attributes.
var alarmAudio = adhan.AudioAttributes{
	Usage:       adhan.UsageAlarm,
	ContentType: adhan.ContentTypeMusic,
}

// Controller is the Idle/Playing state machine around a single Player session.
type Controller struct {
	// player loads and plays recordings.
	player adhan.Player
	// notifier shows the Adhan notification.
	notifier adhan.Notifier
	// recorder counts failures and tracks the playing gauge.
	recorder metrics.Recorder
	// opts holds notification texts and defaults.
	opts Options

	// mu covers release of the old session through acquisition of the new one.
	mu sync.Mutex
	// session is the current playback; zero value means Idle.
	session adhan.PlaybackSession
}

// NewController creates an idle controller. A nil recorder disables metrics.
func NewController(
	player adhan.Player,
	notifier adhan.Notifier,
	recorder metrics.Recorder,
	opts Options,
) *Controller {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	return &Controller{
		player:   player,
		notifier: notifier,
		recorder: recorder,
		opts:     opts.withDefaults(),
	}
}

// Trigger handles a fired alarm. Any active playback is stopped and released first,
// then the requested recording starts when sound is enabled. The notification is
// shown regardless of the playback outcome.
func (c *Controller) Trigger(ctx context.Context, payload *adhan.Payload) {
	if payload == nil {
		payload = &adhan.Payload{SoundEnabled: true}
	}

	ctx = logger.WithKV(ctx, "prayer", payload.PrayerName)

	c.mu.Lock()
	c.releaseLocked(ctx)

	if payload.SoundEnabled {
		if err := c.startLocked(ctx, payload.AudioAssetRef); err != nil {
			logger.ErrorKV(ctx, "Adhan playback failed, continuing with notification only", "error", err)
		}
	}

	playing := c.session.IsPlaying
	c.mu.Unlock()

	c.recorder.SetPlaying(playing)
	c.notify(ctx, payload.PrayerName)
}

// PlayTest plays an asset without a notification, replacing any active playback.
func (c *Controller) PlayTest(ctx context.Context, assetRef string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseLocked(ctx)

	err := c.startLocked(ctx, assetRef)
	c.recorder.SetPlaying(c.session.IsPlaying)

	return err
}

// Teardown stops and releases the active playback. Calling it while idle is a no-op.
func (c *Controller) Teardown(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseLocked(ctx)
	c.recorder.SetPlaying(false)
}

// IsPlaying reports whether an Adhan is playing right now.
func (c *Controller) IsPlaying() bool {
	return c.Session().IsPlaying
}

// CurrentAsset returns the asset of the active session.
func (c *Controller) CurrentAsset() (string, bool) {
	s := c.Session()

	return s.CurrentAsset, s.IsPlaying
}

// Session returns a snapshot of the playback session. A recording that finished on
// its own is released before the snapshot is taken.
func (c *Controller) Session() adhan.PlaybackSession {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.IsPlaying && !c.player.IsPlaying(c.session.Handle) {
		ctx := logger.WithKV(context.Background(), "asset", c.session.CurrentAsset)
		logger.DebugKV(ctx, "Adhan finished")

		c.releaseLocked(ctx)
		c.recorder.SetPlaying(false)
	}

	return c.session
}

// startLocked loads and starts the asset and binds it to the session.
func (c *Controller) startLocked(ctx context.Context, assetRef string) error {
	if strings.TrimSpace(assetRef) == "" {
		assetRef = c.opts.DefaultAsset
	}

	handle, err := c.player.Load(ctx, assetRef, alarmAudio)
	if err != nil {
		c.recorder.IncPlaybackFailure(stageLoad)
		return fmt.Errorf("load %s: %w", assetRef, err)
	}

	if err = c.player.Start(ctx, handle); err != nil {
		c.recorder.IncPlaybackFailure(stageStart)

		if releaseErr := c.player.Release(ctx, handle); releaseErr != nil {
			logger.WarnKV(ctx, "Release after failed start", "error", releaseErr)
		}

		return fmt.Errorf("start %s: %w", assetRef, err)
	}

	c.session = adhan.PlaybackSession{
		Handle:       handle,
		CurrentAsset: assetRef,
		IsPlaying:    true,
	}

	logger.InfoKV(ctx, "Adhan playing", "asset", assetRef)

	return nil
}

// releaseLocked stops and releases the session handle, if any, and resets the session.
func (c *Controller) releaseLocked(ctx context.Context) {
	if c.session.Handle == 0 {
		c.session.Reset()
		return
	}

	handle := c.session.Handle

	if err := c.player.Stop(ctx, handle); err != nil {
		c.recorder.IncPlaybackFailure(stageStop)
		logger.WarnKV(ctx, "Stop Adhan", "asset", c.session.CurrentAsset, "error", err)
	}

	if err := c.player.Release(ctx, handle); err != nil {
		logger.WarnKV(ctx, "Release Adhan", "asset", c.session.CurrentAsset, "error", err)
	}

	logger.DebugKV(ctx, "Adhan released", "asset", c.session.CurrentAsset)
	c.session.Reset()
}

// notify ensures the channel and shows the Adhan notification.
func (c *Controller) notify(ctx context.Context, prayerName string) {
	if err := c.notifier.EnsureChannel(ctx, c.opts.Channel); err != nil {
		logger.WarnKV(ctx, "Ensure notification channel", "channel", c.opts.Channel.ID, "error", err)
	}

	notification := &adhan.Notification{
		ID:         c.opts.NotificationID,
		ChannelID:  c.opts.Channel.ID,
		Title:      c.title(prayerName),
		Body:       c.opts.Body,
		Priority:   adhan.PriorityHigh,
		TapTarget:  c.tapTarget(prayerName),
		AutoCancel: true,
		Category:   adhan.CategoryAlarm,
	}

	if err := c.notifier.Show(ctx, notification); err != nil {
		c.recorder.IncNotificationFailure()
		logger.ErrorKV(ctx, "Show Adhan notification", "error", err)

		return
	}

	logger.InfoKV(ctx, "Adhan notification shown", "title", notification.Title)
}

func (c *Controller) title(prayerName string) string {
	label := strings.TrimSpace(prayerName)
	if label == "" {
		label = c.opts.FallbackLabel
	}

	return c.opts.TitlePrefix + " " + label
}

// tapTarget tags the configured target with the prayer and a per-trigger id.
func (c *Controller) tapTarget(prayerName string) string {
	u, err := url.Parse(c.opts.TapTarget)
	if err != nil {
		return c.opts.TapTarget
	}

	q := u.Query()
	q.Set("trigger", uuid.NewString())

	if prayerName != "" {
		q.Set("prayer", prayerName)
	}

	u.RawQuery = q.Encode()

	return u.String()
}
