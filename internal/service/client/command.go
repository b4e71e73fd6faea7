package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/adhan-alarm/internal/config"
	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
	"github.com/oshokin/adhan-alarm/internal/service/common"
)

// Options configures how adhanctl reaches the daemon.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// Wait retries the call until the daemon answers or the context ends.
	Wait bool
}

// controlAPI is the subset of the daemon client used by the commands.
type controlAPI interface {
	ScheduleAlarm(ctx context.Context, alarm *adhan.ScheduledAlarm) error
	ScheduleAlarms(ctx context.Context, alarms []*adhan.ScheduledAlarm) error
	CancelAlarm(ctx context.Context, prayerName string) error
	CancelAllAlarms(ctx context.Context) error
	ListAlarms(ctx context.Context) ([]*adhan.ScheduledAlarm, error)
	FireAlarm(ctx context.Context, payload *adhan.Payload) error
	PlaybackStatus(ctx context.Context) (*common.PlaybackStatus, error)
	StopPlayback(ctx context.Context) error
	ListAudioAssets(ctx context.Context) ([]string, error)
	PlayTestAudio(ctx context.Context, assetRef string) error
}

// Commands runs control operations against the daemon and prints results.
type Commands struct {
	api           controlAPI
	out           io.Writer
	wait          bool
	retryInterval time.Duration
}

// defaultRetryInterval defines the delay between attempts when waiting for the daemon.
const defaultRetryInterval = 1 * time.Second

// ErrNothingToCancel is returned when cancel is called without names.
var ErrNothingToCancel = errors.New("no prayer names given, use --all to cancel every alarm")

// Connect loads settings and dials the daemon.
// The returned close function releases the connection.
func Connect(ctx context.Context, opts *Options, out io.Writer) (*Commands, func() error, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return nil, nil, err
	}

	logger.DebugKV(ctx, "Connected to adhan daemon", "server_address", serverAddress)

	return newCommands(client, out, opts.Wait), client.Close, nil
}

func newCommands(api controlAPI, out io.Writer, wait bool) *Commands {
	return &Commands{
		api:           api,
		out:           out,
		wait:          wait,
		retryInterval: defaultRetryInterval,
	}
}

// Schedule schedules one or more alarms.
func (c *Commands) Schedule(ctx context.Context, alarms []*adhan.ScheduledAlarm) error {
	err := c.call(ctx, "schedule", func() error {
		if len(alarms) == 1 {
			return c.api.ScheduleAlarm(ctx, alarms[0])
		}

		return c.api.ScheduleAlarms(ctx, alarms)
	})
	if err != nil {
		return err
	}

	for _, alarm := range alarms {
		c.printf("Scheduled %s at %s\n", alarm.PrayerName, formatTrigger(alarm))
	}

	return nil
}

// Cancel cancels the named alarms, or every alarm when all is set.
func (c *Commands) Cancel(ctx context.Context, prayerNames []string, all bool) error {
	if all {
		if err := c.call(ctx, "cancel all", func() error { return c.api.CancelAllAlarms(ctx) }); err != nil {
			return err
		}

		c.printf("Cancelled all alarms\n")

		return nil
	}

	if len(prayerNames) == 0 {
		return ErrNothingToCancel
	}

	for _, name := range prayerNames {
		if err := c.call(ctx, "cancel", func() error { return c.api.CancelAlarm(ctx, name) }); err != nil {
			return err
		}

		c.printf("Cancelled %s\n", name)
	}

	return nil
}

// List prints the pending alarms as a table.
func (c *Commands) List(ctx context.Context) error {
	var alarms []*adhan.ScheduledAlarm

	err := c.call(ctx, "list", func() error {
		var listErr error

		alarms, listErr = c.api.ListAlarms(ctx)

		return listErr
	})
	if err != nil {
		return err
	}

	if len(alarms) == 0 {
		c.printf("No pending alarms\n")

		return nil
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PRAYER\tTRIGGER AT\tASSET\tSOUND")

	for _, alarm := range alarms {
		asset := alarm.AudioAssetRef
		if asset == "" {
			asset = adhan.DefaultAudioAsset
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", alarm.PrayerName, formatTrigger(alarm), asset, onOff(alarm.SoundEnabled))
	}

	return w.Flush()
}

// Fire delivers a fire event for the payload immediately.
func (c *Commands) Fire(ctx context.Context, payload *adhan.Payload) error {
	if err := c.call(ctx, "fire", func() error { return c.api.FireAlarm(ctx, payload) }); err != nil {
		return err
	}

	c.printf("Fired %s\n", displayName(payload.PrayerName))

	return nil
}

// Status prints the playback session.
func (c *Commands) Status(ctx context.Context) error {
	var playback *common.PlaybackStatus

	err := c.call(ctx, "status", func() error {
		var statusErr error

		playback, statusErr = c.api.PlaybackStatus(ctx)

		return statusErr
	})
	if err != nil {
		return err
	}

	if !playback.IsPlaying {
		c.printf("Idle\n")

		return nil
	}

	c.printf("Playing %s\n", playback.CurrentAsset)

	return nil
}

// Stop stops the current Adhan.
func (c *Commands) Stop(ctx context.Context) error {
	if err := c.call(ctx, "stop", func() error { return c.api.StopPlayback(ctx) }); err != nil {
		return err
	}

	c.printf("Playback stopped\n")

	return nil
}

// Assets prints the playable asset references, one per line.
func (c *Commands) Assets(ctx context.Context) error {
	var assets []string

	err := c.call(ctx, "assets", func() error {
		var listErr error

		assets, listErr = c.api.ListAudioAssets(ctx)

		return listErr
	})
	if err != nil {
		return err
	}

	for _, asset := range assets {
		c.printf("%s\n", asset)
	}

	return nil
}

// Test plays an asset without a notification.
func (c *Commands) Test(ctx context.Context, assetRef string) error {
	if err := c.call(ctx, "test", func() error { return c.api.PlayTestAudio(ctx, assetRef) }); err != nil {
		return err
	}

	if assetRef == "" {
		assetRef = adhan.DefaultAudioAsset
	}

	c.printf("Playing %s\n", assetRef)

	return nil
}

// call runs the attempt once, or retries it while the daemon is unreachable when waiting.
func (c *Commands) call(ctx context.Context, operation string, attempt func() error) error {
	err := attempt()
	if err == nil || !c.wait || !retryable(err) {
		return err
	}

	ticker := time.NewTicker(c.retryInterval)
	defer ticker.Stop()

	for {
		logger.WarnKV(ctx, "Daemon unavailable, retrying", "operation", operation, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			err = attempt()
			if err == nil || !retryable(err) {
				return err
			}
		}
	}
}

func (c *Commands) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// retryable reports whether the error means the daemon could not be reached.
func retryable(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func formatTrigger(alarm *adhan.ScheduledAlarm) string {
	return alarm.TriggerTime().Local().Format(time.RFC3339)
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}

	return "off"
}

func displayName(prayerName string) string {
	if strings.TrimSpace(prayerName) == "" {
		return "alarm"
	}

	return prayerName
}
