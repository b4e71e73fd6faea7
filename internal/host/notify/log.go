package notify

import (
	"context"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
)

// LogNotifier writes notifications to the log. It is the fallback when no
// desktop or remote backend is configured.
type LogNotifier struct{}

var _ adhan.Notifier = LogNotifier{}

// EnsureChannel logs the channel at debug level.
func (LogNotifier) EnsureChannel(ctx context.Context, channel adhan.Channel) error {
	logger.DebugKV(ctx, "Notification channel ensured", "channel", channel.ID, "name", channel.Name)
	return nil
}

// Show logs the notification.
func (LogNotifier) Show(ctx context.Context, notification *adhan.Notification) error {
	logger.InfoKV(ctx, "Notification",
		"id", notification.ID,
		"channel", notification.ChannelID,
		"title", notification.Title,
		"body", notification.Body,
		"tap_target", notification.TapTarget)

	return nil
}
