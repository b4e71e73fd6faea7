package playback

import "github.com/oshokin/adhan-alarm/internal/domain/adhan"

// Notification defaults.
const (
	// NotificationID is reused for every Adhan so a new one replaces the previous.
	NotificationID = 1001
	// ChannelID identifies the Adhan notification channel.
	ChannelID = "adhan_channel"
)

// Options configures the controller.
type Options struct {
	// DefaultAsset is played when a trigger names no asset.
	DefaultAsset string
	// Channel is ensured before each notification.
	Channel adhan.Channel
	// NotificationID is the id of the Adhan notification.
	NotificationID int
	// TitlePrefix precedes the prayer name in the title.
	TitlePrefix string
	// FallbackLabel replaces a missing prayer name.
	FallbackLabel string
	// Body is the notification text.
	Body string
	// TapTarget is opened when the notification is tapped.
	TapTarget string
}

// DefaultOptions returns the stock notification texts and channel.
func DefaultOptions() Options {
	return Options{
		DefaultAsset: adhan.DefaultAudioAsset,
		Channel: adhan.Channel{
			ID:          ChannelID,
			Name:        "Adhan Notifications",
			Description: "Notifications for prayer times",
			Importance:  adhan.ImportanceHigh,
		},
		NotificationID: NotificationID,
		TitlePrefix:    "أذان",
		FallbackLabel:  "الصلاة",
		Body:           "حان وقت الصلاة",
		TapTarget:      "adhan://open",
	}
}

// withDefaults fills empty fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()

	if o.DefaultAsset == "" {
		o.DefaultAsset = def.DefaultAsset
	}

	if o.Channel.ID == "" {
		o.Channel = def.Channel
	}

	if o.NotificationID == 0 {
		o.NotificationID = def.NotificationID
	}

	if o.TitlePrefix == "" {
		o.TitlePrefix = def.TitlePrefix
	}

	if o.FallbackLabel == "" {
		o.FallbackLabel = def.FallbackLabel
	}

	if o.Body == "" {
		o.Body = def.Body
	}

	if o.TapTarget == "" {
		o.TapTarget = def.TapTarget
	}

	return o
}
