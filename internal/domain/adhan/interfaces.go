package adhan

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/oshokin/adhan-alarm/internal/domain/adhan Timer,Notifier,Player

// ErrExactDenied is returned by a Timer that is not allowed to schedule exact wake-ups.
// Callers recover by retrying in best-effort mode.
var ErrExactDenied = errors.New("exact wake-up denied")

// ErrAssetNotFound is returned by a Player that cannot find the requested asset.
var ErrAssetNotFound = errors.New("audio asset not found")

// Timer requests one-shot wake-ups at absolute times.
type Timer interface {
	// RequestWakeup fires payload at the given time. A request with the same key
	// replaces the previous one. With exact set, the timer must fire on time even
	// when the host is idle, or return ErrExactDenied.
	RequestWakeup(ctx context.Context, key int, at time.Time, payload []byte, exact bool) error
	// CancelWakeup drops the pending request at key. Missing keys are not an error.
	CancelWakeup(ctx context.Context, key int) error
}

// Importance is the importance of a notification channel.
type Importance int

// Channel importance levels.
const (
	ImportanceDefault Importance = iota
	ImportanceHigh
)

// Priority is the priority of a single notification.
type Priority int

// Notification priorities.
const (
	PriorityDefault Priority = iota
	PriorityHigh
)

// Category classifies a notification for the host.
type Category string

// CategoryAlarm marks alarm notifications.
const CategoryAlarm Category = "alarm"

// Channel groups notifications with shared settings.
type Channel struct {
	ID          string
	Name        string
	Description string
	Importance  Importance
}

// Notification is a user-visible alert.
type Notification struct {
	// ID identifies the notification; showing the same ID again replaces it.
	ID        int
	ChannelID string
	Title     string
	Body      string
	Priority  Priority
	// TapTarget is opaque to the core and interpreted by the host.
	TapTarget  string
	AutoCancel bool
	Category   Category
}

// Notifier displays notifications.
type Notifier interface {
	// EnsureChannel registers a channel. Repeated calls are harmless.
	EnsureChannel(ctx context.Context, channel Channel) error
	// Show displays the notification.
	Show(ctx context.Context, notification *Notification) error
}

// Usage is the audio usage class requested from the player.
type Usage string

// UsageAlarm requests alarm-class playback.
const UsageAlarm Usage = "alarm"

// ContentType describes the audio content.
type ContentType string

// ContentTypeMusic marks music content.
const ContentTypeMusic ContentType = "music"

// AudioAttributes configure playback of a loaded asset.
type AudioAttributes struct {
	Usage       Usage
	ContentType ContentType
}

// Handle identifies an audio resource loaded by a Player. Zero is never a valid handle.
type Handle uint64

// Player plays a single audio resource at a time per handle.
type Player interface {
	// Load prepares the asset for playback.
	Load(ctx context.Context, assetRef string, attrs AudioAttributes) (Handle, error)
	// Start begins playback of a loaded handle.
	Start(ctx context.Context, handle Handle) error
	// Stop halts playback. Stopping an idle handle is not an error.
	Stop(ctx context.Context, handle Handle) error
	// Release frees the handle. Unknown handles are ignored.
	Release(ctx context.Context, handle Handle) error
	// IsPlaying reports whether the handle is currently audible.
	IsPlaying(handle Handle) bool
}
