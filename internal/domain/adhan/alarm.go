package adhan

import (
	"errors"
	"strings"
	"time"
)

// DefaultAudioAsset is used when a wake-up does not name an audio asset.
const DefaultAudioAsset = "adhan_default"

// ErrPrayerNameRequired is returned when an alarm has no prayer name.
var ErrPrayerNameRequired = errors.New("prayer name is required")

// ScheduledAlarm is a pending wake-up for a single prayer.
type ScheduledAlarm struct {
	// PrayerName is the unique key of the alarm (e.g. "Fajr").
	PrayerName string
	// TriggerAtEpochMillis is the absolute wake-up time in Unix milliseconds.
	TriggerAtEpochMillis int64
	// AudioAssetRef names the Adhan recording to play.
	AudioAssetRef string
	// SoundEnabled controls whether audio is played on firing.
	SoundEnabled bool
}

// TriggerTime returns the wake-up time as time.Time.
func (a *ScheduledAlarm) TriggerTime() time.Time {
	return time.UnixMilli(a.TriggerAtEpochMillis)
}

// Validate checks that the alarm can be scheduled.
func (a *ScheduledAlarm) Validate() error {
	if a == nil || strings.TrimSpace(a.PrayerName) == "" {
		return ErrPrayerNameRequired
	}

	return nil
}

// Clone returns a copy of the alarm.
func (a *ScheduledAlarm) Clone() *ScheduledAlarm {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// Payload builds the wake-up payload for this alarm.
func (a *ScheduledAlarm) Payload() *Payload {
	return &Payload{
		PrayerName:    a.PrayerName,
		AudioAssetRef: a.AudioAssetRef,
		SoundEnabled:  a.SoundEnabled,
	}
}
