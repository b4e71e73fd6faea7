package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/repository/schedule"
)

var (
	// ErrTriggerRequired is returned when neither an absolute time nor a delay is given.
	ErrTriggerRequired = errors.New("either --at or --in must be set")
	// ErrTriggerAmbiguous is returned when both an absolute time and a delay are given.
	ErrTriggerAmbiguous = errors.New("--at and --in are mutually exclusive")
)

// AlarmFlags describes an alarm entered on the command line.
type AlarmFlags struct {
	// PrayerName is the prayer to schedule.
	PrayerName string
	// At is an absolute RFC 3339 time.
	At string
	// In is a delay from now.
	In time.Duration
	// AudioAssetRef names the recording to play.
	AudioAssetRef string
	// Silent disables audio on firing.
	Silent bool
}

// Build converts the flags into an alarm relative to now.
func (s *AlarmFlags) Build(now time.Time) (*adhan.ScheduledAlarm, error) {
	var trigger time.Time

	switch {
	case s.At != "" && s.In != 0:
		return nil, ErrTriggerAmbiguous
	case s.At != "":
		parsed, err := time.Parse(time.RFC3339, s.At)
		if err != nil {
			return nil, fmt.Errorf("parse --at: %w", err)
		}

		trigger = parsed
	case s.In != 0:
		trigger = now.Add(s.In)
	default:
		return nil, ErrTriggerRequired
	}

	alarm := &adhan.ScheduledAlarm{
		PrayerName:           s.PrayerName,
		TriggerAtEpochMillis: trigger.UnixMilli(),
		AudioAssetRef:        s.AudioAssetRef,
		SoundEnabled:         !s.Silent,
	}

	if err := alarm.Validate(); err != nil {
		return nil, err
	}

	return alarm, nil
}

// LoadAlarms reads a batch of alarms from a schedule file.
func LoadAlarms(ctx context.Context, path string) ([]*adhan.ScheduledAlarm, error) {
	repo := schedule.NewFileRepository(path)
	defer func() {
		_ = repo.Close()
	}()

	alarms, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load alarms from %s: %w", path, err)
	}

	return alarms, nil
}
