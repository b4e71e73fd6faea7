package schedule

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
)

// ErrNotFound is returned when no alarm is stored for a prayer.
var ErrNotFound = errors.New("alarm not found")

// Repository defines persistence operations for scheduled alarms.
type Repository interface {
	// List returns every stored alarm ordered by trigger time.
	List(ctx context.Context) ([]*adhan.ScheduledAlarm, error)
	// Get returns the alarm of a prayer or ErrNotFound.
	Get(ctx context.Context, prayerName string) (*adhan.ScheduledAlarm, error)
	// Save stores the alarm, replacing the record with the same prayer name.
	Save(ctx context.Context, alarm *adhan.ScheduledAlarm) error
	// Delete removes the alarm of a prayer. Missing records are not an error.
	Delete(ctx context.Context, prayerName string) error
	// Close releases the underlying storage.
	Close() error
}

func sortAlarms(alarms []*adhan.ScheduledAlarm) {
	slices.SortFunc(alarms, func(a, b *adhan.ScheduledAlarm) int {
		if a.TriggerAtEpochMillis != b.TriggerAtEpochMillis {
			if a.TriggerAtEpochMillis < b.TriggerAtEpochMillis {
				return -1
			}

			return 1
		}

		return strings.Compare(a.PrayerName, b.PrayerName)
	})
}
