package adhan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestScheduledAlarmClone verifies that Clone returns a copy and handles nil safely.
func TestScheduledAlarmClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*ScheduledAlarm)(nil).Clone())

	a := &ScheduledAlarm{
		PrayerName:           "Fajr",
		TriggerAtEpochMillis: 1_700_000_000_000,
		AudioAssetRef:        "adhan_makkah",
		SoundEnabled:         true,
	}

	b := a.Clone()

	require.Equal(t, a, b)
	require.NotSame(t, a, b)
}

// TestScheduledAlarmValidate checks the prayer name requirement.
func TestScheduledAlarmValidate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, (*ScheduledAlarm)(nil).Validate(), ErrPrayerNameRequired)
	require.ErrorIs(t, (&ScheduledAlarm{PrayerName: "  "}).Validate(), ErrPrayerNameRequired)
	require.NoError(t, (&ScheduledAlarm{PrayerName: "Asr"}).Validate())
}

// TestScheduledAlarmTriggerTime ensures millisecond timestamps convert to time.Time.
func TestScheduledAlarmTriggerTime(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 10, 17, 4, 52, 0, 0, time.UTC)
	a := &ScheduledAlarm{TriggerAtEpochMillis: ts.UnixMilli()}

	require.True(t, ts.Equal(a.TriggerTime()))
}
