package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/repository/schedule"
)

func TestAlarmFlags_Build(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 4, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		flags   AlarmFlags
		want    *adhan.ScheduledAlarm
		wantErr error
	}{
		{
			name:  "absolute time",
			flags: AlarmFlags{PrayerName: "Fajr", At: "2026-10-17T05:12:00Z", AudioAssetRef: "adhan_makkah"},
			want: &adhan.ScheduledAlarm{
				PrayerName:           "Fajr",
				TriggerAtEpochMillis: time.Date(2026, 10, 17, 5, 12, 0, 0, time.UTC).UnixMilli(),
				AudioAssetRef:        "adhan_makkah",
				SoundEnabled:         true,
			},
		},
		{
			name:  "relative delay silent",
			flags: AlarmFlags{PrayerName: "Dhuhr", In: 90 * time.Minute, Silent: true},
			want: &adhan.ScheduledAlarm{
				PrayerName:           "Dhuhr",
				TriggerAtEpochMillis: now.Add(90 * time.Minute).UnixMilli(),
			},
		},
		{
			name:    "no trigger",
			flags:   AlarmFlags{PrayerName: "Asr"},
			wantErr: ErrTriggerRequired,
		},
		{
			name:    "both triggers",
			flags:   AlarmFlags{PrayerName: "Asr", At: "2026-10-17T15:00:00Z", In: time.Hour},
			wantErr: ErrTriggerAmbiguous,
		},
		{
			name:    "no prayer name",
			flags:   AlarmFlags{In: time.Hour},
			wantErr: adhan.ErrPrayerNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.flags.Build(now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAlarmFlags_BuildRejectsBadTime(t *testing.T) {
	t.Parallel()

	flags := AlarmFlags{PrayerName: "Isha", At: "tonight"}

	_, err := flags.Build(time.Now())
	require.Error(t, err)
}

func TestLoadAlarms(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "today.json")

	repo := schedule.NewFileRepository(path)
	require.NoError(t, repo.Save(ctx, &adhan.ScheduledAlarm{PrayerName: "Isha", TriggerAtEpochMillis: 2000, SoundEnabled: true}))
	require.NoError(t, repo.Save(ctx, &adhan.ScheduledAlarm{PrayerName: "Fajr", TriggerAtEpochMillis: 1000, SoundEnabled: true}))

	alarms, err := LoadAlarms(ctx, path)
	require.NoError(t, err)
	require.Len(t, alarms, 2)
	require.Equal(t, "Fajr", alarms[0].PrayerName)
	require.Equal(t, "Isha", alarms[1].PrayerName)
}
