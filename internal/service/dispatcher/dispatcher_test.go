package dispatcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
)

var errTestStore = errors.New("store offline")

// recordingPlayback stores every triggered payload.
type recordingPlayback struct {
	triggered []*adhan.Payload
}

func (r *recordingPlayback) Trigger(_ context.Context, p *adhan.Payload) {
	r.triggered = append(r.triggered, p)
}

// memoryScheduler is an in-memory Scheduler.
type memoryScheduler struct {
	pending   map[string]*adhan.ScheduledAlarm
	forgotten []string
	failFor   string
}

func newMemoryScheduler() *memoryScheduler {
	return &memoryScheduler{pending: make(map[string]*adhan.ScheduledAlarm)}
}

func (m *memoryScheduler) Schedule(_ context.Context, alarm *adhan.ScheduledAlarm) error {
	if alarm.PrayerName == m.failFor {
		return errors.New("timer refused")
	}

	m.pending[alarm.PrayerName] = alarm

	return nil
}

func (m *memoryScheduler) Cancel(_ context.Context, prayerName string) error {
	delete(m.pending, prayerName)
	return nil
}

func (m *memoryScheduler) Forget(prayerName string, firedAt time.Time) {
	m.forgotten = append(m.forgotten, prayerName)

	if alarm, ok := m.pending[prayerName]; ok && !alarm.TriggerTime().After(firedAt) {
		delete(m.pending, prayerName)
	}
}

func (m *memoryScheduler) Pending() []*adhan.ScheduledAlarm {
	result := make([]*adhan.ScheduledAlarm, 0, len(m.pending))
	for _, a := range m.pending {
		result = append(result, a)
	}

	return result
}

// memoryStore is a ScheduleReader over a slice.
type memoryStore struct {
	alarms []*adhan.ScheduledAlarm
	err    error
}

func (m *memoryStore) List(context.Context) ([]*adhan.ScheduledAlarm, error) {
	return m.alarms, m.err
}

func encode(t *testing.T, p *adhan.Payload) []byte {
	t.Helper()

	data, err := adhan.EncodePayload(p)
	require.NoError(t, err)

	return data
}

// TestOnFire_ForwardsPayload verifies a valid firing reaches playback and clears the pending record.
func TestOnFire_ForwardsPayload(t *testing.T) {
	t.Parallel()

	var (
		playback  = new(recordingPlayback)
		scheduler = newMemoryScheduler()
		d         = New(playback, scheduler, nil)
	)

	scheduler.pending["Fajr"] = &adhan.ScheduledAlarm{PrayerName: "Fajr"}

	d.OnFire(context.Background(), encode(t, &adhan.Payload{
		PrayerName:    "Fajr",
		AudioAssetRef: "a.mp3",
		SoundEnabled:  true,
	}))

	require.Len(t, playback.triggered, 1)
	require.Equal(t, "a.mp3", playback.triggered[0].AudioAssetRef)
	require.Equal(t, []string{"Fajr"}, scheduler.forgotten)
	require.Empty(t, scheduler.pending)
}

// TestOnFire_KeepsAlarmNotYetDue ensures firing ahead of the trigger time leaves the alarm pending.
func TestOnFire_KeepsAlarmNotYetDue(t *testing.T) {
	t.Parallel()

	var (
		now       = time.Date(2026, 10, 17, 4, 0, 0, 0, time.UTC)
		playback  = new(recordingPlayback)
		scheduler = newMemoryScheduler()
		d         = New(playback, scheduler, nil, WithClock(func() time.Time { return now }))
	)

	scheduler.pending["Fajr"] = &adhan.ScheduledAlarm{
		PrayerName:           "Fajr",
		TriggerAtEpochMillis: now.Add(time.Hour).UnixMilli(),
	}

	d.OnFire(context.Background(), encode(t, &adhan.Payload{PrayerName: "Fajr", SoundEnabled: true}))

	require.Len(t, playback.triggered, 1)
	require.Contains(t, scheduler.pending, "Fajr")
}

// TestOnFire_DefaultsSound ensures a payload without soundEnabled plays sound.
func TestOnFire_DefaultsSound(t *testing.T) {
	t.Parallel()

	playback := new(recordingPlayback)
	d := New(playback, newMemoryScheduler(), nil)

	d.OnFire(context.Background(), []byte(`{"action":"`+adhan.ActionFire+`","prayerName":"Asr"}`))

	require.Len(t, playback.triggered, 1)
	require.True(t, playback.triggered[0].SoundEnabled)
	require.Equal(t, adhan.DefaultAudioAsset, playback.triggered[0].AudioAssetRef)
}

// TestOnFire_IgnoresForeignAndMalformed checks unrelated events are a no-op.
func TestOnFire_IgnoresForeignAndMalformed(t *testing.T) {
	t.Parallel()

	playback := new(recordingPlayback)
	d := New(playback, newMemoryScheduler(), nil)

	for _, payload := range [][]byte{
		nil,
		[]byte("{"),
		[]byte(`{"action":"android.intent.action.BOOT_COMPLETED"}`),
		[]byte(`{"action":"` + adhan.ActionFire + `","soundEnabled":1}`),
	} {
		require.NotPanics(t, func() { d.OnFire(context.Background(), payload) })
	}

	require.Empty(t, playback.triggered)
}

// TestOnBootRestore re-submits future alarms and skips elapsed or invalid ones.
func TestOnBootRestore(t *testing.T) {
	t.Parallel()

	var (
		now       = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
		scheduler = newMemoryScheduler()
		store     = &memoryStore{alarms: []*adhan.ScheduledAlarm{
			{PrayerName: "Fajr", TriggerAtEpochMillis: now.Add(-6 * time.Hour).UnixMilli()},
			{PrayerName: "Asr", TriggerAtEpochMillis: now.Add(3 * time.Hour).UnixMilli()},
			{PrayerName: "Isha", TriggerAtEpochMillis: now.Add(8 * time.Hour).UnixMilli()},
			{PrayerName: "Broken", TriggerAtEpochMillis: now.Add(time.Hour).UnixMilli()},
			{PrayerName: ""},
			nil,
		}}
		d = New(new(recordingPlayback), scheduler, store, WithClock(func() time.Time { return now }))
	)

	scheduler.failFor = "Broken"

	d.OnBootRestore(context.Background())

	require.Len(t, scheduler.pending, 2)
	require.Contains(t, scheduler.pending, "Asr")
	require.Contains(t, scheduler.pending, "Isha")
}

// TestOnBootRestore_NoStore covers missing, empty and failing stores.
func TestOnBootRestore_NoStore(t *testing.T) {
	t.Parallel()

	for _, store := range []ScheduleReader{nil, &memoryStore{}, &memoryStore{err: errTestStore}} {
		scheduler := newMemoryScheduler()
		d := New(new(recordingPlayback), scheduler, store)

		require.NotPanics(t, func() { d.OnBootRestore(context.Background()) })
		require.Empty(t, scheduler.pending)
	}
}

// TestReconcile cancels alarms removed from the store and keeps everything when the store fails.
func TestReconcile(t *testing.T) {
	t.Parallel()

	var (
		now       = time.Now()
		scheduler = newMemoryScheduler()
		store     = &memoryStore{alarms: []*adhan.ScheduledAlarm{
			{PrayerName: "Maghrib", TriggerAtEpochMillis: now.Add(time.Hour).UnixMilli()},
		}}
		d = New(new(recordingPlayback), scheduler, store)
	)

	scheduler.pending["Dhuhr"] = &adhan.ScheduledAlarm{PrayerName: "Dhuhr"}

	d.Reconcile(context.Background())

	require.Len(t, scheduler.pending, 1)
	require.Contains(t, scheduler.pending, "Maghrib")

	store.err = errTestStore
	d.Reconcile(context.Background())
	require.Contains(t, scheduler.pending, "Maghrib")
}
