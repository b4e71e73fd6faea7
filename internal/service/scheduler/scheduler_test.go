package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/domain/adhan/mocks"
)

var errTestTimer = errors.New("test timer failure")

// wakeup is a request held by memoryTimer.
type wakeup struct {
	at      time.Time
	payload []byte
	exact   bool
}

// memoryTimer is a minimal in-memory Timer keyed like a host alarm service.
type memoryTimer struct {
	mu sync.Mutex
	// requests holds pending wake-ups by key.
	requests map[int]wakeup
	// denyExact makes exact requests fail with ErrExactDenied.
	denyExact bool
}

func newMemoryTimer() *memoryTimer {
	return &memoryTimer{requests: make(map[int]wakeup)}
}

// RequestWakeup stores the request, replacing any request with the same key.
func (m *memoryTimer) RequestWakeup(_ context.Context, key int, at time.Time, payload []byte, exact bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if exact && m.denyExact {
		return adhan.ErrExactDenied
	}

	m.requests[key] = wakeup{at: at, payload: payload, exact: exact}

	return nil
}

// CancelWakeup removes the request at key.
func (m *memoryTimer) CancelWakeup(_ context.Context, key int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.requests, key)

	return nil
}

func (m *memoryTimer) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.requests)
}

func fajr(at time.Time) *adhan.ScheduledAlarm {
	return &adhan.ScheduledAlarm{
		PrayerName:           "Fajr",
		TriggerAtEpochMillis: at.UnixMilli(),
		AudioAssetRef:        "adhan_makkah",
		SoundEnabled:         true,
	}
}

// TestSchedule_ReplacesSamePrayer ensures rescheduling a prayer keeps exactly one request.
func TestSchedule_ReplacesSamePrayer(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		timer = newMemoryTimer()
		s     = New(timer, nil)
		first = time.Now().Add(time.Hour)
	)

	require.NoError(t, s.Schedule(ctx, fajr(first)))

	second := fajr(first.Add(time.Minute))
	second.AudioAssetRef = "adhan_madinah"
	require.NoError(t, s.Schedule(ctx, second))

	require.Equal(t, 1, timer.len())
	require.Len(t, s.Pending(), 1)

	req := timer.requests[s.Key("Fajr")]
	require.True(t, req.exact)
	require.Equal(t, second.TriggerAtEpochMillis, req.at.UnixMilli())

	payload, err := adhan.DecodePayload(req.payload)
	require.NoError(t, err)
	require.Equal(t, "Fajr", payload.PrayerName)
	require.Equal(t, "adhan_madinah", payload.AudioAssetRef)
	require.True(t, payload.SoundEnabled)
}

// TestSchedule_DistinctPrayers checks that different prayers get different requests.
func TestSchedule_DistinctPrayers(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		timer = newMemoryTimer()
		s     = New(timer, nil)
		at    = time.Now().Add(time.Hour)
	)

	for _, name := range []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"} {
		alarm := fajr(at)
		alarm.PrayerName = name
		require.NoError(t, s.Schedule(ctx, alarm))
	}

	require.Equal(t, 5, timer.len())
	require.Equal(t, s.Key("Fajr"), s.Key("Fajr"))
	require.NotEqual(t, s.Key("Fajr"), s.Key("Isha"))
}

// TestKey_CollisionsAreProbed verifies two names with the same hash still get distinct keys.
func TestKey_CollisionsAreProbed(t *testing.T) {
	t.Parallel()

	s := New(newMemoryTimer(), nil)
	s.hash = func(string) int { return 42 }

	a := s.Key("Fajr")
	b := s.Key("Isha")

	require.Equal(t, 42, a)
	require.NotEqual(t, a, b)
	require.Equal(t, a, s.Key("Fajr"))
	require.Equal(t, b, s.Key("Isha"))
}

// TestCancel covers cancelling a pending alarm and cancelling nothing.
func TestCancel(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		timer = newMemoryTimer()
		s     = New(timer, nil)
	)

	require.NoError(t, s.Cancel(ctx, "Asr"))

	require.NoError(t, s.Schedule(ctx, fajr(time.Now().Add(time.Hour))))
	require.NoError(t, s.Cancel(ctx, "Fajr"))
	require.Equal(t, 0, timer.len())
	require.Empty(t, s.Pending())

	// Second cancel is a no-op.
	require.NoError(t, s.Cancel(ctx, "Fajr"))
	require.ErrorIs(t, s.Cancel(ctx, ""), adhan.ErrPrayerNameRequired)
}

// TestSchedule_FallsBackToBestEffort asserts the denied exact request is retried in best-effort mode.
func TestSchedule_FallsBackToBestEffort(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	timer := mocks.NewMockTimer(ctrl)
	s := New(timer, nil)
	alarm := fajr(time.Now().Add(time.Hour))
	key := s.Key(alarm.PrayerName)

	gomock.InOrder(
		timer.EXPECT().
			RequestWakeup(gomock.Any(), key, alarm.TriggerTime(), gomock.Any(), true).
			Return(adhan.ErrExactDenied),
		timer.EXPECT().
			RequestWakeup(gomock.Any(), key, alarm.TriggerTime(), gomock.Any(), false).
			Return(nil),
	)

	require.NoError(t, s.Schedule(context.Background(), alarm))
	require.Len(t, s.Pending(), 1)
}

// TestSchedule_TimerFailure ensures other timer errors surface and leave nothing pending.
func TestSchedule_TimerFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	timer := mocks.NewMockTimer(ctrl)
	s := New(timer, nil)

	timer.EXPECT().
		RequestWakeup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).
		Return(errTestTimer)

	err := s.Schedule(context.Background(), fajr(time.Now()))
	require.ErrorIs(t, err, errTestTimer)
	require.Empty(t, s.Pending())

	require.ErrorIs(t, s.Schedule(context.Background(), &adhan.ScheduledAlarm{}), adhan.ErrPrayerNameRequired)
}

// TestScheduleAllAndCancelAll exercises the batch helpers and Pending ordering.
func TestScheduleAllAndCancelAll(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		timer = newMemoryTimer()
		s     = New(timer, nil)
		base  = time.Now().Add(time.Hour)
	)

	timer.denyExact = true

	err := s.ScheduleAll(ctx, []*adhan.ScheduledAlarm{
		{PrayerName: "Isha", TriggerAtEpochMillis: base.Add(4 * time.Hour).UnixMilli()},
		{PrayerName: "Asr", TriggerAtEpochMillis: base.Add(2 * time.Hour).UnixMilli()},
		{PrayerName: ""},
		{PrayerName: "Dhuhr", TriggerAtEpochMillis: base.UnixMilli()},
	})
	require.ErrorIs(t, err, adhan.ErrPrayerNameRequired)

	pending := s.Pending()
	require.Len(t, pending, 3)
	require.Equal(t, "Dhuhr", pending[0].PrayerName)
	require.Equal(t, "Asr", pending[1].PrayerName)
	require.Equal(t, "Isha", pending[2].PrayerName)

	for _, req := range timer.requests {
		require.False(t, req.exact)
	}

	// Asr fired on time; its timer entry is already spent.
	s.Forget("Asr", base.Add(2*time.Hour))
	require.Len(t, s.Pending(), 2)

	require.NoError(t, s.CancelAll(ctx))
	require.Empty(t, s.Pending())
	require.Equal(t, 0, timer.len())
}

// TestForget_KeepsRecordNotYetDue covers a firing that arrives before the alarm is due,
// such as a manual fire or a stale event for a rescheduled prayer.
func TestForget_KeepsRecordNotYetDue(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		timer = newMemoryTimer()
		s     = New(timer, nil)
		at    = time.Now().Add(time.Hour)
	)

	require.NoError(t, s.Schedule(ctx, fajr(at)))

	s.Forget("Fajr", time.Now())
	require.Len(t, s.Pending(), 1)

	s.Forget("Isha", time.Now())
	require.Len(t, s.Pending(), 1)

	s.Forget("Fajr", at)
	require.Empty(t, s.Pending())
}

// TestCancelAll_AfterManualFire ensures a fired-by-hand prayer keeps no live wake-up after CancelAll.
func TestCancelAll_AfterManualFire(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		timer = newMemoryTimer()
		s     = New(timer, nil)
		at    = time.Now().Add(time.Hour)
	)

	require.NoError(t, s.Schedule(ctx, fajr(at)))

	// The record is dropped while the timer still holds the key.
	s.Forget("Fajr", at.Add(time.Minute))
	require.Empty(t, s.Pending())
	require.Equal(t, 1, timer.len())

	require.NoError(t, s.CancelAll(ctx))
	require.Equal(t, 0, timer.len())
}

// TestCancel_UnknownNameNotRegistered ensures cancelling unknown names never grows the registry.
func TestCancel_UnknownNameNotRegistered(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	timer := mocks.NewMockTimer(ctrl)
	s := New(timer, nil)

	for _, name := range []string{"Asr", "Witr", "Tahajjud"} {
		require.NoError(t, s.Cancel(context.Background(), name))
	}

	require.Empty(t, s.keys)
	require.Empty(t, s.owners)
}
