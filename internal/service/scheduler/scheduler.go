package scheduler

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
	"github.com/oshokin/adhan-alarm/internal/metrics"
)

// Scheduler owns the pending wake-up of every prayer.
type Scheduler struct {
	// timer is the host facility that fires wake-ups.
	timer adhan.Timer
	// recorder counts scheduling outcomes.
	recorder metrics.Recorder
	// hash seeds the request key of a new prayer name.
	hash func(string) int

	// mu guards the registry and keeps it in step with the timer.
	mu sync.Mutex
	// keys maps prayer names to their request keys.
	keys map[string]int
	// owners maps request keys back to prayer names.
	owners map[int]string
	// pending holds alarms that have not fired or been cancelled.
	pending map[string]*adhan.ScheduledAlarm
}

// New creates a Scheduler on top of the provided timer. A nil recorder disables metrics.
func New(timer adhan.Timer, recorder metrics.Recorder) *Scheduler {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}

	return &Scheduler{
		timer:    timer,
		recorder: recorder,
		hash:     hashKey,
		keys:     make(map[string]int),
		owners:   make(map[int]string),
		pending:  make(map[string]*adhan.ScheduledAlarm),
	}
}

// Key returns the request key of the prayer, registering it on first use.
func (s *Scheduler) Key(prayerName string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.keyLocked(prayerName)
}

// Schedule requests a wake-up for the alarm, replacing any pending one for the same prayer.
// Exact scheduling is preferred; when the timer denies it the request degrades to best-effort.
func (s *Scheduler) Schedule(ctx context.Context, alarm *adhan.ScheduledAlarm) error {
	if err := alarm.Validate(); err != nil {
		return err
	}

	payload, err := adhan.EncodePayload(alarm.Payload())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		key  = s.keyLocked(alarm.PrayerName)
		at   = alarm.TriggerTime()
		mode = metrics.ModeExact
	)

	err = s.timer.RequestWakeup(ctx, key, at, payload, true)
	if errors.Is(err, adhan.ErrExactDenied) {
		logger.WarnKV(ctx, "Exact wake-up denied, falling back to best-effort",
			"prayer", alarm.PrayerName, "key", key)

		mode = metrics.ModeBestEffort
		err = s.timer.RequestWakeup(ctx, key, at, payload, false)
	}

	if err != nil {
		return fmt.Errorf("request wake-up for %s: %w", alarm.PrayerName, err)
	}

	s.pending[alarm.PrayerName] = alarm.Clone()
	s.recorder.IncScheduled(mode)

	logger.InfoKV(ctx, "Adhan scheduled",
		"prayer", alarm.PrayerName,
		"key", key,
		"at", at,
		"mode", mode,
		"asset", alarm.AudioAssetRef,
		"sound", alarm.SoundEnabled)

	return nil
}

// ScheduleAll schedules every alarm and returns the combined error of those that failed.
func (s *Scheduler) ScheduleAll(ctx context.Context, alarms []*adhan.ScheduledAlarm) error {
	var result error

	for _, alarm := range alarms {
		result = multierr.Append(result, s.Schedule(ctx, alarm))
	}

	return result
}

// Cancel drops the pending wake-up of the prayer. Nothing pending is not an error.
// Names that were never scheduled do not reach the timer and are not registered.
func (s *Scheduler) Cancel(ctx context.Context, prayerName string) error {
	if strings.TrimSpace(prayerName) == "" {
		return adhan.ErrPrayerNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.keys[prayerName]
	if !ok {
		return nil
	}

	return s.cancelLocked(ctx, prayerName, key)
}

// CancelAll cancels the wake-up of every registered prayer, including prayers
// whose pending record was already dropped.
func (s *Scheduler) CancelAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result error

	for prayerName, key := range s.keys {
		result = multierr.Append(result, s.cancelLocked(ctx, prayerName, key))
	}

	return result
}

// Forget drops the pending record of a prayer whose wake-up has fired at firedAt.
// A record that is not due yet was rescheduled or fired by hand and is kept.
func (s *Scheduler) Forget(prayerName string, firedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarm, ok := s.pending[prayerName]
	if !ok || alarm.TriggerTime().After(firedAt) {
		return
	}

	delete(s.pending, prayerName)
}

func (s *Scheduler) cancelLocked(ctx context.Context, prayerName string, key int) error {
	if err := s.timer.CancelWakeup(ctx, key); err != nil {
		return fmt.Errorf("cancel wake-up for %s: %w", prayerName, err)
	}

	if _, ok := s.pending[prayerName]; ok {
		delete(s.pending, prayerName)
		s.recorder.IncCancelled()
		logger.InfoKV(ctx, "Adhan cancelled", "prayer", prayerName, "key", key)
	}

	return nil
}

// Pending returns copies of the pending alarms ordered by trigger time.
func (s *Scheduler) Pending() []*adhan.ScheduledAlarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*adhan.ScheduledAlarm, 0, len(s.pending))
	for _, alarm := range s.pending {
		result = append(result, alarm.Clone())
	}

	slices.SortFunc(result, func(a, b *adhan.ScheduledAlarm) int {
		if a.TriggerAtEpochMillis != b.TriggerAtEpochMillis {
			if a.TriggerAtEpochMillis < b.TriggerAtEpochMillis {
				return -1
			}

			return 1
		}

		return strings.Compare(a.PrayerName, b.PrayerName)
	})

	return result
}

// keyLocked returns the key of the prayer, allocating one if needed.
// The hash is only a starting point: a key already owned by another name is
// skipped, so distinct names never share a pending request.
func (s *Scheduler) keyLocked(prayerName string) int {
	if key, ok := s.keys[prayerName]; ok {
		return key
	}

	key := s.hash(prayerName)
	for {
		if _, taken := s.owners[key]; !taken {
			break
		}

		key = (key + 1) & math.MaxInt32
	}

	s.keys[prayerName] = key
	s.owners[key] = prayerName

	return key
}

// hashKey is the 31-bit FNV-1a hash of the name.
func hashKey(name string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))

	return int(h.Sum32() & math.MaxInt32)
}
