package dispatcher

import (
	"context"
	"errors"
	"time"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
	"github.com/oshokin/adhan-alarm/internal/metrics"
)

// Playback reacts to a fired alarm.
type Playback interface {
	Trigger(ctx context.Context, payload *adhan.Payload)
}

// Scheduler re-submits restored alarms and tracks what is pending.
type Scheduler interface {
	Schedule(ctx context.Context, alarm *adhan.ScheduledAlarm) error
	Cancel(ctx context.Context, prayerName string) error
	Forget(prayerName string, firedAt time.Time)
	Pending() []*adhan.ScheduledAlarm
}

// ScheduleReader is the read side of the persisted schedule store.
type ScheduleReader interface {
	List(ctx context.Context) ([]*adhan.ScheduledAlarm, error)
}

// Dispatcher forwards wake-ups to playback and restores persisted alarms.
type Dispatcher struct {
	// playback receives every valid firing.
	playback Playback
	// scheduler receives restored alarms.
	scheduler Scheduler
	// store is the persisted schedule; nil disables restore.
	store ScheduleReader
	// recorder counts delivered wake-ups.
	recorder metrics.Recorder
	// now returns the current time; overridden in tests.
	now func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock overrides the time source used to skip elapsed alarms on restore.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(recorder metrics.Recorder) Option {
	return func(d *Dispatcher) {
		if recorder != nil {
			d.recorder = recorder
		}
	}
}

// New creates a Dispatcher. The store may be nil.
func New(playback Playback, scheduler Scheduler, store ScheduleReader, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		playback:  playback,
		scheduler: scheduler,
		store:     store,
		recorder:  metrics.NoopRecorder{},
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// OnFire handles a delivered wake-up. Payloads that are not alarm firings are ignored;
// unrelated events may reach the same entry point.
func (d *Dispatcher) OnFire(ctx context.Context, payload []byte) {
	ctx = logger.WithName(ctx, "dispatcher")

	p, err := adhan.DecodePayload(payload)
	if err != nil {
		d.recorder.IncFired(metrics.FireIgnored)

		if errors.Is(err, adhan.ErrForeignEvent) {
			logger.DebugKV(ctx, "Ignoring foreign event", "size", len(payload))
			return
		}

		logger.WarnKV(ctx, "Ignoring malformed alarm event", "error", err)

		return
	}

	d.recorder.IncFired(metrics.FireDispatched)

	if p.PrayerName != "" {
		d.scheduler.Forget(p.PrayerName, d.now())
	}

	logger.InfoKV(ctx, "Adhan alarm fired",
		"prayer", p.PrayerName, "asset", p.AudioAssetRef, "sound", p.SoundEnabled)

	d.playback.Trigger(ctx, p)
}

// OnBootRestore re-submits every persisted alarm after a host restart.
// A missing or unavailable store is a no-op; elapsed alarms are skipped.
func (d *Dispatcher) OnBootRestore(ctx context.Context) {
	d.restore(ctx)
}

// Reconcile restores the store and cancels pending alarms the store no longer lists.
// An unavailable store leaves the pending alarms untouched.
func (d *Dispatcher) Reconcile(ctx context.Context) {
	listed, ok := d.restore(ctx)
	if !ok {
		return
	}

	for _, alarm := range d.scheduler.Pending() {
		if _, keep := listed[alarm.PrayerName]; keep {
			continue
		}

		if err := d.scheduler.Cancel(ctx, alarm.PrayerName); err != nil {
			logger.ErrorKV(ctx, "Cancel alarm removed from store", "prayer", alarm.PrayerName, "error", err)
		}
	}
}

// restore schedules the stored alarms and returns the names the store lists.
func (d *Dispatcher) restore(ctx context.Context) (map[string]struct{}, bool) {
	ctx = logger.WithName(ctx, "restore")

	if d.store == nil {
		logger.Info(ctx, "No schedule store configured, nothing to restore")
		return nil, false
	}

	alarms, err := d.store.List(ctx)
	if err != nil {
		logger.WarnKV(ctx, "Schedule store unavailable, nothing restored", "error", err)
		return nil, false
	}

	var (
		now      = d.now()
		listed   = make(map[string]struct{}, len(alarms))
		restored int
	)

	for _, alarm := range alarms {
		if alarm == nil || alarm.Validate() != nil {
			logger.WarnKV(ctx, "Skipping invalid stored alarm", "alarm", alarm)
			continue
		}

		listed[alarm.PrayerName] = struct{}{}

		if !alarm.TriggerTime().After(now) {
			logger.DebugKV(ctx, "Skipping elapsed alarm", "prayer", alarm.PrayerName, "at", alarm.TriggerTime())
			continue
		}

		if err = d.scheduler.Schedule(ctx, alarm); err != nil {
			logger.ErrorKV(ctx, "Restore alarm", "prayer", alarm.PrayerName, "error", err)
			continue
		}

		restored++
	}

	logger.InfoKV(ctx, "Alarms restored", "stored", len(alarms), "restored", restored)

	return listed, true
}
