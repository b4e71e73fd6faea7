package daemon

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
	"github.com/oshokin/adhan-alarm/internal/repository/schedule"
)

// alarmScheduler is the subset of the scheduler used by the service.
type alarmScheduler interface {
	Schedule(ctx context.Context, alarm *adhan.ScheduledAlarm) error
	Cancel(ctx context.Context, prayerName string) error
	CancelAll(ctx context.Context) error
	Pending() []*adhan.ScheduledAlarm
}

// playbackController is the subset of the playback controller used by the service.
type playbackController interface {
	IsPlaying() bool
	CurrentAsset() (string, bool)
	Teardown(ctx context.Context)
	PlayTest(ctx context.Context, assetRef string) error
}

// reconciler re-applies the stored schedule.
type reconciler interface {
	OnBootRestore(ctx context.Context)
	Reconcile(ctx context.Context)
}

// assetLister lists playable assets.
type assetLister interface {
	List() ([]string, error)
}

// eventSubmitter queues a raw wake-up event for dispatch.
type eventSubmitter interface {
	Submit(ctx context.Context, payload []byte) error
}

// service implements the control API on top of the alarm core and the store.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	scheduler  alarmScheduler
	playback   playbackController
	reconciler reconciler
	repo       schedule.Repository
	assets     assetLister
	events     eventSubmitter

	// mu keeps the scheduler and the store in step; reconciliation from the
	// store never interleaves with a schedule or cancel.
	mu sync.Mutex
}

// ScheduleAlarm schedules the alarm and persists it.
// When the store rejects the alarm its wake-up is cancelled again.
func (s *service) ScheduleAlarm(ctx context.Context, alarm *adhan.ScheduledAlarm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.scheduleLocked(ctx, alarm); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm scheduled",
		"prayer", alarm.PrayerName,
		"trigger_at", alarm.TriggerTime(),
		"asset", alarm.AudioAssetRef,
		"sound", alarm.SoundEnabled)

	return nil
}

// ScheduleAlarms schedules and persists a batch. Failures do not stop the batch,
// and only alarms the timer accepted are persisted.
func (s *service) ScheduleAlarms(ctx context.Context, alarms []*adhan.ScheduledAlarm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error

	for _, alarm := range alarms {
		err = multierr.Append(err, s.scheduleLocked(ctx, alarm))
	}

	logger.InfoKV(ctx, "Alarms scheduled", "count", len(alarms), "failed", len(multierr.Errors(err)))

	return err
}

func (s *service) scheduleLocked(ctx context.Context, alarm *adhan.ScheduledAlarm) error {
	if err := s.scheduler.Schedule(ctx, alarm); err != nil {
		return err
	}

	saveErr := s.repo.Save(ctx, alarm)
	if saveErr == nil {
		return nil
	}

	logger.Errorf(ctx, "Failed to persist alarm %s, cancelling its wake-up: %v", alarm.PrayerName, saveErr)

	err := fmt.Errorf("persist alarm %s: %w", alarm.PrayerName, saveErr)

	if cancelErr := s.scheduler.Cancel(ctx, alarm.PrayerName); cancelErr != nil {
		err = multierr.Append(err, cancelErr)
	}

	return err
}

// CancelAlarm cancels the alarm and removes it from the store.
func (s *service) CancelAlarm(ctx context.Context, prayerName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := multierr.Append(
		s.scheduler.Cancel(ctx, prayerName),
		s.repo.Delete(ctx, prayerName),
	)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm cancelled", "prayer", prayerName)

	return nil
}

// CancelAllAlarms cancels every pending alarm and clears the store.
func (s *service) CancelAllAlarms(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.scheduler.CancelAll(ctx)

	stored, listErr := s.repo.List(ctx)
	if listErr != nil {
		return multierr.Append(err, listErr)
	}

	for _, alarm := range stored {
		err = multierr.Append(err, s.repo.Delete(ctx, alarm.PrayerName))
	}

	logger.InfoKV(ctx, "All alarms cancelled", "stored", len(stored))

	return err
}

// PendingAlarms returns the pending alarms ordered by trigger time.
func (s *service) PendingAlarms(context.Context) []*adhan.ScheduledAlarm {
	return s.scheduler.Pending()
}

// FireAlarm queues a raw wake-up event behind any timer firings.
func (s *service) FireAlarm(ctx context.Context, payload []byte) {
	if err := s.events.Submit(ctx, payload); err != nil {
		logger.WarnKV(ctx, "Alarm event dropped", "error", err)
	}
}

// PlaybackStatus reports the playback session.
func (s *service) PlaybackStatus(context.Context) (bool, string) {
	if !s.playback.IsPlaying() {
		return false, ""
	}

	asset, _ := s.playback.CurrentAsset()

	return true, asset
}

// StopPlayback tears down the current session.
func (s *service) StopPlayback(ctx context.Context) {
	s.playback.Teardown(ctx)
	logger.Info(ctx, "Playback stopped on request")
}

// AudioAssets lists the playable assets.
func (s *service) AudioAssets(context.Context) ([]string, error) {
	return s.assets.List()
}

// PlayTestAudio plays an asset without a notification.
func (s *service) PlayTestAudio(ctx context.Context, assetRef string) error {
	return s.playback.PlayTest(ctx, assetRef)
}

// Restore re-submits the stored schedule.
func (s *service) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconciler.OnBootRestore(ctx)
}

// Reconcile aligns the pending alarms with the store.
func (s *service) Reconcile(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reconciler.Reconcile(ctx)
}
