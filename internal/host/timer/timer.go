package timer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
)

// DefaultEventBuffer is the capacity of the events channel.
const DefaultEventBuffer = 16

// ErrClosed is returned when a request arrives after Shutdown.
var ErrClosed = errors.New("timer is shut down")

// Options configures a Timer.
type Options struct {
	// ExactAllowed permits exact wake-ups.
	ExactAllowed bool
	// BestEffortWindow aligns best-effort wake-ups up to a multiple of the window.
	BestEffortWindow time.Duration
	// Clock drives the underlying scheduler. Defaults to the real clock.
	Clock clockwork.Clock
	// EventBuffer is the capacity of the events channel.
	EventBuffer int
}

type request struct {
	id      uuid.UUID
	fireAt  time.Time
	payload []byte
}

// Timer is an adhan.Timer backed by a gocron scheduler.
type Timer struct {
	scheduler gocron.Scheduler
	clock     clockwork.Clock
	opts      Options
	events    chan []byte
	done      chan struct{}

	mu       sync.Mutex
	requests map[int]*request
	closed   bool
}

var _ adhan.Timer = (*Timer)(nil)

// New creates a Timer. Call Start to begin firing.
func New(opts Options) (*Timer, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	if opts.EventBuffer <= 0 {
		opts.EventBuffer = DefaultEventBuffer
	}

	s, err := gocron.NewScheduler(gocron.WithClock(opts.Clock))
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Timer{
		scheduler: s,
		clock:     opts.Clock,
		opts:      opts,
		events:    make(chan []byte, opts.EventBuffer),
		done:      make(chan struct{}),
		requests:  make(map[int]*request),
	}, nil
}

// Events delivers the payload of each fired wake-up.
func (t *Timer) Events() <-chan []byte {
	return t.events
}

// Start begins the scheduler.
func (t *Timer) Start(ctx context.Context) {
	logger.Info(ctx, "Starting wake-up timer")
	t.scheduler.Start()
}

// Shutdown stops the scheduler and drops pending wake-ups.
func (t *Timer) Shutdown(ctx context.Context) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}

	t.closed = true
	t.requests = make(map[int]*request)
	close(t.done)
	t.mu.Unlock()

	logger.Info(ctx, "Stopping wake-up timer")

	if err := t.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to stop gocron scheduler: %w", err)
	}

	return nil
}

// RequestWakeup schedules payload at the given time, replacing any request at key.
// Times in the past fire immediately.
func (t *Timer) RequestWakeup(ctx context.Context, key int, at time.Time, payload []byte, exact bool) error {
	if exact && !t.opts.ExactAllowed {
		return adhan.ErrExactDenied
	}

	fireAt := at
	if !exact {
		fireAt = alignUp(at, t.opts.BestEffortWindow)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}

	t.removeLocked(ctx, key)

	req := &request{
		id:      uuid.New(),
		fireAt:  fireAt,
		payload: append([]byte(nil), payload...),
	}

	start := gocron.OneTimeJobStartImmediately()
	if fireAt.After(t.clock.Now()) {
		start = gocron.OneTimeJobStartDateTime(fireAt)
	}

	_, err := t.scheduler.NewJob(
		gocron.OneTimeJob(start),
		gocron.NewTask(t.fire, key, req.id),
		gocron.WithIdentifier(req.id),
		gocron.WithName(fmt.Sprintf("wakeup-%d", key)),
	)
	if err != nil {
		return fmt.Errorf("failed to create wake-up job: %w", err)
	}

	t.requests[key] = req

	logger.DebugKV(ctx, "Wake-up requested",
		"key", key,
		"fire_at", fireAt.Format(time.RFC3339),
		"exact", exact)

	return nil
}

// CancelWakeup drops the request at key. Unknown keys are ignored.
func (t *Timer) CancelWakeup(ctx context.Context, key int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.removeLocked(ctx, key)

	return nil
}

// FireAt reports when the request at key is due.
func (t *Timer) FireAt(key int) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	req, ok := t.requests[key]
	if !ok {
		return time.Time{}, false
	}

	return req.fireAt, true
}

func (t *Timer) removeLocked(ctx context.Context, key int) {
	req, ok := t.requests[key]
	if !ok {
		return
	}

	delete(t.requests, key)

	err := t.scheduler.RemoveJob(req.id)
	if err != nil && !errors.Is(err, gocron.ErrJobNotFound) {
		logger.WarnKV(ctx, "Failed to remove wake-up job", "key", key, "error", err)
	}
}

// fire runs on the gocron executor. Stale jobs whose key was replaced are dropped.
func (t *Timer) fire(key int, id uuid.UUID) {
	t.mu.Lock()

	req, ok := t.requests[key]
	if !ok || req.id != id {
		t.mu.Unlock()
		return
	}

	delete(t.requests, key)
	t.mu.Unlock()

	select {
	case t.events <- req.payload:
	case <-t.done:
	}
}

// alignUp rounds at up to the next multiple of window.
func alignUp(at time.Time, window time.Duration) time.Time {
	if window <= 0 {
		return at
	}

	truncated := at.Truncate(window)
	if truncated.Equal(at) {
		return at
	}

	return truncated.Add(window)
}
