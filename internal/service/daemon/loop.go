package daemon

import (
	"context"
	"errors"
	"sync"
)

// ErrLoopStopped is returned when an event is submitted after the loop stopped.
var ErrLoopStopped = errors.New("dispatch loop stopped")

// firer handles one wake-up event.
type firer interface {
	OnFire(ctx context.Context, payload []byte)
}

// dispatchLoop feeds timer firings and submitted events to the dispatcher from a
// single goroutine, so firings are handled one at a time in arrival order.
type dispatchLoop struct {
	timerEvents <-chan []byte
	submitted   chan []byte
	dispatcher  firer

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func newDispatchLoop(timerEvents <-chan []byte, dispatcher firer) *dispatchLoop {
	return &dispatchLoop{
		timerEvents: timerEvents,
		submitted:   make(chan []byte),
		dispatcher:  dispatcher,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start runs the loop until Stop is called.
func (l *dispatchLoop) Start(ctx context.Context) {
	go l.run(ctx)
}

// Submit queues a raw event behind the events already waiting.
func (l *dispatchLoop) Submit(ctx context.Context, payload []byte) error {
	select {
	case l.submitted <- payload:
		return nil
	case <-l.stop:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop ends the loop and waits for the event in progress.
func (l *dispatchLoop) Stop(ctx context.Context) error {
	l.stopOnce.Do(func() { close(l.stop) })

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *dispatchLoop) run(ctx context.Context) {
	defer close(l.done)

	for {
		select {
		case <-l.stop:
			return
		case payload, ok := <-l.timerEvents:
			if !ok {
				return
			}

			l.dispatcher.OnFire(ctx, payload)
		case payload := <-l.submitted:
			l.dispatcher.OnFire(ctx, payload)
		}
	}
}
