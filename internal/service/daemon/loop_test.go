package daemon

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"
)

// recordingFirer records payloads and tracks concurrent OnFire calls.
type recordingFirer struct {
	mu        sync.Mutex
	payloads  []string
	active    int
	maxActive int
}

func (r *recordingFirer) OnFire(_ context.Context, payload []byte) {
	r.mu.Lock()
	r.active++
	r.maxActive = max(r.maxActive, r.active)
	r.mu.Unlock()

	time.Sleep(time.Millisecond)

	r.mu.Lock()
	r.active--
	r.payloads = append(r.payloads, string(payload))
	r.mu.Unlock()
}

func (r *recordingFirer) snapshot() ([]string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.payloads...), r.maxActive
}

func TestDispatchLoop_Serializes(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		events = make(chan []byte)
		firer  = new(recordingFirer)
		loop   = newDispatchLoop(events, firer)
		errs   = make(chan error, 8)
		wg     sync.WaitGroup
	)

	loop.Start(ctx)

	for range 8 {
		wg.Add(2)

		go func() {
			defer wg.Done()
			events <- []byte("timer")
		}()

		go func() {
			defer wg.Done()
			errs <- loop.Submit(ctx, []byte("manual"))
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	require.NoError(t, loop.Stop(ctx))

	payloads, maxActive := firer.snapshot()
	require.Len(t, payloads, 16)
	require.Equal(t, 1, maxActive)
}

func TestDispatchLoop_ArrivalOrder(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			ctx    = context.Background()
			events = make(chan []byte)
			firer  = new(recordingFirer)
			loop   = newDispatchLoop(events, firer)
		)

		loop.Start(ctx)

		events <- []byte("Fajr")
		require.NoError(t, loop.Submit(ctx, []byte("manual")))
		events <- []byte("Dhuhr")

		// Stop waits for the event in progress; its sleep runs on the bubble clock.
		require.NoError(t, loop.Stop(ctx))

		payloads, _ := firer.snapshot()
		require.Equal(t, []string{"Fajr", "manual", "Dhuhr"}, payloads)

		synctest.Wait()
	})
}

func TestDispatchLoop_Stop(t *testing.T) {
	t.Parallel()

	var (
		ctx  = context.Background()
		loop = newDispatchLoop(make(chan []byte), new(recordingFirer))
	)

	loop.Start(ctx)
	require.NoError(t, loop.Stop(ctx))
	require.NoError(t, loop.Stop(ctx))
	require.ErrorIs(t, loop.Submit(ctx, []byte("late")), ErrLoopStopped)
}

func TestDispatchLoop_TimerClosed(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		events = make(chan []byte)
		loop   = newDispatchLoop(events, new(recordingFirer))
	)

	loop.Start(ctx)
	close(events)

	select {
	case <-loop.done:
	case <-time.After(5 * time.Second):
		require.FailNow(t, "loop did not exit")
	}
}
