package daemon

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/oshokin/adhan-alarm/internal/logger"
)

// defaultDebounce coalesces the burst of events produced by a single save.
const defaultDebounce = 2 * time.Second

// storeWatcher reconciles the schedule when the store file changes on disk.
type storeWatcher struct {
	path      string
	debounce  time.Duration
	reconcile func(ctx context.Context)
	watcher   *fsnotify.Watcher

	stopOnce sync.Once
	stop     chan struct{}
	changed  chan struct{}
	wg       sync.WaitGroup
}

func newStoreWatcher(path string, debounce time.Duration, reconcile func(ctx context.Context)) (*storeWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = defaultDebounce
	}

	return &storeWatcher{
		path:      absPath,
		debounce:  debounce,
		reconcile: reconcile,
		watcher:   watcher,
		stop:      make(chan struct{}),
		changed:   make(chan struct{}, 1),
	}, nil
}

// Start watches the directory of the store file; editors replace files by rename,
// which a watch on the file itself would miss.
func (w *storeWatcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch store directory %s: %w", dir, err)
	}

	logger.InfoKV(ctx, "Watching schedule store", "path", w.path)

	w.wg.Add(2)

	go w.watchLoop(ctx)
	go w.reconcileLoop(ctx)

	return nil
}

// Stop ends both loops and closes the watcher.
func (w *storeWatcher) Stop(ctx context.Context) error {
	w.stopOnce.Do(func() { close(w.stop) })

	err := w.watcher.Close()
	if err != nil {
		logger.WarnKV(ctx, "Error closing store watcher", "error", err)
	}

	w.wg.Wait()

	return nil
}

func (w *storeWatcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()

	name := filepath.Base(w.path)

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != name {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				logger.DebugKV(ctx, "Schedule store changed", "op", event.Op.String())
				w.trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			logger.WarnKV(ctx, "Store watcher error", "error", err)
		}
	}
}

func (w *storeWatcher) reconcileLoop(ctx context.Context) {
	defer w.wg.Done()

	var fire <-chan time.Time

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-w.changed:
			timer.Reset(w.debounce)
			fire = timer.C
		case <-fire:
			fire = nil

			logger.Info(ctx, "Reconciling schedule with the store")
			w.reconcile(ctx)
		}
	}
}

func (w *storeWatcher) trigger() {
	select {
	case w.changed <- struct{}{}:
	default:
	}
}
