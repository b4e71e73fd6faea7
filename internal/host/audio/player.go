package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
)

const (
	// assetPlaceholder is replaced by the asset path in the command template.
	assetPlaceholder = "%s"

	// stopGracePeriod is how long a player may take to exit after an interrupt.
	stopGracePeriod = 2 * time.Second
)

var (
	// ErrUnknownHandle is returned for handles that were never loaded or were released.
	ErrUnknownHandle = errors.New("unknown audio handle")
	// ErrEmptyCommand is returned when no player command is configured.
	ErrEmptyCommand = errors.New("player command is empty")
)

// track is one loaded asset and, once started, its player process.
type track struct {
	path  string
	attrs adhan.AudioAttributes
	cmd   *exec.Cmd
	done  chan struct{}
}

func (t *track) running() bool {
	if t.cmd == nil {
		return false
	}

	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// ProcessPlayer is an adhan.Player that runs one external process per started handle.
type ProcessPlayer struct {
	command []string
	catalog *Catalog

	mu     sync.Mutex
	next   adhan.Handle
	tracks map[adhan.Handle]*track
}

var _ adhan.Player = (*ProcessPlayer)(nil)

// NewProcessPlayer creates a player. command is the invocation template, with "%s"
// standing for the asset path; when no argument holds it the path is appended.
func NewProcessPlayer(command []string, catalog *Catalog) (*ProcessPlayer, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, ErrEmptyCommand
	}

	return &ProcessPlayer{
		command: append([]string(nil), command...),
		catalog: catalog,
		tracks:  make(map[adhan.Handle]*track),
	}, nil
}

// Load resolves the asset and returns a handle for it.
func (p *ProcessPlayer) Load(_ context.Context, assetRef string, attrs adhan.AudioAttributes) (adhan.Handle, error) {
	path, err := p.catalog.Resolve(assetRef)
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.next++
	p.tracks[p.next] = &track{
		path:  path,
		attrs: attrs,
		done:  make(chan struct{}),
	}

	return p.next, nil
}

// Start launches the player process for handle.
func (p *ProcessPlayer) Start(ctx context.Context, handle adhan.Handle) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	t, ok := p.tracks[handle]
	if !ok {
		return ErrUnknownHandle
	}

	if t.running() {
		return nil
	}

	name, args := p.invocation(t.path)

	//nolint:gosec // The command comes from the operator's configuration.
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), environment(t.attrs)...)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start player %s: %w", name, err)
	}

	done := make(chan struct{})
	t.cmd = cmd
	t.done = done

	go func() {
		err := cmd.Wait()
		close(done)

		if err != nil {
			logger.DebugKV(ctx, "Player exited", "handle", handle, "error", err)
		}
	}()

	logger.DebugKV(ctx, "Player started", "handle", handle, "pid", cmd.Process.Pid, "path", t.path)

	return nil
}

// Stop interrupts the player process and kills it if it does not exit in time.
func (p *ProcessPlayer) Stop(ctx context.Context, handle adhan.Handle) error {
	cmd, done := p.active(handle, false)
	if cmd == nil {
		return nil
	}

	return stopProcess(ctx, cmd, done)
}

// Release stops the handle and forgets it.
func (p *ProcessPlayer) Release(ctx context.Context, handle adhan.Handle) error {
	cmd, done := p.active(handle, true)
	if cmd == nil {
		return nil
	}

	return stopProcess(ctx, cmd, done)
}

// IsPlaying reports whether the player process of handle is alive.
func (p *ProcessPlayer) IsPlaying(handle adhan.Handle) bool {
	cmd, _ := p.active(handle, false)
	if cmd == nil {
		return false
	}

	process, err := ps.FindProcess(cmd.Process.Pid)
	if err != nil {
		return true
	}

	return process != nil
}

// active returns the running process of handle, if any, optionally forgetting the handle.
func (p *ProcessPlayer) active(handle adhan.Handle, forget bool) (*exec.Cmd, <-chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	t, ok := p.tracks[handle]
	if forget {
		delete(p.tracks, handle)
	}

	if !ok || !t.running() {
		return nil, nil
	}

	return t.cmd, t.done
}

func (p *ProcessPlayer) invocation(path string) (string, []string) {
	args := make([]string, 0, len(p.command))
	substituted := false

	for _, arg := range p.command[1:] {
		if strings.Contains(arg, assetPlaceholder) {
			arg = strings.ReplaceAll(arg, assetPlaceholder, path)
			substituted = true
		}

		args = append(args, arg)
	}

	if !substituted {
		args = append(args, path)
	}

	return p.command[0], args
}

func stopProcess(ctx context.Context, cmd *exec.Cmd, done <-chan struct{}) error {
	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return nil
		}

		logger.DebugKV(ctx, "Interrupt failed, killing player", "error", err)
	} else {
		select {
		case <-done:
			return nil
		case <-time.After(stopGracePeriod):
		}
	}

	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to kill player: %w", err)
	}

	<-done

	return nil
}

// environment maps audio attributes onto PulseAudio/PipeWire stream properties.
func environment(attrs adhan.AudioAttributes) []string {
	var props []string

	if attrs.Usage == adhan.UsageAlarm {
		props = append(props, "media.role=alarm")
	}

	if attrs.ContentType == adhan.ContentTypeMusic {
		props = append(props, "media.category=Playback")
	}

	if len(props) == 0 {
		return nil
	}

	return []string{"PULSE_PROP=" + strings.Join(props, " ")}
}
