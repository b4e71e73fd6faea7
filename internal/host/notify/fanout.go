package notify

import (
	"context"

	"go.uber.org/multierr"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
)

// Fanout delivers to every backend. A failing backend does not stop the others.
type Fanout []adhan.Notifier

var _ adhan.Notifier = Fanout(nil)

// EnsureChannel registers the channel on every backend.
func (f Fanout) EnsureChannel(ctx context.Context, channel adhan.Channel) error {
	var err error

	for _, n := range f {
		err = multierr.Append(err, n.EnsureChannel(ctx, channel))
	}

	return err
}

// Show displays the notification on every backend.
func (f Fanout) Show(ctx context.Context, notification *adhan.Notification) error {
	var err error

	for _, n := range f {
		err = multierr.Append(err, n.Show(ctx, notification))
	}

	return err
}
