//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
)

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}

// TestScheduleAlarm_NilAlarm asserts that a nil alarm is rejected before any call.
func TestScheduleAlarm_NilAlarm(t *testing.T) {
	t.Parallel()

	c := new(Client)

	require.ErrorIs(t, c.ScheduleAlarm(context.Background(), nil), errAlarmRequired)
	require.ErrorIs(t, c.ScheduleAlarms(context.Background(), []*adhan.ScheduledAlarm{nil}), errAlarmRequired)
}

// TestScheduleAlarm_InvalidAlarm asserts that validation runs on the client side.
func TestScheduleAlarm_InvalidAlarm(t *testing.T) {
	t.Parallel()

	c := new(Client)

	err := c.ScheduleAlarm(context.Background(), &adhan.ScheduledAlarm{TriggerAtEpochMillis: 1})
	require.ErrorIs(t, err, adhan.ErrPrayerNameRequired)
}

// TestClose_NilSafe verifies that closing an unconnected client is a no-op.
func TestClose_NilSafe(t *testing.T) {
	t.Parallel()

	var c *Client

	require.NoError(t, c.Close())
	require.NoError(t, new(Client).Close())
}
