//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	api "github.com/oshokin/adhan-alarm/internal/api/grpc/adhan"
	"github.com/oshokin/adhan-alarm/internal/config"
	"github.com/oshokin/adhan-alarm/internal/domain/adhan"
	pb "github.com/oshokin/adhan-alarm/internal/pb/v1"
)

// Client wraps the gRPC AdhanService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the daemon.
	conn *grpc.ClientConn
	// api is the AdhanService client interface.
	api pb.AdhanServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// PlaybackStatus describes the daemon's playback session.
type PlaybackStatus struct {
	IsPlaying    bool
	CurrentAsset string
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errAlarmRequired is returned when an alarm is not provided.
	errAlarmRequired = errors.New("alarm must be provided")
	// errPayloadRequired is returned when a fire payload is not provided.
	errPayloadRequired = errors.New("payload must be provided")
)

// Dial establishes a gRPC connection to the daemon.
// Note: this uses insecure transport credentials; the control API is meant to
// listen on loopback.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial adhan daemon: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewAdhanServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// ScheduleAlarm schedules or replaces the alarm of a prayer.
func (c *Client) ScheduleAlarm(ctx context.Context, alarm *adhan.ScheduledAlarm) error {
	if alarm == nil {
		return errAlarmRequired
	}

	if err := alarm.Validate(); err != nil {
		return err
	}

	record, err := adhan.AlarmToStruct(alarm)
	if err != nil {
		return err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err = c.api.ScheduleAlarm(callCtx, record); err != nil {
		return fmt.Errorf("schedule alarm: %w", err)
	}

	return nil
}

// ScheduleAlarms schedules a batch of alarms.
func (c *Client) ScheduleAlarms(ctx context.Context, alarms []*adhan.ScheduledAlarm) error {
	values := make([]*structpb.Value, 0, len(alarms))

	for _, alarm := range alarms {
		if alarm == nil {
			return errAlarmRequired
		}

		if err := alarm.Validate(); err != nil {
			return err
		}

		record, err := adhan.AlarmToStruct(alarm)
		if err != nil {
			return err
		}

		values = append(values, structpb.NewStructValue(record))
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.ScheduleAlarms(callCtx, &structpb.ListValue{Values: values}); err != nil {
		return fmt.Errorf("schedule alarms: %w", err)
	}

	return nil
}

// CancelAlarm cancels the alarm of a prayer.
func (c *Client) CancelAlarm(ctx context.Context, prayerName string) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.CancelAlarm(callCtx, wrapperspb.String(prayerName)); err != nil {
		return fmt.Errorf("cancel alarm: %w", err)
	}

	return nil
}

// CancelAllAlarms cancels every pending alarm.
func (c *Client) CancelAllAlarms(ctx context.Context) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.CancelAllAlarms(callCtx, new(emptypb.Empty)); err != nil {
		return fmt.Errorf("cancel all alarms: %w", err)
	}

	return nil
}

// ListAlarms returns the pending alarms.
func (c *Client) ListAlarms(ctx context.Context) ([]*adhan.ScheduledAlarm, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListAlarms(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	alarms := make([]*adhan.ScheduledAlarm, 0, len(resp.GetValues()))

	for _, value := range resp.GetValues() {
		alarm, decodeErr := adhan.AlarmFromStruct(value.GetStructValue())
		if decodeErr != nil {
			return nil, fmt.Errorf("list alarms: %w", decodeErr)
		}

		alarms = append(alarms, alarm)
	}

	return alarms, nil
}

// FireAlarm asks the daemon to handle the payload as if its wake-up had fired.
func (c *Client) FireAlarm(ctx context.Context, payload *adhan.Payload) error {
	if payload == nil {
		return errPayloadRequired
	}

	data, err := adhan.EncodePayload(payload)
	if err != nil {
		return err
	}

	event := new(structpb.Struct)
	if err = protojson.Unmarshal(data, event); err != nil {
		return fmt.Errorf("fire alarm: %w", err)
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err = c.api.FireAlarm(callCtx, event); err != nil {
		return fmt.Errorf("fire alarm: %w", err)
	}

	return nil
}

// PlaybackStatus reports the playback session.
func (c *Client) PlaybackStatus(ctx context.Context) (*PlaybackStatus, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.PlaybackStatus(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("playback status: %w", err)
	}

	fields := resp.GetFields()

	return &PlaybackStatus{
		IsPlaying:    fields[api.FieldIsPlaying].GetBoolValue(),
		CurrentAsset: fields[api.FieldCurrentAsset].GetStringValue(),
	}, nil
}

// StopPlayback stops the current Adhan.
func (c *Client) StopPlayback(ctx context.Context) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.StopPlayback(callCtx, new(emptypb.Empty)); err != nil {
		return fmt.Errorf("stop playback: %w", err)
	}

	return nil
}

// ListAudioAssets returns the playable asset references.
func (c *Client) ListAudioAssets(ctx context.Context) ([]string, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListAudioAssets(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("list audio assets: %w", err)
	}

	assets := make([]string, 0, len(resp.GetValues()))
	for _, value := range resp.GetValues() {
		assets = append(assets, value.GetStringValue())
	}

	return assets, nil
}

// PlayTestAudio plays an asset without a notification.
func (c *Client) PlayTestAudio(ctx context.Context, assetRef string) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.PlayTestAudio(callCtx, wrapperspb.String(assetRef)); err != nil {
		return fmt.Errorf("play test audio: %w", err)
	}

	return nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
