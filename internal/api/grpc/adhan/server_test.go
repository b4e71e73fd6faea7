package adhan

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	domain "github.com/oshokin/adhan-alarm/internal/domain/adhan"
)

var errTestStorage = errors.New("disk full")

// fakeService implements the Service interface for unit testing the transport.
type fakeService struct {
	alarms  map[string]*domain.ScheduledAlarm
	fired   [][]byte
	playing string
	err     error
}

func newFakeService() *fakeService {
	return &fakeService{alarms: make(map[string]*domain.ScheduledAlarm)}
}

func (f *fakeService) ScheduleAlarm(_ context.Context, alarm *domain.ScheduledAlarm) error {
	if f.err != nil {
		return f.err
	}

	f.alarms[alarm.PrayerName] = alarm

	return nil
}

func (f *fakeService) ScheduleAlarms(ctx context.Context, alarms []*domain.ScheduledAlarm) error {
	for _, alarm := range alarms {
		if err := f.ScheduleAlarm(ctx, alarm); err != nil {
			return err
		}
	}

	return nil
}

func (f *fakeService) CancelAlarm(_ context.Context, prayerName string) error {
	delete(f.alarms, prayerName)
	return f.err
}

func (f *fakeService) CancelAllAlarms(context.Context) error {
	clear(f.alarms)
	return f.err
}

func (f *fakeService) PendingAlarms(context.Context) []*domain.ScheduledAlarm {
	result := make([]*domain.ScheduledAlarm, 0, len(f.alarms))
	for _, alarm := range f.alarms {
		result = append(result, alarm)
	}

	return result
}

func (f *fakeService) FireAlarm(_ context.Context, payload []byte) {
	f.fired = append(f.fired, payload)
}

func (f *fakeService) PlaybackStatus(context.Context) (bool, string) {
	return f.playing != "", f.playing
}

func (f *fakeService) StopPlayback(context.Context) {
	f.playing = ""
}

func (f *fakeService) AudioAssets(context.Context) ([]string, error) {
	return []string{domain.DefaultAudioAsset, "adhan_makkah"}, f.err
}

func (f *fakeService) PlayTestAudio(_ context.Context, assetRef string) error {
	if assetRef == "missing" {
		return fmt.Errorf("%q: %w", assetRef, domain.ErrAssetNotFound)
	}

	f.playing = assetRef

	return nil
}

func alarmStruct(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()

	msg, err := structpb.NewStruct(fields)
	require.NoError(t, err)

	return msg
}

// TestServer_ScheduleAlarm_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_ScheduleAlarm_Validation(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		s   = NewServer(newFakeService())
	)

	_, err := s.ScheduleAlarm(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ScheduleAlarm(ctx, alarmStruct(t, map[string]any{"triggerAtEpochMillis": 1}))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ScheduleAlarm(ctx, alarmStruct(t, map[string]any{"prayerName": "Fajr", "soundEnabled": "loud"}))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ScheduleAlarms(ctx, &structpb.ListValue{Values: []*structpb.Value{structpb.NewStringValue("Fajr")}})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.CancelAlarm(ctx, wrapperspb.String(""))
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_Roundtrip exercises schedule, list and cancel on the server implementation.
func TestServer_Roundtrip(t *testing.T) {
	t.Parallel()

	var (
		ctx     = context.Background()
		service = newFakeService()
		s       = NewServer(service)
	)

	_, err := s.ScheduleAlarm(ctx, alarmStruct(t, map[string]any{
		"prayerName":           "Fajr",
		"triggerAtEpochMillis": 1_792_213_200_000,
		"audioAssetRef":        "adhan_makkah",
	}))
	require.NoError(t, err)

	list, err := s.ListAlarms(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.Len(t, list.GetValues(), 1)

	got, err := domain.AlarmFromStruct(list.GetValues()[0].GetStructValue())
	require.NoError(t, err)
	require.Equal(t, &domain.ScheduledAlarm{
		PrayerName:           "Fajr",
		TriggerAtEpochMillis: 1_792_213_200_000,
		AudioAssetRef:        "adhan_makkah",
		SoundEnabled:         true,
	}, got)

	_, err = s.CancelAlarm(ctx, wrapperspb.String("Fajr"))
	require.NoError(t, err)
	require.Empty(t, service.alarms)

	_, err = s.ScheduleAlarms(ctx, &structpb.ListValue{Values: []*structpb.Value{
		structpb.NewStructValue(alarmStruct(t, map[string]any{"prayerName": "Dhuhr"})),
		structpb.NewStructValue(alarmStruct(t, map[string]any{"prayerName": "Asr"})),
	}})
	require.NoError(t, err)
	require.Len(t, service.alarms, 2)

	_, err = s.CancelAllAlarms(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.Empty(t, service.alarms)
}

// TestServer_ServiceErrors ensures storage failures surface as Internal without details.
func TestServer_ServiceErrors(t *testing.T) {
	t.Parallel()

	var (
		ctx     = context.Background()
		service = newFakeService()
		s       = NewServer(service)
	)

	service.err = errTestStorage

	_, err := s.ScheduleAlarm(ctx, alarmStruct(t, map[string]any{"prayerName": "Maghrib"}))
	require.Equal(t, codes.Internal, status.Code(err))
	require.NotContains(t, err.Error(), errTestStorage.Error())

	_, err = s.ListAudioAssets(ctx, new(emptypb.Empty))
	require.Equal(t, codes.Internal, status.Code(err))

	service.err = domain.ErrPrayerNameRequired

	_, err = s.CancelAllAlarms(ctx, new(emptypb.Empty))
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_Playback covers fire, status, test playback and stop.
func TestServer_Playback(t *testing.T) {
	t.Parallel()

	var (
		ctx     = context.Background()
		service = newFakeService()
		s       = NewServer(service)
	)

	event := alarmStruct(t, map[string]any{"action": domain.ActionFire, "prayerName": "Isha"})

	_, err := s.FireAlarm(ctx, event)
	require.NoError(t, err)
	require.Len(t, service.fired, 1)

	payload, err := domain.DecodePayload(service.fired[0])
	require.NoError(t, err)
	require.Equal(t, "Isha", payload.PrayerName)

	_, err = s.PlayTestAudio(ctx, wrapperspb.String("missing"))
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = s.PlayTestAudio(ctx, wrapperspb.String("adhan_makkah"))
	require.NoError(t, err)

	st, err := s.PlaybackStatus(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.True(t, st.GetFields()[FieldIsPlaying].GetBoolValue())
	require.Equal(t, "adhan_makkah", st.GetFields()[FieldCurrentAsset].GetStringValue())

	_, err = s.StopPlayback(ctx, new(emptypb.Empty))
	require.NoError(t, err)

	st, err = s.PlaybackStatus(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.False(t, st.GetFields()[FieldIsPlaying].GetBoolValue())

	assets, err := s.ListAudioAssets(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.Equal(t, domain.DefaultAudioAsset, assets.GetValues()[0].GetStringValue())
	require.Len(t, assets.GetValues(), 2)
}
