package adhan

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	domain "github.com/oshokin/adhan-alarm/internal/domain/adhan"
	"github.com/oshokin/adhan-alarm/internal/logger"
	pb "github.com/oshokin/adhan-alarm/internal/pb/v1"
)

// Status fields returned by PlaybackStatus.
const (
	FieldIsPlaying    = "isPlaying"
	FieldCurrentAsset = "currentAsset"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	ScheduleAlarm(ctx context.Context, alarm *domain.ScheduledAlarm) error
	ScheduleAlarms(ctx context.Context, alarms []*domain.ScheduledAlarm) error
	CancelAlarm(ctx context.Context, prayerName string) error
	CancelAllAlarms(ctx context.Context) error
	PendingAlarms(ctx context.Context) []*domain.ScheduledAlarm
	FireAlarm(ctx context.Context, payload []byte)
	PlaybackStatus(ctx context.Context) (isPlaying bool, currentAsset string)
	StopPlayback(ctx context.Context)
	AudioAssets(ctx context.Context) ([]string, error)
	PlayTestAudio(ctx context.Context, assetRef string) error
}

// Server implements the AdhanService gRPC API.
type Server struct {
	pb.UnimplementedAdhanServiceServer

	// service provides the business logic for the daemon.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// ScheduleAlarm schedules or replaces the alarm of a prayer.
func (s *Server) ScheduleAlarm(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	alarm, err := toDomainAlarm(req)
	if err != nil {
		return nil, err
	}

	if err = s.service.ScheduleAlarm(ctx, alarm); err != nil {
		return nil, toStatus(ctx, "unable to schedule alarm", err)
	}

	return new(emptypb.Empty), nil
}

// ScheduleAlarms schedules every alarm of the list.
func (s *Server) ScheduleAlarms(ctx context.Context, req *structpb.ListValue) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	alarms := make([]*domain.ScheduledAlarm, 0, len(req.GetValues()))

	for _, value := range req.GetValues() {
		record := value.GetStructValue()
		if record == nil {
			return nil, status.Error(codes.InvalidArgument, "every alarm must be an object")
		}

		alarm, err := toDomainAlarm(record)
		if err != nil {
			return nil, err
		}

		alarms = append(alarms, alarm)
	}

	if err := s.service.ScheduleAlarms(ctx, alarms); err != nil {
		return nil, toStatus(ctx, "unable to schedule alarms", err)
	}

	return new(emptypb.Empty), nil
}

// CancelAlarm cancels the alarm of a prayer.
func (s *Server) CancelAlarm(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "prayer name is required")
	}

	if err := s.service.CancelAlarm(ctx, req.GetValue()); err != nil {
		return nil, toStatus(ctx, "unable to cancel alarm", err)
	}

	return new(emptypb.Empty), nil
}

// CancelAllAlarms cancels every pending alarm.
func (s *Server) CancelAllAlarms(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.service.CancelAllAlarms(ctx); err != nil {
		return nil, toStatus(ctx, "unable to cancel alarms", err)
	}

	return new(emptypb.Empty), nil
}

// ListAlarms returns the pending alarms.
func (s *Server) ListAlarms(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	pending := s.service.PendingAlarms(ctx)
	values := make([]*structpb.Value, 0, len(pending))

	for _, alarm := range pending {
		record, err := domain.AlarmToStruct(alarm)
		if err != nil {
			return nil, toStatus(ctx, "unable to encode alarms", err)
		}

		values = append(values, structpb.NewStructValue(record))
	}

	return &structpb.ListValue{Values: values}, nil
}

// FireAlarm hands a raw wake-up event to the dispatcher.
func (s *Server) FireAlarm(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	payload, err := protojson.Marshal(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "unable to encode event")
	}

	s.service.FireAlarm(ctx, payload)

	return new(emptypb.Empty), nil
}

// PlaybackStatus reports the playback session.
func (s *Server) PlaybackStatus(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	isPlaying, currentAsset := s.service.PlaybackStatus(ctx)

	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldIsPlaying:    structpb.NewBoolValue(isPlaying),
		FieldCurrentAsset: structpb.NewStringValue(currentAsset),
	}}, nil
}

// StopPlayback tears down the playback session.
func (s *Server) StopPlayback(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	s.service.StopPlayback(ctx)

	return new(emptypb.Empty), nil
}

// ListAudioAssets returns the playable asset references.
func (s *Server) ListAudioAssets(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	assets, err := s.service.AudioAssets(ctx)
	if err != nil {
		return nil, toStatus(ctx, "unable to list audio assets", err)
	}

	values := make([]*structpb.Value, 0, len(assets))
	for _, asset := range assets {
		values = append(values, structpb.NewStringValue(asset))
	}

	return &structpb.ListValue{Values: values}, nil
}

// PlayTestAudio plays an asset without a notification.
func (s *Server) PlayTestAudio(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := s.service.PlayTestAudio(ctx, req.GetValue()); err != nil {
		return nil, toStatus(ctx, "unable to play audio", err)
	}

	return new(emptypb.Empty), nil
}

// toDomainAlarm converts a protobuf struct into a validated domain alarm.
func toDomainAlarm(record *structpb.Struct) (*domain.ScheduledAlarm, error) {
	alarm, err := domain.AlarmFromStruct(record)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err = alarm.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	return alarm, nil
}

// toStatus maps service errors onto gRPC status codes.
func toStatus(ctx context.Context, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrPrayerNameRequired), errors.Is(err, domain.ErrMalformedAlarm):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrAssetNotFound):
		return status.Error(codes.NotFound, err.Error())
	}

	logger.ErrorKV(ctx, message, "error", err)

	return status.Error(codes.Internal, message)
}
