package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// AdhanServiceName is the fully qualified service name.
const AdhanServiceName = "adhan.v1.AdhanService"

// Full method names.
const (
	AdhanService_ScheduleAlarm_FullMethodName   = "/" + AdhanServiceName + "/ScheduleAlarm"
	AdhanService_ScheduleAlarms_FullMethodName  = "/" + AdhanServiceName + "/ScheduleAlarms"
	AdhanService_CancelAlarm_FullMethodName     = "/" + AdhanServiceName + "/CancelAlarm"
	AdhanService_CancelAllAlarms_FullMethodName = "/" + AdhanServiceName + "/CancelAllAlarms"
	AdhanService_ListAlarms_FullMethodName      = "/" + AdhanServiceName + "/ListAlarms"
	AdhanService_FireAlarm_FullMethodName       = "/" + AdhanServiceName + "/FireAlarm"
	AdhanService_PlaybackStatus_FullMethodName  = "/" + AdhanServiceName + "/PlaybackStatus"
	AdhanService_StopPlayback_FullMethodName    = "/" + AdhanServiceName + "/StopPlayback"
	AdhanService_ListAudioAssets_FullMethodName = "/" + AdhanServiceName + "/ListAudioAssets"
	AdhanService_PlayTestAudio_FullMethodName   = "/" + AdhanServiceName + "/PlayTestAudio"
)

// AdhanServiceClient is the client API for AdhanService.
type AdhanServiceClient interface {
	// ScheduleAlarm schedules or replaces the alarm of a prayer and persists it.
	ScheduleAlarm(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// ScheduleAlarms schedules a batch of alarms.
	ScheduleAlarms(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// CancelAlarm cancels the alarm of a prayer and removes it from the store.
	CancelAlarm(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// CancelAllAlarms cancels every pending alarm and clears the store.
	CancelAllAlarms(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// ListAlarms returns the pending alarms ordered by trigger time.
	ListAlarms(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	// FireAlarm delivers a raw wake-up event to the dispatcher.
	FireAlarm(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// PlaybackStatus reports whether an Adhan is playing and which asset.
	PlaybackStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	// StopPlayback tears down the current playback session.
	StopPlayback(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// ListAudioAssets returns the playable asset references.
	ListAudioAssets(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	// PlayTestAudio plays an asset without a notification.
	PlayTestAudio(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type adhanServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAdhanServiceClient creates a client over cc.
func NewAdhanServiceClient(cc grpc.ClientConnInterface) AdhanServiceClient {
	return &adhanServiceClient{cc}
}

func (c *adhanServiceClient) ScheduleAlarm(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)

	err := c.cc.Invoke(ctx, AdhanService_ScheduleAlarm_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adhanServiceClient) ScheduleAlarms(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)

	err := c.cc.Invoke(ctx, AdhanService_ScheduleAlarms_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adhanServiceClient) CancelAlarm(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)

	err := c.cc.Invoke(ctx, AdhanService_CancelAlarm_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adhanServiceClient) CancelAllAlarms(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)

	err := c.cc.Invoke(ctx, AdhanService_CancelAllAlarms_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adhanServiceClient) ListAlarms(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)

	err := c.cc.Invoke(ctx, AdhanService_ListAlarms_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adhanServiceClient) FireAlarm(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)

	err := c.cc.Invoke(ctx, AdhanService_FireAlarm_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adhanServiceClient) PlaybackStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)

	err := c.cc.Invoke(ctx, AdhanService_PlaybackStatus_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adhanServiceClient) StopPlayback(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)

	err := c.cc.Invoke(ctx, AdhanService_StopPlayback_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adhanServiceClient) ListAudioAssets(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)

	err := c.cc.Invoke(ctx, AdhanService_ListAudioAssets_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (c *adhanServiceClient) PlayTestAudio(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)

	err := c.cc.Invoke(ctx, AdhanService_PlayTestAudio_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// AdhanServiceServer is the server API for AdhanService.
// Implementations must embed UnimplementedAdhanServiceServer.
type AdhanServiceServer interface {
	ScheduleAlarm(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error)
	ScheduleAlarms(ctx context.Context, in *structpb.ListValue) (*emptypb.Empty, error)
	CancelAlarm(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error)
	CancelAllAlarms(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error)
	ListAlarms(ctx context.Context, in *emptypb.Empty) (*structpb.ListValue, error)
	FireAlarm(ctx context.Context, in *structpb.Struct) (*emptypb.Empty, error)
	PlaybackStatus(ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error)
	StopPlayback(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error)
	ListAudioAssets(ctx context.Context, in *emptypb.Empty) (*structpb.ListValue, error)
	PlayTestAudio(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error)
	mustEmbedUnimplementedAdhanServiceServer()
}

// UnimplementedAdhanServiceServer returns Unimplemented for every method.
type UnimplementedAdhanServiceServer struct{}

func (UnimplementedAdhanServiceServer) ScheduleAlarm(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method ScheduleAlarm not implemented")
}

func (UnimplementedAdhanServiceServer) ScheduleAlarms(context.Context, *structpb.ListValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method ScheduleAlarms not implemented")
}

func (UnimplementedAdhanServiceServer) CancelAlarm(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelAlarm not implemented")
}

func (UnimplementedAdhanServiceServer) CancelAllAlarms(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelAllAlarms not implemented")
}

func (UnimplementedAdhanServiceServer) ListAlarms(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAlarms not implemented")
}

func (UnimplementedAdhanServiceServer) FireAlarm(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method FireAlarm not implemented")
}

func (UnimplementedAdhanServiceServer) PlaybackStatus(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method PlaybackStatus not implemented")
}

func (UnimplementedAdhanServiceServer) StopPlayback(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method StopPlayback not implemented")
}

func (UnimplementedAdhanServiceServer) ListAudioAssets(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAudioAssets not implemented")
}

func (UnimplementedAdhanServiceServer) PlayTestAudio(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method PlayTestAudio not implemented")
}

func (UnimplementedAdhanServiceServer) mustEmbedUnimplementedAdhanServiceServer() {}

// RegisterAdhanServiceServer registers srv on s.
func RegisterAdhanServiceServer(s grpc.ServiceRegistrar, srv AdhanServiceServer) {
	s.RegisterService(&AdhanService_ServiceDesc, srv)
}

func _AdhanService_ScheduleAlarm_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AdhanServiceServer).ScheduleAlarm(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdhanService_ScheduleAlarm_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdhanServiceServer).ScheduleAlarm(ctx, req.(*structpb.Struct))
	}

	return interceptor(ctx, in, info, handler)
}

func _AdhanService_ScheduleAlarms_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.ListValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AdhanServiceServer).ScheduleAlarms(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdhanService_ScheduleAlarms_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdhanServiceServer).ScheduleAlarms(ctx, req.(*structpb.ListValue))
	}

	return interceptor(ctx, in, info, handler)
}

func _AdhanService_CancelAlarm_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AdhanServiceServer).CancelAlarm(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdhanService_CancelAlarm_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdhanServiceServer).CancelAlarm(ctx, req.(*wrapperspb.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

func _AdhanService_CancelAllAlarms_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AdhanServiceServer).CancelAllAlarms(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdhanService_CancelAllAlarms_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdhanServiceServer).CancelAllAlarms(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

func _AdhanService_ListAlarms_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AdhanServiceServer).ListAlarms(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdhanService_ListAlarms_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdhanServiceServer).ListAlarms(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

func _AdhanService_FireAlarm_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AdhanServiceServer).FireAlarm(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdhanService_FireAlarm_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdhanServiceServer).FireAlarm(ctx, req.(*structpb.Struct))
	}

	return interceptor(ctx, in, info, handler)
}

func _AdhanService_PlaybackStatus_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AdhanServiceServer).PlaybackStatus(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdhanService_PlaybackStatus_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdhanServiceServer).PlaybackStatus(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

func _AdhanService_StopPlayback_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AdhanServiceServer).StopPlayback(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdhanService_StopPlayback_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdhanServiceServer).StopPlayback(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

func _AdhanService_ListAudioAssets_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AdhanServiceServer).ListAudioAssets(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdhanService_ListAudioAssets_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdhanServiceServer).ListAudioAssets(ctx, req.(*emptypb.Empty))
	}

	return interceptor(ctx, in, info, handler)
}

func _AdhanService_PlayTestAudio_Handler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(AdhanServiceServer).PlayTestAudio(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdhanService_PlayTestAudio_FullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AdhanServiceServer).PlayTestAudio(ctx, req.(*wrapperspb.StringValue))
	}

	return interceptor(ctx, in, info, handler)
}

// AdhanService_ServiceDesc is the grpc.ServiceDesc for AdhanService.
var AdhanService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AdhanServiceName,
	HandlerType: (*AdhanServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ScheduleAlarm",
			Handler:    _AdhanService_ScheduleAlarm_Handler,
		},
		{
			MethodName: "ScheduleAlarms",
			Handler:    _AdhanService_ScheduleAlarms_Handler,
		},
		{
			MethodName: "CancelAlarm",
			Handler:    _AdhanService_CancelAlarm_Handler,
		},
		{
			MethodName: "CancelAllAlarms",
			Handler:    _AdhanService_CancelAllAlarms_Handler,
		},
		{
			MethodName: "ListAlarms",
			Handler:    _AdhanService_ListAlarms_Handler,
		},
		{
			MethodName: "FireAlarm",
			Handler:    _AdhanService_FireAlarm_Handler,
		},
		{
			MethodName: "PlaybackStatus",
			Handler:    _AdhanService_PlaybackStatus_Handler,
		},
		{
			MethodName: "StopPlayback",
			Handler:    _AdhanService_StopPlayback_Handler,
		},
		{
			MethodName: "ListAudioAssets",
			Handler:    _AdhanService_ListAudioAssets_Handler,
		},
		{
			MethodName: "PlayTestAudio",
			Handler:    _AdhanService_PlayTestAudio_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "adhan/v1/adhan.proto",
}
