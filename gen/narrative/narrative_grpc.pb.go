// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: narrative.proto

package narrative

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	NarrativeService_NarrateDecision_FullMethodName = "/narrative.NarrativeService/NarrateDecision"
	NarrativeService_NarrateForecast_FullMethodName = "/narrative.NarrativeService/NarrateForecast"
)

// NarrativeServiceClient is the client API for NarrativeService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// NarrativeService turns structured engine output into user-facing prose.
// The Go engine calls out to a language service; when the service is
// unreachable the engine falls back to template narration.
type NarrativeServiceClient interface {
	NarrateDecision(ctx context.Context, in *NarrateDecisionRequest, opts ...grpc.CallOption) (*NarrateDecisionResponse, error)
	NarrateForecast(ctx context.Context, in *NarrateForecastRequest, opts ...grpc.CallOption) (*NarrateForecastResponse, error)
}

type narrativeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNarrativeServiceClient(cc grpc.ClientConnInterface) NarrativeServiceClient {
	return &narrativeServiceClient{cc}
}

func (c *narrativeServiceClient) NarrateDecision(ctx context.Context, in *NarrateDecisionRequest, opts ...grpc.CallOption) (*NarrateDecisionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NarrateDecisionResponse)
	err := c.cc.Invoke(ctx, NarrativeService_NarrateDecision_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *narrativeServiceClient) NarrateForecast(ctx context.Context, in *NarrateForecastRequest, opts ...grpc.CallOption) (*NarrateForecastResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NarrateForecastResponse)
	err := c.cc.Invoke(ctx, NarrativeService_NarrateForecast_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NarrativeServiceServer is the server API for NarrativeService service.
// All implementations must embed UnimplementedNarrativeServiceServer
// for forward compatibility.
//
// NarrativeService turns structured engine output into user-facing prose.
// The Go engine calls out to a language service; when the service is
// unreachable the engine falls back to template narration.
type NarrativeServiceServer interface {
	NarrateDecision(context.Context, *NarrateDecisionRequest) (*NarrateDecisionResponse, error)
	NarrateForecast(context.Context, *NarrateForecastRequest) (*NarrateForecastResponse, error)
	mustEmbedUnimplementedNarrativeServiceServer()
}

// UnimplementedNarrativeServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedNarrativeServiceServer struct{}

func (UnimplementedNarrativeServiceServer) NarrateDecision(context.Context, *NarrateDecisionRequest) (*NarrateDecisionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NarrateDecision not implemented")
}
func (UnimplementedNarrativeServiceServer) NarrateForecast(context.Context, *NarrateForecastRequest) (*NarrateForecastResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NarrateForecast not implemented")
}
func (UnimplementedNarrativeServiceServer) mustEmbedUnimplementedNarrativeServiceServer() {}
func (UnimplementedNarrativeServiceServer) testEmbeddedByValue()                          {}

// UnsafeNarrativeServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to NarrativeServiceServer will
// result in compilation errors.
type UnsafeNarrativeServiceServer interface {
	mustEmbedUnimplementedNarrativeServiceServer()
}

func RegisterNarrativeServiceServer(s grpc.ServiceRegistrar, srv NarrativeServiceServer) {
	// If the following call pancis, it indicates UnimplementedNarrativeServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&NarrativeService_ServiceDesc, srv)
}

func _NarrativeService_NarrateDecision_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NarrateDecisionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NarrativeServiceServer).NarrateDecision(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NarrativeService_NarrateDecision_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NarrativeServiceServer).NarrateDecision(ctx, req.(*NarrateDecisionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NarrativeService_NarrateForecast_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NarrateForecastRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NarrativeServiceServer).NarrateForecast(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NarrativeService_NarrateForecast_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NarrativeServiceServer).NarrateForecast(ctx, req.(*NarrateForecastRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NarrativeService_ServiceDesc is the grpc.ServiceDesc for NarrativeService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var NarrativeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "narrative.NarrativeService",
	HandlerType: (*NarrativeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "NarrateDecision",
			Handler:    _NarrativeService_NarrateDecision_Handler,
		},
		{
			MethodName: "NarrateForecast",
			Handler:    _NarrativeService_NarrateForecast_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "narrative.proto",
}
