package grpc

// proto.go defines the gRPC server interface derived from
// cascade/v1/cascade.proto. This file serves as a stand-in for buf-generated
// code. Once `buf generate` is run, replace this file with the import from
// the generated cascade/v1 package. The message types alias the application
// DTOs so the JSON codec can carry them directly.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmjfallon/cascade-beta/internal/application/dto"
)

type (
	CompareRequest            = dto.CompareRequest
	CompareResponse           = dto.CompareResponse
	CompareStrategiesRequest  = dto.CompareStrategiesRequest
	CompareStrategiesResponse = dto.CompareStrategiesResponse
	SaveScenarioRequest       = dto.SaveScenarioRequest
	SaveScenarioResponse      = dto.SaveScenarioResponse
	GetScenarioRequest        = dto.GetScenarioRequest
	GetScenarioResponse       = dto.GetScenarioResponse
)

// CascadeServiceServer is the server API for CascadeService.
// It mirrors the proto-generated interface from cascade.v1.CascadeService.
type CascadeServiceServer interface {
	Compare(context.Context, *CompareRequest) (*CompareResponse, error)
	CompareStrategies(context.Context, *CompareStrategiesRequest) (*CompareStrategiesResponse, error)
	SaveScenario(context.Context, *SaveScenarioRequest) (*SaveScenarioResponse, error)
	GetScenario(context.Context, *GetScenarioRequest) (*GetScenarioResponse, error)
	mustEmbedUnimplementedCascadeServiceServer()
}

// UnimplementedCascadeServiceServer provides forward-compatible default implementations.
type UnimplementedCascadeServiceServer struct{}

func (UnimplementedCascadeServiceServer) Compare(context.Context, *CompareRequest) (*CompareResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Compare not implemented")
}
func (UnimplementedCascadeServiceServer) CompareStrategies(context.Context, *CompareStrategiesRequest) (*CompareStrategiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareStrategies not implemented")
}
func (UnimplementedCascadeServiceServer) SaveScenario(context.Context, *SaveScenarioRequest) (*SaveScenarioResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveScenario not implemented")
}
func (UnimplementedCascadeServiceServer) GetScenario(context.Context, *GetScenarioRequest) (*GetScenarioResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScenario not implemented")
}
func (UnimplementedCascadeServiceServer) mustEmbedUnimplementedCascadeServiceServer() {}

// RegisterCascadeServiceServer registers the CascadeServiceServer with the gRPC server.
func RegisterCascadeServiceServer(s *grpclib.Server, srv CascadeServiceServer) {
	s.RegisterService(&_CascadeService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CascadeService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "cascade.v1.CascadeService",
	HandlerType: (*CascadeServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Compare", Handler: _CascadeService_Compare_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "CompareStrategies", Handler: _CascadeService_CompareStrategies_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "SaveScenario", Handler: _CascadeService_SaveScenario_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "GetScenario", Handler: _CascadeService_GetScenario_Handler},             //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CascadeService_Compare_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CascadeServiceServer).Compare(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cascade.v1.CascadeService/Compare",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CascadeServiceServer).Compare(ctx, req.(*CompareRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CascadeService_CompareStrategies_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareStrategiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CascadeServiceServer).CompareStrategies(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cascade.v1.CascadeService/CompareStrategies",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CascadeServiceServer).CompareStrategies(ctx, req.(*CompareStrategiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CascadeService_SaveScenario_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveScenarioRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CascadeServiceServer).SaveScenario(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cascade.v1.CascadeService/SaveScenario",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CascadeServiceServer).SaveScenario(ctx, req.(*SaveScenarioRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CascadeService_GetScenario_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScenarioRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CascadeServiceServer).GetScenario(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/cascade.v1.CascadeService/GetScenario",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CascadeServiceServer).GetScenario(ctx, req.(*GetScenarioRequest))
	}
	return interceptor(ctx, in, info, handler)
}
