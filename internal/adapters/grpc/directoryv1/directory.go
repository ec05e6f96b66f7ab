// Package directoryv1 は directory.v1.EmployeeDirectory サービスの gRPC 定義です。
// メッセージには protobuf の well-known types を使用します。
//
//	ListEmployees(Struct{query, page, pageSize}) -> Struct{employees, page, pageSize, totalPages, totalCount}
//	GetEmployee(Int64Value) -> Struct
//	CreateEmployee(Struct) -> Struct
//	UpdateEmployee(Struct{id, patch}) -> Struct
//	DeleteEmployee(Int64Value) -> Empty
//	WatchEmployees(Empty) -> stream Struct{employees}
package directoryv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "directory.v1.EmployeeDirectory"

const (
	ListEmployeesMethod  = "/" + ServiceName + "/ListEmployees"
	GetEmployeeMethod    = "/" + ServiceName + "/GetEmployee"
	CreateEmployeeMethod = "/" + ServiceName + "/CreateEmployee"
	UpdateEmployeeMethod = "/" + ServiceName + "/UpdateEmployee"
	DeleteEmployeeMethod = "/" + ServiceName + "/DeleteEmployee"
	WatchEmployeesMethod = "/" + ServiceName + "/WatchEmployees"
)

// EmployeeDirectoryServer はサーバー側の実装が満たすインターフェースです。
type EmployeeDirectoryServer interface {
	ListEmployees(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetEmployee(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	CreateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteEmployee(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
	WatchEmployees(*emptypb.Empty, grpc.ServerStreamingServer[structpb.Struct]) error
}

// UnimplementedEmployeeDirectoryServer は前方互換のために埋め込む既定実装です。
type UnimplementedEmployeeDirectoryServer struct{}

func (UnimplementedEmployeeDirectoryServer) ListEmployees(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEmployees not implemented")
}
func (UnimplementedEmployeeDirectoryServer) GetEmployee(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEmployee not implemented")
}
func (UnimplementedEmployeeDirectoryServer) CreateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateEmployee not implemented")
}
func (UnimplementedEmployeeDirectoryServer) UpdateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateEmployee not implemented")
}
func (UnimplementedEmployeeDirectoryServer) DeleteEmployee(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteEmployee not implemented")
}
func (UnimplementedEmployeeDirectoryServer) WatchEmployees(*emptypb.Empty, grpc.ServerStreamingServer[structpb.Struct]) error {
	return status.Error(codes.Unimplemented, "method WatchEmployees not implemented")
}

// RegisterEmployeeDirectoryServer は srv を s に登録します。
func RegisterEmployeeDirectoryServer(s grpc.ServiceRegistrar, srv EmployeeDirectoryServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func unaryHandler[Req any, PReq interface {
	*Req
}, Res any](method string, call func(EmployeeDirectoryServer, context.Context, PReq) (Res, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EmployeeDirectoryServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(EmployeeDirectoryServer), ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func watchEmployeesHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(emptypb.Empty)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(EmployeeDirectoryServer).WatchEmployees(in, &grpc.GenericServerStream[emptypb.Empty, structpb.Struct]{ServerStream: stream})
}

// ServiceDesc は EmployeeDirectory サービスの記述子です。
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EmployeeDirectoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListEmployees", Handler: unaryHandler(ListEmployeesMethod, EmployeeDirectoryServer.ListEmployees)},
		{MethodName: "GetEmployee", Handler: unaryHandler(GetEmployeeMethod, EmployeeDirectoryServer.GetEmployee)},
		{MethodName: "CreateEmployee", Handler: unaryHandler(CreateEmployeeMethod, EmployeeDirectoryServer.CreateEmployee)},
		{MethodName: "UpdateEmployee", Handler: unaryHandler(UpdateEmployeeMethod, EmployeeDirectoryServer.UpdateEmployee)},
		{MethodName: "DeleteEmployee", Handler: unaryHandler(DeleteEmployeeMethod, EmployeeDirectoryServer.DeleteEmployee)},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "WatchEmployees", Handler: watchEmployeesHandler, ServerStreams: true},
	},
	Metadata: "directory/v1/directory.proto",
}

// EmployeeDirectoryClient は EmployeeDirectory サービスのクライアントです。
type EmployeeDirectoryClient struct {
	cc grpc.ClientConnInterface
}

// NewEmployeeDirectoryClient はクライアントを生成します。
func NewEmployeeDirectoryClient(cc grpc.ClientConnInterface) *EmployeeDirectoryClient {
	return &EmployeeDirectoryClient{cc: cc}
}

func (c *EmployeeDirectoryClient) ListEmployees(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListEmployeesMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeDirectoryClient) GetEmployee(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetEmployeeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeDirectoryClient) CreateEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CreateEmployeeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeDirectoryClient) UpdateEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, UpdateEmployeeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeDirectoryClient) DeleteEmployee(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, DeleteEmployeeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeDirectoryClient) WatchEmployees(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &ServiceDesc.Streams[0], WatchEmployeesMethod, opts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[emptypb.Empty, structpb.Struct]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
