/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package server

import (
	"context"

	"dirpx.dev/canonerr/grpcx"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/structpb"
)

// Full method names of the demo service. Requests and responses are
// google.protobuf.Struct values; requests carry the failure kind in "kind".
const (
	RaiseMethod = "/canonerr.demo.v1.Demo/Raise"
	WatchMethod = "/canonerr.demo.v1.Demo/Watch"
)

// DemoServer raises the failure named by a request.
type DemoServer interface {
	Raise(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Watch(in *structpb.Struct, stream grpc.ServerStream) error
}

// NewGRPCServer creates a gRPC server with the filter's interceptors, the
// demo service and the standard health service.
func NewGRPCServer(f *grpcx.Filter) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(f.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(f.StreamServerInterceptor()),
	)
	s.RegisterService(&DemoServiceDesc, demoServer{})

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	return s
}

type demoServer struct{}

func (demoServer) Raise(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if err := Raise(in.GetFields()["kind"].GetStringValue()); err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{"ok": true})
}

// Watch acknowledges the request once, then fails.
func (demoServer) Watch(in *structpb.Struct, stream grpc.ServerStream) error {
	ack, err := structpb.NewStruct(map[string]any{"ack": true})
	if err != nil {
		return err
	}
	if err := stream.SendMsg(ack); err != nil {
		return err
	}
	return Raise(in.GetFields()["kind"].GetStringValue())
}

// DemoServiceDesc describes the demo service without generated stubs.
var DemoServiceDesc = grpc.ServiceDesc{
	ServiceName: "canonerr.demo.v1.Demo",
	HandlerType: (*DemoServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Raise", Handler: raiseHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "Watch", Handler: watchHandler, ServerStreams: true},
	},
	Metadata: "canonerr/demo/v1/demo.proto",
}

func raiseHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DemoServer).Raise(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RaiseMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DemoServer).Raise(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func watchHandler(srv any, stream grpc.ServerStream) error {
	in := new(structpb.Struct)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(DemoServer).Watch(in, stream)
}
