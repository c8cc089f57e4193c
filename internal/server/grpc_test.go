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
	"net"
	"testing"

	"dirpx.dev/canonerr/grpcx"
	"dirpx.dev/canonerr/mapper"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

func dial(t *testing.T, f *grpcx.Filter) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := NewGRPCServer(f)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func kindReq(t *testing.T, kind string) *structpb.Struct {
	t.Helper()
	in, err := structpb.NewStruct(map[string]any{"kind": kind})
	require.NoError(t, err)
	return in
}

func TestGRPC_Raise(t *testing.T) {
	m, err := mapper.New(mapper.WithGRPCPrefix("PAYMENT", codes.FailedPrecondition))
	require.NoError(t, err)
	conn := dial(t, grpcx.New(grpcx.WithMapper(m)))

	tests := []struct {
		kind    string
		grpc    codes.Code
		code    string
		message string
		status  int
	}{
		{"native", codes.Internal, "INTERNAL_SERVER_ERROR", "database is unreachable", 500},
		{"not_found", codes.NotFound, "NOT_FOUND", "user 42", 404},
		{"forbidden", codes.PermissionDenied, "FORBIDDEN", "Forbidden", 403},
		{"canonical", codes.Aborted, "CONFLICT", "email already taken", 409},
		{"payment", codes.FailedPrecondition, "PAYMENT_CARD_DECLINED", "card declined", 402},
		{"panic", codes.Internal, "SOMETHING_WENT_WRONG", "unexpected nil map", 500},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			out := new(structpb.Struct)
			err := conn.Invoke(context.Background(), RaiseMethod, kindReq(t, tt.kind), out)

			require.Equal(t, tt.grpc, status.Code(err))
			require.Equal(t, tt.message, status.Convert(err).Message())
			resp, ok := grpcx.ExtractResponse(err)
			require.True(t, ok)
			require.Equal(t, tt.code, resp.ErrorCode)
			require.Equal(t, tt.message, resp.ErrorMessage)
			require.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestGRPC_WatchStream(t *testing.T) {
	conn := dial(t, grpcx.New())

	cs, err := conn.NewStream(context.Background(), &DemoServiceDesc.Streams[0], WatchMethod)
	require.NoError(t, err)
	require.NoError(t, cs.SendMsg(kindReq(t, "not_found")))
	require.NoError(t, cs.CloseSend())

	ack := new(structpb.Struct)
	require.NoError(t, cs.RecvMsg(ack))
	require.True(t, ack.GetFields()["ack"].GetBoolValue())

	err = cs.RecvMsg(new(structpb.Struct))
	require.Equal(t, codes.NotFound, status.Code(err))
	resp, ok := grpcx.ExtractResponse(err)
	require.True(t, ok)
	require.Equal(t, "NOT_FOUND", resp.ErrorCode)
}

func TestGRPC_Health(t *testing.T) {
	conn := dial(t, grpcx.New())

	res, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	require.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, res.GetStatus())
}
