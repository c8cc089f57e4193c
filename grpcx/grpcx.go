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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"dirpx.dev/canonerr"
	"dirpx.dev/canonerr/adapter"
	"dirpx.dev/canonerr/apis"
	"dirpx.dev/canonerr/mapper"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Filter catches errors at the RPC boundary and turns them into gRPC status
// errors carrying the canonical response as a detail.
//
// A Filter is immutable after New and safe for concurrent use.
type Filter struct {
	mapper   apis.Mapper
	fallback FallbackFunc
	logger   *slog.Logger
}

// New creates a Filter with the given options.
func New(opts ...Option) *Filter {
	f := &Filter{
		mapper:   mapper.Default(),
		fallback: passThrough,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func passThrough(_ context.Context, v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return gstatus.Error(gcodes.Unknown, fmt.Sprint(v))
}

// Catch normalizes v when ctx belongs to an RPC call and returns a gRPC
// status error:
//
//   - code: the mapper's choice for statusCode and errorCode;
//   - message: errorMessage;
//   - details: a google.protobuf.Struct holding the full response, stack
//     included.
//
// Status errors received from downstream calls are read through FromError
// first, so a canonical response relayed between services is kept as is.
// Outside RPC calls v goes to the fallback.
func (f *Filter) Catch(ctx context.Context, v any) error {
	if canonerr.TransportFrom(ctx) != canonerr.TransportRPC {
		return f.fallback(ctx, v)
	}
	// Only bare errors are unwrapped as gRPC status errors. An exception that
	// merely carries one as its cause keeps its own code and stack.
	if err, ok := v.(error); ok {
		if _, native := canonerr.Classify(err).(canonerr.NativeFailure); native {
			v = FromError(err)
		}
	}

	resp := canonerr.Normalize(v)
	f.log(ctx, resp)

	st := gstatus.New(f.mapper.GRPCCode(resp.StatusCode, resp.ErrorCode), resp.ErrorMessage)
	detail, err := adapter.ToStruct(resp)
	if err != nil {
		return st.Err()
	}
	with, err := st.WithDetails(detail)
	if err != nil {
		return st.Err()
	}
	return with.Err()
}

// UnaryServerInterceptor marks the context as an RPC call and routes handler
// errors and panics into Catch.
func (f *Filter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		ctx = canonerr.WithTransport(ctx, canonerr.TransportRPC)
		defer func() {
			if v := recover(); v != nil {
				resp, err = nil, f.Catch(ctx, v)
			}
		}()

		resp, err = handler(ctx, req)
		if err != nil {
			return nil, f.Catch(ctx, err)
		}
		return resp, nil
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func (f *Filter) StreamServerInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		ctx := canonerr.WithTransport(ss.Context(), canonerr.TransportRPC)
		defer func() {
			if v := recover(); v != nil {
				err = f.Catch(ctx, v)
			}
		}()

		if err = handler(srv, &serverStream{ServerStream: ss, ctx: ctx}); err != nil {
			return f.Catch(ctx, err)
		}
		return nil
	}
}

// serverStream overrides the context of a wrapped stream.
type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *serverStream) Context() context.Context { return s.ctx }

// ExtractResponse pulls the canonical response out of a gRPC status error.
// Useful in tests and client code.
func ExtractResponse(err error) (canonerr.Response, bool) {
	if err == nil {
		return canonerr.Response{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return canonerr.Response{}, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			if r, ok := adapter.FromStruct(s); ok {
				return r, true
			}
		}
	}
	return canonerr.Response{}, false
}

// FromError adapts an error received from a gRPC call into a value the
// normalizer understands:
//
//   - a status error with a canonical detail yields that Response;
//   - any other status error yields an Exception carrying its message;
//   - other errors are returned unchanged.
func FromError(err error) any {
	if err == nil {
		return nil
	}
	if r, ok := ExtractResponse(err); ok {
		return r
	}
	var gs interface{ GRPCStatus() *gstatus.Status }
	if !errors.As(err, &gs) {
		return err
	}
	return &Exception{body: gs.GRPCStatus().Message()}
}

func (f *Filter) log(ctx context.Context, resp canonerr.Response) {
	attrs := []slog.Attr{
		slog.String("errorCode", resp.ErrorCode),
		slog.Int("statusCode", resp.StatusCode),
	}
	if method, ok := grpc.Method(ctx); ok {
		attrs = append(attrs, slog.String("method", method))
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		attrs = append(attrs, slog.String("errorStack", resp.ErrorStack))
		f.logger.LogAttrs(ctx, slog.LevelError, resp.ErrorMessage, attrs...)
		return
	}
	f.logger.LogAttrs(ctx, slog.LevelDebug, resp.ErrorMessage, attrs...)
}
