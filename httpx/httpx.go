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

package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"dirpx.dev/canonerr"
	"dirpx.dev/canonerr/adapter"
	"dirpx.dev/canonerr/graphqlx"
	"google.golang.org/protobuf/encoding/protojson"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing the error response itself.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Filter catches errors at the HTTP boundary and turns them into canonical
// JSON responses.
//
// A Filter is immutable after New and safe for concurrent use.
type Filter struct {
	logger *slog.Logger
}

// New creates a Filter with the given options.
func New(opts ...Option) *Filter {
	f := &Filter{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Catch normalizes v and renders it for the transport of r.
//
// For plain HTTP requests it writes
//
//	{"errorCode": ..., "errorMessage": ..., "statusCode": ..., "path": ...}
//
// with the HTTP status set to statusCode and returns nil. The stack trace is
// never written.
//
// For requests tagged as GraphQL it writes nothing and returns a
// *graphqlx.Exception carrying the full response (stack included), leaving
// the rendering to the GraphQL error pipeline.
func (f *Filter) Catch(w http.ResponseWriter, r *http.Request, v any) error {
	ctx := r.Context()
	resp := canonerr.Normalize(v)
	f.log(ctx, r, resp)

	if canonerr.TransportFrom(ctx) == canonerr.TransportGraphQL {
		return graphqlx.New(resp)
	}
	f.write(w, r, resp.WithoutStack())
	return nil
}

// Handle adapts an error-returning handler. A returned error goes through
// Catch; under GraphQL the resulting exception is re-panicked for the
// GraphQL layer to recover.
func (f *Filter) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = tagHTTP(r)
		if err := h(w, r); err != nil {
			if exc := f.Catch(w, r, err); exc != nil {
				panic(exc)
			}
		}
	})
}

// Middleware recovers panics raised by next and routes them through Catch.
// http.ErrAbortHandler is re-panicked untouched.
func (f *Filter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = tagHTTP(r)
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			if exc := f.Catch(w, r, v); exc != nil {
				panic(exc)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Tag marks every request reaching next with transport t. Mount GraphQL
// endpoints behind Tag(canonerr.TransportGraphQL, ...).
func Tag(t canonerr.Transport, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(canonerr.WithTransport(r.Context(), t)))
	})
}

// tagHTTP marks untagged requests as plain HTTP.
func tagHTTP(r *http.Request) *http.Request {
	if canonerr.TransportFrom(r.Context()) != "" {
		return r
	}
	return r.WithContext(canonerr.WithTransport(r.Context(), canonerr.TransportHTTP))
}

func (f *Filter) write(w http.ResponseWriter, r *http.Request, resp canonerr.Response) {
	view := adapter.ToHTTPView(resp, r.URL.RequestURI())

	// Relayed responses may carry any status; the body keeps it as is.
	status := resp.StatusCode
	if status < 200 || status > 599 {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	s, err := adapter.HTTPViewStruct(view)
	if err != nil {
		f.logger.ErrorContext(r.Context(), "encode error response", slog.Any("error", err))
		return
	}
	// protojson keeps the wire format identical to the gRPC detail encoding.
	b, _ := protojson.MarshalOptions{EmitUnpopulated: true}.Marshal(s)
	_, _ = w.Write(b)
}

func (f *Filter) log(ctx context.Context, r *http.Request, resp canonerr.Response) {
	attrs := []slog.Attr{
		slog.String("errorCode", resp.ErrorCode),
		slog.Int("statusCode", resp.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		attrs = append(attrs, slog.String("errorStack", resp.ErrorStack))
		f.logger.LogAttrs(ctx, slog.LevelError, resp.ErrorMessage, attrs...)
		return
	}
	f.logger.LogAttrs(ctx, slog.LevelDebug, resp.ErrorMessage, attrs...)
}
