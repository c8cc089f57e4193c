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
	"log/slog"

	"dirpx.dev/canonerr/apis"
)

// FallbackFunc handles values caught outside an RPC call.
type FallbackFunc func(ctx context.Context, v any) error

// Option configures a Filter at construction time.
type Option func(*Filter)

// WithMapper sets the mapper used to pick gRPC codes. Defaults to
// mapper.Default(). A nil mapper is ignored.
func WithMapper(m apis.Mapper) Option {
	return func(f *Filter) {
		if m != nil {
			f.mapper = m
		}
	}
}

// WithFallback sets the handler for values caught when the context is not
// an RPC call. The default returns errors unchanged and wraps other values
// in an UNKNOWN status.
func WithFallback(fn FallbackFunc) Option {
	return func(f *Filter) {
		if fn != nil {
			f.fallback = fn
		}
	}
}

// WithLogger sets the logger caught errors are reported to. A nil logger is
// ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Filter) {
		if l != nil {
			f.logger = l
		}
	}
}
