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

package mapper

import "google.golang.org/grpc/codes"

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithGRPCDefault sets or replaces the default gRPC code for an HTTP status.
func WithGRPCDefault(status int, c codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[status] = c }
}

// WithGRPCOverride registers an exact gRPC code for an HTTP status. Overrides
// win over every other rule.
func WithGRPCOverride(status int, c codes.Code) Option {
	return func(b *builder) { b.grpcOverride[status] = c }
}

// WithGRPCPrefix adds a longest-prefix-match rule on the error code. The
// prefix is made of "_"-separated segments; "*" matches one segment:
//
//	WithGRPCPrefix("PAYMENT", codes.FailedPrecondition)
//	WithGRPCPrefix("AUTH_*_EXPIRED", codes.Unauthenticated)
//
// Prefix rules sit below status overrides and above status defaults.
func WithGRPCPrefix(prefix string, c codes.Code) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, c}) }
}

// WithGRPCFallback replaces codes.Unknown as the code for statuses outside
// the 4xx and 5xx classes.
func WithGRPCFallback(c codes.Code) Option {
	return func(b *builder) { b.fallbackGRPC = c }
}
