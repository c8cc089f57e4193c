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

// Package mapper provides deterministic, immutable mappings from canonical
// error responses to gRPC status codes.
//
// # Overview
//
// A canonical error response carries an HTTP status (e.g. 404) and an
// UPPER_SNAKE error code (e.g. "USER_NOT_FOUND"). RPC transports need a
// gRPC code instead. Package mapper resolves one in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per status;
//   - prefix-aware: callers can add rules keyed on error-code prefixes.
//
// # Resolution model
//
//  1. exact override for the status;
//  2. longest-prefix-match (LPM) on the error code;
//  3. per-status default (library or user-adjusted);
//  4. status class: 4xx FailedPrecondition, 5xx Internal;
//  5. fallback: Unknown.
//
// codes.OK is never produced. Prefix rules are segment-aware: codes are
// split on "_" and "*" matches exactly one segment:
//
//	WithGRPCPrefix("PAYMENT", codes.FailedPrecondition)
//	WithGRPCPrefix("AUTH_*_EXPIRED", codes.Unauthenticated)
//
// The more specific prefix wins.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithGRPCOverride(http.StatusConflict, codes.AlreadyExists),
//	    mapper.WithGRPCPrefix("PAYMENT", codes.FailedPrecondition),
//	)
//	if err != nil {
//	    // invalid status, code or prefix
//	}
//
//	c := m.GRPCCode(409, "DUPLICATE_EMAIL") // codes.AlreadyExists
//
// Default returns a shared mapper holding library defaults only.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a pair was resolved.
// It is intended for inspection and logging, not for stable machine parsing.
package mapper
