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

// Package canonerr normalizes arbitrary error values into one canonical
// error response and carries that response across HTTP, GraphQL and gRPC
// boundaries.
//
// The canonical shape is Response:
//
//	{ "errorCode": "NOT_FOUND", "errorMessage": "user 42", "statusCode": 404 }
//
// plus an optional "errorStack" diagnostic trace that is kept for internal
// channels and stripped for HTTP clients.
//
// Normalization accepts anything a boundary may catch:
//
//   - a plain string;
//   - a Payload{Code, Error} pairing a caller-chosen code with a cause;
//   - a Response that is already canonical (copied verbatim);
//   - an *Exception created by application code;
//   - an HTTP or RPC framework exception (see package apis);
//   - any other Go error, map or value.
//
// Classify turns the value into exactly one Input variant, and Normalize
// derives the response from that variant. Normalization never fails: unknown
// shapes degrade to SOMETHING_WENT_WRONG / 500 / "Something went wrong".
//
// Usage:
//
//	return canonerr.E(code.Unauthorized, httpx.Unauthorized())
//
// The transport packages httpx, graphqlx and grpcx render the response for
// their wire formats.
package canonerr
