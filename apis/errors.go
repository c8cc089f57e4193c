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

package apis

// HTTPException is implemented by errors raised by an HTTP framework layer.
//
// It carries a numeric HTTP status and an embedded response body. The body
// is usually a map such as {"statusCode": 404, "message": "Not Found"}, but
// it may be any value (a string, a canonical response, a struct). The
// normalizer reads the error code and the message out of the body, and the
// status out of Status.
type HTTPException interface {
	error

	// Status returns the HTTP status the exception was raised with.
	Status() int

	// Response returns the embedded response body. May return nil.
	Response() any
}

// RPCException is implemented by errors raised by an RPC framework layer.
//
// Unlike HTTPException it has no status of its own; it only wraps an error
// object (a string, a map, another error) that describes the failure.
type RPCException interface {
	error

	// RPCError returns the embedded error object. May return nil.
	RPCError() any
}

// StackTracer is implemented by errors that captured a diagnostic trace at
// the point they were created.
//
// The trace is an opaque, human-oriented string. It is kept for internal
// channels (RPC, logs) and stripped at client-facing HTTP boundaries.
type StackTracer interface {
	error

	// StackTrace returns the captured trace, or "" when none was captured.
	StackTrace() string
}
