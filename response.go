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

package canonerr

// Response is the canonical error response all normalization paths
// converge to.
type Response struct {
	// ErrorCode is the stable machine-readable identifier, e.g. "NOT_FOUND".
	ErrorCode string `json:"errorCode"`

	// ErrorMessage is the human-readable description.
	ErrorMessage string `json:"errorMessage"`

	// StatusCode is the numeric status with HTTP semantics. It is reused by
	// the GraphQL and gRPC transports.
	StatusCode int `json:"statusCode"`

	// ErrorStack is the diagnostic trace, when one could be derived.
	ErrorStack string `json:"errorStack,omitempty"`
}

// IsCanonical reports whether r already has the canonical shape: code,
// message and status are all set. The stack is not required.
func (r Response) IsCanonical() bool {
	return r.ErrorCode != "" && r.ErrorMessage != "" && r.StatusCode != 0
}

// WithoutStack returns a copy of r with the stack trace removed.
func (r Response) WithoutStack() Response {
	r.ErrorStack = ""
	return r
}

// Payload pairs a caller-chosen error code with an arbitrary cause.
//
// The cause may be any value Normalize accepts; the message, status and
// stack are derived from it while the code is taken as given.
type Payload struct {
	Code  string `json:"code"`
	Error any    `json:"error"`
}

// Valid reports whether p is recognized as a structured payload. A payload
// with an empty code or a blank cause (nil, "", false or zero) is treated as
// a plain object instead.
func (p Payload) Valid() bool {
	return p.Code != "" && truthy(p.Error)
}
