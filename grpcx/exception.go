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
	"dirpx.dev/canonerr"
)

// Exception is an error raised by RPC handlers. Its body is usually a
// message string or a map with a "message" field.
type Exception struct {
	body  any
	stack string
}

// NewException creates an RPC exception around body.
func NewException(body any) *Exception {
	return newException(body, 1)
}

func newException(body any, skip int) *Exception {
	e := &Exception{body: body}
	e.stack = canonerr.CaptureStack(skip+1, e.Error())
	return e
}

// Error implements the built-in error interface. It returns the message
// found in the body.
func (e *Exception) Error() string {
	return canonerr.Normalize(canonerr.RPCFailure{Exception: e}).ErrorMessage
}

// RPCError implements apis.RPCException.
func (e *Exception) RPCError() any { return e.body }

// StackTrace implements apis.StackTracer.
func (e *Exception) StackTrace() string { return e.stack }
