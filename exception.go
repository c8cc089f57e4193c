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

import "dirpx.dev/canonerr/code"

// Exception is the error application code raises when it wants a
// caller-chosen code together with an underlying cause.
//
// The canonical fields are computed once, at construction, by normalizing
// the payload; an Exception never changes afterwards and can be shared
// between goroutines.
type Exception struct {
	code    string
	status  int
	message string
	stack   string
	cause   any
}

// New builds an Exception from a structured payload.
//
// The message, status and stack of the cause are resolved immediately. The
// exception captures its own stack trace at the call site of New.
func New(p Payload) *Exception {
	return newException(p, 1)
}

// E is a convenience constructor for New.
//
// Usage:
//
//	return canonerr.E(code.NotFound, httpx.NotFound("user 42"))
func E(c code.Code, cause any) *Exception {
	return newException(Payload{Code: string(c), Error: cause}, 1)
}

func newException(p Payload, skip int) *Exception {
	r := Normalize(p)
	return &Exception{
		code:    r.ErrorCode,
		status:  r.StatusCode,
		message: r.ErrorMessage,
		stack:   captureStack(skip+1, r.ErrorMessage),
		cause:   p.Error,
	}
}

// Error implements the built-in error interface. It returns the normalized
// message.
func (e *Exception) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Code returns the frozen error code.
func (e *Exception) Code() code.Code { return code.Code(e.code) }

// Status returns the frozen status code.
func (e *Exception) Status() int { return e.status }

// StackTrace implements apis.StackTracer. The trace starts at the caller of
// New or E.
func (e *Exception) StackTrace() string { return e.stack }

// Response returns the canonical response, including the stack trace.
func (e *Exception) Response() Response {
	return Response{
		ErrorCode:    e.code,
		ErrorMessage: e.message,
		StatusCode:   e.status,
		ErrorStack:   e.stack,
	}
}

// Unwrap returns the cause when it is an error, enabling errors.Is /
// errors.As chains.
func (e *Exception) Unwrap() error {
	err, _ := e.cause.(error)
	return err
}
