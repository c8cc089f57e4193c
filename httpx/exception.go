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
	"net/http"

	"dirpx.dev/canonerr"
)

// Exception is an error raised by HTTP handlers to fail a request with a
// specific status.
//
// It carries the status and a response body. The body is usually the map
// built by the status helpers below, but any value is accepted:
//
//	httpx.NotFound("user 42")
//	// body: {"statusCode": 404, "message": "user 42", "error": "Not Found"}
//
//	httpx.NewException(409, map[string]any{"errorCode": "DUPLICATE_EMAIL", "message": "email taken"})
type Exception struct {
	status int
	body   any
	stack  string
}

// NewException creates an exception with an explicit status and body.
func NewException(status int, body any) *Exception {
	return newException(status, body, 1)
}

func newException(status int, body any, skip int) *Exception {
	e := &Exception{status: status, body: body}
	e.stack = canonerr.CaptureStack(skip+1, e.Error())
	return e
}

// Error implements the built-in error interface. It returns the message
// found in the body.
func (e *Exception) Error() string {
	return canonerr.Normalize(canonerr.HTTPFailure{Exception: e}).ErrorMessage
}

// Status implements apis.HTTPException.
func (e *Exception) Status() int { return e.status }

// Response implements apis.HTTPException. It returns the body as given.
func (e *Exception) Response() any { return e.body }

// StackTrace implements apis.StackTracer.
func (e *Exception) StackTrace() string { return e.stack }

// BadRequest fails the request with 400.
func BadRequest(msg ...string) *Exception {
	return newStatusException(http.StatusBadRequest, msg)
}

// Unauthorized fails the request with 401.
func Unauthorized(msg ...string) *Exception {
	return newStatusException(http.StatusUnauthorized, msg)
}

// Forbidden fails the request with 403.
func Forbidden(msg ...string) *Exception {
	return newStatusException(http.StatusForbidden, msg)
}

// NotFound fails the request with 404.
func NotFound(msg ...string) *Exception {
	return newStatusException(http.StatusNotFound, msg)
}

// Conflict fails the request with 409.
func Conflict(msg ...string) *Exception {
	return newStatusException(http.StatusConflict, msg)
}

// InternalServerError fails the request with 500.
func InternalServerError(msg ...string) *Exception {
	return newStatusException(http.StatusInternalServerError, msg)
}

// ServiceUnavailable fails the request with 503.
func ServiceUnavailable(msg ...string) *Exception {
	return newStatusException(http.StatusServiceUnavailable, msg)
}

// newStatusException builds the conventional body. Without a message the
// status text doubles as the message; with one, the status text moves to
// the "error" field.
func newStatusException(status int, msg []string) *Exception {
	text := http.StatusText(status)
	body := map[string]any{"statusCode": status, "message": text}
	if len(msg) > 0 && msg[0] != "" {
		body = map[string]any{"statusCode": status, "message": msg[0], "error": text}
	}
	return newException(status, body, 2)
}
