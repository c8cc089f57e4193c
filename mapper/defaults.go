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

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// defaultGRPC maps well-known HTTP statuses to canonical gRPC codes, following
// the HTTP mapping documented for google.rpc.Code.
var defaultGRPC = map[int]codes.Code{
	// 4xx: the request cannot be served as sent.
	http.StatusBadRequest:            codes.InvalidArgument,
	http.StatusUnauthorized:          codes.Unauthenticated,
	http.StatusForbidden:             codes.PermissionDenied,
	http.StatusNotFound:              codes.NotFound,
	http.StatusMethodNotAllowed:      codes.Unimplemented,
	http.StatusRequestTimeout:        codes.DeadlineExceeded,
	http.StatusConflict:              codes.Aborted,
	http.StatusGone:                  codes.NotFound, // gRPC has no 410
	http.StatusPreconditionFailed:    codes.FailedPrecondition,
	http.StatusRequestEntityTooLarge: codes.InvalidArgument,
	http.StatusUnprocessableEntity:   codes.InvalidArgument,
	http.StatusTooManyRequests:       codes.ResourceExhausted,

	http.StatusRequestedRangeNotSatisfiable: codes.OutOfRange,

	// 499 is nginx's "client closed request".
	499: codes.Canceled,

	// 5xx: the server or one of its dependencies failed.
	http.StatusInternalServerError: codes.Internal,
	http.StatusNotImplemented:      codes.Unimplemented,
	http.StatusBadGateway:          codes.Unavailable,
	http.StatusServiceUnavailable:  codes.Unavailable,
	http.StatusGatewayTimeout:      codes.DeadlineExceeded,
}

// classFallback resolves statuses without an explicit mapping by their class.
func classFallback(status int) (codes.Code, bool) {
	switch {
	case status >= 400 && status < 500:
		return codes.FailedPrecondition, true
	case status >= 500 && status < 600:
		return codes.Internal, true
	}
	return codes.Unknown, false
}
