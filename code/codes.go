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

package code

// Fallback codes
//
// These are produced by the normalizer itself when the input carries no
// better classification.
const (
	// InternalServerError is assigned to plain Go errors that did not come
	// with a caller-chosen code. It pairs with HTTP 500.
	InternalServerError Code = "INTERNAL_SERVER_ERROR"

	// SomethingWentWrong is assigned to inputs that are not errors at all
	// (bare strings, maps, unknown values) and to HTTP exceptions whose
	// status has no textual name. It pairs with HTTP 500.
	SomethingWentWrong Code = "SOMETHING_WENT_WRONG"
)

// Status-named codes
//
// These mirror FromStatus for the statuses application code raises most
// often, so callers can build payloads without a lookup.
const (
	// BadRequest pairs with HTTP 400.
	BadRequest Code = "BAD_REQUEST"

	// Unauthorized pairs with HTTP 401.
	Unauthorized Code = "UNAUTHORIZED"

	// Forbidden pairs with HTTP 403.
	Forbidden Code = "FORBIDDEN"

	// NotFound pairs with HTTP 404.
	NotFound Code = "NOT_FOUND"

	// Conflict pairs with HTTP 409.
	Conflict Code = "CONFLICT"

	// UnprocessableEntity pairs with HTTP 422.
	UnprocessableEntity Code = "UNPROCESSABLE_ENTITY"

	// TooManyRequests pairs with HTTP 429.
	TooManyRequests Code = "TOO_MANY_REQUESTS"

	// ServiceUnavailable pairs with HTTP 503.
	ServiceUnavailable Code = "SERVICE_UNAVAILABLE"
)
