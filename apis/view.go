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

// HTTPView is the body written to HTTP clients for a failed request.
//
// This is *not* the canonical response itself: it never carries the stack
// trace and adds the request path. Keeping it here (in apis) lets adapters
// and tests agree on the wire shape without importing httpx.
type HTTPView struct {
	// ErrorCode is the canonical error code, e.g. "NOT_FOUND".
	ErrorCode string `json:"errorCode"`

	// ErrorMessage is the human-readable description.
	ErrorMessage string `json:"errorMessage"`

	// StatusCode duplicates the HTTP status of the response.
	StatusCode int `json:"statusCode"`

	// Path is the request URL that produced the error.
	Path string `json:"path"`
}
