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

package adapter

import (
	"dirpx.dev/canonerr"
	"dirpx.dev/canonerr/apis"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToStruct converts a canonical response into a protobuf Struct.
//
// The Struct is what travels as a gRPC status detail, so it keeps the stack
// trace when the response carries one. Callers that talk to untrusted
// clients should pass r.WithoutStack().
func ToStruct(r canonerr.Response) (*structpb.Struct, error) {
	fields := map[string]any{
		"errorCode":    r.ErrorCode,
		"errorMessage": r.ErrorMessage,
		"statusCode":   r.StatusCode,
	}
	if r.ErrorStack != "" {
		fields["errorStack"] = r.ErrorStack
	}
	return structpb.NewStruct(fields)
}

// FromStruct is the inverse of ToStruct. It reports false when s does not
// hold a canonical response.
func FromStruct(s *structpb.Struct) (canonerr.Response, bool) {
	if s == nil {
		return canonerr.Response{}, false
	}
	r, ok := canonerr.Classify(s.AsMap()).(canonerr.Response)
	return r, ok
}

// ToHTTPView converts a canonical response into the body written to HTTP
// clients. The stack trace is never part of the view.
func ToHTTPView(r canonerr.Response, path string) apis.HTTPView {
	return apis.HTTPView{
		ErrorCode:    r.ErrorCode,
		ErrorMessage: r.ErrorMessage,
		StatusCode:   r.StatusCode,
		Path:         path,
	}
}

// HTTPViewStruct converts an HTTP view into a protobuf Struct so it can be
// rendered with protojson.
func HTTPViewStruct(v apis.HTTPView) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"errorCode":    v.ErrorCode,
		"errorMessage": v.ErrorMessage,
		"statusCode":   v.StatusCode,
		"path":         v.Path,
	})
}
