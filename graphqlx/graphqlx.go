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

package graphqlx

import (
	"context"
	"errors"
	"maps"

	"dirpx.dev/canonerr"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// ExtensionCode is the extensions key holding the canonical error code.
const ExtensionCode = "code"

// Exception is a GraphQL error backed by a canonical response.
type Exception struct {
	gql   *gqlerror.Error
	resp  canonerr.Response
	stack string
}

// New builds an exception from a normalized response. The stack is moved out
// of the public payload and kept as the exception's stack trace.
func New(resp canonerr.Response) *Exception {
	return &Exception{
		gql: &gqlerror.Error{
			Message:    resp.ErrorMessage,
			Extensions: map[string]any{ExtensionCode: resp.ErrorCode},
		},
		resp:  resp.WithoutStack(),
		stack: resp.ErrorStack,
	}
}

// Error implements the built-in error interface.
func (e *Exception) Error() string { return e.gql.Message }

// Status implements apis.HTTPException.
func (e *Exception) Status() int { return e.resp.StatusCode }

// Response implements apis.HTTPException. The dynamic type is
// canonerr.Response, so normalizing the exception again is lossless.
func (e *Exception) Response() any { return e.Canonical() }

// Canonical returns the response the exception was built from, stack
// included when one was present.
func (e *Exception) Canonical() canonerr.Response {
	r := e.resp
	r.ErrorStack = e.stack
	return r
}

// StackTrace implements apis.StackTracer.
func (e *Exception) StackTrace() string { return e.stack }

// Extensions returns a copy of the public extensions.
func (e *Exception) Extensions() map[string]any { return maps.Clone(e.gql.Extensions) }

// GQLError returns a copy of the public GraphQL error. Mutating it does not
// affect the exception.
func (e *Exception) GQLError() *gqlerror.Error {
	cp := *e.gql
	cp.Extensions = e.Extensions()
	return &cp
}

// Presenter turns any resolver error into its public GraphQL form. Errors
// produced by the GraphQL engine itself (parse and validation failures) pass
// through untouched; everything else is normalized. Path and locations of
// the incoming error are kept.
//
// The signature matches gqlgen's ErrorPresenterFunc.
func Presenter(_ context.Context, err error) *gqlerror.Error {
	if err == nil {
		return nil
	}

	var src *gqlerror.Error
	if errors.As(err, &src) {
		if src.Err == nil {
			return src
		}
		err = src.Err
	}

	var exc *Exception
	if !errors.As(err, &exc) {
		exc = New(canonerr.Normalize(err))
	}

	out := exc.GQLError()
	if src != nil {
		out.Path = src.Path
		out.Locations = src.Locations
		out.Rule = src.Rule
	}
	return out
}

// Recover converts a recovered panic value into an exception. The signature
// matches gqlgen's RecoverFunc.
func Recover(_ context.Context, v any) error {
	if err, ok := v.(error); ok {
		var exc *Exception
		if errors.As(err, &exc) {
			return exc
		}
	}
	return New(canonerr.Normalize(v))
}
