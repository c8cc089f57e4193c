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

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/canonerr/apis"
	"dirpx.dev/canonerr/code"
)

// FallbackMessage is the message used when nothing better can be derived.
const FallbackMessage = "Something went wrong"

// maxMessageDepth bounds the recursion through embedded exception bodies.
const maxMessageDepth = 8

// Normalize derives the canonical response for v.
//
// Algorithm (first match wins):
//  1. a canonical Response is returned verbatim;
//  2. a valid Payload contributes its code, and its cause becomes the
//     exception the rest of the fields are derived from;
//  3. otherwise the whole input is the exception and the code is derived
//     from it;
//  4. message, status and stack are derived from the exception.
//
// Normalize never panics. Empty codes and messages fall back to
// SOMETHING_WENT_WRONG and FallbackMessage, and statuses outside 100..599
// fall back to 500.
func Normalize(v any) Response {
	in := Classify(v)
	if r, ok := in.(Response); ok {
		return r
	}

	var c string
	exc := in
	if p, ok := in.(Payload); ok {
		c = p.Code
		exc = Classify(p.Error)
	} else {
		c = deriveCode(in)
	}

	r := Response{
		ErrorCode:    c,
		ErrorMessage: deriveMessage(exc, 0),
		StatusCode:   deriveStatus(exc),
		ErrorStack:   deriveStack(exc),
	}
	if r.ErrorCode == "" {
		r.ErrorCode = string(code.SomethingWentWrong)
	}
	if r.ErrorMessage == "" {
		r.ErrorMessage = FallbackMessage
	}
	if r.StatusCode < 100 || r.StatusCode > 599 {
		r.StatusCode = http.StatusInternalServerError
	}
	return r
}

// Normalizer holds the canonical response computed for one input.
//
// It is itself an error, so it can be returned or re-raised as-is; a
// Normalizer passed back into Normalize is treated as a plain Go error.
type Normalizer struct {
	resp Response
}

// NewNormalizer normalizes v once and keeps the result.
func NewNormalizer(v any) *Normalizer {
	return &Normalizer{resp: Normalize(v)}
}

// Response returns the canonical response.
func (n *Normalizer) Response() Response { return n.resp }

// Error implements the built-in error interface.
func (n *Normalizer) Error() string { return n.resp.ErrorMessage }

// StackTrace implements apis.StackTracer.
func (n *Normalizer) StackTrace() string { return n.resp.ErrorStack }

// deriveCode picks the error code when the input did not come with one.
func deriveCode(in Input) string {
	switch x := in.(type) {
	case *Exception:
		return x.code
	case HTTPFailure:
		if c := bodyCode(x.Exception.Response()); c != "" {
			return c
		}
		if c, ok := code.FromStatus(x.Exception.Status()); ok {
			return string(c)
		}
		return string(code.SomethingWentWrong)
	case Response:
		return x.ErrorCode
	case NativeFailure, RPCFailure:
		return string(code.InternalServerError)
	case Text, Payload, Object, Unknown:
		return string(code.SomethingWentWrong)
	}
	return string(code.SomethingWentWrong)
}

// bodyCode reads an explicit errorCode out of an HTTP exception body.
func bodyCode(body any) string {
	switch x := Classify(body).(type) {
	case Response:
		return x.ErrorCode
	case Object:
		c, _ := x["errorCode"].(string)
		return c
	}
	return ""
}

// deriveMessage recurses through embedded exception bodies until it finds
// something printable.
func deriveMessage(in Input, depth int) string {
	if depth > maxMessageDepth {
		return FallbackMessage
	}
	switch x := in.(type) {
	case Text:
		return string(x)
	case Response:
		return x.ErrorMessage
	case *Exception:
		return x.message
	case HTTPFailure:
		return deriveMessage(Classify(x.Exception.Response()), depth+1)
	case RPCFailure:
		return deriveMessage(Classify(x.Exception.RPCError()), depth+1)
	case NativeFailure:
		if msg := x.Err.Error(); msg != "" {
			return msg
		}
	case Object:
		if msg := objectMessage(x); msg != "" {
			return msg
		}
		if b, err := json.Marshal(map[string]any(x)); err == nil {
			return string(b)
		}
	case Payload:
		if b, err := json.Marshal(x); err == nil {
			return string(b)
		}
	case Unknown:
	}
	return FallbackMessage
}

// objectMessage returns the "message" field of an object. A list of
// strings (the usual shape of validation failures) is joined with ", ".
func objectMessage(o Object) string {
	switch m := o["message"].(type) {
	case string:
		return m
	case []string:
		return strings.Join(m, ", ")
	case []any:
		parts := make([]string, 0, len(m))
		for _, v := range m {
			if s, ok := v.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	if m := o["message"]; scalar(m) && truthy(m) {
		return fmt.Sprint(m)
	}
	return ""
}

func deriveStatus(in Input) int {
	switch x := in.(type) {
	case *Exception:
		return x.status
	case HTTPFailure:
		return x.Exception.Status()
	case Response:
		return x.StatusCode
	}
	return http.StatusInternalServerError
}

// deriveStack returns the trace of error inputs that captured one.
func deriveStack(in Input) string {
	switch x := in.(type) {
	case *Exception:
		return x.stack
	case HTTPFailure:
		return stackOf(x.Exception)
	case RPCFailure:
		return stackOf(x.Exception)
	case NativeFailure:
		return stackOf(x.Err)
	}
	return ""
}

func stackOf(err error) string {
	var st apis.StackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}
	return ""
}
