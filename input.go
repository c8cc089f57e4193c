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
	"math"
	"reflect"

	"dirpx.dev/canonerr/apis"
)

// Input is the closed set of shapes the normalizer understands.
//
// The variants are: Text, Payload, Response, *Exception, HTTPFailure,
// RPCFailure, NativeFailure, Object and Unknown. Use Classify to turn an
// arbitrary value into one of them.
type Input interface {
	isInput()
}

// Text is a bare message with no code or status hints.
type Text string

// NativeFailure is a Go error that is not one of the recognized exception
// types.
type NativeFailure struct {
	Err error
}

// HTTPFailure is an error raised by an HTTP framework layer.
type HTTPFailure struct {
	Exception apis.HTTPException
}

// RPCFailure is an error raised by an RPC framework layer.
type RPCFailure struct {
	Exception apis.RPCException
}

// Object is a non-empty plain object that is neither a payload nor a
// canonical response.
type Object map[string]any

// Unknown is nil, an empty object, or a value with no usable shape.
type Unknown struct{}

func (Text) isInput()          {}
func (Payload) isInput()       {}
func (Response) isInput()      {}
func (*Exception) isInput()    {}
func (NativeFailure) isInput() {}
func (HTTPFailure) isInput()   {}
func (RPCFailure) isInput()    {}
func (Object) isInput()        {}
func (Unknown) isInput()       {}

// Classify maps v to exactly one Input variant.
//
// Priority (first match wins):
//  1. nil (including typed nil pointers and maps) -> Unknown;
//  2. strings -> Text;
//  3. Response values -> Response when canonical, else Object;
//  4. Payload values -> Payload when valid, else Object;
//  5. errors -> *Exception, HTTPFailure, RPCFailure (searched through the
//     wrap chain in that order), else NativeFailure;
//  6. maps -> Response or Payload when they have that shape, else Object;
//  7. anything else is converted through its JSON form and handled as a map.
func Classify(v any) Input {
	if isNil(v) {
		return Unknown{}
	}
	switch x := v.(type) {
	case Text:
		return x
	case string:
		return Text(x)
	case Response:
		return classifyResponse(x)
	case *Response:
		return classifyResponse(*x)
	case Payload:
		return classifyPayload(x)
	case *Payload:
		return classifyPayload(*x)
	case Object:
		return classifyMap(x)
	case map[string]any:
		return classifyMap(x)
	case NativeFailure:
		if x.Err == nil {
			return Unknown{}
		}
		return x
	case HTTPFailure:
		if x.Exception == nil {
			return Unknown{}
		}
		return x
	case RPCFailure:
		if x.Exception == nil {
			return Unknown{}
		}
		return x
	case Unknown:
		return x
	case error:
		return classifyError(x)
	}
	return classifyValue(v)
}

func classifyError(err error) Input {
	var exc *Exception
	if errors.As(err, &exc) && exc != nil {
		return exc
	}
	var he apis.HTTPException
	if errors.As(err, &he) {
		return HTTPFailure{Exception: he}
	}
	var re apis.RPCException
	if errors.As(err, &re) {
		return RPCFailure{Exception: re}
	}
	return NativeFailure{Err: err}
}

func classifyResponse(r Response) Input {
	if r.IsCanonical() {
		return r
	}
	return classifyValue(r)
}

func classifyPayload(p Payload) Input {
	if p.Valid() {
		return p
	}
	return classifyValue(p)
}

func classifyMap(m map[string]any) Input {
	if len(m) == 0 {
		return Unknown{}
	}
	if r, ok := responseFromMap(m); ok {
		return r
	}
	if p, ok := payloadFromMap(m); ok {
		return p
	}
	return Object(m)
}

// classifyValue looks at v through its JSON object form. Values that do not
// encode to a JSON object (numbers, slices, channels) are Unknown.
func classifyValue(v any) Input {
	b, err := json.Marshal(v)
	if err != nil {
		return Unknown{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return Unknown{}
	}
	return classifyMap(m)
}

func responseFromMap(m map[string]any) (Response, bool) {
	c, _ := m["errorCode"].(string)
	msg, _ := m["errorMessage"].(string)
	status, _ := toInt(m["statusCode"])
	r := Response{ErrorCode: c, ErrorMessage: msg, StatusCode: status}
	if !r.IsCanonical() {
		return Response{}, false
	}
	r.ErrorStack, _ = m["errorStack"].(string)
	return r, true
}

func payloadFromMap(m map[string]any) (Payload, bool) {
	c, _ := m["code"].(string)
	p := Payload{Code: c, Error: m["error"]}
	return p, p.Valid()
}

// toInt accepts the numeric types a status may arrive as, including the
// float64 produced by encoding/json. Fractional values are rejected.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	}
	return 0, false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// truthy reports whether v carries a value: nil, the empty string, false,
// zero and NaN do not.
func truthy(v any) bool {
	if isNil(v) {
		return false
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return !rv.IsZero()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// scalar reports whether v is a boolean or a number.
func scalar(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
