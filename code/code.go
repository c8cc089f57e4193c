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

import (
	"bytes"
	"encoding"
	"errors"
	"net/http"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of an error code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// IMPORTANT: Empty codes ("") are NOT allowed in a normalized response.
type Code string

// MinLength and MaxLength define the allowed length range for a canonical
// error code.
const (
	// MinLength is the minimum length for a valid code. "OK" is the shortest
	// status name we still want to accept.
	MinLength = 2

	// MaxLength is the maximum length for a valid code.
	MaxLength = 64
)

const (
	// codeFmt is the canonical regular expression used to validate error codes.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Z] - first character must be an uppercase ASCII letter;
	//	[A-Z0-9_]{1,63} - the remaining characters may be uppercase letters,
	//	                  digits or underscore; total length 2..64;
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {1,63} is tied to MinLength / MaxLength above.
	codeFmt = `^[A-Z][A-Z0-9_]{1,63}$`
)

var (
	// codeRe is the compiled form of codeFmt.
	//
	// Examples of valid codes:
	//   - "NOT_FOUND"
	//   - "INTERNAL_SERVER_ERROR"
	//   - "SOMETHING_WENT_WRONG"
	//
	// Examples of invalid codes:
	//   - "not_found"   (lowercase)
	//   - "NOT-FOUND"   (dash instead of underscore)
	//   - "X"           (too short)
	//   - "1ERROR"      (does not start with a letter)
	codeRe = regexp.MustCompile(codeFmt)
)

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as an error code.
	ErrCodeInvalid = errors.New("canonerr: invalid code")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is considered "not provided".
var Empty Code = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Code value.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical code form:
//
//   - trims surrounding spaces;
//   - uppercases the value;
//   - replaces spaces and '-' with '_';
//   - drops any other punctuation ("I'm a teapot" -> "IM_A_TEAPOT").
//
// It does NOT guarantee that the result is valid; callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
			b.WriteByte(c)
		case c == ' ' || c == '-':
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Validate checks whether the provided Code is valid.
// The empty code ("") is considered invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// statusNames holds the statuses whose conventional enum name differs from
// the normalized net/http status text.
var statusNames = map[int]Code{
	http.StatusEarlyHints:            "EARLYHINTS",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusRequestURITooLong:     "URI_TOO_LONG",
	http.StatusTeapot:                "I_AM_A_TEAPOT",
	http.StatusMisdirectedRequest:    "MISDIRECTED",
}

// FromStatus returns the textual name of an HTTP status, e.g. 404 ->
// "NOT_FOUND". The second result is false when the status is unknown.
func FromStatus(status int) (Code, bool) {
	if c, ok := statusNames[status]; ok {
		return c, true
	}
	text := http.StatusText(status)
	if text == "" {
		return Empty, false
	}
	c, err := Parse(text)
	if err != nil {
		return Empty, false
	}
	return c, true
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
