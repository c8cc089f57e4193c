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
	"encoding"
	"net/http"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  internal_server_error  ", "INTERNAL_SERVER_ERROR"},
		{"to upper", "NoT_FoUnD", "NOT_FOUND"},
		{"dash to underscore", "not-found", "NOT_FOUND"},
		{"space to underscore", "Not Found", "NOT_FOUND"},
		{"drop punctuation", "I'm a teapot", "IM_A_TEAPOT"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"simple", "NOT_FOUND", NotFound},
		{"with spaces", "  conflict  ", Conflict},
		{"lower", "unauthorized", Unauthorized},
		{"dash", "something-went-wrong", SomethingWentWrong},
		{"min length", "OK", Code("OK")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "a"},
		{"starts with digit", "1INVALID"},
		{"only punctuation", "!@#"},
		{"too long", strings.Repeat("A", MaxLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Code{
		InternalServerError,
		SomethingWentWrong,
		NotFound,
		"OK",
	}
	for _, c := range valid {
		if err := Validate(c); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", c, err)
		}
	}

	invalid := []Code{
		"",          // empty
		"A",         // too short
		"not_found", // lowercase
		"NOT-FOUND", // dash
	}
	for _, c := range invalid {
		if err := Validate(c); err == nil {
			t.Fatalf("Validate(%q) expected error", c)
		}
	}
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Code
	}{
		{http.StatusNotFound, NotFound},
		{http.StatusUnauthorized, Unauthorized},
		{http.StatusInternalServerError, InternalServerError},
		{http.StatusServiceUnavailable, ServiceUnavailable},
		{http.StatusTeapot, Code("I_AM_A_TEAPOT")},
		{http.StatusRequestEntityTooLarge, Code("PAYLOAD_TOO_LARGE")},
		{http.StatusRequestURITooLong, Code("URI_TOO_LONG")},
		{http.StatusMisdirectedRequest, Code("MISDIRECTED")},
		{http.StatusEarlyHints, Code("EARLYHINTS")},
		{http.StatusRequestedRangeNotSatisfiable, Code("REQUESTED_RANGE_NOT_SATISFIABLE")},
		{http.StatusNonAuthoritativeInfo, Code("NON_AUTHORITATIVE_INFORMATION")},
	}
	for _, tt := range tests {
		got, ok := FromStatus(tt.status)
		if !ok {
			t.Fatalf("FromStatus(%d) reported unknown status", tt.status)
		}
		if got != tt.want {
			t.Fatalf("FromStatus(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}

	if got, ok := FromStatus(499); ok || got != Empty {
		t.Fatalf("FromStatus(499) = %q, %v; want Empty, false", got, ok)
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	c := MustParse("not_found")
	if c != NotFound {
		t.Fatalf("MustParse(valid) = %q, want %q", c, NotFound)
	}
}

func TestCode_MarshalText(t *testing.T) {
	text, err := NotFound.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "NOT_FOUND" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "NOT_FOUND")
	}

	invalid := Code("Invalid-Dash")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid code must return error")
	}
}

func TestCode_UnmarshalText(t *testing.T) {
	var c Code
	if err := c.UnmarshalText([]byte("  not-found  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != NotFound {
		t.Fatalf("UnmarshalText() = %q, want %q", c, NotFound)
	}

	var bad Code
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}

func TestRegexAndLengthAreConsistent(t *testing.T) {
	if MinLength != 2 {
		t.Fatalf("MinLength changed, update tests")
	}
	if MaxLength != 64 {
		t.Fatalf("MaxLength changed, update tests")
	}

	long := strings.Repeat("A", MaxLength)
	if _, err := Parse(long); err != nil {
		t.Fatalf("expected %q to be valid (len=%d): %v", long, len(long), err)
	}

	longer := long + "A"
	if _, err := Parse(longer); err == nil {
		t.Fatalf("expected %q (len=%d) to be invalid", longer, len(longer))
	}
}
