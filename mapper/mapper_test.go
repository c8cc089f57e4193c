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
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestDefaults_Basic(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(status int, want codes.Code) {
		t.Helper()
		if got := m.GRPCCode(status, ""); got != want {
			t.Fatalf("GRPCCode(%d) = %v; want %v", status, got, want)
		}
	}
	check(400, codes.InvalidArgument)
	check(401, codes.Unauthenticated)
	check(403, codes.PermissionDenied)
	check(404, codes.NotFound)
	check(409, codes.Aborted)
	check(429, codes.ResourceExhausted)
	check(499, codes.Canceled)
	check(500, codes.Internal)
	check(503, codes.Unavailable)
	check(504, codes.DeadlineExceeded)
}

func TestClassAndFallback(t *testing.T) {
	m := Default()
	if got := m.GRPCCode(418, ""); got != codes.FailedPrecondition {
		t.Fatalf("4xx class: got %v", got)
	}
	if got := m.GRPCCode(599, ""); got != codes.Internal {
		t.Fatalf("5xx class: got %v", got)
	}
	if got := m.GRPCCode(302, ""); got != codes.Unknown {
		t.Fatalf("fallback: got %v", got)
	}

	m2, err := New(WithGRPCFallback(codes.Internal))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m2.GRPCCode(200, ""); got != codes.Internal {
		t.Fatalf("custom fallback: got %v", got)
	}
}

func TestNeverOK(t *testing.T) {
	m := Default()
	for status := 100; status <= 599; status++ {
		if m.GRPCCode(status, "") == codes.OK {
			t.Fatalf("status %d mapped to OK", status)
		}
	}
}

func TestPriority_OverrideOverPrefixOverDefault(t *testing.T) {
	m, err := New(
		WithGRPCDefault(409, codes.AlreadyExists),
		WithGRPCPrefix("DUPLICATE", codes.InvalidArgument),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCCode(409, "CONFLICT"); got != codes.AlreadyExists {
		t.Fatalf("user default must replace library default; got %v", got)
	}
	if got := m.GRPCCode(409, "DUPLICATE_EMAIL"); got != codes.InvalidArgument {
		t.Fatalf("prefix must beat default; got %v", got)
	}

	m2, err := New(
		WithGRPCPrefix("DUPLICATE", codes.InvalidArgument),
		WithGRPCOverride(409, codes.Aborted),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m2.GRPCCode(409, "DUPLICATE_EMAIL"); got != codes.Aborted {
		t.Fatalf("override must win; got %v", got)
	}
}

func TestPrefix_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithGRPCPrefix("PAYMENT", codes.FailedPrecondition),
		WithGRPCPrefix("PAYMENT_PROVIDER", codes.Unavailable),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCCode(402, "PAYMENT_PROVIDER_TIMEOUT"); got != codes.Unavailable {
		t.Fatalf("LPM failed: got %v", got)
	}
	if got := m.GRPCCode(500, "PAYMENTS_DISABLED"); got != codes.Internal {
		// PAYMENTS is not the PAYMENT segment, so the status default applies.
		t.Fatalf("unexpected code %v", got)
	}
}

func TestPrefix_Wildcard(t *testing.T) {
	m, err := New(WithGRPCPrefix("AUTH_*_EXPIRED", codes.Unauthenticated))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCCode(400, "AUTH_TOKEN_EXPIRED"); got != codes.Unauthenticated {
		t.Fatalf("wildcard match failed: got %v", got)
	}
	if got := m.GRPCCode(400, "AUTH_EXPIRED"); got != codes.InvalidArgument {
		t.Fatalf("wildcard must not match zero segments: got %v", got)
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(WithGRPCPrefix("  payment-card  ", codes.FailedPrecondition))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCCode(500, "PAYMENT_CARD_DECLINED"); got != codes.FailedPrecondition {
		t.Fatalf("normalized prefix should match; got %v", got)
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"status too low", WithGRPCOverride(99, codes.Internal)},
		{"status too high", WithGRPCDefault(600, codes.Internal)},
		{"ok code", WithGRPCOverride(500, codes.OK)},
		{"out of range code", WithGRPCDefault(500, codes.Code(42))},
		{"ok fallback", WithGRPCFallback(codes.OK)},
		{"empty prefix", WithGRPCPrefix("", codes.Internal)},
		{"wildcard only", WithGRPCPrefix("*", codes.Internal)},
		{"ok prefix", WithGRPCPrefix("PAYMENT", codes.OK)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	m, err := New(
		WithGRPCPrefix("PAYMENT", codes.FailedPrecondition),
		WithGRPCOverride(409, codes.AlreadyExists),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cases := map[string]string{
		m.Explain(402, "PAYMENT_CARD_DECLINED"): `source=prefix pattern="PAYMENT"`,
		m.Explain(409, "PAYMENT_DUPLICATE"):     "source=override",
		m.Explain(404, "NOT_FOUND"):             "source=default",
		m.Explain(418, "IM_A_TEAPOT"):           "source=class",
		m.Explain(302, "FOUND"):                 "source=fallback",
	}
	for exp, want := range cases {
		if !strings.Contains(exp, want) {
			t.Fatalf("Explain must include %s:\n%s", want, exp)
		}
		if !strings.Contains(exp, "grpc:") {
			t.Fatalf("Explain must render the grpc line:\n%s", exp)
		}
	}
}

func TestImmutability(t *testing.T) {
	opts := []Option{WithGRPCDefault(404, codes.Internal)}
	m, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defaultGRPC[400] = codes.Internal
	defer func() { defaultGRPC[400] = codes.InvalidArgument }()
	if got := m.GRPCCode(400, ""); got != codes.InvalidArgument {
		t.Fatalf("mapper must not observe later mutations; got %v", got)
	}
	if got := Default().GRPCCode(404, ""); got != codes.NotFound {
		t.Fatalf("options of one mapper leaked into Default; got %v", got)
	}
}

func TestConcurrency_GRPCCode(t *testing.T) {
	m, err := New(
		WithGRPCPrefix("PAYMENT", codes.FailedPrecondition),
		WithGRPCOverride(409, codes.AlreadyExists),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.GRPCCode(402, "PAYMENT_CARD_DECLINED")
				_ = m.GRPCCode(409, "")
				_ = m.GRPCCode(500, "INTERNAL_SERVER_ERROR")
			}
		}()
	}
	wg.Wait()
}

func BenchmarkGRPCCode_Default(b *testing.B) {
	m := Default()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.GRPCCode(404, "NOT_FOUND")
	}
}

func BenchmarkGRPCCode_Prefix(b *testing.B) {
	m, _ := New(WithGRPCPrefix("PAYMENT_*_DECLINED", codes.FailedPrecondition))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.GRPCCode(402, "PAYMENT_CARD_DECLINED_BY_ISSUER")
	}
}
