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
	"fmt"
	"maps"
	"sync"

	"dirpx.dev/canonerr/apis"
	"dirpx.dev/canonerr/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults.
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Validate statuses (100..599) and codes (never OK).
//  4. Normalize error-code prefixes and build the segment trie.
//  5. Freeze maps into fresh copies.
//
// Errors returned from this function indicate invalid options.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	maps.Copy(b.grpcDefaults, defaultGRPC)

	for _, opt := range opts {
		opt(b)
	}

	if err := validateRules("default", b.grpcDefaults); err != nil {
		return nil, err
	}
	if err := validateRules("override", b.grpcOverride); err != nil {
		return nil, err
	}
	if err := validateCode(b.fallbackGRPC); err != nil {
		return nil, fmt.Errorf("mapper: invalid fallback: %w", err)
	}

	var trie *segmenttrie.Trie[codes.Code]
	if len(b.grpcPrefixes) > 0 {
		trie = segmenttrie.New[codes.Code]()
		for _, r := range b.grpcPrefixes {
			if err := validateCode(r.val); err != nil {
				return nil, fmt.Errorf("mapper: invalid prefix rule %q: %w", r.prefix, err)
			}
			p := normalizePrefix(r.prefix)
			if err := trie.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert prefix %q: %w", r.prefix, err)
			}
		}
	}

	return &mapper{
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		grpcOverride: freezeGRPC(b.grpcOverride),
		grpcTrie:     trie,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

var defaultMapper = sync.OnceValue(func() apis.Mapper {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
})

// Default returns the shared mapper built from library defaults only.
func Default() apis.Mapper { return defaultMapper() }

// mapper is immutable once constructed and safe for concurrent use.
type mapper struct {
	// grpcDefault holds the gRPC code per HTTP status.
	grpcDefault map[int]codes.Code

	// grpcOverride holds explicit gRPC codes per HTTP status.
	grpcOverride map[int]codes.Code

	// grpcTrie resolves gRPC codes from error-code prefixes. Nil when no
	// prefix rule was registered.
	grpcTrie *segmenttrie.Trie[codes.Code]

	// fallbackGRPC is used for statuses outside 4xx and 5xx.
	fallbackGRPC codes.Code
}

// GRPCCode resolves a gRPC code for the given status and error code.
//
// Resolution order (highest to lowest):
//  1. exact per-status override;
//  2. longest-prefix-match rule on the error code;
//  3. per-status default (library or user overridden);
//  4. status class (4xx FAILED_PRECONDITION, 5xx INTERNAL);
//  5. fallback (UNKNOWN unless configured).
func (m *mapper) GRPCCode(status int, errorCode string) codes.Code {
	c, _, _ := m.resolve(status, errorCode)
	return c
}

// Explain produces a textual trace of how GRPCCode resolved a pair.
//
// Example output:
//
//	status=402 errorCode="PAYMENT_CARD_DECLINED"
//	grpc: source=prefix pattern="PAYMENT" -> FAILEDPRECONDITION(9)
//
// source is one of override, prefix, default, class or fallback.
func (m *mapper) Explain(status int, errorCode string) string {
	c, src, pat := m.resolve(status, errorCode)
	head := fmt.Sprintf("status=%d errorCode=%q\n", status, errorCode)
	if src == "prefix" {
		return head + fmt.Sprintf("grpc: source=prefix pattern=%q -> %s", pat, formatGRPC(c))
	}
	return head + fmt.Sprintf("grpc: source=%s -> %s", src, formatGRPC(c))
}

func (m *mapper) resolve(status int, errorCode string) (c codes.Code, source, pattern string) {
	if v, ok := m.grpcOverride[status]; ok {
		return v, "override", ""
	}
	if v, ok, pat := m.grpcTrie.MatchWithPattern(errorCode); ok {
		return v, "prefix", pat
	}
	if v, ok := m.grpcDefault[status]; ok {
		return v, "default", ""
	}
	if v, ok := classFallback(status); ok {
		return v, "class", ""
	}
	return m.fallbackGRPC, "fallback", ""
}
