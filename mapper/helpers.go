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
	"strings"

	"dirpx.dev/canonerr/code"
	"google.golang.org/grpc/codes"
)

// freezeGRPC makes an immutable copy of a status map so later mutations to
// the builder cannot affect the mapper.
func freezeGRPC(src map[int]codes.Code) map[int]codes.Code {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}

// validateRules checks every status key and code value of a rule map.
func validateRules(kind string, m map[int]codes.Code) error {
	for status, c := range m {
		if err := validateStatus(status); err != nil {
			return fmt.Errorf("mapper: invalid %s: %w", kind, err)
		}
		if err := validateCode(c); err != nil {
			return fmt.Errorf("mapper: invalid %s for status %d: %w", kind, status, err)
		}
	}
	return nil
}

func validateStatus(status int) error {
	if status < 100 || status > 599 {
		return fmt.Errorf("status %d is outside 100..599", status)
	}
	return nil
}

// validateCode rejects OK (an error is never a success) and values outside
// the canonical gRPC code range.
func validateCode(c codes.Code) error {
	if c == codes.OK || c > codes.Unauthenticated {
		return fmt.Errorf("gRPC code %d cannot describe an error", uint32(c))
	}
	return nil
}

// normalizePrefix brings a user prefix to canonical code form, keeping "*"
// segments.
func normalizePrefix(raw string) string {
	segs := strings.Split(strings.TrimSpace(raw), "_")
	for i, seg := range segs {
		if strings.TrimSpace(seg) == "*" {
			segs[i] = "*"
			continue
		}
		segs[i] = code.Normalize(seg)
	}
	return strings.Join(segs, "_")
}

// formatGRPC renders a code as NAME(n), e.g. "NOTFOUND(5)".
func formatGRPC(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
