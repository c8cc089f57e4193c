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

// Package server wires the canonerr filters into demo HTTP, GraphQL and
// gRPC endpoints.
package server

import (
	"errors"
	"net/http"
	"sort"

	"dirpx.dev/canonerr"
	"dirpx.dev/canonerr/code"
	"dirpx.dev/canonerr/grpcx"
	"dirpx.dev/canonerr/httpx"
)

// raisers produce one kind of failure each, covering every input the
// normalizer classifies.
var raisers = map[string]func() error{
	"native": func() error { return errors.New("database is unreachable") },
	"stacked": func() error {
		return canonerr.WithStack(errors.New("cache miss storm"))
	},
	"not_found": func() error { return httpx.NotFound("user 42") },
	"forbidden": func() error { return httpx.Forbidden() },
	"validation": func() error {
		return httpx.NewException(http.StatusUnprocessableEntity, map[string]any{
			"message": []string{"name is required", "age must be positive"},
		})
	},
	"rpc": func() error { return grpcx.NewException("upstream timed out") },
	"canonical": func() error {
		return canonerr.E(code.Conflict, httpx.NewException(http.StatusConflict, "email already taken"))
	},
	"payment": func() error {
		return canonerr.New(canonerr.Payload{
			Code:  "PAYMENT_CARD_DECLINED",
			Error: httpx.NewException(http.StatusPaymentRequired, "card declined"),
		})
	},
	"panic": func() error { panic("unexpected nil map") },
}

// Kinds lists the failure kinds Raise understands.
func Kinds() []string {
	out := make([]string, 0, len(raisers))
	for k := range raisers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Raise returns (or panics with) the failure named kind. Unknown kinds
// yield a 400.
func Raise(kind string) error {
	fn, ok := raisers[kind]
	if !ok {
		return httpx.BadRequest("unknown failure kind " + kind)
	}
	return fn()
}
