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

package server

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/canonerr"
	"dirpx.dev/canonerr/graphqlx"
	"dirpx.dev/canonerr/httpx"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// NewHTTPHandler returns the demo HTTP API:
//
//	GET  /healthz
//	GET  /kinds
//	GET  /raise/{kind}      canonical JSON error body
//	POST /graphql?kind=...  GraphQL error envelope
func NewHTTPHandler(f *httpx.Filter) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", f.Handle(func(w http.ResponseWriter, _ *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}))
	mux.Handle("GET /kinds", f.Handle(func(w http.ResponseWriter, _ *http.Request) error {
		return writeJSON(w, http.StatusOK, Kinds())
	}))
	mux.Handle("GET /raise/{kind}", f.Handle(func(_ http.ResponseWriter, r *http.Request) error {
		return Raise(r.PathValue("kind"))
	}))
	mux.Handle("POST /graphql", httpx.Tag(canonerr.TransportGraphQL, graphqlHandler(f)))

	return f.Middleware(mux)
}

// graphqlResponse is the GraphQL over HTTP response envelope.
type graphqlResponse struct {
	Data   any           `json:"data"`
	Errors gqlerror.List `json:"errors,omitempty"`
}

// graphqlHandler plays the part of a GraphQL engine: resolver failures
// surface as panics carrying *graphqlx.Exception and are rendered through
// the presenter with a 200 status, as GraphQL servers do.
func graphqlHandler(f *httpx.Filter) http.Handler {
	resolver := f.Handle(func(w http.ResponseWriter, r *http.Request) error {
		if err := Raise(r.URL.Query().Get("kind")); err != nil {
			return err
		}
		return writeJSON(w, http.StatusOK, graphqlResponse{Data: map[string]any{"ok": true}})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			ctx := r.Context()
			gql := graphqlx.Presenter(ctx, graphqlx.Recover(ctx, v))
			_ = writeJSON(w, http.StatusOK, graphqlResponse{Errors: gqlerror.List{gql}})
		}()
		resolver.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
