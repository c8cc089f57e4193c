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

import "context"

// Transport names the wire protocol a call arrived over.
type Transport string

const (
	// TransportHTTP marks plain HTTP requests.
	TransportHTTP Transport = "http"
	// TransportGraphQL marks GraphQL operations served over HTTP.
	TransportGraphQL Transport = "graphql"
	// TransportRPC marks gRPC calls.
	TransportRPC Transport = "rpc"
)

type transportKey struct{}

// WithTransport returns a copy of ctx tagged with t.
func WithTransport(ctx context.Context, t Transport) context.Context {
	return context.WithValue(ctx, transportKey{}, t)
}

// TransportFrom returns the transport ctx was tagged with, or "" when it was
// never tagged.
func TransportFrom(ctx context.Context) Transport {
	if ctx == nil {
		return ""
	}
	t, _ := ctx.Value(transportKey{}).(Transport)
	return t
}
