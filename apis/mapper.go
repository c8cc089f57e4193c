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

package apis

import "google.golang.org/grpc/codes"

// Mapper resolves the gRPC status code a canonical error response is sent
// with over RPC transports.
//
// Implementations must be safe for concurrent use and must never return
// codes.OK.
type Mapper interface {
	// GRPCCode returns the gRPC code for a response with the given HTTP
	// status and error code.
	GRPCCode(status int, errorCode string) codes.Code

	// Explain reports which rule GRPCCode used. Diagnostic output only.
	Explain(status int, errorCode string) string
}
