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
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw error-code prefix (may contain "*"). It is
	// normalized and validated when the trie is built.
	prefix string
	val    codes.Code
}

type builder struct {
	// grpcDefaults holds per-status defaults; user options replace library
	// entries.
	grpcDefaults map[int]codes.Code

	// grpcOverride holds exact per-status overrides (highest priority).
	grpcOverride map[int]codes.Code

	// grpcPrefixes holds error-code LPM rules, compiled into a segment trie.
	grpcPrefixes []prefixRule

	// fallbackGRPC is used when neither a rule nor the status class applies.
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		grpcDefaults: make(map[int]codes.Code, len(defaultGRPC)),
		grpcOverride: make(map[int]codes.Code),
		fallbackGRPC: codes.Unknown,
	}
}
