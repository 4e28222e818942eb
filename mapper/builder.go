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
	"net/http"

	"dirpx.dev/dresult/status"
	"google.golang.org/grpc/codes"
)

type prefixRule[T any] struct {
	// prefix is the raw, dot-separated reason prefix (may contain "*").
	// It is normalized and validated when the trie is built.
	prefix string
	val    T
}

type builder struct {
	// user-provided adjustments, applied on top of library defaults
	httpDefaults map[status.Status]int
	grpcDefaults map[status.Status]codes.Code

	httpOverride map[status.Status]int
	grpcOverride map[status.Status]codes.Code

	httpPrefixes map[status.Status][]prefixRule[int]
	grpcPrefixes map[status.Status][]prefixRule[codes.Code]

	createdHTTP int

	// global fallbacks used when a status has no default at all
	fallbackHTTP int
	fallbackGRPC codes.Code

	// errs collects option problems; New reports them together.
	errs []error
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[status.Status]int, len(defaultHTTP)),
		grpcDefaults: make(map[status.Status]codes.Code, len(defaultGRPC)),

		httpOverride: make(map[status.Status]int),
		grpcOverride: make(map[status.Status]codes.Code),
		httpPrefixes: make(map[status.Status][]prefixRule[int]),
		grpcPrefixes: make(map[status.Status][]prefixRule[codes.Code]),

		createdHTTP: http.StatusCreated,

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
