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

	"dirpx.dev/dresult/status"
	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault replaces the library default HTTP status for s.
func WithHTTPDefault(s status.Status, code int) Option {
	return func(b *builder) {
		if b.checkStatus(s) && b.checkHTTP(s, code) {
			b.httpDefaults[s] = code
		}
	}
}

// WithGRPCDefault replaces the library default gRPC code for s.
func WithGRPCDefault(s status.Status, code codes.Code) Option {
	return func(b *builder) {
		if b.checkStatus(s) && b.checkGRPC(s, code) {
			b.grpcDefaults[s] = code
		}
	}
}

// WithHTTPOverride registers an exact HTTP status for s. Overrides win over
// prefix rules and defaults.
func WithHTTPOverride(s status.Status, code int) Option {
	return func(b *builder) {
		if b.checkStatus(s) && b.checkHTTP(s, code) {
			b.httpOverride[s] = code
		}
	}
}

// WithGRPCOverride registers an exact gRPC code for s.
func WithGRPCOverride(s status.Status, code codes.Code) Option {
	return func(b *builder) {
		if b.checkStatus(s) && b.checkGRPC(s, code) {
			b.grpcOverride[s] = code
		}
	}
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule for s. The rule is
// evaluated against the reason; a more specific prefix wins. Use "*" to
// match a single segment.
func WithHTTPPrefix(s status.Status, prefix string, code int) Option {
	return func(b *builder) {
		if b.checkStatus(s) && b.checkHTTP(s, code) {
			b.httpPrefixes[s] = append(b.httpPrefixes[s], prefixRule[int]{prefix, code})
		}
	}
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule for s.
func WithGRPCPrefix(s status.Status, prefix string, code codes.Code) Option {
	return func(b *builder) {
		if b.checkStatus(s) && b.checkGRPC(s, code) {
			b.grpcPrefixes[s] = append(b.grpcPrefixes[s], prefixRule[codes.Code]{prefix, code})
		}
	}
}

// WithCreatedStatus sets the HTTP status reported for Ok outcomes that
// carry a location. The default is 201.
func WithCreatedStatus(code int) Option {
	return func(b *builder) {
		if b.checkHTTP(status.Ok, code) {
			b.createdHTTP = code
		}
	}
}

// checkStatus records an error for statuses outside the enumeration.
func (b *builder) checkStatus(s status.Status) bool {
	if err := status.Validate(s); err != nil {
		b.errs = append(b.errs, fmt.Errorf("mapper: %w: %d", err, uint8(s)))
		return false
	}
	return true
}

// checkHTTP records an error for HTTP codes outside 100..599.
func (b *builder) checkHTTP(s status.Status, code int) bool {
	if code < 100 || code > 599 {
		b.errs = append(b.errs, fmt.Errorf("mapper: HTTP status %d for %q out of range", code, s))
		return false
	}
	return true
}

// checkGRPC records an error when a failure status would map to OK.
func (b *builder) checkGRPC(s status.Status, code codes.Code) bool {
	if code == codes.OK && s.IsFailure() {
		b.errs = append(b.errs, fmt.Errorf("mapper: gRPC code OK for failure status %q", s))
		return false
	}
	return true
}
