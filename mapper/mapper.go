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
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper/internal/segmenttrie"
	"dirpx.dev/dresult/reason"
	"dirpx.dev/dresult/status"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all reason prefixes.
//  4. Build per-status segment tries supporting longest-prefix-match
//     with '*' as a single-segment wildcard.
//  5. Freeze all maps into fresh copies.
//
// Errors report unknown statuses, HTTP codes outside 100..599 and invalid
// prefixes. All problems found are joined into one error.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = v
	}

	for _, opt := range opts {
		opt(b)
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}

	httpTrie, err := buildTries(b.httpPrefixes, "HTTP")
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries(b.grpcPrefixes, "gRPC")
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freeze(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freeze(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		createdHTTP:  b.createdHTTP,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// mappers built from constant options.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Default returns a mapper with the library defaults only.
func Default() apis.Mapper { return defaultMapper }

var defaultMapper = MustNew()

// buildTries compiles raw prefix rules into one trie per status.
func buildTries[T any](rules map[status.Status][]prefixRule[T], transport string) (map[status.Status]*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make(map[status.Status]*segmenttrie.Trie[T], len(rules))
	for s, list := range rules {
		if len(list) == 0 {
			continue
		}
		t := segmenttrie.New[T]()
		for _, r := range list {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid %s reason-prefix %q for status %q: %w", transport, r.prefix, s, err)
			}
			if err := t.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert %s prefix %q for status %q: %w", transport, p, s, err)
			}
		}
		out[s] = t
	}
	return out, nil
}

// mapper combines per-status defaults, per-status exact overrides and
// per-status segment-aware prefix tries for reasons. Lookups are O(depth)
// and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status per outcome status.
	httpDefault map[status.Status]int
	grpcDefault map[status.Status]codes.Code

	// httpOverride holds explicit HTTP statuses; they win over everything.
	httpOverride map[status.Status]int
	grpcOverride map[status.Status]codes.Code

	// httpTrie stores per-status tries keyed by reason prefixes
	// (dot-separated, "*" for one-segment wildcards).
	httpTrie map[status.Status]*segmenttrie.Trie[int]
	grpcTrie map[status.Status]*segmenttrie.Trie[codes.Code]

	// createdHTTP is reported for Ok outcomes that carry a location.
	createdHTTP int

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given status and reason.
func (m *mapper) HTTPStatus(s status.Status, r reason.Reason) int {
	v, _, _ := resolve(s, r, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves a gRPC code for the given status and reason, with the
// same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(s status.Status, r reason.Reason) codes.Code {
	v, _, _ := resolve(s, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	return v
}

// Resolve resolves both transports using the same inputs, which keeps HTTP
// and gRPC decisions consistent for a single outcome.
func (m *mapper) Resolve(s status.Status, r reason.Reason) apis.Resolution {
	return apis.Resolution{
		HTTP: m.HTTPStatus(s, r),
		GRPC: m.GRPCStatus(s, r),
	}
}

// ResolveOutcome resolves a whole outcome. The reason comes from ReasonOf;
// Ok outcomes with a location report the created HTTP status unless an
// HTTP override is registered for Ok.
func (m *mapper) ResolveOutcome(o apis.Outcome) apis.Resolution {
	s := o.Status()
	res := m.Resolve(s, ReasonOf(o))
	if _, overridden := m.httpOverride[status.Ok]; s == status.Ok && o.Location() != "" && !overridden {
		res.HTTP = m.createdHTTP
	}
	return res
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// codes for a particular (status, reason) pair.
//
// Example output:
//
//	status="invalid" reason="user.email.taken"
//	http: source=prefix pattern="user.email" -> 409
//	grpc: source=default -> INVALIDARGUMENT(3)
//
// source is one of override, prefix, default or fallback. pattern is the
// rule as it was stored in the trie and may contain "*".
func (m *mapper) Explain(s status.Status, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "status=%q reason=%q\n", s, r)

	v, src, pat := resolve(s, r, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", sourceText(src, pat), v)

	g, src, pat := resolve(s, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", sourceText(src, pat), strings.ToUpper(g.String()), int(g))

	return b.String()
}

// ReasonOf derives the reason used for prefix matching from an outcome: the
// ErrorCode of the first validation error that has one. Outcomes other than
// Invalid have no reason.
func ReasonOf(o apis.Outcome) reason.Reason {
	if o.Status() != status.Invalid {
		return ""
	}
	for _, ve := range o.ValidationErrors() {
		if ve.ErrorCode != "" {
			return ve.ErrorCode
		}
	}
	return ""
}

// resolve walks the tiers for one transport and reports the value, the tier
// name and, for prefix matches, the matched pattern.
func resolve[T any](
	s status.Status,
	r reason.Reason,
	override map[status.Status]T,
	tries map[status.Status]*segmenttrie.Trie[T],
	defaults map[status.Status]T,
	fallback T,
) (T, string, string) {
	if v, ok := override[s]; ok {
		return v, "override", ""
	}
	if t := tries[s]; t != nil && r != "" {
		if v, ok, pat := t.MatchWithPattern(string(r)); ok {
			return v, "prefix", pat
		}
	}
	if v, ok := defaults[s]; ok {
		return v, "default", ""
	}
	return fallback, "fallback", ""
}

func sourceText(src, pattern string) string {
	if src == "prefix" {
		return fmt.Sprintf("source=prefix pattern=%q", pattern)
	}
	return "source=" + src
}

// normalizeAndValidatePrefix ensures a reason prefix is canonical and valid.
// Empty prefixes and prefixes made of wildcards only are rejected.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := reason.Normalize(raw)
	if p == "" {
		return "", errors.New("empty prefix")
	}
	allWild := true
	for _, seg := range strings.Split(p, ".") {
		if !validPrefixSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", errors.New("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment reports whether seg is "*" or matches [a-z][a-z0-9_]*.
func validPrefixSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	if seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
