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

// Package mapper provides deterministic, immutable mappings from outcome
// statuses (dirpx.dev/dresult/status) and optional reasons
// (dirpx.dev/dresult/reason) to transport-level codes for HTTP and gRPC.
//
// # Overview
//
// An outcome is classified in two parts:
//
//  1. a Status (e.g. status.NotFound, status.Invalid),
//  2. an optional, more specific Reason taken from the first validation
//     error that carries one (e.g. "user.email.taken").
//
// Transport layers (HTTP handlers, gin routes, gRPC servers) need to turn
// this pair into concrete status codes. A Mapper is a snapshot, safe for
// concurrent reuse; callers can replace library defaults per Status and add
// fine-grained rules for specific reasons.
//
// # Resolution model
//
// A Mapper resolves codes in the following order:
//
//  1. exact override for the Status;
//  2. per-Status longest-prefix-match (LPM) on the Reason;
//  3. per-Status default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: reasons are "."-separated segments and
// "*" matches exactly one segment:
//
//	WithHTTPPrefix(status.Invalid, "user.email", http.StatusConflict)
//	WithHTTPPrefix(status.Invalid, "user.*.taken", http.StatusConflict)
//
// The more specific prefix wins.
//
// # Created outcomes
//
// Creation is not a status of its own. ResolveOutcome reports the created
// HTTP status (201 unless changed with WithCreatedStatus) for Ok outcomes
// that carry a location.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPDefault(status.Error, http.StatusInternalServerError),
//	    mapper.WithHTTPPrefix(status.Invalid, "user.email.taken", http.StatusConflict),
//	)
//	if err != nil {
//	    // invalid prefix, unknown status, etc.
//	}
//
//	res := m.ResolveOutcome(r)
//	// res.HTTP, res.GRPC
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a (status, reason)
// pair was resolved, including which tier matched and, for prefixes, which
// pattern was used. It is meant for inspection and logging, not parsing.
package mapper
