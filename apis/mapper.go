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

import (
	"dirpx.dev/dresult/reason"
	"dirpx.dev/dresult/status"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the transport mapping
// rules. It resolves a status (and optionally a reason) into HTTP and gRPC
// codes.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for the given status and reason.
	// If no reason-specific rule exists, the mapper falls back to the
	// status-level rule.
	HTTPStatus(s status.Status, r reason.Reason) int

	// GRPCStatus returns the gRPC code for the given status and reason.
	GRPCStatus(s status.Status, r reason.Reason) codes.Code

	// Resolve resolves both transports in one call using the same matching logic.
	Resolve(s status.Status, r reason.Reason) Resolution

	// ResolveOutcome resolves a whole outcome. It derives the reason from
	// the outcome and applies the "created" rule to Ok outcomes that carry
	// a location.
	ResolveOutcome(o Outcome) Resolution

	// Explain returns a human-readable description of which rule matched.
	Explain(s status.Status, r reason.Reason) string
}

// Resolution is a resolved pair of transport codes for one outcome.
type Resolution struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
