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
	"bytes"
	"errors"
	"strings"

	"dirpx.dev/dresult/reason"
)

// ValidationError describes one violated input rule.
//
// Records are produced outside of dresult (by validators, decoders, domain
// checks) and stored opaquely by an Invalid outcome, in the order given.
// The struct is comparable so outcomes can be compared field by field.
type ValidationError struct {
	// Identifier names the offending input, e.g. "email" or
	// "items.0.quantity". May be empty for object-level rules.
	Identifier string `json:"identifier,omitempty"`

	// ErrorMessage is a human-readable description of the violation.
	ErrorMessage string `json:"errorMessage"`

	// ErrorCode is an optional machine-readable rule code, e.g.
	// "validation_required". The mapper may refine transport codes on it.
	ErrorCode reason.Reason `json:"errorCode,omitempty"`

	// Severity grades the violation. The zero value is SeverityError.
	Severity Severity `json:"severity"`
}

// Severity grades a validation error.
type Severity uint8

const (
	// SeverityError is a violation that prevents the operation.
	SeverityError Severity = iota
	// SeverityWarning is a violation worth reporting that did not block on its own.
	SeverityWarning
	// SeverityInfo is informational.
	SeverityInfo
)

// ErrSeverityInvalid is returned when a value cannot be parsed as a Severity.
var ErrSeverityInvalid = errors.New("dresult: invalid severity")

var severityNames = [...]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
}

// ParseSeverity resolves "error", "warning" or "info" (case-insensitive).
func ParseSeverity(s string) (Severity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range severityNames {
		if n == s {
			return Severity(i), nil
		}
	}
	return SeverityError, ErrSeverityInvalid
}

// String returns the canonical name of the severity.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if int(s) >= len(severityNames) {
		return nil, ErrSeverityInvalid
	}
	return []byte(severityNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ErrorList is the error bundle attached to a general Error outcome:
// ordered diagnostic messages plus the correlation id of the failure.
// Both fields are passed through opaquely.
type ErrorList struct {
	ErrorMessages []string `json:"errorMessages,omitempty"`
	CorrelationID string   `json:"correlationId,omitempty"`
}

// NewErrorList is a convenience constructor for ErrorList.
func NewErrorList(correlationID string, messages ...string) *ErrorList {
	return &ErrorList{ErrorMessages: messages, CorrelationID: correlationID}
}
