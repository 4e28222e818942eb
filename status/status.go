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

package status

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Status is the classification attached to every outcome.
//
// It is a small integer rather than a string so that the zero value is a
// meaningful member of the set (Ok) and comparisons stay cheap.
// Use String/MarshalText for the canonical textual form.
type Status uint8

const (
	// Ok indicates that the operation completed. An Ok outcome may carry
	// a value, a success message and, for the "created" case, a location.
	Ok Status = iota

	// Error indicates a general failure of the operation. It is the only
	// status that may carry a correlation id.
	Error

	// Invalid indicates that the input failed validation. Outcomes with
	// this status always carry at least one validation error.
	Invalid

	// NotFound indicates that a requested resource does not exist.
	NotFound

	// Forbidden indicates that the caller is authenticated but not allowed
	// to perform the operation.
	Forbidden

	// Unauthorized indicates that the caller is not authenticated, or that
	// the authentication attempt failed.
	Unauthorized

	// Conflict indicates that the operation clashes with the current state
	// of a resource, such as an edit conflict between concurrent updates.
	Conflict

	// Unavailable indicates that the service or one of its dependencies is
	// temporarily unavailable. Errors may be transient; the caller may retry.
	Unavailable

	// CriticalError indicates that everything provided by the caller was
	// valid, but the service could not complete because of an internal fault.
	CriticalError

	// NoContent indicates that the operation completed and there is nothing
	// to send back.
	NoContent

	// end marks the end of the enumeration. It is never a valid status.
	end
)

var (
	// ErrStatusInvalid is returned when a value cannot be parsed or
	// validated as a status.
	ErrStatusInvalid = errors.New("dresult: invalid status")
)

// Ensure Status implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config and API structs.
var (
	_ encoding.TextMarshaler   = (*Status)(nil)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// names holds the canonical text of every status, indexed by value.
var names = [end]string{
	Ok:            "ok",
	Error:         "error",
	Invalid:       "invalid",
	NotFound:      "not_found",
	Forbidden:     "forbidden",
	Unauthorized:  "unauthorized",
	Conflict:      "conflict",
	Unavailable:   "unavailable",
	CriticalError: "critical_error",
	NoContent:     "no_content",
}

// byName is the reverse lookup used by Parse.
var byName = func() map[string]Status {
	m := make(map[string]Status, len(names))
	for i, n := range names {
		m[n] = Status(i)
	}
	return m
}()

// All returns every status in declaration order. The returned slice is a
// fresh copy and may be modified by the caller.
func All() []Status {
	out := make([]Status, 0, int(end))
	for s := Ok; s < end; s++ {
		out = append(out, s)
	}
	return out
}

// Parse takes a user-provided string, normalizes it and resolves it to a
// Status. The canonical form ("not_found"), CamelCase ("NotFound") and
// dashed or upper-case spellings ("NOT-FOUND") are all accepted.
func Parse(s string) (Status, error) {
	if st, ok := byName[Normalize(s)]; ok {
		return st, nil
	}
	return Ok, ErrStatusInvalid
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Status {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

// Normalize brings an arbitrary string closer to the canonical form:
//
//   - trims surrounding spaces;
//   - splits CamelCase words with '_' ("CriticalError" -> "critical_error");
//   - lowercases the value;
//   - replaces '-' and ' ' with '_'.
//
// It does NOT guarantee that the result names a status.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s) + 2)
	var prev rune
	for i, r := range s {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
		case unicode.IsUpper(r):
			// A lower->Upper transition starts a new word.
			if i > 0 && unicode.IsLower(prev) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

// Validate reports whether st is a member of the enumeration.
func Validate(st Status) error {
	if st >= end {
		return ErrStatusInvalid
	}
	return nil
}

// String returns the canonical text of the status. Values outside the
// enumeration render as "status(<n>)".
func (st Status) String() string {
	if st >= end {
		return "status(" + strconv.Itoa(int(st)) + ")"
	}
	return names[st]
}

// MarshalText implements encoding.TextMarshaler.
func (st Status) MarshalText() ([]byte, error) {
	if err := Validate(st); err != nil {
		return nil, err
	}
	return []byte(names[st]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes the provided text before resolving it.
func (st *Status) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

// IsSuccess reports whether the status describes a completed operation
// (Ok or NoContent).
func (st Status) IsSuccess() bool {
	return st == Ok || st == NoContent
}

// IsFailure reports whether the status describes a failed operation.
func (st Status) IsFailure() bool {
	return st < end && !st.IsSuccess()
}

// CarriesErrors reports whether outcomes with this status keep their
// diagnostics as plain messages (as opposed to validation records).
func (st Status) CarriesErrors() bool {
	switch st {
	case Error, NotFound, Forbidden, Unauthorized, Conflict, Unavailable, CriticalError:
		return true
	}
	return false
}
