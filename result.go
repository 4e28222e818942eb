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

package dresult

import (
	"reflect"
	"slices"
	"strings"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
)

// ValidationError and ErrorList are the records consumed by outcomes.
// They live in apis so adapters can share them; the aliases keep call
// sites short.
type (
	ValidationError = apis.ValidationError
	ErrorList       = apis.ErrorList
)

// NewErrorList builds an error bundle for Error.
func NewErrorList(correlationID string, messages ...string) *ErrorList {
	return apis.NewErrorList(correlationID, messages...)
}

// Result is the outcome of one operation attempt whose success carries a
// value of type V.
//
// The zero value is a successful outcome without a value. All other states
// are built by the factory functions in this package.
//
// A Result is immutable: accessor methods copy slices on the way out and
// factories copy them on the way in, so instances can be shared between
// goroutines freely.
type Result[V any] struct {
	status status.Status

	value    V
	hasValue bool

	successMessage string
	location       string

	errors           []string
	validationErrors []ValidationError
	correlationID    string
}

// Unit is the empty payload of a void outcome.
type Unit struct{}

// Void is the outcome of an operation whose success carries no value.
type Void = Result[Unit]

// Ensure every Result implements the payload-agnostic view.
var _ apis.Outcome = Result[int]{}

// Status returns the classification of the outcome.
func (r Result[V]) Status() status.Status { return r.status }

// IsOk reports whether the status is Ok.
func (r Result[V]) IsOk() bool { return r.status == status.Ok }

// IsSuccess reports whether the operation completed (Ok or NoContent).
func (r Result[V]) IsSuccess() bool { return r.status.IsSuccess() }

// IsFailure reports whether the operation failed.
func (r Result[V]) IsFailure() bool { return r.status.IsFailure() }

// IsCreated reports whether the outcome is an Ok that points at a newly
// created resource. Creation is not a separate status: it is recognized
// by the presence of a location.
func (r Result[V]) IsCreated() bool { return r.status == status.Ok && r.location != "" }

// HasValue reports whether a success value is attached.
func (r Result[V]) HasValue() bool { return r.hasValue }

// Value returns the success value.
//
// Calling Value on an outcome that is not Ok, or on an Ok outcome built
// without a value, is a programming error: it panics with a *MisuseError.
// Use TryValue or ValueOr when the status has not been checked.
func (r Result[V]) Value() V {
	if !r.hasValue {
		panic(&MisuseError{Op: "Value", Status: r.status})
	}
	return r.value
}

// TryValue returns the success value and true, or the zero value and false.
func (r Result[V]) TryValue() (V, bool) {
	return r.value, r.hasValue
}

// ValueOr returns the success value, or def when there is none.
func (r Result[V]) ValueOr(def V) V {
	if !r.hasValue {
		return def
	}
	return r.value
}

// ValueAny implements apis.Outcome.
func (r Result[V]) ValueAny() (any, bool) {
	if !r.hasValue {
		return nil, false
	}
	return r.value, true
}

// SuccessMessage returns the optional message of an Ok outcome.
func (r Result[V]) SuccessMessage() string { return r.successMessage }

// Location returns the locator of a created resource, if any.
func (r Result[V]) Location() string { return r.location }

// Errors returns a copy of the diagnostic messages. It is empty for Ok,
// NoContent and Invalid outcomes.
func (r Result[V]) Errors() []string { return slices.Clone(r.errors) }

// ValidationErrors returns a copy of the validation records. It is empty
// unless the status is Invalid.
func (r Result[V]) ValidationErrors() []ValidationError {
	return slices.Clone(r.validationErrors)
}

// CorrelationID returns the correlation id. It is empty unless the status
// is Error.
func (r Result[V]) CorrelationID() string { return r.correlationID }

// Equal reports whether r and other agree on every observable field.
// Values are compared with reflect.DeepEqual.
func (r Result[V]) Equal(other Result[V]) bool {
	return r.status == other.status &&
		r.hasValue == other.hasValue &&
		r.successMessage == other.successMessage &&
		r.location == other.location &&
		r.correlationID == other.correlationID &&
		slices.Equal(r.errors, other.errors) &&
		slices.Equal(r.validationErrors, other.validationErrors) &&
		(!r.hasValue || reflect.DeepEqual(r.value, other.value))
}

// String renders a short description, e.g. "ok", "ok(created: /users/7)"
// or "not_found: user 7 not found".
func (r Result[V]) String() string {
	var b strings.Builder
	b.WriteString(r.status.String())
	switch {
	case r.location != "":
		b.WriteString("(created: ")
		b.WriteString(r.location)
		b.WriteByte(')')
	case r.successMessage != "":
		b.WriteString(": ")
		b.WriteString(r.successMessage)
	}
	if msgs := r.messages(); len(msgs) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(msgs, "; "))
	}
	return b.String()
}

// messages flattens errors and validation errors into display lines.
func (r Result[V]) messages() []string {
	if len(r.validationErrors) == 0 {
		return r.errors
	}
	out := make([]string, 0, len(r.validationErrors))
	for _, ve := range r.validationErrors {
		if ve.Identifier == "" {
			out = append(out, ve.ErrorMessage)
			continue
		}
		out = append(out, ve.Identifier+": "+ve.ErrorMessage)
	}
	return out
}
