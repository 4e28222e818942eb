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
	"errors"
	"strings"

	"dirpx.dev/dresult/status"
)

// Failure is the error form of a failed outcome.
//
// It lets an outcome cross APIs that speak plain Go errors (middleware,
// interceptors, errgroup) and be recovered intact on the other side with
// AsFailure or FromErr.
type Failure struct {
	outcome Void
}

// Err returns nil for successful outcomes (Ok, NoContent) and a *Failure
// wrapping the outcome otherwise. Any value is dropped; failures never
// carry one.
func (r Result[V]) Err() error {
	if r.status.IsSuccess() {
		return nil
	}
	return &Failure{outcome: r.ToVoid()}
}

// Outcome returns the failed outcome carried by the error.
func (f *Failure) Outcome() Void { return f.outcome }

// Status returns the status of the carried outcome.
func (f *Failure) Status() status.Status { return f.outcome.status }

// Error implements the built-in error interface.
//
// The format is:
//
//	<status>: <message>; <message>
//
// where validation errors render as "<identifier>: <message>", followed by
// " [correlation_id=<id>]" when a correlation id is present.
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(f.outcome.status.String())
	if msgs := f.outcome.messages(); len(msgs) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(msgs, "; "))
	}
	if id := f.outcome.correlationID; id != "" {
		b.WriteString(" [correlation_id=")
		b.WriteString(id)
		b.WriteByte(']')
	}
	return b.String()
}

// Is reports whether target is a *Failure with the same status, so that
// errors.Is(err, dresult.NotFound().Err()) tests the category of err.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	return ok && t != nil && f != nil && t.outcome.status == f.outcome.status
}

// AsFailure finds the first *Failure in err's chain. A nil *Failure does
// not count.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) && f != nil {
		return f, true
	}
	return nil, false
}
