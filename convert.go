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

import "dirpx.dev/dresult/status"

// Promote attaches value to a void outcome.
//
// A void Ok becomes a valued Ok that keeps its success message and
// location. Any other outcome is carried over unchanged and value is
// discarded, since failures and NoContent never hold a payload.
func Promote[V any](v Void, value V) Result[V] {
	out := Convert[V](v)
	if v.status == status.Ok {
		out.value = value
		out.hasValue = true
	}
	return out
}

// Convert re-types an outcome, typically to return a failure from a
// function with a different payload type:
//
//	if r := s.check(id); r.IsFailure() {
//		return dresult.Convert[Order](r)
//	}
//
// Status, messages, location, errors, validation errors and correlation id
// are copied. Converting an Ok outcome that holds a value would silently
// drop that value; it panics with a *MisuseError instead. Use Map for
// successful outcomes.
func Convert[U, V any](r Result[V]) Result[U] {
	if r.hasValue {
		panic(&MisuseError{Op: "Convert", Status: r.status})
	}
	return Result[U]{
		status:           r.status,
		successMessage:   r.successMessage,
		location:         r.location,
		errors:           r.errors,
		validationErrors: r.validationErrors,
		correlationID:    r.correlationID,
	}
}

// ToVoid drops the value of r and keeps everything else.
func (r Result[V]) ToVoid() Void {
	return Void{
		status:           r.status,
		successMessage:   r.successMessage,
		location:         r.location,
		errors:           r.errors,
		validationErrors: r.validationErrors,
		correlationID:    r.correlationID,
	}
}

// Map applies fn to the value of a valued Ok outcome, keeping its success
// message and location. Other outcomes are converted unchanged.
func Map[V, U any](r Result[V], fn func(V) U) Result[U] {
	if !r.hasValue {
		return Convert[U](r)
	}
	out := Convert[U](r.ToVoid())
	out.value = fn(r.value)
	out.hasValue = true
	return out
}

// Bind chains an operation that itself returns an outcome. It calls fn
// with the value of a valued Ok outcome and returns its result; other
// outcomes are converted unchanged.
func Bind[V, U any](r Result[V], fn func(V) Result[U]) Result[U] {
	if !r.hasValue {
		return Convert[U](r)
	}
	return fn(r.value)
}
