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
	"slices"

	"dirpx.dev/dresult/status"
)

// Success represents a successful operation without a return value.
func Success() Void { return Void{} }

// SuccessWithMessage represents a successful operation without a return
// value and records a human-readable success message.
func SuccessWithMessage(message string) Void {
	return Void{successMessage: message}
}

// SuccessValue represents a successful operation that produced value.
func SuccessValue[V any](value V) Result[V] {
	return Result[V]{value: value, hasValue: true}
}

// SuccessValueWithMessage represents a successful operation that produced
// value, and records a success message.
func SuccessValueWithMessage[V any](value V, message string) Result[V] {
	return Result[V]{value: value, hasValue: true, successMessage: message}
}

// Created represents a successful operation that created a new resource.
//
// The stored state is the same as SuccessValue: creation is signalled by
// the caller's choice of factory and, when known, by a location (see
// CreatedAt). There is no separate status for it.
func Created[V any](value V) Result[V] {
	return Result[V]{value: value, hasValue: true}
}

// CreatedAt represents a successful operation that created a new resource
// reachable at location.
func CreatedAt[V any](value V, location string) Result[V] {
	return Result[V]{value: value, hasValue: true, location: location}
}

// Error represents a failure during the execution of the operation.
//
// The bundle is optional: a nil list yields an Error outcome with no
// messages and no correlation id.
func Error(list *ErrorList) Void {
	if list == nil {
		return Void{status: status.Error}
	}
	return Void{
		status:        status.Error,
		errors:        cloneMessages(list.ErrorMessages),
		correlationID: list.CorrelationID,
	}
}

// ErrorMessage represents a failure during the execution of the operation
// described by a single message.
func ErrorMessage(message string) Void {
	return Void{status: status.Error, errors: []string{message}}
}

// Invalid represents validation errors that prevent the operation from
// completing. Records are kept in the given order.
//
// At least one record is required: calling Invalid without any is a
// programming error and panics with a *MisuseError.
func Invalid(validationErrors ...ValidationError) Void {
	if len(validationErrors) == 0 {
		panic(&MisuseError{Op: "Invalid", Status: status.Invalid})
	}
	return Void{status: status.Invalid, validationErrors: slices.Clone(validationErrors)}
}

// NotFound represents the situation where a requested resource could not
// be found. Messages are optional.
func NotFound(messages ...string) Void { return failure(status.NotFound, messages) }

// Forbidden represents a call whose parameters were correct but whose
// caller lacks permission to perform the action (HTTP 403 in spirit).
func Forbidden(messages ...string) Void { return failure(status.Forbidden, messages) }

// Unauthorized is similar to Forbidden, but for callers that have not
// authenticated or whose authentication failed (HTTP 401 in spirit).
func Unauthorized(messages ...string) Void { return failure(status.Unauthorized, messages) }

// Conflict represents an operation that conflicts with the current state
// of a resource, such as an edit conflict between concurrent updates.
func Conflict(messages ...string) Void { return failure(status.Conflict, messages) }

// Unavailable represents a service that is unavailable, e.g. because its
// data store cannot be reached. Errors may be transient; the caller may
// wish to retry.
func Unavailable(messages ...string) Void { return failure(status.Unavailable, messages) }

// CriticalError represents an unexpected internal failure: everything the
// caller provided was valid, but the operation could not complete.
func CriticalError(messages ...string) Void { return failure(status.CriticalError, messages) }

// NoContent represents a successful operation with nothing to send back.
func NoContent() Void { return Void{status: status.NoContent} }

func failure(st status.Status, messages []string) Void {
	return Void{status: st, errors: cloneMessages(messages)}
}

// cloneMessages copies messages so the outcome never aliases a caller
// slice. Empty input becomes nil, so NotFound() and NotFound([]string{}...)
// compare equal.
func cloneMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	return slices.Clone(messages)
}
