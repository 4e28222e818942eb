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

// Package dresult provides an outcome container: a value that says whether
// an operation succeeded, with what, or why it failed.
//
// An outcome carries exactly one status (see dirpx.dev/dresult/status)
// fixed at construction, together with only the data that status allows:
//
//   - Ok: an optional value, success message and (for created resources)
//     location; never errors;
//   - Invalid: one or more validation errors and nothing else;
//   - Error, NotFound, Forbidden, Unauthorized, Conflict, Unavailable,
//     CriticalError: optional plain error messages; Error alone may also
//     carry a correlation id;
//   - NoContent: nothing at all.
//
// These combinations are enforced by the factory functions; there is no way
// to mutate an outcome after it is built. Expected failures travel in the
// outcome itself instead of panics or ad-hoc error types. Panics, always
// with a *MisuseError, are reserved for caller bugs: reading a value that is
// not there, calling Invalid without records, and converting an Ok result
// that holds a value.
//
// # Valued and void outcomes
//
// Result[V] carries a success payload of type V. Void (= Result[Unit]) is
// the form used by operations whose success has no payload. Failure
// factories return Void; use Convert to give them the payload type of the
// surrounding function, and Promote to attach a value to a void success:
//
//	func (s *Service) Find(id string) dresult.Result[User] {
//		u, ok := s.users[id]
//		if !ok {
//			return dresult.Convert[User](dresult.NotFound("user " + id + " not found"))
//		}
//		return dresult.SuccessValue(u)
//	}
//
// # Factory names
//
// Go has no overloading, so every (status, argument shape) pair has its
// own function:
//
//	Success()                    -> Success()
//	SuccessWithMessage(msg)      -> SuccessWithMessage(msg)
//	Success(value)               -> SuccessValue(value)
//	Success(value, msg)          -> SuccessValueWithMessage(value, msg)
//	Created(value)               -> Created(value)
//	Created(value, location)     -> CreatedAt(value, location)
//	Error(errorList = none)      -> Error(*ErrorList), nil allowed
//	Error(message)               -> ErrorMessage(message)
//	Invalid(one | many | list)   -> Invalid(errs...)
//	NotFound(), NotFound(msgs)   -> NotFound(msgs...)
//	Forbidden / Unauthorized / Conflict / Unavailable / CriticalError
//	                             -> same name, variadic messages
//	NoContent()                  -> NoContent()
//
// Variadic factories accept both call styles, NotFound("a", "b") and
// NotFound(msgs...), and store the same thing for both.
package dresult
