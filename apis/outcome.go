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

import "dirpx.dev/dresult/status"

// Outcome is the read-only, payload-agnostic view of an operation outcome.
//
// Every dresult.Result[V] implements it. Downstream adapters accept Outcome
// so that they can serve results of any payload type.
//
// Implementations MUST return slices the caller may keep and modify
// without affecting the outcome.
type Outcome interface {
	// Status returns the classification of the outcome.
	Status() status.Status

	// SuccessMessage returns the optional message of an Ok outcome.
	SuccessMessage() string

	// Location returns the locator of a created resource, if any.
	Location() string

	// Errors returns the plain diagnostic messages of a failure.
	Errors() []string

	// ValidationErrors returns the validation records of an Invalid outcome.
	ValidationErrors() []ValidationError

	// CorrelationID returns the correlation id of an Error outcome.
	CorrelationID() string

	// ValueAny returns the success payload as an untyped value, and false
	// when the outcome carries none.
	ValueAny() (any, bool)
}
