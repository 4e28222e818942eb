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
	"fmt"

	"dirpx.dev/dresult/status"
)

// ErrNoValue is matched (via errors.Is) by the *MisuseError raised when a
// success value is read from an outcome that has none.
var ErrNoValue = errors.New("dresult: outcome has no value")

// MisuseError reports a programming error in the code using an outcome,
// such as reading the value of a failure. It is raised with panic: it is
// a bug to fix, not a condition to handle. It is unrelated to the Error
// status.
type MisuseError struct {
	// Op is the operation that was misused, e.g. "Value".
	Op string
	// Status is the status of the outcome involved.
	Status status.Status
}

// Error implements the error interface.
func (e *MisuseError) Error() string {
	switch e.Op {
	case "Invalid":
		return "dresult: Invalid requires at least one validation error"
	case "Convert":
		return "dresult: Convert would drop the value of an ok outcome"
	}
	return fmt.Sprintf("dresult: %s called on %s outcome without a value", e.Op, e.Status)
}

// Is makes value reads match ErrNoValue.
func (e *MisuseError) Is(target error) bool {
	return target == ErrNoValue && e.Op == "Value"
}
