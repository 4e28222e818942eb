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

// Package status defines the closed set of terminal classifications an
// operation outcome can carry.
//
// A status answers "how did the operation end?": it succeeded (Ok), it
// succeeded with nothing to return (NoContent), or it failed for one of a
// small number of well-known reasons (Invalid, NotFound, Conflict, ...).
// Statuses are meant to be:
//
//   - closed: there is no way to register additional values;
//   - stable: the canonical text form is lowercase and underscore-separated,
//     suitable for JSON payloads, config files and log fields;
//   - transport-agnostic: mapping a status to HTTP or gRPC is the job of
//     dirpx.dev/dresult/mapper, not of this package.
//
// The zero value is Ok, so a zero outcome is a successful one.
package status
