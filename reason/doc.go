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

// Package reason defines the optional machine-readable code carried by a
// validation error, and used by the mapper to refine a status.
//
// Where a status answers "how did the operation end?" (invalid, not_found,
// ...), a reason answers "which rule was violated?", e.g.:
//
//   - "validation_required"
//   - "user.email.format"
//   - "order.items.too_many"
//
// Reasons are dot-separated hierarchical identifiers. The zero value ("")
// is allowed and means that the producer did not supply a code.
package reason
