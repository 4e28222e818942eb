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

// Package apis defines the small, shared contracts of dresult.
//
// It holds the plain data records an outcome consumes (ValidationError,
// ErrorList), the read-only Outcome view that downstream adapters accept,
// and the Mapper contract that turns a status into transport codes.
//
// Adapters (HTTP, gin, gRPC, logging, telemetry) depend on this package
// rather than on the generic Result type, so they can accept outcomes of
// any payload type through one interface.
//
// This package must remain lightweight: interfaces, records and view types
// only.
package apis
