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

package mapper

import (
	"net/http"

	"dirpx.dev/dresult/status"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mapping for every status.
// Callers adjust it at the boundary where HTTP is actually produced.
var defaultHTTP = map[status.Status]int{
	status.Ok:        http.StatusOK,
	status.NoContent: http.StatusNoContent,

	// Error is an expected failure with diagnostics; the request was
	// understood but could not be processed.
	status.Error:         http.StatusUnprocessableEntity,
	status.Invalid:       http.StatusBadRequest,
	status.NotFound:      http.StatusNotFound,
	status.Forbidden:     http.StatusForbidden,
	status.Unauthorized:  http.StatusUnauthorized,
	status.Conflict:      http.StatusConflict,
	status.Unavailable:   http.StatusServiceUnavailable,
	status.CriticalError: http.StatusInternalServerError,
}

// defaultGRPC defines the library's built-in gRPC mapping for every status.
var defaultGRPC = map[status.Status]codes.Code{
	status.Ok:        codes.OK,
	status.NoContent: codes.OK,

	status.Error:         codes.Unknown,
	status.Invalid:       codes.InvalidArgument,
	status.NotFound:      codes.NotFound,
	status.Forbidden:     codes.PermissionDenied,
	status.Unauthorized:  codes.Unauthenticated,
	status.Conflict:      codes.Aborted, // optimistic concurrency and state clashes
	status.Unavailable:   codes.Unavailable,
	status.CriticalError: codes.Internal,
}
