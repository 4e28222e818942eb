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

// View is a flat, serializable snapshot of an outcome together with its
// resolved transport codes.
//
// This is the shape adapters expose over the wire or in logs. It performs
// no redaction: whatever the outcome holds is copied as-is.
type View struct {
	// Status is the canonical status text, e.g. "not_found".
	Status string `json:"status"`

	// Title is a short human-readable summary of the status.
	Title string `json:"title,omitempty"`

	// HTTPStatus and GRPCCode are the resolved transport projections.
	HTTPStatus int `json:"httpStatus,omitempty"`
	GRPCCode   int `json:"grpcCode,omitempty"`

	// SuccessMessage and Location are only populated for Ok outcomes.
	SuccessMessage string `json:"successMessage,omitempty"`
	Location       string `json:"location,omitempty"`

	// Errors holds the plain diagnostic messages of a failure.
	Errors []string `json:"errors,omitempty"`

	// ValidationErrors holds the records of an Invalid outcome.
	ValidationErrors []ViewField `json:"validationErrors,omitempty"`

	// CorrelationID is only populated for Error outcomes.
	CorrelationID string `json:"correlationId,omitempty"`
}

// ViewField is the string-only projection of a ValidationError.
type ViewField struct {
	Identifier   string `json:"identifier,omitempty"`
	ErrorMessage string `json:"errorMessage"`
	ErrorCode    string `json:"errorCode,omitempty"`
	Severity     string `json:"severity"`
}
