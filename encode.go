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
	"encoding/json"
	"log/slog"

	"dirpx.dev/dresult/status"
)

// resultJSON is the wire shape of an outcome.
type resultJSON struct {
	Status           status.Status     `json:"status"`
	Value            any               `json:"value,omitempty"`
	SuccessMessage   string            `json:"successMessage,omitempty"`
	Location         string            `json:"location,omitempty"`
	Errors           []string          `json:"errors,omitempty"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
	CorrelationID    string            `json:"correlationId,omitempty"`
}

// MarshalJSON implements json.Marshaler. Only the fields the status allows
// are emitted; the value appears only when one is attached.
func (r Result[V]) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		Status:           r.status,
		SuccessMessage:   r.successMessage,
		Location:         r.location,
		Errors:           r.errors,
		ValidationErrors: r.validationErrors,
		CorrelationID:    r.correlationID,
	}
	if r.hasValue {
		out.Value = r.value
	}
	return json.Marshal(out)
}

// LogValue implements slog.LogValuer. The value itself is never logged;
// only its presence is.
func (r Result[V]) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs, slog.String("status", r.status.String()))
	if r.hasValue {
		attrs = append(attrs, slog.Bool("has_value", true))
	}
	if r.location != "" {
		attrs = append(attrs, slog.String("location", r.location))
	}
	if len(r.errors) > 0 {
		attrs = append(attrs, slog.Any("errors", r.errors))
	}
	if n := len(r.validationErrors); n > 0 {
		attrs = append(attrs, slog.Int("validation_errors", n))
	}
	if r.correlationID != "" {
		attrs = append(attrs, slog.String("correlation_id", r.correlationID))
	}
	return slog.GroupValue(attrs...)
}
