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

// Package adapter converts outcomes into transport-neutral projections
// shared by the HTTP, gin and gRPC layers.
package adapter

import (
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
)

var titles = [...]string{
	status.Ok:            "OK",
	status.Error:         "Error",
	status.Invalid:       "Invalid",
	status.NotFound:      "Not Found",
	status.Forbidden:     "Forbidden",
	status.Unauthorized:  "Unauthorized",
	status.Conflict:      "Conflict",
	status.Unavailable:   "Unavailable",
	status.CriticalError: "Critical Error",
	status.NoContent:     "No Content",
}

// Title returns a short human-readable summary of s, e.g. "Not Found".
func Title(s status.Status) string {
	if int(s) < len(titles) {
		return titles[s]
	}
	return s.String()
}

// ToView converts an outcome together with its resolved transport codes
// into a public View. No redaction is performed: the view exposes exactly
// what the outcome contains.
func ToView(o apis.Outcome, res apis.Resolution) apis.View {
	if o == nil {
		return apis.View{}
	}
	s := o.Status()
	v := apis.View{
		Status:         s.String(),
		Title:          Title(s),
		HTTPStatus:     res.HTTP,
		GRPCCode:       int(res.GRPC),
		SuccessMessage: o.SuccessMessage(),
		Location:       o.Location(),
		Errors:         o.Errors(),
		CorrelationID:  o.CorrelationID(),
	}
	if ves := o.ValidationErrors(); len(ves) > 0 {
		v.ValidationErrors = make([]apis.ViewField, len(ves))
		for i, ve := range ves {
			v.ValidationErrors[i] = apis.ViewField{
				Identifier:   ve.Identifier,
				ErrorMessage: ve.ErrorMessage,
				ErrorCode:    ve.ErrorCode.String(),
				Severity:     ve.Severity.String(),
			}
		}
	}
	return v
}

// Messages flattens the diagnostics of an outcome into display lines.
// Validation errors render as "<identifier>: <message>", or just the
// message when the identifier is empty.
func Messages(o apis.Outcome) []string {
	if o == nil {
		return nil
	}
	ves := o.ValidationErrors()
	if len(ves) == 0 {
		return o.Errors()
	}
	out := make([]string, 0, len(ves))
	for _, ve := range ves {
		if ve.Identifier == "" {
			out = append(out, ve.ErrorMessage)
			continue
		}
		out = append(out, ve.Identifier+": "+ve.ErrorMessage)
	}
	return out
}
