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

// Package logx renders outcomes as structured zerolog events.
package logx

import (
	"github.com/rs/zerolog"

	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
)

// Field is the key under which Log nests the outcome object.
const Field = "result"

type object struct{ o apis.Outcome }

// Object wraps o so it can be attached to any zerolog event:
//
//	log.Info().Object("result", logx.Object(r)).Msg("handled")
//
// The success value is never logged, only whether one is present.
func Object(o apis.Outcome) zerolog.LogObjectMarshaler { return object{o} }

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (x object) MarshalZerologObject(e *zerolog.Event) {
	if x.o == nil {
		return
	}
	e.Str("status", x.o.Status().String())
	if _, ok := x.o.ValueAny(); ok {
		e.Bool("has_value", true)
	}
	if m := x.o.SuccessMessage(); m != "" {
		e.Str("success_message", m)
	}
	if l := x.o.Location(); l != "" {
		e.Str("location", l)
	}
	if errs := x.o.Errors(); len(errs) > 0 {
		e.Strs("errors", errs)
	}
	if ves := x.o.ValidationErrors(); len(ves) > 0 {
		e.Array("validation_errors", fields(ves))
	}
	if id := x.o.CorrelationID(); id != "" {
		e.Str("correlation_id", id)
	}
}

type fields []apis.ValidationError

func (fs fields) MarshalZerologArray(a *zerolog.Array) {
	for _, f := range fs {
		d := zerolog.Dict().Str("message", f.ErrorMessage).Str("severity", f.Severity.String())
		if f.Identifier != "" {
			d.Str("identifier", f.Identifier)
		}
		if f.ErrorCode != "" {
			d.Str("code", f.ErrorCode.String())
		}
		a.Dict(d)
	}
}

// Level picks the log level for an outcome of status s: debug for
// successes, warn for failures caused by the caller, error for failures
// on the serving side.
func Level(s status.Status) zerolog.Level {
	switch s {
	case status.Ok, status.NoContent:
		return zerolog.DebugLevel
	case status.Invalid, status.NotFound, status.Forbidden, status.Unauthorized, status.Conflict:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Log writes o to l at the level chosen by Level. A nil logger is a no-op.
func Log(l *zerolog.Logger, o apis.Outcome, msg string) {
	if l == nil || o == nil {
		return
	}
	l.WithLevel(Level(o.Status())).Object(Field, Object(o)).Msg(msg)
}
