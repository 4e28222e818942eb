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

// Package httpx writes outcomes as HTTP responses.
//
// Successful outcomes carry their value as the JSON body. Failures are
// written as a problem document:
//
//	{
//	  "status": "invalid",
//	  "title": "Invalid",
//	  "httpStatus": 400,
//	  "validationErrors": [
//	    {"identifier": "email", "errorMessage": "is taken", "severity": "error"}
//	  ]
//	}
//
// Problem documents are built as google.protobuf.Struct values and encoded
// with protojson, the same encoding the gRPC gateway uses for details.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/logx"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/status"
)

const (
	// ContentTypeJSON is used for success bodies.
	ContentTypeJSON = "application/json"
	// ContentTypeProblem is used for failure bodies.
	ContentTypeProblem = "application/problem+json"
)

var marshal = protojson.MarshalOptions{EmitUnpopulated: false}

// Writer turns outcomes into HTTP responses using the provided mapper.
//
// The zero value is usable: it resolves codes with mapper.Default() and
// does not log. Writer is safe for concurrent use.
type Writer struct {
	// Mapper resolves HTTP status codes. Nil means mapper.Default().
	Mapper apis.Mapper
	// Logger, when set, receives one event per failed outcome.
	Logger *zerolog.Logger
}

// Write writes o to rw.
//
//   - NoContent writes the status line only.
//   - Ok with a value writes the value as JSON; proto messages are encoded
//     with protojson. Created outcomes also set the Location header.
//   - Ok without a value writes {"status":"ok","successMessage":...} when a
//     message is set, and no body otherwise.
//   - Failures write a problem document.
//
// No redaction is performed: whatever the outcome holds is exposed.
func (w Writer) Write(rw http.ResponseWriter, o apis.Outcome) {
	if o == nil {
		return
	}
	res := w.mapper().ResolveOutcome(o)

	switch s := o.Status(); {
	case s == status.NoContent:
		rw.WriteHeader(res.HTTP)
	case s.IsSuccess():
		w.writeSuccess(rw, o, res.HTTP)
	default:
		logx.Log(w.Logger, o, "request failed")
		w.writeProblem(rw, adapter.ToView(o, res))
	}
}

func (w Writer) writeSuccess(rw http.ResponseWriter, o apis.Outcome, code int) {
	body, err := successBody(o)
	if err != nil {
		if w.Logger != nil {
			w.Logger.Error().Err(err).Msg("encode response value")
		}
		res := w.mapper().Resolve(status.CriticalError, "")
		w.writeProblem(rw, apis.View{
			Status:     status.CriticalError.String(),
			Title:      adapter.Title(status.CriticalError),
			HTTPStatus: res.HTTP,
			GRPCCode:   int(res.GRPC),
			Errors:     []string{"response could not be encoded"},
		})
		return
	}
	if loc := o.Location(); loc != "" {
		rw.Header().Set("Location", loc)
	}
	if body == nil {
		rw.WriteHeader(code)
		return
	}
	rw.Header().Set("Content-Type", ContentTypeJSON)
	rw.WriteHeader(code)
	_, _ = rw.Write(body)
}

// successBody encodes the value of an Ok outcome, or its success message
// when it has no value. It returns nil when there is nothing to send.
func successBody(o apis.Outcome) ([]byte, error) {
	if v, ok := o.ValueAny(); ok {
		if m, ok := v.(proto.Message); ok {
			return marshal.Marshal(m)
		}
		return json.Marshal(v)
	}
	if msg := o.SuccessMessage(); msg != "" {
		return marshal.Marshal(&structpb.Struct{Fields: map[string]*structpb.Value{
			"status":         structpb.NewStringValue(o.Status().String()),
			"successMessage": structpb.NewStringValue(msg),
		}})
	}
	return nil, nil
}

func (w Writer) writeProblem(rw http.ResponseWriter, v apis.View) {
	rw.Header().Set("Content-Type", ContentTypeProblem)
	rw.WriteHeader(v.HTTPStatus)
	b, err := marshal.Marshal(Problem(v))
	if err != nil {
		return
	}
	_, _ = rw.Write(b)
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper == nil {
		return mapper.Default()
	}
	return w.Mapper
}

// Problem renders a view as the problem document written for failures.
func Problem(v apis.View) *structpb.Struct {
	f := map[string]*structpb.Value{
		"status": structpb.NewStringValue(v.Status),
	}
	if v.Title != "" {
		f["title"] = structpb.NewStringValue(v.Title)
	}
	if v.HTTPStatus != 0 {
		f["httpStatus"] = structpb.NewNumberValue(float64(v.HTTPStatus))
	}
	if len(v.Errors) > 0 {
		f["errors"] = stringList(v.Errors)
	}
	if len(v.ValidationErrors) > 0 {
		list := make([]*structpb.Value, len(v.ValidationErrors))
		for i, ve := range v.ValidationErrors {
			vf := map[string]*structpb.Value{
				"errorMessage": structpb.NewStringValue(ve.ErrorMessage),
				"severity":     structpb.NewStringValue(ve.Severity),
			}
			if ve.Identifier != "" {
				vf["identifier"] = structpb.NewStringValue(ve.Identifier)
			}
			if ve.ErrorCode != "" {
				vf["errorCode"] = structpb.NewStringValue(ve.ErrorCode)
			}
			list[i] = structpb.NewStructValue(&structpb.Struct{Fields: vf})
		}
		f["validationErrors"] = structpb.NewListValue(&structpb.ListValue{Values: list})
	}
	if v.CorrelationID != "" {
		f["correlationId"] = structpb.NewStringValue(v.CorrelationID)
	}
	return &structpb.Struct{Fields: f}
}

func stringList(ss []string) *structpb.Value {
	vals := make([]*structpb.Value, len(ss))
	for i, s := range ss {
		vals[i] = structpb.NewStringValue(s)
	}
	return structpb.NewListValue(&structpb.ListValue{Values: vals})
}
