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

package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/mapper"
	"dirpx.dev/dresult/status"
)

type user struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func write(t *testing.T, w Writer, o apis.Outcome) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	w.Write(rec, o)
	return rec
}

func TestWrite_SuccessValue(t *testing.T) {
	rec := write(t, Writer{}, dresult.SuccessValue(user{ID: "u1", Name: "Ada"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentTypeJSON, rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"u1","name":"Ada"}`, rec.Body.String())
}

func TestWrite_ProtoValue(t *testing.T) {
	rec := write(t, Writer{}, dresult.SuccessValue(wrapperspb.String("hello")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"hello"`, rec.Body.String())
}

func TestWrite_Created(t *testing.T) {
	rec := write(t, Writer{}, dresult.CreatedAt(user{ID: "u1"}, "/users/u1"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/users/u1", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":"u1","name":""}`, rec.Body.String())
}

func TestWrite_VoidSuccess(t *testing.T) {
	rec := write(t, Writer{}, dresult.Success())
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = write(t, Writer{}, dresult.SuccessWithMessage("saved"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","successMessage":"saved"}`, rec.Body.String())
}

func TestWrite_NoContent(t *testing.T) {
	rec := write(t, Writer{}, dresult.NoContent())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestWrite_Failures(t *testing.T) {
	tests := []struct {
		name string
		in   apis.Outcome
		code int
		body string
	}{
		{
			name: "not found",
			in:   dresult.NotFound("user u1 not found"),
			code: http.StatusNotFound,
			body: `{"status":"not_found","title":"Not Found","httpStatus":404,"errors":["user u1 not found"]}`,
		},
		{
			name: "error with correlation id",
			in:   dresult.Error(dresult.NewErrorList("cid-1", "db timeout")),
			code: http.StatusUnprocessableEntity,
			body: `{"status":"error","title":"Error","httpStatus":422,"errors":["db timeout"],"correlationId":"cid-1"}`,
		},
		{
			name: "invalid",
			in: dresult.Invalid(dresult.ValidationError{
				Identifier: "email", ErrorMessage: "is taken", ErrorCode: "user.email.taken",
			}),
			code: http.StatusBadRequest,
			body: `{"status":"invalid","title":"Invalid","httpStatus":400,"validationErrors":[
				{"identifier":"email","errorMessage":"is taken","errorCode":"user.email.taken","severity":"error"}]}`,
		},
		{
			name: "forbidden without messages",
			in:   dresult.Forbidden(),
			code: http.StatusForbidden,
			body: `{"status":"forbidden","title":"Forbidden","httpStatus":403}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := write(t, Writer{}, tt.in)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, ContentTypeProblem, rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestWrite_UsesMapper(t *testing.T) {
	m, err := mapper.New(
		mapper.WithHTTPDefault(status.Error, http.StatusInternalServerError),
		mapper.WithHTTPPrefix(status.Invalid, "user.email.taken", http.StatusConflict),
	)
	require.NoError(t, err)
	w := Writer{Mapper: m}

	assert.Equal(t, http.StatusInternalServerError, write(t, w, dresult.ErrorMessage("x")).Code)
	assert.Equal(t, http.StatusConflict, write(t, w, dresult.Invalid(dresult.ValidationError{
		ErrorMessage: "taken", ErrorCode: "user.email.taken",
	})).Code)
}

func TestWrite_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	w := Writer{Logger: &l}

	write(t, w, dresult.SuccessValue(1))
	assert.Zero(t, buf.Len(), "successes are not logged")

	write(t, w, dresult.CriticalError("panic"))
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"status":"critical_error"`)
}

func TestWrite_UnencodableValue(t *testing.T) {
	rec := write(t, Writer{}, dresult.CreatedAt(make(chan int), "/chans/1"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.JSONEq(t,
		`{"status":"critical_error","title":"Critical Error","httpStatus":500,"errors":["response could not be encoded"]}`,
		rec.Body.String())
}
