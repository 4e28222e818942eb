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

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
)

func TestToView_Invalid(t *testing.T) {
	o := dresult.Invalid(
		dresult.ValidationError{Identifier: "email", ErrorMessage: "is taken", ErrorCode: "user.email.taken"},
		dresult.ValidationError{Identifier: "age", ErrorMessage: "looks odd", Severity: apis.SeverityWarning},
	)
	v := ToView(o, apis.Resolution{HTTP: 400, GRPC: codes.InvalidArgument})

	assert.Equal(t, "invalid", v.Status)
	assert.Equal(t, "Invalid", v.Title)
	assert.Equal(t, 400, v.HTTPStatus)
	assert.Equal(t, int(codes.InvalidArgument), v.GRPCCode)
	assert.Empty(t, v.Errors)
	require.Len(t, v.ValidationErrors, 2)
	assert.Equal(t, apis.ViewField{
		Identifier: "email", ErrorMessage: "is taken", ErrorCode: "user.email.taken", Severity: "error",
	}, v.ValidationErrors[0])
	assert.Equal(t, "warning", v.ValidationErrors[1].Severity)
}

func TestToView_SuccessAndError(t *testing.T) {
	created := ToView(dresult.CreatedAt("u1", "/users/u1"), apis.Resolution{HTTP: 201})
	assert.Equal(t, "ok", created.Status)
	assert.Equal(t, "/users/u1", created.Location)
	assert.Nil(t, created.ValidationErrors)

	e := ToView(dresult.Error(dresult.NewErrorList("cid-1", "a", "b")), apis.Resolution{HTTP: 422, GRPC: codes.Unknown})
	assert.Equal(t, []string{"a", "b"}, e.Errors)
	assert.Equal(t, "cid-1", e.CorrelationID)
	assert.Equal(t, "Error", e.Title)

	assert.Equal(t, apis.View{}, ToView(nil, apis.Resolution{}))
}

func TestTitle(t *testing.T) {
	for _, s := range status.All() {
		assert.NotEmpty(t, Title(s), "status %q", s)
	}
	assert.Equal(t, "Not Found", Title(status.NotFound))
	assert.Equal(t, "status(99)", Title(status.Status(99)))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, []string{"gone"}, Messages(dresult.NotFound("gone")))
	assert.Equal(t,
		[]string{"email: is taken", "bad payload"},
		Messages(dresult.Invalid(
			dresult.ValidationError{Identifier: "email", ErrorMessage: "is taken"},
			dresult.ValidationError{ErrorMessage: "bad payload"},
		)),
	)
	assert.Empty(t, Messages(dresult.Success()))
	assert.Nil(t, Messages(nil))
}
