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
	"errors"
	"sync"
	"testing"

	"dirpx.dev/dresult/status"
)

func vErr(field, msg string) ValidationError {
	return ValidationError{Identifier: field, ErrorMessage: msg}
}

// nonOk returns one outcome per non-Ok status, built with its factory.
func nonOk() map[status.Status]Void {
	return map[status.Status]Void{
		status.Error:         ErrorMessage("boom"),
		status.Invalid:       Invalid(vErr("name", "is required")),
		status.NotFound:      NotFound("missing"),
		status.Forbidden:     Forbidden("nope"),
		status.Unauthorized:  Unauthorized("who are you"),
		status.Conflict:      Conflict("version mismatch"),
		status.Unavailable:   Unavailable("db down"),
		status.CriticalError: CriticalError("panic recovered"),
		status.NoContent:     NoContent(),
	}
}

func mustPanicMisuse(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic", op)
		}
		me, ok := r.(*MisuseError)
		if !ok {
			t.Fatalf("%s: panic value %T, want *MisuseError", op, r)
		}
		if me.Op != op {
			t.Fatalf("panic Op = %q, want %q", me.Op, op)
		}
	}()
	fn()
}

func TestZeroValue_IsOk(t *testing.T) {
	var r Result[string]
	if !r.IsOk() || r.HasValue() {
		t.Fatalf("zero Result must be Ok without value, got %v", r)
	}
	if !r.Equal(Convert[string](Success())) {
		t.Fatalf("zero Result must equal Success()")
	}
}

func TestSuccess_Variants(t *testing.T) {
	r := SuccessValue(42)
	if r.Status() != status.Ok || r.Value() != 42 || r.SuccessMessage() != "" {
		t.Fatalf("SuccessValue(42) = %v", r)
	}

	m := SuccessWithMessage("done")
	if !m.IsOk() || m.SuccessMessage() != "done" || m.HasValue() {
		t.Fatalf("SuccessWithMessage = %v", m)
	}

	vm := SuccessValueWithMessage("x", "saved")
	if vm.Value() != "x" || vm.SuccessMessage() != "saved" {
		t.Fatalf("SuccessValueWithMessage = %v", vm)
	}

	for _, s := range []Result[string]{SuccessValue("a"), vm} {
		if len(s.Errors()) != 0 || len(s.ValidationErrors()) != 0 || s.CorrelationID() != "" {
			t.Fatalf("Ok outcome must not carry errors: %v", s)
		}
	}
}

func TestCreated(t *testing.T) {
	c := Created("u1")
	if !c.IsOk() || c.Value() != "u1" || c.Location() != "" || c.IsCreated() {
		t.Fatalf("Created = %v", c)
	}
	if !c.Equal(SuccessValue("u1")) {
		t.Fatalf("Created without location stores the same state as SuccessValue")
	}

	at := CreatedAt("u1", "/users/u1")
	if at.Status() != status.Ok || at.Location() != "/users/u1" || !at.IsCreated() {
		t.Fatalf("CreatedAt = %v", at)
	}
	if got := at.String(); got != "ok(created: /users/u1)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestError_Bundle(t *testing.T) {
	r := Error(NewErrorList("cid-1", "a", "b"))
	if r.Status() != status.Error {
		t.Fatalf("status = %v", r.Status())
	}
	if got := r.Errors(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("Errors() = %v", got)
	}
	if r.CorrelationID() != "cid-1" {
		t.Fatalf("CorrelationID() = %q", r.CorrelationID())
	}
}

func TestError_NilBundle(t *testing.T) {
	r := Error(nil)
	if r.Status() != status.Error || len(r.Errors()) != 0 || r.CorrelationID() != "" {
		t.Fatalf("Error(nil) = %v / %q", r, r.CorrelationID())
	}
	if !r.Equal(Error(&ErrorList{})) {
		t.Fatalf("Error(nil) must equal Error with an empty bundle")
	}
}

func TestErrorMessage(t *testing.T) {
	r := ErrorMessage("boom")
	if got := r.Errors(); len(got) != 1 || got[0] != "boom" {
		t.Fatalf("Errors() = %v", got)
	}
}

func TestInvalid_OrderPreserved(t *testing.T) {
	in := []ValidationError{vErr("a", "1"), vErr("b", "2"), vErr("c", "3")}
	r := Invalid(in...)
	got := r.ValidationErrors()
	if len(got) != len(in) {
		t.Fatalf("got %d validation errors, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("validation error %d = %+v, want %+v", i, got[i], in[i])
		}
	}
	if len(r.Errors()) != 0 {
		t.Fatalf("Invalid must not carry plain errors")
	}
	if !Invalid(vErr("a", "1")).Equal(Invalid([]ValidationError{vErr("a", "1")}...)) {
		t.Fatalf("single and sequence forms must be equal")
	}
}

func TestInvalid_RequiresRecords(t *testing.T) {
	mustPanicMisuse(t, "Invalid", func() { _ = Invalid() })
}

func TestMessageFactories_CallFormsEqual(t *testing.T) {
	type factory func(...string) Void
	for name, f := range map[string]factory{
		"NotFound":      NotFound,
		"Forbidden":     Forbidden,
		"Unauthorized":  Unauthorized,
		"Conflict":      Conflict,
		"Unavailable":   Unavailable,
		"CriticalError": CriticalError,
	} {
		t.Run(name, func(t *testing.T) {
			msgs := []string{"missing"}
			if !f("missing").Equal(f(msgs...)) {
				t.Fatalf("fixed-arg and sequence-arg forms differ")
			}
			if !f().Equal(f([]string{}...)) {
				t.Fatalf("empty forms differ")
			}
			if len(f().Errors()) != 0 {
				t.Fatalf("no-arg form must have empty errors")
			}
		})
	}
}

func TestStatusPerFactory(t *testing.T) {
	for want, r := range nonOk() {
		if r.Status() != want {
			t.Fatalf("factory for %v produced %v", want, r.Status())
		}
	}
}

func TestFailures_NeverExposeValue(t *testing.T) {
	for st, v := range nonOk() {
		r := Convert[int](v)
		if r.HasValue() {
			t.Fatalf("%v: HasValue() = true", st)
		}
		if _, ok := r.TryValue(); ok {
			t.Fatalf("%v: TryValue reported a value", st)
		}
		if _, ok := r.ValueAny(); ok {
			t.Fatalf("%v: ValueAny reported a value", st)
		}
		if got := r.ValueOr(7); got != 7 {
			t.Fatalf("%v: ValueOr = %d, want default", st, got)
		}
		mustPanicMisuse(t, "Value", func() { _ = r.Value() })
	}
}

func TestValue_MisuseMatchesErrNoValue(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrNoValue) {
			t.Fatalf("panic value must match ErrNoValue, got %v", err)
		}
	}()
	_ = Convert[string](NotFound()).Value()
}

func TestInvariants_ErrorsAndValidationExclusive(t *testing.T) {
	for st, r := range nonOk() {
		if len(r.Errors()) > 0 && len(r.ValidationErrors()) > 0 {
			t.Fatalf("%v carries both errors and validation errors", st)
		}
		if st != status.Error && r.CorrelationID() != "" {
			t.Fatalf("%v carries a correlation id", st)
		}
		if st == status.NoContent && (len(r.Errors()) > 0 || r.HasValue()) {
			t.Fatalf("NoContent must carry nothing")
		}
	}
}

func TestIdempotentConstruction(t *testing.T) {
	pairs := [][2]Void{
		{Success(), Success()},
		{SuccessWithMessage("m"), SuccessWithMessage("m")},
		{Error(NewErrorList("c", "x")), Error(NewErrorList("c", "x"))},
		{Invalid(vErr("f", "m")), Invalid(vErr("f", "m"))},
		{NotFound("a", "b"), NotFound("a", "b")},
		{NoContent(), NoContent()},
	}
	for i, p := range pairs {
		if !p[0].Equal(p[1]) {
			t.Fatalf("pair %d: identical inputs produced different outcomes: %v vs %v", i, p[0], p[1])
		}
	}
	if !SuccessValue([]int{1, 2}).Equal(SuccessValue([]int{1, 2})) {
		t.Fatalf("values must compare deeply")
	}
	if SuccessValue(1).Equal(SuccessValue(2)) {
		t.Fatalf("different values must not be equal")
	}
	if NotFound("a").Equal(Conflict("a")) {
		t.Fatalf("different statuses must not be equal")
	}
}

func TestNoAliasing(t *testing.T) {
	msgs := []string{"a", "b"}
	r := NotFound(msgs...)
	msgs[0] = "mutated"
	if r.Errors()[0] != "a" {
		t.Fatalf("outcome aliases the caller slice")
	}
	out := r.Errors()
	out[1] = "mutated"
	if r.Errors()[1] != "b" {
		t.Fatalf("Errors() must return a copy")
	}

	list := NewErrorList("c", "x")
	e := Error(list)
	list.ErrorMessages[0] = "mutated"
	if e.Errors()[0] != "x" {
		t.Fatalf("Error aliases the bundle messages")
	}

	records := []ValidationError{vErr("a", "1")}
	inv := Invalid(records...)
	records[0].ErrorMessage = "mutated"
	if inv.ValidationErrors()[0].ErrorMessage != "1" {
		t.Fatalf("Invalid aliases the caller slice")
	}
}

func TestConcurrentReads(t *testing.T) {
	r := Error(NewErrorList("cid", "a", "b"))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				errs := r.Errors()
				errs[0] = "local"
				_ = r.String()
				_ = r.Err()
			}
		}()
	}
	wg.Wait()
	if r.Errors()[0] != "a" {
		t.Fatalf("concurrent readers mutated the outcome")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Void
		want string
	}{
		{Success(), "ok"},
		{SuccessWithMessage("saved"), "ok: saved"},
		{NotFound("user 7 not found"), "not_found: user 7 not found"},
		{Invalid(vErr("email", "is required"), ValidationError{ErrorMessage: "bad"}), "invalid: email: is required; bad"},
		{NoContent(), "no_content"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}
