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

// Package validationx turns the errors of common Go validation libraries
// into validation records and Invalid outcomes.
//
// Two libraries are supported:
//
//   - github.com/jellydator/validation (the ozzo-validation fork), whose
//     validation.Errors map field names to errors;
//   - github.com/go-playground/validator/v10, whose ValidationErrors list
//     struct-tag failures.
//
// Both produce records with an identifier, a message and, where the
// library provides one, a reason code usable by mapper prefix rules.
package validationx

import (
	"errors"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	validation "github.com/jellydator/validation"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/reason"
)

// FromOzzo converts a jellydator validation error into records.
//
// validation.Errors are walked in sorted key order; nested maps (from
// embedded structs or validation.Each) are flattened into dotted
// identifiers such as "address.city" or "items.0". A single validation.Error
// yields one record without an identifier. Error codes are normalized into
// reasons; codes that are not valid reasons are dropped. An error map
// without failures yields an empty slice; any other error yields nil.
func FromOzzo(err error) []apis.ValidationError {
	var errs validation.Errors
	if errors.As(err, &errs) {
		out := []apis.ValidationError{}
		flatten(&out, "", errs)
		return out
	}
	var ve validation.Error
	if errors.As(err, &ve) {
		return []apis.ValidationError{ozzoRecord("", ve)}
	}
	return nil
}

func flatten(out *[]apis.ValidationError, prefix string, errs validation.Errors) {
	keys := make([]string, 0, len(errs))
	for k, e := range errs {
		if e != nil {
			keys = append(keys, k)
		}
	}
	sortKeys(keys)
	for _, k := range keys {
		id := k
		if prefix != "" {
			id = prefix + "." + k
		}
		e := errs[k]
		var nested validation.Errors
		if errors.As(e, &nested) {
			flatten(out, id, nested)
			continue
		}
		var ve validation.Error
		if errors.As(e, &ve) {
			*out = append(*out, ozzoRecord(id, ve))
			continue
		}
		*out = append(*out, apis.ValidationError{Identifier: id, ErrorMessage: e.Error()})
	}
}

// sortKeys orders validation.Each indices numerically so records follow
// the input order. Other key sets sort lexically.
func sortKeys(keys []string) {
	idx := make([]int, len(keys))
	for i, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 {
			sort.Strings(keys)
			return
		}
		idx[i] = n
	}
	sort.Sort(byIndex{keys, idx})
}

type byIndex struct {
	keys []string
	idx  []int
}

func (b byIndex) Len() int           { return len(b.keys) }
func (b byIndex) Less(i, j int) bool { return b.idx[i] < b.idx[j] }
func (b byIndex) Swap(i, j int) {
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
	b.idx[i], b.idx[j] = b.idx[j], b.idx[i]
}

func ozzoRecord(id string, ve validation.Error) apis.ValidationError {
	r, err := reason.Parse(ve.Code())
	if err != nil {
		r = reason.Empty
	}
	return apis.ValidationError{Identifier: id, ErrorMessage: ve.Error(), ErrorCode: r}
}

// FromValidator converts go-playground validator errors into records. The
// identifier is the field namespace without the root struct name, e.g.
// "address.city" when json tag names are registered; the reason is
// "validator.<tag>". Any other error yields nil.
func FromValidator(err error) []apis.ValidationError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	out := make([]apis.ValidationError, 0, len(errs))
	for _, fe := range errs {
		id := fe.Namespace()
		if i := strings.IndexByte(id, '.'); i >= 0 {
			id = id[i+1:]
		}
		r, jerr := reason.Join("validator", fe.Tag())
		if jerr != nil {
			r = reason.Empty
		}
		out = append(out, apis.ValidationError{
			Identifier:   id,
			ErrorMessage: message(fe),
			ErrorCode:    r,
		})
	}
	return out
}

// message renders a human-readable message for the common tags.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// Outcome classifies err:
//
//   - nil yields Success;
//   - validation errors from either library yield Invalid (or Success when
//     they hold no failure);
//   - validator misuse (validator.InvalidValidationError,
//     validation.InternalError) yields Error;
//   - anything else is handled by dresult.FromErr.
func Outcome(err error) dresult.Void {
	if err == nil {
		return dresult.Success()
	}
	var (
		internal validation.InternalError
		misuse   *validator.InvalidValidationError
	)
	if errors.As(err, &internal) || errors.As(err, &misuse) {
		return dresult.ErrorMessage(err.Error())
	}

	records := FromValidator(err)
	if records == nil {
		records = FromOzzo(err)
	}
	if records != nil {
		if len(records) == 0 {
			return dresult.Success()
		}
		return dresult.Invalid(records...)
	}
	return dresult.FromErr(err)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared go-playground validator used by Struct. It
// reports json tag names as field names.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates v with its `validate` struct tags and returns the
// outcome.
func Struct(v any) dresult.Void {
	return Outcome(Validator().Struct(v))
}

// Rules validates v with jellydator rules when it implements
// validation.Validatable and returns the outcome.
func Rules(v validation.Validatable) dresult.Void {
	return Outcome(v.Validate())
}
