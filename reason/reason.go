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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
)

// Reason is a rule code in canonical form: up to MaxSegments lowercase
// segments joined by dots, for instance "validator.email" or
// "user.email.taken". Validation error codes become reasons so that
// transport mappers can key their lookup tables on them.
type Reason string

const (
	// MinLength bounds non-empty reasons from below. Empty means "no reason"
	// and is always accepted.
	MinLength = 3
	MaxLength = 128

	// MaxSegments caps the depth of the dotted hierarchy.
	MaxSegments = 4
)

var (
	ErrReasonInvalidFormat = errors.New("dresult: invalid reason format")
	ErrReasonInvalidLength = errors.New("dresult: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the absent reason.
var Empty Reason = ""

var separators = strings.NewReplacer("/", ".", "-", "_", " ", "_")

// Normalize lowercases and trims s, turning "/" into "." and "-" or " "
// into "_". The result is not necessarily valid.
func Normalize(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	return separators.Replace(strings.ToLower(s))
}

// Parse normalizes s and checks it. Blank input gives Empty.
func Parse(s string) (Reason, error) {
	n := Normalize(s)
	if n == "" {
		return Empty, nil
	}
	if err := check(n); err != nil {
		return Empty, fmt.Errorf("parse %q: %w", s, err)
	}
	return Reason(n), nil
}

// MustParse panics when s is invalid or blank.
func MustParse(s string) Reason {
	r, err := Parse(s)
	switch {
	case err != nil:
		panic(err)
	case r == Empty:
		panic("dresult: empty reason in MustParse")
	}
	return r
}

// Join normalizes each segment, drops blank ones and parses the dotted
// concatenation.
func Join(segments ...string) (Reason, error) {
	kept := segments[:0:0]
	for _, seg := range segments {
		if seg = Normalize(seg); seg != "" {
			kept = append(kept, seg)
		}
	}
	return Parse(strings.Join(kept, "."))
}

// Validate reports whether r is already canonical.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return check(string(r))
}

func (r Reason) String() string { return string(r) }

// Segments returns the dotted parts of r, nil for Empty.
func (r Reason) Segments() []string {
	if r == Empty {
		return nil
	}
	return strings.Split(string(r), ".")
}

// HasPrefix matches whole segments only: "user.email" prefixes
// "user.email.format", "user.em" does not.
func (r Reason) HasPrefix(prefix Reason) bool {
	rest, ok := strings.CutPrefix(string(r), string(prefix))
	if !ok {
		return false
	}
	return prefix == Empty || rest == "" || rest[0] == '.'
}

func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// check walks s segment by segment. Each segment starts with a letter and
// continues with letters, digits or underscores.
func check(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	n := 0
	for seg := range strings.SplitSeq(s, ".") {
		n++
		if n > MaxSegments {
			return fmt.Errorf("%w: more than %d segments", ErrReasonInvalidFormat, MaxSegments)
		}
		if !validSegment(seg) {
			return fmt.Errorf("%w: segment %d %q", ErrReasonInvalidFormat, n, seg)
		}
	}
	return nil
}

func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
