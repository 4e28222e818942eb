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

// Package segmenttrie implements a segment-aware prefix index for
// dot-separated reasons. The wildcard "*" matches exactly one segment.
package segmenttrie

import (
	"errors"
	"strings"
)

// Wildcard matches exactly one segment.
const Wildcard = "*"

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty or malformed segments, or consists of wildcards only.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// Trie is a longest-prefix-match index keyed by dot-separated segments. A
// more specific (deeper) rule wins over a shorter one; at equal depth an
// exact segment wins over the wildcard.
//
// A Trie is not safe for concurrent Insert. Once built it may be matched
// from any number of goroutines.
type Trie[T any] struct {
	root node[T]
	size int
}

type node[T any] struct {
	children map[string]*node[T]
	hasVal   bool
	val      T
	// pattern is the rule as inserted, kept for diagnostics so lookups
	// never build strings.
	pattern string
}

// New creates an empty trie.
func New[T any]() *Trie[T] { return &Trie[T]{} }

// Len returns the number of distinct prefixes stored.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert associates val with prefix, e.g. "user.email" or "user.*.taken".
// Inserting the same prefix twice replaces the value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if s == "" || segmentEnd(s, 0) != len(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	cur := &t.root
	for _, s := range segs {
		if cur.children == nil {
			cur.children = make(map[string]*node[T])
		}
		next, ok := cur.children[s]
		if !ok {
			next = &node[T]{}
			cur.children[s] = next
		}
		cur = next
	}
	if !cur.hasVal {
		t.size++
	}
	cur.hasVal, cur.val, cur.pattern = true, val, prefix
	return nil
}

// Match returns the value of the deepest prefix matching reason.
func (t *Trie[T]) Match(reason string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(reason)
	return v, ok
}

// MatchWithPattern is like Match and also returns the matched rule as it
// was inserted.
func (t *Trie[T]) MatchWithPattern(reason string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best, _ := t.root.walk(reason, 0, 0, nil, -1)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// walk explores exact and wildcard branches from n, starting at byte offset
// off of reason, and returns the deepest valued node found. Exact branches
// are tried first, so they win ties.
func (n *node[T]) walk(reason string, off, depth int, best *node[T], bestDepth int) (*node[T], int) {
	if n.hasVal && depth > bestDepth {
		best, bestDepth = n, depth
	}
	if off >= len(reason) || len(n.children) == 0 {
		return best, bestDepth
	}
	end := segmentEnd(reason, off)
	if end == off || (end < len(reason) && reason[end] != '.') {
		// malformed segment: nothing deeper can match
		return best, bestDepth
	}
	next := end
	if next < len(reason) {
		next++
	}
	if c, ok := n.children[reason[off:end]]; ok {
		best, bestDepth = c.walk(reason, next, depth+1, best, bestDepth)
	}
	if c, ok := n.children[Wildcard]; ok {
		best, bestDepth = c.walk(reason, next, depth+1, best, bestDepth)
	}
	return best, bestDepth
}

// segmentEnd returns the end offset of the segment [a-z][a-z0-9_]* that
// starts at off, or off when s[off] cannot start a segment.
func segmentEnd(s string, off int) int {
	if off >= len(s) || s[off] < 'a' || s[off] > 'z' {
		return off
	}
	i := off + 1
	for i < len(s) {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			i++
			continue
		}
		break
	}
	return i
}
