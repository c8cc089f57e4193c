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

package segmenttrie

import (
	"errors"
	"strings"
)

// Sep separates the segments of an error code.
const Sep = '_'

// Wildcard matches exactly one segment.
const Wildcard = "*"

// Trie is a segment-aware prefix index over UPPER_SNAKE error codes.
// "PAYMENT_CARD_DECLINED" has the segments PAYMENT, CARD and DECLINED; a rule
// inserted for "PAYMENT_CARD" matches it, a rule for "PAYMENT_CA" does not.
// The deepest matching rule wins.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the rule as inserted, set on nodes carrying a value.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
	// empty segments, contains characters outside [A-Z0-9] or consists only
	// of wildcards.
	ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")
)

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix, e.g. "PAYMENT", "PAYMENT_CARD" or
// "PAYMENT_*_DECLINED". Re-inserting a prefix replaces its value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := split(prefix)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}

	allWild := true
	for _, s := range segs {
		if s != Wildcard {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest rule matching key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also reports the matching rule.
// Keys that are not well-formed codes never match.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(key) {
			return
		}
		i := off
		for i < len(key) && key[i] != Sep {
			if !segmentByte(key[i]) {
				return
			}
			i++
		}
		if i == off {
			return
		}
		seg := key[off:i]
		next := i
		if next < len(key) {
			next++
		}

		if child, ok := n.children[seg]; ok {
			dfs(child, next, depth+1)
		}
		if child, ok := n.children[Wildcard]; ok {
			dfs(child, next, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

func split(s string) ([]string, bool) {
	if s == "" {
		return nil, false
	}
	segs := strings.Split(s, string(Sep))
	for _, seg := range segs {
		if !validSegment(seg) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment accepts "*" or a non-empty run of [A-Z0-9].
func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == Wildcard {
		return true
	}
	for i := 0; i < len(seg); i++ {
		if !segmentByte(seg[i]) {
			return false
		}
	}
	return true
}

func segmentByte(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
