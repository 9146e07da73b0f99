// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the exponent matrix and its callers.
package matrix

import (
	"strconv"
	"strings"
)

// Key is a canonical, comparable encoding of one exponent pattern (a row).
// Two rows share a Key iff they are identical tuples, so Key works as a map
// key for multiset bookkeeping during repair.
type Key string

// keySep separates encoded entries; entries are non-negative so no escaping is needed.
const keySep = ","

// KeyOf encodes an arbitrary exponent vector into a Key.
// Complexity: O(len(vals)).
func KeyOf(vals []int) Key {
	var sb strings.Builder
	for j, v := range vals {
		if j > 0 {
			sb.WriteString(keySep)
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return Key(sb.String())
}

// Multiset counts occurrences of row patterns.
// The zero value is not usable; build with NewMultiset or (*Dense).Patterns.
type Multiset map[Key]int

// NewMultiset returns an empty pattern multiset.
func NewMultiset() Multiset { return make(Multiset) }

// Add increments the count of k.
func (s Multiset) Add(k Key) { s[k]++ }

// Remove decrements the count of k and drops it when it reaches zero.
func (s Multiset) Remove(k Key) {
	if s[k] <= 1 {
		delete(s, k)
		return
	}
	s[k]--
}

// Count returns the occurrences of k (0 when absent).
func (s Multiset) Count(k Key) int { return s[k] }

// Replace moves one occurrence from old to new (old must be present).
func (s Multiset) Replace(old, new Key) {
	s.Remove(old)
	s.Add(new)
}
