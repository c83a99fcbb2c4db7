// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"iter"
	"strings"
)

// LookupFold returns the value of the first key in seq that equals key
// under simple Unicode case folding (strings.EqualFold). No locale-specific
// rules are applied.
//
// Keys are visited in the order produced by seq, so when several keys match
// case-insensitively (e.g. "Foo" and "FOO") the first one wins.
//
// A missing key is a normal outcome and is reported as (zero value, false).
// LookupFold never mutates the collection and keeps no state.
//
// Example usage:
//
//	pairs := utils.Pairs[string]{{"Username", "alice"}, {"URL", "example.com"}}
//	v, ok := utils.LookupFold(pairs.All(), "username") // "alice", true
func LookupFold[V any](seq iter.Seq2[string, V], key string) (V, bool) {
	for k, v := range seq {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}

	var zero V
	return zero, false
}

// IndexFold returns the index of the first element of keys that equals key
// under case folding, or -1 if there is none.
func IndexFold(keys []string, key string) int {
	for i, k := range keys {
		if strings.EqualFold(k, key) {
			return i
		}
	}
	return -1
}

// Pair is a single key/value entry of an ordered mapping.
type Pair[V any] struct {
	Key   string
	Value V
}

// Pairs is an ordered string-keyed mapping backed by a slice.
// Keys are expected to be unique under exact comparison but may collide
// under case folding.
type Pairs[V any] []Pair[V]

// All iterates the pairs in insertion order.
func (p Pairs[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, pair := range p {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (p Pairs[V]) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, pair := range p {
		keys = append(keys, pair.Key)
	}
	return keys
}
