// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

// dict.go
//
// Dict is an associative map: a string-keyed map with first-class,
// order-independent key enumeration. The original
// (hash.c) is a textbook open-addressing hash table exposing hash_set,
// hash_get and hash_keys; a Go map plus a Keys method is the same contract
// without reimplementing hashing that the runtime already provides well.

// Dict is an unordered string-keyed map with key enumeration.
type Dict[V any] struct {
	m map[string]V
}

// NewDict returns an empty Dict.
func NewDict[V any]() *Dict[V] {
	return &Dict[V]{m: make(map[string]V)}
}

// Set associates key with v, replacing any previous value.
func (d *Dict[V]) Set(key string, v V) {
	d.m[key] = v
}

// Get returns the value associated with key, and whether key was present.
func (d *Dict[V]) Get(key string) (V, bool) {
	v, ok := d.m[key]
	return v, ok
}

// Len returns the number of keys.
func (d *Dict[V]) Len() int {
	return len(d.m)
}

// Keys returns the map's keys in unspecified order, matching hash_keys()
// in the original: enumeration exists for iteration, not for an ordering
// guarantee.
func (d *Dict[V]) Keys() []string {
	keys := make([]string, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}
	return keys
}
