package core

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Entry is a single key/value pair of a Hash.
type Entry struct {
	Key   any
	Value any
}

// Hash is a mapping literal that keeps its insertion order. As an expected item
// it stands for a set of key/value sub-expectations; as an actual value it is a
// mapping container.
type Hash []Entry

// H builds a Hash from alternating keys and values. A repeated key keeps its
// first position and takes the last value.
func H(pairs ...any) Hash {
	if len(pairs)%2 != 0 {
		panic("contain: H requires an even number of arguments (key, value, ...)")
	}

	hash := make(Hash, 0, len(pairs)/2)

	for i := 0; i < len(pairs); i += 2 {
		hash = hash.with(pairs[i], pairs[i+1])
	}

	return hash
}

// Keys returns the keys in order.
func (h Hash) Keys() []any {
	keys := make([]any, len(h))
	for i, entry := range h {
		keys[i] = entry.Key
	}

	return keys
}

// Len returns the number of entries.
func (h Hash) Len() int {
	return len(h)
}

// Lookup returns the value stored under a key equal to key. The second result
// distinguishes a missing key from a key stored with a nil value.
func (h Hash) Lookup(key any, equal func(stored, wanted any) bool) (any, bool) {
	for _, entry := range h {
		if equal(entry.Key, key) {
			return entry.Value, true
		}
	}

	return nil, false
}

func (h Hash) with(key, value any) Hash {
	for i, entry := range h {
		if reflect.DeepEqual(entry.Key, key) {
			h[i].Value = value

			return h
		}
	}

	return append(h, Entry{Key: key, Value: value})
}

// asHash returns the canonical Hash form of a mapping value. Native maps are
// ordered by the rendering of their keys so that messages are reproducible;
// keys that render alike are ordered by their type, then their Go syntax.
func asHash(value any) (Hash, bool) {
	if hash, ok := value.(Hash); ok {
		return hash, true
	}

	mapValue := reflect.ValueOf(value)
	if mapValue.Kind() != reflect.Map {
		return nil, false
	}

	type rendered struct {
		key    string
		kind   string
		syntax string
		entry  Entry
	}

	entries := make([]rendered, 0, mapValue.Len())

	iter := mapValue.MapRange()
	for iter.Next() {
		key := iter.Key().Interface()
		entries = append(entries, rendered{
			key:    Render(key),
			kind:   fmt.Sprintf("%T", key),
			syntax: fmt.Sprintf("%#v", key),
			entry:  Entry{Key: key, Value: iter.Value().Interface()},
		})
	}

	slices.SortStableFunc(entries, func(a, b rendered) int {
		return cmp.Or(
			strings.Compare(a.key, b.key),
			strings.Compare(a.kind, b.kind),
			strings.Compare(a.syntax, b.syntax),
		)
	})

	hash := make(Hash, len(entries))
	for i, each := range entries {
		hash[i] = each.entry
	}

	return hash, true
}

func isMapping(value any) bool {
	if _, ok := value.(Hash); ok {
		return true
	}

	return value != nil && reflect.TypeOf(value).Kind() == reflect.Map
}
