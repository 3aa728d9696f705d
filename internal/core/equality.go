package core

import (
	"reflect"
	"slices"

	"github.com/google/go-cmp/cmp"
)

// NullObjectEquality selects how two null objects compare to each other.
type NullObjectEquality int

// Null object equality strategies.
const (
	// NullObjectsByKind treats any two null objects of the same dynamic type as
	// equal, whatever their identity.
	NullObjectsByKind NullObjectEquality = iota
	// NullObjectsByIdentity treats two null objects as equal only when they are
	// the same instance.
	NullObjectsByIdentity
)

// String returns the strategy name.
func (n NullObjectEquality) String() string {
	switch n {
	case NullObjectsByKind:
		return "by-kind"
	case NullObjectsByIdentity:
		return "by-identity"
	default:
		return "unknown"
	}
}

// Equality performs deep structural equality between a candidate and a
// literal expectation. Predicates nested inside the expectation's sequences
// and mappings are applied to the corresponding candidate value. Predicates
// found in the candidate are only ever compared structurally.
type Equality struct {
	nullObjects NullObjectEquality
	options     cmp.Options
}

// NewEquality returns an Equality using the given null object strategy.
func NewEquality(nullObjects NullObjectEquality) Equality {
	equality := Equality{nullObjects: nullObjects}
	equality.options = cmp.Options{
		cmp.Exporter(func(reflect.Type) bool { return true }),
		cmp.FilterValues(needsSpecialComparison, cmp.Comparer(equality.compareSpecial)),
	}

	return equality
}

// Equal reports whether candidate equals expected.
func (e Equality) Equal(candidate, expected any) bool {
	if expected == nil {
		return isNil(candidate)
	}

	if pred, ok := AsPredicate(expected); ok {
		matched, err := pred.Match(candidate)

		return err == nil && matched
	}

	if !holdsPredicate(expected) {
		return cmp.Equal(candidate, expected, e.options)
	}

	if hash, ok := expected.(Hash); ok {
		return e.equalHashes(candidate, hash)
	}

	actual, wanted := reflect.ValueOf(candidate), reflect.ValueOf(expected)
	if !actual.IsValid() || actual.Type() != wanted.Type() {
		return false
	}

	switch wanted.Kind() {
	case reflect.Slice, reflect.Array:
		return e.equalSequences(actual, wanted)
	case reflect.Map:
		return e.equalMaps(actual, wanted)
	default:
		return cmp.Equal(candidate, expected, e.options)
	}
}

// compareSpecial handles the values selected by needsSpecialComparison. Only
// literals reach cmp, so a predicate here is data and compares structurally.
func (e Equality) compareSpecial(x, y any) bool {
	_, xIsPredicate := AsPredicate(x)
	_, yIsPredicate := AsPredicate(y)

	if xIsPredicate || yIsPredicate {
		return reflect.DeepEqual(x, y)
	}

	return e.nullObjectsEqual(x, y)
}

func (e Equality) equalHashes(candidate any, expected Hash) bool {
	actual, ok := candidate.(Hash)
	if !ok || actual.Len() != expected.Len() {
		return false
	}

	for _, entry := range expected {
		stored, found := actual.Lookup(entry.Key, e.Equal)
		if !found || !e.Equal(stored, entry.Value) {
			return false
		}
	}

	return true
}

func (e Equality) equalMaps(actual, expected reflect.Value) bool {
	if actual.Len() != expected.Len() {
		return false
	}

	iter := expected.MapRange()
	for iter.Next() {
		stored := actual.MapIndex(iter.Key())
		if !stored.IsValid() || !e.Equal(stored.Interface(), iter.Value().Interface()) {
			return false
		}
	}

	return true
}

func (e Equality) equalSequences(actual, expected reflect.Value) bool {
	if actual.Len() != expected.Len() {
		return false
	}

	for i := range expected.Len() {
		if !e.Equal(actual.Index(i).Interface(), expected.Index(i).Interface()) {
			return false
		}
	}

	return true
}

func (e Equality) nullObjectsEqual(x, y any) bool {
	if reflect.TypeOf(x) != reflect.TypeOf(y) {
		return false
	}

	if e.nullObjects == NullObjectsByKind {
		return true
	}

	return sameInstance(x, y)
}

// holdsPredicate reports whether a predicate sits anywhere inside the
// sequences and mappings of value. Struct fields are not searched.
func holdsPredicate(value any) bool {
	if _, ok := AsPredicate(value); ok {
		return true
	}

	if hash, ok := value.(Hash); ok {
		return slices.ContainsFunc(hash, func(entry Entry) bool { return holdsPredicate(entry.Value) })
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range reflected.Len() {
			if holdsPredicate(reflected.Index(i).Interface()) {
				return true
			}
		}
	case reflect.Map:
		iter := reflected.MapRange()
		for iter.Next() {
			if holdsPredicate(iter.Value().Interface()) {
				return true
			}
		}
	default:
	}

	return false
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return reflected.IsNil()
	default:
		return false
	}
}

func needsSpecialComparison(x, y any) bool {
	_, xIsPredicate := AsPredicate(x)
	_, yIsPredicate := AsPredicate(y)

	if xIsPredicate && yIsPredicate {
		return true
	}

	return isNullObject(x) && isNullObject(y)
}

func sameInstance(x, y any) bool {
	left, right := reflect.ValueOf(x), reflect.ValueOf(y)

	switch left.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return left.Pointer() == right.Pointer()
	case reflect.Slice:
		return left.Pointer() == right.Pointer() && left.Len() == right.Len()
	default:
		if left.Type().Comparable() {
			return x == y
		}

		return false
	}
}
