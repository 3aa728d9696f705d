package core

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrTypeMismatch reports an actual value or expected item that containment is
// undefined for. It is a hard failure, distinct from a non-match.
var ErrTypeMismatch = errors.New("type mismatch")

// Kind is the shape of an actual value.
type Kind int

// Container kinds.
const (
	KindText Kind = iota + 1
	KindSequence
	KindMapping
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Container is an actual value normalised for membership tests.
type Container struct {
	kind     Kind
	text     string
	elements []any
	hash     Hash
}

// Classify normalises actual into a Container. Strings are text, Hash values
// and maps are mappings, slices and arrays are sequences. Anything else,
// including nil, is a type mismatch.
func Classify(actual any) (Container, error) {
	if actual == nil {
		return Container{}, fmt.Errorf("%w: actual is nil, expected a string, sequence, or mapping", ErrTypeMismatch)
	}

	if hash, ok := actual.(Hash); ok {
		return Container{kind: KindMapping, hash: hash}, nil
	}

	reflected := reflect.ValueOf(actual)

	switch reflected.Kind() {
	case reflect.String:
		return Container{kind: KindText, text: reflected.String()}, nil
	case reflect.Map:
		hash, _ := asHash(actual)

		return Container{kind: KindMapping, hash: hash}, nil
	case reflect.Slice, reflect.Array:
		elements := make([]any, reflected.Len())
		for i := range reflected.Len() {
			elements[i] = reflected.Index(i).Interface()
		}

		return Container{kind: KindSequence, elements: elements}, nil
	default:
		return Container{}, fmt.Errorf("%w: cannot search %T %s, expected a string, sequence, or mapping",
			ErrTypeMismatch, actual, Render(actual))
	}
}

// Contains reports whether item is present in the container.
func (c Container) Contains(resolver Resolver, item Item) (bool, error) {
	switch c.kind {
	case KindText:
		return c.textContains(item)
	case KindSequence:
		return c.sequenceContains(resolver, item), nil
	case KindMapping:
		return c.mappingContains(resolver, item), nil
	default:
		return false, fmt.Errorf("%w: container was not classified", ErrTypeMismatch)
	}
}

// Kind returns the container's shape.
func (c Container) Kind() Kind {
	return c.kind
}

func (c Container) mappingContains(resolver Resolver, item Item) bool {
	if item.kind == ItemPairs {
		ok, _ := resolver.MatchPairs(c.hash, item.pairs)

		return ok
	}

	for _, key := range c.hash.Keys() {
		if ok, _ := resolver.MatchValue(key, item.value); ok {
			return true
		}
	}

	return false
}

func (c Container) sequenceContains(resolver Resolver, item Item) bool {
	for _, element := range c.elements {
		if ok, _ := resolver.MatchValue(element, item.value); ok {
			return true
		}
	}

	return false
}

func (c Container) textContains(item Item) (bool, error) {
	switch item.kind {
	case ItemPredicate:
		return false, fmt.Errorf("%w: cannot search text %s for predicate %s",
			ErrTypeMismatch, Render(c.text), item)
	case ItemPairs:
		// Text has no elements a mapping could equal.
		return false, nil
	default:
	}

	substring := reflect.ValueOf(item.value)
	if item.value == nil || substring.Kind() != reflect.String {
		return false, fmt.Errorf("%w: cannot search text %s for %T %s",
			ErrTypeMismatch, Render(c.text), item.value, item)
	}

	return strings.Contains(c.text, substring.String()), nil
}
