// Package core provides the internal implementation of contain's
// containment evaluation: classification of the actual value, resolution of
// expected items, and the messages describing the outcome.
package core

// Predicate is an expected item that tests candidates itself.
//
// Having a Match method is not enough to be treated as a predicate: the type
// must also carry the Tag (usually by embedding it). Values that only happen to
// define Match are compared as literals.
type Predicate interface {
	Match(candidate any) (success bool, err error)
	isPredicate()
}

// Describer is implemented by predicates that can describe themselves in
// messages, e.g. "a value within 5 of 24".
type Describer interface {
	Description() string
}

// Tag marks a type as a Predicate. Embed it in a struct that implements Match.
type Tag struct{}

func (Tag) isPredicate() {}

// NullObject marks a placeholder double that absorbs every message sent to it.
// How two null objects compare is chosen with WithNullObjectEquality.
type NullObject interface {
	AbsorbsAll()
}

// AsPredicate reports whether value is a tagged Predicate.
func AsPredicate(value any) (Predicate, bool) {
	pred, ok := value.(Predicate)

	return pred, ok
}

func isNullObject(value any) bool {
	_, ok := value.(NullObject)

	return ok
}
