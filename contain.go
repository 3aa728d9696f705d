// Package contain provides a containment assertion engine: it decides whether
// a string, sequence, or mapping contains every expected item, and explains
// failures precisely.
//
// Expected items are literals or predicates. A literal mapping (a Hash or a
// native map) checked against a mapping is a subset of key/value pairs:
//
//	Expect(map[string]int{"a": 1, "b": 2}).To(contain.Include(contain.H("a", 1)))
//	Expect([]int{10, 20, 30}).To(contain.Include(match.Within(5).Of(24)))
//	Expect("a string").NotTo(contain.Include("foo"))
//
// This is the public API entry point. Implementation lives in internal/core.
package contain

import (
	"github.com/rs/zerolog"

	"github.com/toejough/contain/internal/core"
)

// Container kinds.
const (
	KindText     = core.KindText
	KindSequence = core.KindSequence
	KindMapping  = core.KindMapping
)

// Negation modes.
const (
	NegateConjunction = core.NegateConjunction
	NegateEach        = core.NegateEach
)

// Null object equality strategies.
const (
	NullObjectsByKind     = core.NullObjectsByKind
	NullObjectsByIdentity = core.NullObjectsByIdentity
)

// Describer is implemented by predicates that describe themselves in messages.
type Describer = core.Describer

// Entry is a single key/value pair of a Hash.
type Entry = core.Entry

// Hash is an insertion-ordered mapping literal.
type Hash = core.Hash

// Item is one captured expected item.
type Item = core.Item

// Kind is the shape of an actual value.
type Kind = core.Kind

// NegationMode selects how a negated evaluation combines its items.
type NegationMode = core.NegationMode

// NullObject marks a placeholder double that absorbs every message sent to it.
type NullObject = core.NullObject

// NullObjectEquality selects how null objects compare to each other.
type NullObjectEquality = core.NullObjectEquality

// Option configures an evaluation.
type Option = core.Option

// Predicate is an expected item that tests candidates itself.
type Predicate = core.Predicate

// PredicateTag marks a type as a Predicate. Embed it in a struct that
// implements Match(any) (bool, error).
type PredicateTag = core.Tag

// Result is the outcome of one containment evaluation.
type Result = core.Result

// ErrTypeMismatch reports an actual value or expected item that containment is
// undefined for.
//
//nolint:gochecknoglobals // re-exported sentinel
var ErrTypeMismatch = core.ErrTypeMismatch

// Describe returns the description of an include of expected, e.g.
// `include "str", "a", and "foo"`.
func Describe(expected ...any) string {
	return core.Describe(core.CaptureAll(expected))
}

// Evaluate decides whether actual contains every expected item.
func Evaluate(actual any, expected []any, opts ...Option) (Result, error) {
	return core.Evaluate(actual, expected, opts...)
}

// FailureMessage renders `expected <actual> [not ]to include <expected>`.
func FailureMessage(actual any, expected []any, negate bool) string {
	return core.FailureMessage(actual, core.CaptureAll(expected), negate)
}

// H builds a Hash from alternating keys and values.
func H(pairs ...any) Hash {
	return core.H(pairs...)
}

// Negated evaluates the negated form.
func Negated() Option {
	return core.Negated()
}

// WithLogger sends evaluation traces to logger at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return core.WithLogger(logger)
}

// WithNegationMode selects how a negated evaluation combines its items.
func WithNegationMode(mode NegationMode) Option {
	return core.WithNegationMode(mode)
}

// WithNullObjectEquality selects how null objects compare to each other.
func WithNullObjectEquality(strategy NullObjectEquality) Option {
	return core.WithNullObjectEquality(strategy)
}
