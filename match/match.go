// Package match provides predicate matchers for use as expected items of
// contain.Include. This package is designed to be dot-imported alongside
// gomega:
//
//	import (
//	    . "github.com/onsi/gomega"
//	    . "github.com/toejough/contain/match"
//	)
//
//	Expect([]int{10, 20, 30}).To(contain.Include(Within(5).Of(24)))
//
// Every matcher here is also a gomega matcher, so it can be used on its own:
//
//	Expect(22).To(Within(5).Of(24))
package match

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"github.com/toejough/contain/internal/core"
)

// Matcher is a predicate usable as an expected item. Every Matcher returned by
// this package carries the predicate tag; implementing these methods alone does
// not make a type a predicate.
type Matcher interface {
	Match(actual any) (success bool, err error)
	Description() string
	FailureMessage(actual any) string
	NegatedFailureMessage(actual any) string
}

// WithinBuilder is the first half of Within(delta).Of(expected).
type WithinBuilder struct {
	delta any
}

// BeAny is a matcher that matches any value.
// Useful as a mapping value when only the key's presence matters.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var BeAny Matcher = anyMatcher{described: described{description: "anything"}}

// FromGomega adapts a gomega matcher into a tagged predicate. Gomega matchers are
// not recognised as predicates unless wrapped. The optional description
// replaces the default, which names the matcher's type.
func FromGomega(matcher types.GomegaMatcher, description ...string) Matcher {
	desc := "a value satisfying " + strings.TrimPrefix(fmt.Sprintf("%T", matcher), "*")
	if len(description) > 0 {
		desc = strings.Join(description, " ")
	}

	return gomegaMatcher{described: described{description: desc}, matcher: matcher}
}

// Of completes Within(delta).Of(expected).
func (w WithinBuilder) Of(expected any) Matcher {
	return withinMatcher{
		described: described{description: fmt.Sprintf("a value within %s of %s", core.Render(w.delta), core.Render(expected))},
		delta:     w.delta,
		expected:  expected,
	}
}

// Satisfying returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	contain.Include(Satisfying(func(x int) error {
//	    if x < 0 { return fmt.Errorf("expected positive, got %d", x) }
//	    return nil
//	}))
func Satisfying[T any](predicate func(T) error) Matcher {
	return satisfyMatcher[T]{
		described: described{description: "a value satisfying a predicate"},
		predicate: predicate,
	}
}

// StringContaining matches strings that contain substring.
func StringContaining(substring string) Matcher {
	return stringMatcher{
		described: described{description: fmt.Sprintf("a string containing '%s'", substring)},
		test:      func(s string) bool { return strings.Contains(s, substring) },
	}
}

// StringMatching matches strings that match pattern. It panics if pattern does
// not compile.
func StringMatching(pattern string) Matcher {
	re := regexp.MustCompile(pattern)

	return stringMatcher{
		described: described{description: fmt.Sprintf("a string matching /%s/", pattern)},
		test:      re.MatchString,
	}
}

// ValueGreaterThan matches numbers greater than bound.
func ValueGreaterThan(bound any) Matcher {
	return compareMatcher{
		described: described{description: "a value > " + core.Render(bound)},
		bound:     bound,
		accept:    func(cmp int) bool { return cmp > 0 },
	}
}

// ValueLessThan matches numbers less than bound.
func ValueLessThan(bound any) Matcher {
	return compareMatcher{
		described: described{description: "a value < " + core.Render(bound)},
		bound:     bound,
		accept:    func(cmp int) bool { return cmp < 0 },
	}
}

// Within starts a matcher for numbers within delta of an expected value.
func Within(delta any) WithinBuilder {
	return WithinBuilder{delta: delta}
}

// anyMatcher is the implementation of BeAny.
type anyMatcher struct {
	described
}

// Match always returns true - matches any value.
func (anyMatcher) Match(any) (bool, error) {
	return true, nil
}

type compareMatcher struct {
	described

	bound  any
	accept func(cmp int) bool
}

func (m compareMatcher) Match(actual any) (bool, error) {
	value, err := number(actual)
	if err != nil {
		return false, err
	}

	bound, err := number(m.bound)
	if err != nil {
		return false, err
	}

	switch {
	case value < bound:
		return m.accept(-1), nil
	case value > bound:
		return m.accept(1), nil
	default:
		return m.accept(0), nil
	}
}

// described supplies the tag, the description, and gomega-style failure
// messages to the matchers of this package.
type described struct {
	core.Tag

	description string
}

func (d described) Description() string {
	return d.description
}

func (d described) FailureMessage(actual any) string {
	return fmt.Sprintf("Expected\n%s\nto be %s", format.Object(actual, 1), d.description)
}

func (d described) NegatedFailureMessage(actual any) string {
	return fmt.Sprintf("Expected\n%s\nnot to be %s", format.Object(actual, 1), d.description)
}

type gomegaMatcher struct {
	described

	matcher types.GomegaMatcher
}

func (m gomegaMatcher) FailureMessage(actual any) string {
	return m.matcher.FailureMessage(actual)
}

func (m gomegaMatcher) Match(actual any) (bool, error) {
	return m.matcher.Match(actual)
}

func (m gomegaMatcher) NegatedFailureMessage(actual any) string {
	return m.matcher.NegatedFailureMessage(actual)
}

type satisfyMatcher[T any] struct {
	described

	predicate func(T) error
}

func (m satisfyMatcher[T]) FailureMessage(actual any) string {
	val, ok := actual.(T)
	if !ok {
		return fmt.Sprintf("value %v is not a %T", actual, *new(T))
	}

	if err := m.predicate(val); err != nil {
		return fmt.Sprintf("value %v does not satisfy predicate: %v", actual, err)
	}

	return fmt.Sprintf("value %v does not satisfy predicate", actual)
}

func (m satisfyMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", core.ErrTypeMismatch, *new(T), actual)
	}

	return m.predicate(val) == nil, nil
}

type stringMatcher struct {
	described

	test func(string) bool
}

func (m stringMatcher) Match(actual any) (bool, error) {
	if actual == nil || reflect.TypeOf(actual).Kind() != reflect.String {
		return false, fmt.Errorf("%w: expected a string, got %T", core.ErrTypeMismatch, actual)
	}

	return m.test(reflect.ValueOf(actual).String()), nil
}

type withinMatcher struct {
	described

	delta    any
	expected any
}

func (m withinMatcher) Match(actual any) (bool, error) {
	value, err := number(actual)
	if err != nil {
		return false, err
	}

	delta, err := number(m.delta)
	if err != nil {
		return false, err
	}

	expected, err := number(m.expected)
	if err != nil {
		return false, err
	}

	return math.Abs(value-expected) <= delta, nil
}

func number(value any) (float64, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: expected a number, got nil", core.ErrTypeMismatch)
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(reflected.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(reflected.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return reflected.Float(), nil
	default:
		return 0, fmt.Errorf("%w: expected a number, got %T", core.ErrTypeMismatch, value)
	}
}
