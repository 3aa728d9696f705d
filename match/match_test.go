package match_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive

	"github.com/toejough/contain/internal/core"
	"github.com/toejough/contain/match"
)

// Test the BeAny matcher directly.
func TestBeAny(t *testing.T) {
	t.Parallel()

	ok, err := match.BeAny.Match(42)
	if !ok || err != nil {
		t.Errorf("BeAny.Match(42) = (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = match.BeAny.Match(nil)
	if !ok || err != nil {
		t.Errorf("BeAny.Match(nil) = (%v, %v), want (true, nil)", ok, err)
	}

	if desc := match.BeAny.Description(); desc != "anything" {
		t.Errorf("BeAny.Description() = %q, want %q", desc, "anything")
	}
}

func TestMatchersAreTaggedPredicates(t *testing.T) {
	t.Parallel()

	matchers := []match.Matcher{
		match.BeAny,
		match.Satisfying(func(int) error { return nil }),
		match.Within(1).Of(2),
		match.ValueLessThan(1),
		match.ValueGreaterThan(1),
		match.StringContaining("a"),
		match.StringMatching("a"),
		match.FromGomega(Equal(1)),
	}

	for _, matcher := range matchers {
		if _, ok := core.AsPredicate(matcher); !ok {
			t.Errorf("%s is not recognised as a predicate", matcher.Description())
		}
	}
}

func TestSatisfy(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	matcher := match.Satisfying(func(val int) error {
		if val <= 10 {
			return errors.New("must be greater than 10")
		}

		return nil
	})

	g.Expect(matcher.Match(42)).To(BeTrue())
	g.Expect(matcher.Match(5)).To(BeFalse())
	g.Expect(matcher.FailureMessage(5)).To(Equal("value 5 does not satisfy predicate: must be greater than 10"))
	g.Expect(matcher.FailureMessage("5")).To(Equal("value 5 is not a int"))

	_, err := matcher.Match("five")
	g.Expect(err).To(MatchError(core.ErrTypeMismatch))
	g.Expect(err.Error()).To(Equal("type mismatch: expected int, got string"))
}

func TestWithin(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	matcher := match.Within(5).Of(24)

	g.Expect(matcher.Description()).To(Equal("a value within 5 of 24"))
	g.Expect(matcher.Match(29)).To(BeTrue())
	g.Expect(matcher.Match(30)).To(BeFalse())
	g.Expect(matcher.Match(19)).To(BeTrue())
	g.Expect(matcher.Match(18)).To(BeFalse())
	g.Expect(matcher.Match(24.5)).To(BeTrue())
	g.Expect(matcher.Match(uint(29))).To(BeTrue())

	_, err := matcher.Match("24")
	g.Expect(err).To(MatchError(core.ErrTypeMismatch))

	_, err = match.Within("5").Of(24).Match(24)
	g.Expect(err).To(MatchError(core.ErrTypeMismatch))
}

func TestValueComparisons(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(match.ValueLessThan(90).Description()).To(Equal("a value < 90"))
	g.Expect(match.ValueLessThan(90).Match(89)).To(BeTrue())
	g.Expect(match.ValueLessThan(90).Match(90)).To(BeFalse())
	g.Expect(match.ValueGreaterThan(150).Description()).To(Equal("a value > 150"))
	g.Expect(match.ValueGreaterThan(150).Match(200)).To(BeTrue())
	g.Expect(match.ValueGreaterThan(150).Match(150)).To(BeFalse())
	g.Expect(match.ValueGreaterThan(1.5).Match(int8(2))).To(BeTrue())

	_, err := match.ValueLessThan(1).Match(nil)
	g.Expect(err).To(MatchError(core.ErrTypeMismatch))
}

func TestStringMatchers(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(match.StringContaining("ar").Description()).To(Equal("a string containing 'ar'"))
	g.Expect(match.StringContaining("ar").Match("bar")).To(BeTrue())
	g.Expect(match.StringContaining("ar").Match("baz")).To(BeFalse())
	g.Expect(match.StringMatching("fo+").Description()).To(Equal("a string matching /fo+/"))
	g.Expect(match.StringMatching("fo+").Match("food")).To(BeTrue())
	g.Expect(match.StringMatching("^d").Match("food")).To(BeFalse())

	_, err := match.StringContaining("1").Match(1)
	g.Expect(err).To(MatchError(core.ErrTypeMismatch))

	g.Expect(func() { match.StringMatching("(") }).To(Panic())
}

func TestFromGomega(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	wrapped := match.FromGomega(BeNumerically(">", 100), "a big number")
	g.Expect(wrapped.Description()).To(Equal("a big number"))
	g.Expect(wrapped.Match(101)).To(BeTrue())
	g.Expect(wrapped.Match(99)).To(BeFalse())
	g.Expect(wrapped.FailureMessage(99)).To(ContainSubstring("to be >"))

	unnamed := match.FromGomega(BeNumerically(">", 100))
	g.Expect(unnamed.Description()).To(Equal("a value satisfying matchers.BeNumericallyMatcher"))
}

// TestMatchersWorkAsGomegaMatchers verifies the matchers plug directly into
// gomega assertions.
func TestMatchersWorkAsGomegaMatchers(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)

	g.Expect(22).To(match.Within(5).Of(24))
	g.Expect("food").NotTo(match.StringContaining("bar"))

	var message string

	failing := NewGomega(func(msg string, _ ...int) { message = msg })
	failing.Expect(10).To(match.Within(5).Of(24))
	g.Expect(message).To(Equal("Expected\n    <int>: 10\nto be a value within 5 of 24"))

	failing.Expect(22).NotTo(match.Within(5).Of(24))
	g.Expect(message).To(Equal("Expected\n    <int>: 22\nnot to be a value within 5 of 24"))
}
