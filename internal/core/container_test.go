package core_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive

	"github.com/toejough/contain/internal/core"
	"github.com/toejough/contain/match"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		actual   any
		expected core.Kind
	}{
		{name: "string", actual: "abc", expected: core.KindText},
		{name: "named string", actual: label("abc"), expected: core.KindText},
		{name: "slice", actual: []int{1}, expected: core.KindSequence},
		{name: "nil slice", actual: []int(nil), expected: core.KindSequence},
		{name: "array", actual: [1]int{1}, expected: core.KindSequence},
		{name: "byte slice", actual: []byte("ab"), expected: core.KindSequence},
		{name: "map", actual: map[string]int{}, expected: core.KindMapping},
		{name: "hash is a mapping, not a sequence", actual: core.H("a", 1), expected: core.KindMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			container, err := core.Classify(tt.actual)
			if err != nil {
				t.Fatalf("Classify(%#v) returned error: %v", tt.actual, err)
			}

			if container.Kind() != tt.expected {
				t.Errorf("Classify(%#v).Kind() = %v, want %v", tt.actual, container.Kind(), tt.expected)
			}
		})
	}
}

func TestClassify_TypeMismatch(t *testing.T) {
	t.Parallel()

	for _, actual := range []any{nil, 42, point{}, &point{}, true, make(chan int)} {
		_, err := core.Classify(actual)
		if !errors.Is(err, core.ErrTypeMismatch) {
			t.Errorf("Classify(%#v) error = %v, want ErrTypeMismatch", actual, err)
		}
	}
}

func TestContains_Text(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	resolver := core.NewResolver(core.NewConfig())

	container, err := core.Classify("a string")
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(container.Contains(resolver, core.Capture("str"))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(label("ring")))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture("foo"))).To(BeFalse())
	g.Expect(container.Contains(resolver, core.Capture(""))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(core.H("a", 1)))).To(BeFalse())
}

func TestContains_TextRejectsPredicatesAndNonStrings(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	resolver := core.NewResolver(core.NewConfig())

	container, err := core.Classify("abc")
	g.Expect(err).NotTo(HaveOccurred())

	_, err = container.Contains(resolver, core.Capture(match.StringContaining("a")))
	g.Expect(err).To(MatchError(core.ErrTypeMismatch))
	g.Expect(err.Error()).To(ContainSubstring("(a string containing 'a')"))

	_, err = container.Contains(resolver, core.Capture(1))
	g.Expect(err).To(MatchError(core.ErrTypeMismatch))

	_, err = container.Contains(resolver, core.Capture(nil))
	g.Expect(err).To(MatchError(core.ErrTypeMismatch))
}

func TestContains_Sequence(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	resolver := core.NewResolver(core.NewConfig())

	container, err := core.Classify([]any{"a", core.H("key", "value"), 3})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(container.Contains(resolver, core.Capture(3))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture("a"))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(4))).To(BeFalse())
	g.Expect(container.Contains(resolver, core.Capture(core.H("key", "value")))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(map[string]string{"key": "value"}))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(core.H("key", "other")))).To(BeFalse())
	g.Expect(container.Contains(resolver, core.Capture(match.ValueGreaterThan(2)))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(match.ValueGreaterThan(3)))).To(BeFalse())
}

func TestContains_SequencePartialMappingNeedsExactElement(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	resolver := core.NewResolver(core.NewConfig())

	container, err := core.Classify([]any{"a", map[string]int{"a": 1, "b": 2}})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(container.Contains(resolver, core.Capture(core.H("a", 1, "b", 2)))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(core.H("a", 1)))).To(BeFalse())
}

func TestContains_MappingKeys(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	resolver := core.NewResolver(core.NewConfig())

	container, err := core.Classify(map[string]string{"drink": "water", "food": "bread"})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(container.Contains(resolver, core.Capture("drink"))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture("water"))).To(BeFalse())
	g.Expect(container.Contains(resolver, core.Capture(match.StringMatching("foo")))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(match.StringMatching("bar")))).To(BeFalse())
}

func TestContains_MappingPairs(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	resolver := core.NewResolver(core.NewConfig())

	container, err := core.Classify(map[string]int{"a": 1, "b": 2, "c": 3})
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(container.Contains(resolver, core.Capture(core.H("b", 2, "a", 1)))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(map[string]int{"c": 3}))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(core.H("a", 2)))).To(BeFalse())
	g.Expect(container.Contains(resolver, core.Capture(core.H("a", 1, "d", 1)))).To(BeFalse())
	g.Expect(container.Contains(resolver, core.Capture(core.H("a", match.Within(1).Of(2))))).To(BeTrue())
	g.Expect(container.Contains(resolver, core.Capture(core.H()))).To(BeTrue())
}

func TestContains_MappingNilValues(t *testing.T) {
	t.Parallel()

	g := NewWithT(t)
	resolver := core.NewResolver(core.NewConfig())

	empty, err := core.Classify(map[string]any{})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(empty.Contains(resolver, core.Capture(core.H("something", nil)))).To(BeFalse())

	storedNil, err := core.Classify(map[string]any{"something": nil})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(storedNil.Contains(resolver, core.Capture(core.H("something", nil)))).To(BeTrue())

	typedNil, err := core.Classify(map[string]*point{"something": nil})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(typedNil.Contains(resolver, core.Capture(core.H("something", nil)))).To(BeTrue())

	storedValue, err := core.Classify(map[string]any{"something": 1})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(storedValue.Contains(resolver, core.Capture(core.H("something", nil)))).To(BeFalse())
}
