package contain

import (
	"slices"

	"github.com/toejough/contain/diff"
	"github.com/toejough/contain/internal/core"
)

// IncludeMatcher checks containment of its expected items. It implements
// gomega's GomegaMatcher, so Expect(actual).To(...) and NotTo(...) drive it,
// and it is a Predicate, so it can itself be an expected item.
//
// An IncludeMatcher is not modified after construction and may be shared
// between goroutines.
type IncludeMatcher struct {
	core.Tag

	expected []any
	items    []core.Item
	none     bool
	options  []Option
	diffOpts []diff.Option
}

// Include returns a matcher that passes when actual contains every expected
// item. Under NotTo, it fails only when every item is present.
func Include(expected ...any) *IncludeMatcher {
	return &IncludeMatcher{expected: expected, items: core.CaptureAll(expected)}
}

// IncludeNone returns a matcher that passes only when actual contains none of
// the expected items: a single present item fails it.
func IncludeNone(expected ...any) *IncludeMatcher {
	matcher := Include(expected...)
	matcher.none = true

	return matcher
}

// Description renders the matcher, e.g. `include "a" and "b"`.
func (m *IncludeMatcher) Description() string {
	if m.none {
		return "include none of " + core.Conjunction(itemStrings(m.items))
	}

	return core.Describe(m.items)
}

// DiffInputs returns the raw actual value and expected items for a diff
// renderer.
func (m *IncludeMatcher) DiffInputs(actual any) (any, []any) {
	return core.DiffInputs(actual, m.items)
}

// Diffable reports that failures of this matcher can be diffed.
func (m *IncludeMatcher) Diffable() bool {
	return core.Diffable()
}

// FailureMessage explains why Match returned false.
func (m *IncludeMatcher) FailureMessage(actual any) string {
	return m.withDiff(actual, core.FailureMessage(actual, m.items, m.none))
}

// Match reports whether actual satisfies the matcher. A type mismatch is
// returned as an error rather than a non-match.
func (m *IncludeMatcher) Match(actual any) (bool, error) {
	opts := m.options
	if m.none {
		opts = append(slices.Clone(opts), core.Negated(), core.WithNegationMode(core.NegateEach))
	}

	result, err := core.Evaluate(actual, m.expected, opts...)
	if err != nil {
		return false, err
	}

	return result.Passed, nil
}

// NegatedFailureMessage explains why Match returned true under NotTo.
func (m *IncludeMatcher) NegatedFailureMessage(actual any) string {
	if m.none {
		return m.withDiff(actual, core.AnyFailureMessage(actual, m.items))
	}

	return m.withDiff(actual, core.FailureMessage(actual, m.items, true))
}

// WithDiffOptions returns a copy of the matcher that renders diffs with opts.
func (m *IncludeMatcher) WithDiffOptions(opts ...diff.Option) *IncludeMatcher {
	clone := *m
	clone.diffOpts = append(slices.Clone(m.diffOpts), opts...)

	return &clone
}

// WithOptions returns a copy of the matcher that evaluates with opts.
func (m *IncludeMatcher) WithOptions(opts ...Option) *IncludeMatcher {
	clone := *m
	clone.options = append(slices.Clone(m.options), opts...)

	return &clone
}

func (m *IncludeMatcher) withDiff(actual any, message string) string {
	if !core.ShouldDiff(actual) {
		return message
	}

	diffActual, diffExpected := m.DiffInputs(actual)

	rendered := diff.Render(diffActual, diffExpected, m.diffOpts...)
	if rendered == "" {
		return message
	}

	return message + "\nDiff:\n" + rendered
}

func itemStrings(items []core.Item) []string {
	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = item.String()
	}

	return rendered
}
