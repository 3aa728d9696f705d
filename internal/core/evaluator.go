package core

// Result is the outcome of one containment evaluation.
type Result struct {
	// Passed is the all-or-nothing verdict.
	Passed bool
	// Negated records whether the negated form was evaluated.
	Negated bool
	// Kind is the shape the actual value was classified as.
	Kind Kind
	// Items are the expected items, in the order given.
	Items []Item
	// Failing explains the verdict: items that were absent for the positive
	// form, items that were present for the negated form. It never alters
	// Passed.
	Failing []Item
}

// Evaluate decides whether actual contains every expected item. Items may
// appear in actual in any order. With Negated, the verdict is inverted as
// selected by the negation mode.
func Evaluate(actual any, expected []any, opts ...Option) (Result, error) {
	config := NewConfig(opts...)
	items := CaptureAll(expected)
	result := Result{Negated: config.Negate, Items: items}

	container, err := Classify(actual)
	if err != nil {
		return result, err
	}

	result.Kind = container.Kind()
	resolver := NewResolver(config)

	var present, absent []Item

	for _, item := range items {
		found, err := container.Contains(resolver, item)
		if err != nil {
			return result, err
		}

		config.Logger.Debug().
			Stringer("container", container.Kind()).
			Stringer("item", item).
			Bool("present", found).
			Msg("evaluated expected item")

		if found {
			present = append(present, item)
		} else {
			absent = append(absent, item)
		}
	}

	allPresent := len(absent) == 0

	switch {
	case !config.Negate:
		result.Passed = allPresent
		result.Failing = absent
	case config.NegationMode == NegateEach:
		result.Passed = len(present) == 0
		result.Failing = present
	default:
		result.Passed = !allPresent
		result.Failing = present
	}

	config.Logger.Debug().
		Bool("negated", config.Negate).
		Bool("passed", result.Passed).
		Int("failing", len(result.Failing)).
		Msg("containment evaluated")

	return result, nil
}
