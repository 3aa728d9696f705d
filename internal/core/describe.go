package core

import "strings"

// Conjunction joins phrases as natural language: "a", "a and b",
// "a, b, and c".
func Conjunction(phrases []string) string {
	return join(phrases, "and")
}

// Describe returns the description of an include of items, e.g.
// `include "a" and "b"`.
func Describe(items []Item) string {
	return "include " + Conjunction(itemStrings(items))
}

// Disjunction joins phrases as natural language: "a", "a or b",
// "a, b, or c".
func Disjunction(phrases []string) string {
	return join(phrases, "or")
}

// FailureMessage renders `expected <actual> [not ]to include <items>`.
func FailureMessage(actual any, items []Item, negate bool) string {
	verb := "to include"
	if negate {
		verb = "not to include"
	}

	return "expected " + Render(actual) + " " + verb + " " + Conjunction(itemStrings(items))
}

// AnyFailureMessage renders `expected <actual> to include <a or b>`, the
// message for a failed "includes none of" check.
func AnyFailureMessage(actual any, items []Item) string {
	return "expected " + Render(actual) + " to include " + Disjunction(itemStrings(items))
}

func itemStrings(items []Item) []string {
	rendered := make([]string, len(items))
	for i, item := range items {
		rendered[i] = item.String()
	}

	return rendered
}

func join(phrases []string, word string) string {
	switch len(phrases) {
	case 0:
		return ""
	case 1:
		return phrases[0]
	case 2: //nolint:mnd // the two-item form has no comma
		return phrases[0] + " " + word + " " + phrases[1]
	default:
		last := len(phrases) - 1

		return strings.Join(phrases[:last], ", ") + ", " + word + " " + phrases[last]
	}
}
