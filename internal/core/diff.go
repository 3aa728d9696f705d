package core

import (
	"reflect"
	"strings"
)

// DiffInputs returns the raw values an external diff renderer compares. The
// engine computes no diff itself.
func DiffInputs(actual any, items []Item) (any, []any) {
	return actual, Values(items)
}

// DiffLines splits a value into the lines a textual diff works on: text by
// newline, sequences by element, mappings by entry.
func DiffLines(value any) []string {
	if value == nil {
		return []string{Render(value)}
	}

	if hash, ok := asHash(value); ok {
		lines := make([]string, len(hash))
		for i, entry := range hash {
			lines[i] = Render(entry.Key) + ": " + Render(entry.Value)
		}

		return lines
	}

	reflected := reflect.ValueOf(value)

	switch reflected.Kind() {
	case reflect.String:
		return strings.Split(reflected.String(), "\n")
	case reflect.Slice, reflect.Array:
		lines := make([]string, reflected.Len())
		for i := range reflected.Len() {
			lines[i] = Render(reflected.Index(i).Interface())
		}

		return lines
	default:
		return []string{Render(value)}
	}
}

// Diffable reports that containment failures can always be diffed.
func Diffable() bool {
	return true
}

// ShouldDiff reports whether a failure against actual is worth a diff: the
// actual is multi-line text or a mapping.
func ShouldDiff(actual any) bool {
	if isMapping(actual) {
		return true
	}

	reflected := reflect.ValueOf(actual)

	return reflected.Kind() == reflect.String && strings.Contains(reflected.String(), "\n")
}
