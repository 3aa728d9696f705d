package core

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Resolver decides whether a single candidate satisfies a single expected
// item.
type Resolver struct {
	equality Equality
	logger   zerolog.Logger
}

// NewResolver returns a Resolver configured by config.
func NewResolver(config Config) Resolver {
	return Resolver{
		equality: NewEquality(config.NullObjects),
		logger:   config.Logger,
	}
}

// MatchPairs checks that every pair of expected is stored in actual: the key
// must be present and its value must match. Returns (success, reason). If
// success is true, reason is empty.
func (r Resolver) MatchPairs(actual, expected Hash) (bool, string) {
	for _, pair := range expected {
		stored, found := actual.Lookup(pair.Key, r.equality.Equal)
		if !found {
			return false, "missing key " + Render(pair.Key)
		}

		if ok, reason := r.MatchValue(stored, pair.Value); !ok {
			return false, fmt.Sprintf("key %s: %s", Render(pair.Key), reason)
		}
	}

	return true, ""
}

// MatchValue checks if candidate matches expected.
// If expected is a tagged Predicate, uses its Match method.
// If both are mappings, compares them entry by entry.
// Otherwise, uses deep structural equality.
// Returns (success, reason). If success is true, reason is empty.
func (r Resolver) MatchValue(candidate, expected any) (bool, string) {
	if pred, ok := AsPredicate(expected); ok {
		success, err := pred.Match(candidate)
		if err != nil {
			r.logger.Debug().Err(err).Str("candidate", Render(candidate)).Msg("predicate rejected candidate")

			return false, err.Error()
		}

		if !success {
			return false, fmt.Sprintf("%s does not satisfy %s", Render(candidate), Render(expected))
		}

		return true, ""
	}

	if isMapping(expected) && isMapping(candidate) {
		return r.matchMappings(candidate, expected)
	}

	if r.equality.Equal(candidate, expected) {
		return true, ""
	}

	return false, fmt.Sprintf("expected %s, got %s", Render(expected), Render(candidate))
}

func (r Resolver) matchMappings(candidate, expected any) (bool, string) {
	actualHash, _ := asHash(candidate)
	expectedHash, _ := asHash(expected)

	if actualHash.Len() != expectedHash.Len() {
		return false, fmt.Sprintf("expected %d entries, got %d", expectedHash.Len(), actualHash.Len())
	}

	return r.MatchPairs(actualHash, expectedHash)
}
