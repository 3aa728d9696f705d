// Package diff renders the diff appended to containment failure messages.
//
// It is the default renderer for the inputs supplied by
// (*contain.IncludeMatcher).DiffInputs: the actual value and the expected
// items are split into lines and compared as a unified diff.
package diff

import (
	"reflect"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/fatih/color"

	"github.com/toejough/contain/internal/core"
)

// Option configures Render.
type Option func(*config)

// Render returns a unified diff from the expected items to the actual value.
// It returns an empty string when the two render identically.
func Render(actual any, expected []any, opts ...Option) string {
	cfg := config{expectedLabel: "expected", actualLabel: "actual"}
	for _, opt := range opts {
		opt(&cfg)
	}

	expectedLines := make([]string, 0, len(expected))
	for _, item := range expected {
		expectedLines = append(expectedLines, expectedItemLines(actual, item)...)
	}

	unified := textdiff.Unified(
		cfg.expectedLabel,
		cfg.actualLabel,
		joinLines(expectedLines),
		joinLines(core.DiffLines(actual)),
	)

	if cfg.colored {
		return colorize(unified)
	}

	return unified
}

// WithColor colours removed lines red, added lines green, and hunk headers
// cyan, whether or not the output is a terminal.
func WithColor() Option {
	return func(c *config) {
		c.colored = true
	}
}

// WithLabels overrides the "expected" and "actual" file labels.
func WithLabels(expected, actual string) Option {
	return func(c *config) {
		c.expectedLabel = expected
		c.actualLabel = actual
	}
}

type config struct {
	colored       bool
	expectedLabel string
	actualLabel   string
}

func colorize(unified string) string {
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)
	hunk := color.New(color.FgCyan)

	for _, each := range []*color.Color{removed, added, hunk} {
		each.EnableColor()
	}

	lines := strings.Split(unified, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunk.Sprint(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removed.Sprint(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = added.Sprint(line)
		}
	}

	return strings.Join(lines, "\n")
}

// expectedItemLines renders one expected item the way the actual value is
// split: raw substrings for text, entries for mappings, rendered values
// otherwise.
func expectedItemLines(actual, item any) []string {
	_, itemIsPredicate := core.AsPredicate(item)

	if !itemIsPredicate && isString(actual) && isString(item) {
		return strings.Split(reflect.ValueOf(item).String(), "\n")
	}

	return core.Capture(item).DiffLines()
}

func isString(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.String
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}
