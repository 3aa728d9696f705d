package core

import "github.com/rs/zerolog"

// NegationMode selects how a negated evaluation combines its items.
type NegationMode int

// Negation modes.
const (
	// NegateConjunction negates the all-items conjunction: a negated evaluation
	// passes unless every item is present.
	NegateConjunction NegationMode = iota
	// NegateEach negates every item: a negated evaluation passes only when no
	// item is present.
	NegateEach
)

// Config holds the settings of a single evaluation.
type Config struct {
	Negate       bool
	NegationMode NegationMode
	NullObjects  NullObjectEquality
	Logger       zerolog.Logger
}

// Option configures an evaluation.
type Option func(*Config)

// Negated evaluates the negated form ("not to include").
func Negated() Option {
	return func(c *Config) {
		c.Negate = true
	}
}

// WithLogger sends evaluation traces to logger at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithNegationMode selects how a negated evaluation combines its items.
func WithNegationMode(mode NegationMode) Option {
	return func(c *Config) {
		c.NegationMode = mode
	}
}

// WithNullObjectEquality selects how null objects compare to each other.
func WithNullObjectEquality(strategy NullObjectEquality) Option {
	return func(c *Config) {
		c.NullObjects = strategy
	}
}

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) Config {
	config := Config{
		NegationMode: NegateConjunction,
		NullObjects:  NullObjectsByKind,
		Logger:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
