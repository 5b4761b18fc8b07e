package strategy

import (
	"errors"
	"strings"
)

// ErrNilStrategy is returned when a context is created with, or swapped
// to, no algorithm.
var ErrNilStrategy = errors.New("strategy: nil strategy")

// Strategy is the interchangeable algorithm capability. Implementations
// must be stateless: equal input, equal output, no side effects.
type Strategy interface {
	// Apply transforms the input text.
	Apply(s string) string
	// Name identifies the variant for logs and diagnostics.
	Name() string
}

// UpperCase maps the text to upper case.
type UpperCase struct{}

// Apply implements Strategy.
func (UpperCase) Apply(s string) string { return strings.ToUpper(s) }

// Name implements Strategy.
func (UpperCase) Name() string { return "upper" }

// LowerCase maps the text to lower case.
type LowerCase struct{}

// Apply implements Strategy.
func (LowerCase) Apply(s string) string { return strings.ToLower(s) }

// Name implements Strategy.
func (LowerCase) Name() string { return "lower" }

// Reverse reverses the text rune by rune.
type Reverse struct{}

// Apply implements Strategy.
func (Reverse) Apply(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// Name implements Strategy.
func (Reverse) Name() string { return "reverse" }

// Context holds the one current algorithm and delegates Run to it.
// Context is not safe for concurrent use.
type Context struct {
	current Strategy
}

// NewContext returns a context bound to the given algorithm.
// A nil strategy returns ErrNilStrategy.
func NewContext(s Strategy) (*Context, error) {
	if s == nil {
		return nil, ErrNilStrategy
	}

	return &Context{current: s}, nil
}

// SetStrategy swaps the algorithm reference. The swap affects subsequent
// Run calls only; results already produced are untouched.
func (c *Context) SetStrategy(s Strategy) error {
	if s == nil {
		return ErrNilStrategy
	}
	c.current = s

	return nil
}

// StrategyName reports which variant the context currently holds.
func (c *Context) StrategyName() string { return c.current.Name() }

// Run delegates the transformation to the current algorithm.
func (c *Context) Run(input string) string {
	return c.current.Apply(input)
}
