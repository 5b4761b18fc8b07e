package builder

import (
	"fmt"
	"strings"
)

// Pizza is the finished product. It is a plain value: once returned by
// Build it is never mutated by the builder again.
type Pizza struct {
	// Dough names the base (e.g. "thin", "classic").
	Dough string
	// Sauce names the spread (e.g. "tomato", "pesto").
	Sauce string
	// Cheese names the cheese, empty for none.
	Cheese string
	// Toppings lists extras in the order they were added.
	Toppings []string
}

// String renders the pizza as a single descriptive line.
func (p Pizza) String() string {
	desc := fmt.Sprintf("%s dough, %s sauce", p.Dough, p.Sauce)
	if p.Cheese != "" {
		desc += ", " + p.Cheese
	}
	if len(p.Toppings) > 0 {
		desc += ", toppings: " + strings.Join(p.Toppings, "+")
	}

	return desc
}

// Builder accumulates pizza fields step by step. The zero value is usable;
// NewBuilder exists for symmetry with the rest of the catalog.
//
// Builder is not safe for concurrent use; one goroutine assembles one pizza.
type Builder struct {
	p Pizza
}

// NewBuilder returns an empty Builder ready for chaining.
func NewBuilder() *Builder {
	return &Builder{}
}

// Dough sets the dough, overwriting any previous choice, and returns the
// same builder to permit fluent chaining.
func (b *Builder) Dough(kind string) *Builder {
	b.p.Dough = kind

	return b
}

// Sauce sets the sauce, overwriting any previous choice.
func (b *Builder) Sauce(kind string) *Builder {
	b.p.Sauce = kind

	return b
}

// Cheese sets the cheese, overwriting any previous choice.
func (b *Builder) Cheese(kind string) *Builder {
	b.p.Cheese = kind

	return b
}

// Topping appends one topping. Unlike the scalar setters it accumulates:
// call it once per extra.
func (b *Builder) Topping(name string) *Builder {
	b.p.Toppings = append(b.p.Toppings, name)

	return b
}

// Build finalizes the current state into a Pizza snapshot.
//
// The builder remains usable afterwards: each call returns an independent
// copy reflecting the fields set so far, so mutating the builder after
// Build never aliases into an already-returned Pizza.
//
// Complexity: O(t) for t toppings (slice copy).
func (b *Builder) Build() Pizza {
	out := b.p
	if len(b.p.Toppings) > 0 {
		out.Toppings = make([]string, len(b.p.Toppings))
		copy(out.Toppings, b.p.Toppings)
	}

	return out
}
