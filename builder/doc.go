// Package builder demonstrates the Builder pattern: step-by-step assembly
// of a product through fluent, chainable setters and a terminal Build.
//
// 🚀 What is a builder?
//
//	A mutable Builder collects named fields one call at a time, each setter
//	returning the same receiver so calls chain in one expression. Build()
//	finalizes the current state into an immutable Pizza snapshot. The
//	builder stays reusable: every Build returns a fresh snapshot of
//	whatever has been set so far (last write wins per field).
//
// ✨ Key properties:
//   - Fluent chaining – setters return the same *Builder, never a copy
//   - Last-write-wins – repeated setters overwrite the field
//   - Snapshot semantics – Build copies state out; later mutation of the
//     builder never alters an already-built Pizza
//
// A Director wraps common setter sequences into named recipes
// (Vegetarian, Pepperoni) so callers can order by name instead of
// spelling out every step.
//
// ⚙️ Usage:
//
//	pizza := builder.NewBuilder().
//		Dough("thin").
//		Sauce("tomato").
//		Cheese("mozzarella").
//		Topping("basil").
//		Build()
//
// See example_test.go for director-driven construction.
package builder
