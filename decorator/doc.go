// Package decorator demonstrates the Decorator pattern: a base component
// and any number of wrappers sharing one capability interface, each
// wrapper delegating inward and augmenting the observed result.
//
// 🚀 What is a decorator?
//
//	Pizza is the capability (Description, Cost). Margherita is the base.
//	ExtraCheese, Olives and Mushrooms each hold exactly one inner Pizza:
//	their methods first call the inner component, then augment the result
//	(append text, add a surcharge). The wrapped component is never
//	mutated; decorators only transform what they observe.
//
// ✨ Key properties:
//   - Nesting order determines augmentation order, never correctness
//   - Arbitrary depth: decorators wrap decorators
//   - Margherita at 6.99 plus ExtraCheese (+1.50) costs 8.49
//
// ⚙️ Usage:
//
//	p := decorator.WithExtraCheese(decorator.NewMargherita())
//	fmt.Println(p.Description(), p.Cost()) // "margherita + extra cheese 8.49"
package decorator
