// Package strategy demonstrates the Strategy pattern: a context holding
// one interchangeable algorithm reference, swappable at any time before
// invocation.
//
// 🚀 What is a strategy?
//
//	Strategy is the algorithm capability (Apply, plus Name for
//	diagnostics). UpperCase, LowerCase and Reverse are interchangeable
//	variants. Context delegates Run to whichever strategy it currently
//	holds; SetStrategy swaps the reference, affecting subsequent calls
//	only, never results already produced.
//
// ⚙️ Usage:
//
//	ctx, _ := strategy.NewContext(strategy.UpperCase{})
//	out, _ := ctx.Run("hello") // "HELLO"
//	_ = ctx.SetStrategy(strategy.Reverse{})
//	out, _ = ctx.Run("hello")  // "olleh"
package strategy
