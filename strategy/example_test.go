package strategy_test

import (
	"fmt"

	"github.com/katalvlaran/gopatterns/strategy"
)

// ExampleContext renders the same input under two algorithms, swapping
// mid-stream.
func ExampleContext() {
	ctx, err := strategy.NewContext(strategy.UpperCase{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(ctx.Run("design patterns"))

	_ = ctx.SetStrategy(strategy.Reverse{})
	fmt.Println(ctx.Run("design patterns"))

	// Output:
	// DESIGN PATTERNS
	// snrettap ngised
}
