package bridge_test

import (
	"fmt"

	"github.com/katalvlaran/gopatterns/bridge"
)

// Example demonstrates the shape×renderer cross-product: two abstraction
// variants paired freely with two implementation variants.
func Example() {
	shapes := []interface{ Draw() string }{
		bridge.NewCircle(2.5, bridge.VectorRenderer{}),
		bridge.NewCircle(2.5, bridge.RasterRenderer{}),
		bridge.NewSquare(4.0, bridge.VectorRenderer{}),
		bridge.NewSquare(4.0, bridge.RasterRenderer{}),
	}

	for _, s := range shapes {
		fmt.Println(s.Draw())
	}

	// Output:
	// circle of radius 2.5 as vector paths
	// circle of radius 2.5 as pixels
	// square of side 4.0 as vector paths
	// square of side 4.0 as pixels
}
