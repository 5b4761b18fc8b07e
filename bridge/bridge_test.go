package bridge_test

import (
	"testing"

	"github.com/katalvlaran/gopatterns/bridge"
	"github.com/stretchr/testify/assert"
)

// TestBridge_CrossProduct verifies every shape×renderer combination is
// independently valid and produces the expected pairing of geometry and
// medium.
func TestBridge_CrossProduct(t *testing.T) {
	cases := []struct {
		name string
		draw func() string
		want string
	}{
		{"circle/vector", bridge.NewCircle(2.5, bridge.VectorRenderer{}).Draw,
			"circle of radius 2.5 as vector paths"},
		{"circle/raster", bridge.NewCircle(2.5, bridge.RasterRenderer{}).Draw,
			"circle of radius 2.5 as pixels"},
		{"square/vector", bridge.NewSquare(4.0, bridge.VectorRenderer{}).Draw,
			"square of side 4.0 as vector paths"},
		{"square/raster", bridge.NewSquare(4.0, bridge.RasterRenderer{}).Draw,
			"square of side 4.0 as pixels"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.draw())
		})
	}
}

// TestBridge_ImplementationSwap checks that changing only the renderer at
// construction changes behavior while the abstraction's code is untouched.
func TestBridge_ImplementationSwap(t *testing.T) {
	vector := bridge.NewCircle(1.0, bridge.VectorRenderer{})
	raster := bridge.NewCircle(1.0, bridge.RasterRenderer{})

	assert.NotEqual(t, vector.Draw(), raster.Draw(),
		"same abstraction, different implementation, different output")
}
