package bridge

import "fmt"

// Renderer is the implementation capability. Shapes delegate the actual
// drawing here and never know which variant they hold.
type Renderer interface {
	// RenderCircle produces the medium-specific drawing of a circle.
	RenderCircle(radius float64) string
	// RenderSquare produces the medium-specific drawing of a square.
	RenderSquare(side float64) string
}

// VectorRenderer draws shapes as scalable vector paths.
type VectorRenderer struct{}

// RenderCircle draws a circle as vector paths.
func (VectorRenderer) RenderCircle(radius float64) string {
	return fmt.Sprintf("circle of radius %.1f as vector paths", radius)
}

// RenderSquare draws a square as vector paths.
func (VectorRenderer) RenderSquare(side float64) string {
	return fmt.Sprintf("square of side %.1f as vector paths", side)
}

// RasterRenderer draws shapes as pixel grids.
type RasterRenderer struct{}

// RenderCircle draws a circle as pixels.
func (RasterRenderer) RenderCircle(radius float64) string {
	return fmt.Sprintf("circle of radius %.1f as pixels", radius)
}

// RenderSquare draws a square as pixels.
func (RasterRenderer) RenderSquare(side float64) string {
	return fmt.Sprintf("square of side %.1f as pixels", side)
}

// Circle is an abstraction variant: geometry on the shape side, medium on
// the renderer side. The renderer is fixed at construction; swapping it
// there changes behavior without changing this type.
type Circle struct {
	radius   float64
	renderer Renderer
}

// NewCircle pairs a radius with a rendering implementation.
func NewCircle(radius float64, r Renderer) Circle {
	return Circle{radius: radius, renderer: r}
}

// Draw delegates to the held renderer.
func (c Circle) Draw() string {
	return c.renderer.RenderCircle(c.radius)
}

// Square is the second abstraction variant, combinable with any Renderer.
type Square struct {
	side     float64
	renderer Renderer
}

// NewSquare pairs a side length with a rendering implementation.
func NewSquare(side float64, r Renderer) Square {
	return Square{side: side, renderer: r}
}

// Draw delegates to the held renderer.
func (s Square) Draw() string {
	return s.renderer.RenderSquare(s.side)
}
