// Package bridge demonstrates the Bridge pattern: abstractions and
// implementations varying independently, combined at construction time.
//
// 🚀 What is a bridge?
//
//	Shapes (Circle, Square) are the abstraction side; Renderers (vector,
//	raster) are the implementation side. A shape holds one Renderer
//	reference and delegates its Draw to it. Any shape pairs with any
//	renderer, so S shapes and R renderers yield S×R behaviors from S+R
//	types instead of S·R subclasses.
//
// ✨ Key properties:
//   - Swapping the renderer at construction changes output without
//     touching shape code
//   - Every combination in the cross-product is independently valid
//
// ⚙️ Usage:
//
//	c := bridge.NewCircle(2.5, bridge.VectorRenderer{})
//	fmt.Println(c.Draw()) // "circle of radius 2.5 as vector paths"
package bridge
