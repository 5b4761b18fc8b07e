package decorator

// Pizza is the capability shared by the base component and every
// decorator, so wrapped and unwrapped values are interchangeable.
type Pizza interface {
	// Description lists the base and every augmentation, innermost first.
	Description() string
	// Cost totals the base price plus every surcharge.
	Cost() float64
}

// margherita is the base component every chain bottoms out at.
type margherita struct{}

// NewMargherita returns the plain base pizza at 6.99.
func NewMargherita() Pizza {
	return margherita{}
}

func (margherita) Description() string { return "margherita" }
func (margherita) Cost() float64       { return 6.99 }

// topping is the one decorator shape: exactly one inner Pizza plus the
// augmentation it contributes. Each method delegates inward first, then
// augments the observed result; the inner component is never mutated.
type topping struct {
	inner     Pizza
	label     string
	surcharge float64
}

func (t topping) Description() string { return t.inner.Description() + " + " + t.label }
func (t topping) Cost() float64       { return t.inner.Cost() + t.surcharge }

// WithExtraCheese wraps p, adding "extra cheese" for 1.50.
func WithExtraCheese(p Pizza) Pizza {
	return topping{inner: p, label: "extra cheese", surcharge: 1.50}
}

// WithOlives wraps p, adding "olives" for 0.75.
func WithOlives(p Pizza) Pizza {
	return topping{inner: p, label: "olives", surcharge: 0.75}
}

// WithMushrooms wraps p, adding "mushrooms" for 1.25.
func WithMushrooms(p Pizza) Pizza {
	return topping{inner: p, label: "mushrooms", surcharge: 1.25}
}
