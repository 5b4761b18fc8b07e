package builder

// Director wraps common setter sequences into named recipes so callers can
// order a pizza without knowing the individual construction steps.
//
// Each recipe drives a fresh Builder, so directors carry no state and may
// be shared freely.
type Director struct{}

// NewDirector returns a recipe book over the pizza Builder.
func NewDirector() Director {
	return Director{}
}

// Vegetarian assembles the house vegetarian pizza.
func (Director) Vegetarian() Pizza {
	return NewBuilder().
		Dough("thin").
		Sauce("tomato").
		Cheese("mozzarella").
		Topping("bell pepper").
		Topping("olives").
		Topping("basil").
		Build()
}

// Pepperoni assembles the classic pepperoni pizza.
func (Director) Pepperoni() Pizza {
	return NewBuilder().
		Dough("classic").
		Sauce("tomato").
		Cheese("mozzarella").
		Topping("pepperoni").
		Build()
}
