package factory_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gopatterns/factory"
)

// ExampleNew demonstrates constructing variants through the factory and
// branching on the sentinel error for an unsupported tag.
//
// Scenario:
//
//	A rental desk hands out whatever vehicle the customer names, without
//	ever naming a concrete type itself.
func ExampleNew() {
	for _, kind := range factory.Kinds() {
		v, err := factory.New(kind)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(v.Drive())
	}

	// An unknown tag fails with ErrUnknownKind.
	_, err := factory.New("hovercraft")
	fmt.Println(errors.Is(err, factory.ErrUnknownKind))

	// Output:
	// pedaling a bicycle on 2 wheels
	// driving a car on 4 wheels
	// riding a motorcycle on 2 wheels
	// true
}
