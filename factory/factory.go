package factory

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownKind is returned by New when the requested kind has no
// registered variant. Branch with errors.Is; the wrapped message carries
// the offending tag.
var ErrUnknownKind = errors.New("factory: unknown vehicle kind")

// Kind tags a vehicle variant. The zero value is not a valid kind.
type Kind string

// Supported vehicle kinds.
const (
	KindCar        Kind = "car"
	KindBicycle    Kind = "bicycle"
	KindMotorcycle Kind = "motorcycle"
)

// Vehicle is the capability every variant exposes. Callers depend on this
// interface only; the concrete types below stay unexported.
type Vehicle interface {
	// Drive returns a human-readable description of one ride.
	Drive() string
	// Wheels reports the wheel count of the variant.
	Wheels() int
}

// car, bicycle and motorcycle are interchangeable Vehicle variants.
// They hold no state beyond their identity, so construction is trivial.
type car struct{}

func (car) Drive() string { return "driving a car on 4 wheels" }
func (car) Wheels() int   { return 4 }

type bicycle struct{}

func (bicycle) Drive() string { return "pedaling a bicycle on 2 wheels" }
func (bicycle) Wheels() int   { return 2 }

type motorcycle struct{}

func (motorcycle) Drive() string { return "riding a motorcycle on 2 wheels" }
func (motorcycle) Wheels() int   { return 2 }

// New constructs the Vehicle variant registered for kind.
//
// It is a pure tag-to-variant mapping: no shared state, no caching, a fresh
// value on every call. An unrecognized kind returns ErrUnknownKind wrapped
// with the offending tag.
//
// Complexity: O(1) time, O(1) space.
func New(kind Kind) (Vehicle, error) {
	switch kind {
	case KindCar:
		return car{}, nil
	case KindBicycle:
		return bicycle{}, nil
	case KindMotorcycle:
		return motorcycle{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Kinds returns all supported kind tags in sorted order, so callers can
// enumerate the catalog deterministically.
//
// Complexity: O(k log k) for k supported kinds.
func Kinds() []Kind {
	ks := []Kind{KindCar, KindBicycle, KindMotorcycle}
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })

	return ks
}
