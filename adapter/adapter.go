package adapter

import (
	"errors"
	"fmt"
)

// ErrNilAdaptee is returned when an adapter is constructed around nothing.
var ErrNilAdaptee = errors.New("adapter: nil adaptee")

// Charger is the target capability the rest of the system depends on.
type Charger interface {
	// PlugUSBC connects the charger and returns its status line.
	PlugUSBC() string
}

// LegacyCharger is the pre-existing, incompatible type. It cannot be
// changed and knows nothing about the Charger interface.
type LegacyCharger struct {
	unit string
}

// NewLegacyCharger returns a legacy unit labelled with its inventory tag.
func NewLegacyCharger(unit string) *LegacyCharger {
	return &LegacyCharger{unit: unit}
}

// ConnectMicroUSB is the legacy operation; note the incompatible name.
func (l *LegacyCharger) ConnectMicroUSB() string {
	return fmt.Sprintf("micro-USB charger %s connected", l.unit)
}

// microUSBAdapter adapts a LegacyCharger to the Charger capability.
// Each operation is a direct forward to exactly one legacy operation;
// semantics are preserved, only the signature differs.
type microUSBAdapter struct {
	legacy *LegacyCharger
}

// NewMicroUSBAdapter wraps a legacy unit behind the Charger interface.
// A nil legacy unit returns ErrNilAdaptee.
func NewMicroUSBAdapter(legacy *LegacyCharger) (Charger, error) {
	if legacy == nil {
		return nil, ErrNilAdaptee
	}

	return &microUSBAdapter{legacy: legacy}, nil
}

// PlugUSBC forwards to the wrapped unit's ConnectMicroUSB unchanged.
func (a *microUSBAdapter) PlugUSBC() string {
	return a.legacy.ConnectMicroUSB()
}
