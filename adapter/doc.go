// Package adapter demonstrates the Adapter pattern: an incompatible
// existing type wrapped behind the capability interface callers expect.
//
// The modern fleet speaks Charger (PlugUSBC); the warehouse is full of
// LegacyCharger units that only know ConnectMicroUSB. MicroUSBAdapter
// implements Charger by forwarding each call one-to-one to the wrapped
// legacy unit. Only the signature changes; the behavior, side effects
// included, is the legacy unit's own.
//
// ⚙️ Usage:
//
//	legacy := adapter.NewLegacyCharger("warehouse-7")
//	c, err := adapter.NewMicroUSBAdapter(legacy)
//	if err != nil { ... }
//	fmt.Println(c.PlugUSBC()) // delegates to legacy.ConnectMicroUSB()
package adapter
