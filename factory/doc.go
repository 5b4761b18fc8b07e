// Package factory demonstrates the Factory Method pattern: a pure mapping
// from a kind tag to a constructed variant of one capability interface.
//
// 🚀 What is a factory?
//
//	A single construction entry-point, New(kind), that hides which concrete
//	type backs each tag. Callers receive a Vehicle and depend only on its
//	capability (Drive, Wheels), never on the variant behind it.
//
// ✨ Key properties:
//   - No shared state – every call constructs a fresh variant
//   - Deterministic – the same kind always yields the same behavior
//   - Closed error surface – an unknown kind fails with ErrUnknownKind
//
// ⚙️ Usage:
//
//	v, err := factory.New(factory.KindBicycle)
//	if err != nil {
//		// errors.Is(err, factory.ErrUnknownKind) for unsupported tags
//	}
//	fmt.Println(v.Drive())
//
// See example_test.go for runnable scenarios.
package factory
