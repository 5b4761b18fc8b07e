// Package gopatterns is a reference catalog of the classic object-oriented
// design patterns, reworked into idiomatic Go — small capability interfaces,
// sentinel errors, and zero hidden state.
//
// 🚀 What is gopatterns?
//
//	A collection of nine independent, uncoupled packages, one per pattern:
//		• Creational: factory, builder, singleton
//		• Structural: adapter, bridge, decorator
//		• Behavioral: observer, command, strategy
//
// ✨ Why choose gopatterns?
//
//   - Beginner-friendly – minimal API per pattern, clear, intuitive naming
//   - Idiomatic – interfaces over inheritance, errors over exceptions
//   - Pure Go – no cgo, no hidden deps
//   - Leaf packages – no pattern depends on another; copy one out freely
//
// Every package exposes one capability interface (the minimal operation set
// a caller depends on) implemented by interchangeable variants; callers never
// touch a concrete variant type directly. Unsupported requests fail with
// package-level sentinel errors, branchable via errors.Is.
//
// Quick taste (factory):
//
//	v, err := factory.New(factory.KindCar)
//	if err != nil { ... }
//	fmt.Println(v.Drive()) // "driving a car on 4 wheels"
//
// Dive into each package's doc.go and example_test.go for runnable
// walkthroughs of the remaining eight patterns.
//
//	go get github.com/katalvlaran/gopatterns
package gopatterns
