// Package singleton demonstrates the Singleton pattern: one process-wide
// value, constructed lazily on first access and shared by every caller.
//
// 🚀 What is a singleton?
//
//	Instance() returns the single shared *Counter. The first call
//	constructs it; every later call returns the same reference.
//	Construction is unexported, so the only way to obtain a Counter is
//	through Instance.
//
// ✨ Key properties:
//   - Exactly-once initialization under concurrent first access,
//     guaranteed by sync.Once (the naive check-then-create is racy and
//     deliberately avoided)
//   - The shared Counter itself is safe for concurrent use; its state is
//     guarded by a mutex
//
// ⚙️ Usage:
//
//	singleton.Instance().Add(1)
//	total := singleton.Instance().Total() // same counter, everywhere
package singleton
