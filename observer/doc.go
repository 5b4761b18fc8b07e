// Package observer demonstrates the Observer pattern: a Subject holding an
// ordered list of observer references and notifying each of them
// synchronously when an event occurs.
//
// 🚀 What is a subject/observer pair?
//
//	Observers implement Update(Event) and register via Subscribe; the
//	subject never owns them. NotifyAll delivers one event to every
//	observer, synchronously and in subscription order. A failure in one
//	observer does not abort delivery to the rest: NotifyAll completes the
//	full pass, then returns all collected failures joined into one error.
//
// ✨ Key properties:
//   - Subscription order is delivery order
//   - Unsubscribe removes by identity, not by equality of state
//   - Failure isolation – errors.Join surfaces every failed callback
//     without silencing any delivery
//   - Single-threaded synchronous delivery; no concurrency guarantee
//
// ⚙️ Usage:
//
//	s := observer.NewSubject()
//	_ = s.Subscribe(observer.ObserverFunc(func(e observer.Event) error {
//		fmt.Println("got", e.Topic)
//		return nil
//	}))
//	err := s.NotifyAll(observer.Event{Topic: "deploy", Payload: "v1.2.0"})
package observer
