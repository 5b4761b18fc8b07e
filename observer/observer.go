package observer

import (
	"errors"
	"fmt"
)

// Sentinel errors for subscription management.
var (
	// ErrNilObserver is returned when a nil observer is (un)subscribed.
	ErrNilObserver = errors.New("observer: nil observer")

	// ErrAlreadySubscribed is returned when the same observer reference
	// is subscribed twice.
	ErrAlreadySubscribed = errors.New("observer: already subscribed")

	// ErrNotSubscribed is returned when unsubscribing a reference the
	// subject does not hold.
	ErrNotSubscribed = errors.New("observer: not subscribed")
)

// Event is the payload delivered to observers on each notification.
type Event struct {
	// Topic names what happened.
	Topic string
	// Payload carries the change itself.
	Payload string
}

// Observer is the capability a subscriber exposes. Update is invoked
// synchronously by the subject; returning an error reports a delivery
// failure without stopping delivery to later observers.
type Observer interface {
	Update(e Event) error
}

// FuncObserver adapts a plain function to the Observer capability.
// Obtain one via ObserverFunc; its pointer is the subscription identity.
type FuncObserver struct {
	fn func(Event) error
}

// ObserverFunc wraps fn so it can subscribe like any other observer.
// The returned pointer is what Subscribe and Unsubscribe match on.
func ObserverFunc(fn func(Event) error) *FuncObserver {
	return &FuncObserver{fn: fn}
}

// Update invokes the wrapped function.
func (o *FuncObserver) Update(e Event) error { return o.fn(e) }

// Subject maintains the ordered set of subscribed observers and delivers
// events to them. References are non-owning: observers live independently
// of the subject. Subject is not safe for concurrent use; the contract is
// single-threaded synchronous delivery.
type Subject struct {
	subs []Observer
}

// NewSubject returns an empty subject.
func NewSubject() *Subject {
	return &Subject{}
}

// Subscribe appends o to the delivery list. The same reference may be
// registered only once; a second registration returns ErrAlreadySubscribed.
//
// Complexity: O(n) duplicate scan over n subscribers.
func (s *Subject) Subscribe(o Observer) error {
	if o == nil {
		return ErrNilObserver
	}
	for _, existing := range s.subs {
		if existing == o {
			return ErrAlreadySubscribed
		}
	}
	s.subs = append(s.subs, o)

	return nil
}

// Unsubscribe removes o by identity, preserving the order of the
// remaining observers. Unknown references return ErrNotSubscribed.
//
// Complexity: O(n) scan plus O(n) shift.
func (s *Subject) Unsubscribe(o Observer) error {
	if o == nil {
		return ErrNilObserver
	}
	for i, existing := range s.subs {
		if existing == o {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)

			return nil
		}
	}

	return ErrNotSubscribed
}

// Len reports the current number of subscribers.
func (s *Subject) Len() int { return len(s.subs) }

// NotifyAll delivers e to every observer, synchronously, in subscription
// order. A failing Update never aborts the pass: delivery continues to
// the remaining observers and all failures are returned afterwards,
// joined into a single error with each one tagged by its delivery index.
//
// Complexity: O(n) Update calls for n subscribers.
func (s *Subject) NotifyAll(e Event) error {
	var errs []error
	for i, o := range s.subs {
		if err := o.Update(e); err != nil {
			// Isolate and continue; surface the failure after the pass.
			errs = append(errs, fmt.Errorf("observer %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}
