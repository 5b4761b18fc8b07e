package singleton

import "sync"

// Counter is the process-wide event counter handed out by Instance.
// All methods are safe for concurrent use.
type Counter struct {
	mu    sync.Mutex
	total uint64
}

// Add increments the counter by delta and returns the new total.
func (c *Counter) Add(delta uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total += delta

	return c.total
}

// Total returns the current count.
func (c *Counter) Total() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.total
}

var (
	once     sync.Once
	instance *Counter
)

// Instance returns the one shared Counter, constructing it on first call.
//
// Initialization is exactly-once even when N goroutines race the first
// access: sync.Once serializes construction and publishes the result,
// so every caller observes the same reference.
//
// Complexity: O(1); after the first call it is a single atomic load.
func Instance() *Counter {
	once.Do(func() {
		instance = &Counter{}
	})

	return instance
}
