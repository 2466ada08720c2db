// internal/domain/i18n/coordinator.go
package i18n

import "sync"

type subscriber struct {
	id int
	fn func(LocaleChange)
}

// Coordinator is the locale-change notification hub. Page renderers
// register a callback at construction and deregister on teardown; broadcast
// is synchronous and runs in subscription order, mirroring single-threaded
// event dispatch.
type Coordinator struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

// NewCoordinator creates an empty coordinator
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Subscribe registers a locale-change listener and returns its cancel func
func (c *Coordinator) Subscribe(fn func(LocaleChange)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Broadcast delivers the change to every subscriber in subscription order
func (c *Coordinator) Broadcast(change LocaleChange) {
	c.mu.Lock()
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(change)
	}
}

// SubscriberCount reports how many listeners are registered
func (c *Coordinator) SubscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
