package tempo

import (
	"fmt"
	"log/slog"
)

// Channel is a typed publish/subscribe primitive. The zero value is ready to
// use. Listeners run synchronously in subscription order; a listener that
// panics is recovered and logged so the remaining listeners still run.
//
// Channel is not safe for concurrent use.
type Channel[E any] struct {
	listeners []listener[E]
	nextID    uint64
	logger    *slog.Logger

	// owner resolves the logger lazily for channels owned by a Timeline, so
	// reparenting picks up the new ancestor's logger.
	owner func() *slog.Logger
}

type listener[E any] struct {
	id   uint64
	fn   func(E)
	once bool
}

// Subscription removes a listener from the channel it was registered on.
// The zero value is a valid no-op.
type Subscription struct {
	remove func()
}

// Remove unregisters the listener. Calling Remove more than once is a no-op.
func (s Subscription) Remove() {
	if s.remove != nil {
		s.remove()
	}
}

// Subscribe registers fn to be called on every Emit.
func (c *Channel[E]) Subscribe(fn func(E)) Subscription {
	return c.add(fn, false)
}

// Once registers fn to be called on the next Emit only.
func (c *Channel[E]) Once(fn func(E)) Subscription {
	return c.add(fn, true)
}

func (c *Channel[E]) add(fn func(E), once bool) Subscription {
	if fn == nil {
		return Subscription{}
	}
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listener[E]{id: id, fn: fn, once: once})
	return Subscription{remove: func() { c.removeID(id) }}
}

// removeID drops the listener with the given id and reports whether it was
// registered. The slice is rebuilt rather than shifted in place so an Emit
// already iterating the old slice is not disturbed.
func (c *Channel[E]) removeID(id uint64) bool {
	for i := range c.listeners {
		if c.listeners[i].id == id {
			next := make([]listener[E], 0, len(c.listeners)-1)
			next = append(next, c.listeners[:i]...)
			next = append(next, c.listeners[i+1:]...)
			c.listeners = next
			return true
		}
	}
	return false
}

// Emit delivers e to every listener registered before the call. A Once
// listener already consumed by a nested Emit is skipped.
func (c *Channel[E]) Emit(e E) {
	ls := c.listeners
	for i := range ls {
		if ls[i].once && !c.removeID(ls[i].id) {
			continue
		}
		c.call(ls[i].fn, e)
	}
}

func (c *Channel[E]) call(fn func(E), e E) {
	defer func() {
		if r := recover(); r != nil {
			c.log().Error("tempo: listener panicked", "event", fmt.Sprintf("%T", e), "panic", r)
		}
	}()
	fn(e)
}

// Len returns the number of registered listeners.
func (c *Channel[E]) Len() int {
	return len(c.listeners)
}

// Clear removes all listeners.
func (c *Channel[E]) Clear() {
	c.listeners = nil
}

// SetLogger sets the logger used to report recovered listener panics.
// Nil restores the silent default.
func (c *Channel[E]) SetLogger(l *slog.Logger) {
	c.logger = l
}

func (c *Channel[E]) log() *slog.Logger {
	if c.logger == nil && c.owner != nil {
		return c.owner()
	}
	if c.logger == nil {
		return nopLogger
	}
	return c.logger
}
