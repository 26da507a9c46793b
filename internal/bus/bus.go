// Package bus is a minimal in-process pub/sub used to decouple the
// browser view, the window chrome and the control API.
package bus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var (
	mu       sync.RWMutex
	ctx      = context.Background()
	handlers = make(map[string][]func(ctx context.Context, event any))
)

// SetContext sets the context passed to handlers. Call once before the
// first Publish.
func SetContext(c context.Context) {
	mu.Lock()
	ctx = c
	mu.Unlock()
}

func topic[T any]() string {
	return fmt.Sprintf("%T", *new(T))
}

// Subscribe registers fn for events of type T. The name is only used
// for logging handler failures.
func Subscribe[T any](name string, fn func(ctx context.Context, event T) error) {
	mu.Lock()
	defer mu.Unlock()

	t := topic[T]()
	handlers[t] = append(handlers[t], func(ctx context.Context, event any) {
		if err := fn(ctx, event.(T)); err != nil {
			slog.Error("Failed to handle event", "package", "bus", "name", name, "topic", t, "error", err)
		}
	})
}

// Publish delivers event to every subscriber of its type, in the
// calling goroutine.
func Publish[T any](event T) {
	mu.RLock()
	fns := handlers[fmt.Sprintf("%T", event)]
	c := ctx
	mu.RUnlock()

	for _, fn := range fns {
		fn(c, event)
	}
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[*chan T]struct{})}
}

// Hub fans events of a single type out to channel subscribers so they
// can be consumed from a select loop.
type Hub[T any] struct {
	mu   sync.Mutex
	subs map[*chan T]struct{}
}

// Register attaches the hub to the package level bus and returns it.
func (h *Hub[T]) Register() *Hub[T] {
	Subscribe("bus.Hub", func(ctx context.Context, event T) error {
		h.mu.Lock()
		defer h.mu.Unlock()

		for sub := range h.subs {
			select {
			case <-ctx.Done():
			case *sub <- event:
			}
		}
		return nil
	})
	return h
}

// Subscribe returns a channel of events and a function that removes
// the subscription.
func (h *Hub[T]) Subscribe(ctx context.Context) (<-chan T, func()) {
	h.mu.Lock()
	c := make(chan T)
	key := &c
	h.subs[key] = struct{}{}
	h.mu.Unlock()

	return c, func() {
		h.mu.Lock()
		delete(h.subs, key)
		h.mu.Unlock()
	}
}
