// Package state holds per-screen UI state as tagged variants. Each screen
// family has a sealed interface with one struct per state; consumers switch
// over the variants exhaustively. Holders are single-writer: only the screen's
// own flow mutates them, subscribers just observe snapshots.
package state

import "sync"

// holder is the shared publish machinery. Every subscriber gets the current
// snapshot on subscribe and each transition after that. Slow subscribers drop
// intermediate snapshots rather than block the writer.
type holder[T any] struct {
	mu      sync.Mutex
	current T
	subs    map[int]chan T
	nextID  int
}

func newHolder[T any](initial T) *holder[T] {
	return &holder[T]{
		current: initial,
		subs:    make(map[int]chan T),
	}
}

func (h *holder[T]) Current() T {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

func (h *holder[T]) set(next T) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = next
	for _, ch := range h.subs {
		select {
		case ch <- next:
		default:
			// Drop the stale snapshot and leave the latest one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- next:
			default:
			}
		}
	}
}

// Subscribe returns a snapshot channel and a cancel function. The current
// state is delivered immediately.
func (h *holder[T]) Subscribe() (<-chan T, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan T, 1)
	ch <- h.current
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
