package result

import (
	"context"
	"sync"
)

// Unit is the value type for operations whose success carries no payload.
type Unit struct{}

// Stream is a single-subscriber sequence of envelopes for one operation
// invocation. It enforces the emission contract: one Loading first, then at
// most one terminal envelope, after which the stream is closed. Extra terminal
// emissions are dropped rather than delivered, so a consumer can never observe
// two terminal states.
type Stream[T any] struct {
	mu       sync.Mutex
	ch       chan Result[T]
	terminal bool
}

// NewStream returns a stream with enough buffer to hold both emissions, so
// producers never block even when the consumer drains late.
func NewStream[T any]() *Stream[T] {
	return &Stream[T]{ch: make(chan Result[T], 2)}
}

// Events is the subscription channel. It is closed after the terminal
// envelope has been delivered.
func (s *Stream[T]) Events() <-chan Result[T] {
	return s.ch
}

// Loading emits the pending envelope. Calls after a terminal emission are
// dropped.
func (s *Stream[T]) Loading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.terminal {
		return
	}
	s.ch <- Loading[T]()
}

// Succeed emits the terminal Success envelope and closes the stream.
func (s *Stream[T]) Succeed(value T) {
	s.emitTerminal(Success(value))
}

// Fail emits the terminal Error envelope and closes the stream.
func (s *Stream[T]) Fail(message string) {
	s.emitTerminal(Failure[T](message))
}

func (s *Stream[T]) emitTerminal(r Result[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.terminal {
		return
	}
	s.terminal = true
	s.ch <- r
	close(s.ch)
}

// Run executes fn on its own goroutine and adapts its return into the
// envelope contract: Loading is emitted before fn starts, then Success with
// fn's value or Error with errMsg. fn's error is not exposed to the consumer;
// the operation owner chooses the user-facing message.
func Run[T any](ctx context.Context, errMsg string, fn func(ctx context.Context) (T, error)) *Stream[T] {
	s := NewStream[T]()
	s.Loading()
	go func() {
		v, err := fn(ctx)
		if err != nil {
			s.Fail(errMsg)
			return
		}
		s.Succeed(v)
	}()
	return s
}

// Await drains the stream until the terminal envelope and returns it. It
// returns an Error envelope if ctx is done first; the producer goroutine keeps
// running to completion but its late emissions go nowhere observable.
func Await[T any](ctx context.Context, s *Stream[T]) Result[T] {
	for {
		select {
		case <-ctx.Done():
			return Failure[T](ctx.Err().Error())
		case r, ok := <-s.Events():
			if !ok {
				return Failure[T]("stream closed without terminal result")
			}
			if !r.IsLoading() {
				return r
			}
		}
	}
}
