// Package result implements the tri-state envelope that every asynchronous
// user operation reports through. A producer emits exactly one Loading followed
// by exactly one terminal Success or Error; consumers must handle all three
// states and may not assume synchronous delivery.
package result

// State identifies which variant of the envelope is active.
type State int

const (
	StateLoading State = iota
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is a tagged tri-state envelope. Exactly one variant is active at a
// time. The zero value is Loading.
type Result[T any] struct {
	state   State
	value   T
	message string
}

// Loading returns a pending envelope.
func Loading[T any]() Result[T] {
	return Result[T]{state: StateLoading}
}

// Success returns a terminal envelope carrying a value.
func Success[T any](value T) Result[T] {
	return Result[T]{state: StateSuccess, value: value}
}

// Failure returns a terminal envelope carrying a human-readable message.
func Failure[T any](message string) Result[T] {
	return Result[T]{state: StateError, message: message}
}

// State reports the active variant.
func (r Result[T]) State() State {
	return r.state
}

// IsLoading reports whether the operation is still pending.
func (r Result[T]) IsLoading() bool {
	return r.state == StateLoading
}

// IsSuccess reports whether the operation finished with a value.
func (r Result[T]) IsSuccess() bool {
	return r.state == StateSuccess
}

// IsError reports whether the operation finished with an error.
func (r Result[T]) IsError() bool {
	return r.state == StateError
}

// Value returns the success value. The boolean is false unless the envelope is
// in the Success state.
func (r Result[T]) Value() (T, bool) {
	if r.state != StateSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Message returns the error message; empty unless the envelope is in the
// Error state.
func (r Result[T]) Message() string {
	if r.state != StateError {
		return ""
	}
	return r.message
}
