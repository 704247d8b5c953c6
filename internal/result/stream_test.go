package result

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](t *testing.T, s *Stream[T]) []Result[T] {
	t.Helper()
	var out []Result[T]
	timeout := time.After(2 * time.Second)
	for {
		select {
		case r, ok := <-s.Events():
			if !ok {
				return out
			}
			out = append(out, r)
		case <-timeout:
			t.Fatal("stream did not terminate")
		}
	}
}

func TestStream_LoadingThenSuccess(t *testing.T) {
	s := NewStream[int]()
	s.Loading()
	s.Succeed(7)

	events := collect(t, s)
	require.Len(t, events, 2)
	assert.True(t, events[0].IsLoading())
	assert.True(t, events[1].IsSuccess())
}

func TestStream_LoadingThenError(t *testing.T) {
	s := NewStream[Unit]()
	s.Loading()
	s.Fail("Failed to verify claim")

	events := collect(t, s)
	require.Len(t, events, 2)
	assert.True(t, events[0].IsLoading())
	assert.True(t, events[1].IsError())
	assert.Equal(t, "Failed to verify claim", events[1].Message())
}

func TestStream_SecondTerminalIsDropped(t *testing.T) {
	s := NewStream[int]()
	s.Loading()
	s.Succeed(1)
	s.Fail("late failure")
	s.Succeed(2)

	events := collect(t, s)
	require.Len(t, events, 2)
	assert.True(t, events[1].IsSuccess())
	v, _ := events[1].Value()
	assert.Equal(t, 1, v)
}

func TestStream_LoadingAfterTerminalIsDropped(t *testing.T) {
	s := NewStream[int]()
	s.Loading()
	s.Succeed(1)
	s.Loading()

	events := collect(t, s)
	assert.Len(t, events, 2)
}

func TestRun_Success(t *testing.T) {
	s := Run(context.Background(), "operation failed", func(ctx context.Context) (int, error) {
		return 5, nil
	})

	events := collect(t, s)
	require.Len(t, events, 2)
	assert.True(t, events[0].IsLoading())
	v, ok := events[1].Value()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestRun_ErrorUsesOwnerMessage(t *testing.T) {
	s := Run(context.Background(), "Failed to verify KYC", func(ctx context.Context) (Unit, error) {
		return Unit{}, errors.New("dial tcp: connection refused")
	})

	events := collect(t, s)
	require.Len(t, events, 2)
	assert.True(t, events[1].IsError())
	// The transport detail never leaks to the consumer.
	assert.Equal(t, "Failed to verify KYC", events[1].Message())
}

func TestAwait_ReturnsTerminal(t *testing.T) {
	s := Run(context.Background(), "failed", func(ctx context.Context) (int, error) {
		return 9, nil
	})

	r := Await(context.Background(), s)
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestAwait_ContextCancelled(t *testing.T) {
	s := NewStream[int]()
	s.Loading()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := Await(ctx, s)
	assert.True(t, r.IsError())
}
