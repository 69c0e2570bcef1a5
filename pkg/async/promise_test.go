package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/seqqueue/pkg/async"
)

func TestNewPromise(t *testing.T) {
	t.Parallel()

	t.Run("settles with value", func(t *testing.T) {
		t.Parallel()
		future, complete := async.NewPromise[string]()
		assert.False(t, future.IsComplete())

		complete("ok", nil)

		res, err := future.Await()
		require.NoError(t, err)
		assert.Equal(t, "ok", res)
		assert.True(t, future.IsComplete())
	})

	t.Run("settles with error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		future, complete := async.NewPromise[int]()

		complete(0, boom)

		_, err := future.Await()
		assert.Same(t, boom, err)
	})

	t.Run("only first completion wins", func(t *testing.T) {
		t.Parallel()
		future, complete := async.NewPromise[int]()

		complete(1, nil)
		complete(2, errors.New("late"))

		res, err := future.Await()
		require.NoError(t, err)
		assert.Equal(t, 1, res)
	})

	t.Run("done channel closes on completion", func(t *testing.T) {
		t.Parallel()
		future, complete := async.NewPromise[struct{}]()

		select {
		case <-future.Done():
			t.Fatal("done closed before completion")
		default:
		}

		go complete(struct{}{}, nil)

		select {
		case <-future.Done():
		case <-time.After(time.Second):
			t.Fatal("done not closed after completion")
		}
	})
}

func TestAwaitContext(t *testing.T) {
	t.Parallel()

	t.Run("returns result when settled", func(t *testing.T) {
		t.Parallel()
		future, complete := async.NewPromise[int]()
		complete(7, nil)

		res, err := future.AwaitContext(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, res)
	})

	t.Run("returns context error when done first", func(t *testing.T) {
		t.Parallel()
		future, _ := async.NewPromise[int]()
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		res, err := future.AwaitContext(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Zero(t, res)
		assert.False(t, future.IsComplete())
	})
}
