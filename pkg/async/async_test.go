package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/sharedkit/pkg/async"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	t.Run("returns result", func(t *testing.T) {
		f := async.Run(context.Background(), func(context.Context) (string, error) {
			return "done", nil
		})
		res, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, "done", res)
		assert.True(t, f.IsComplete())
	})

	t.Run("propagates error", func(t *testing.T) {
		boom := errors.New("boom")
		f := async.Async(context.Background(), 7, func(_ context.Context, n int) (int, error) {
			return n, boom
		})
		res, err := f.Await()
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 7, res)
	})

	t.Run("skips fn when context already canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		f := async.Run(ctx, func(context.Context) (int, error) {
			called = true
			return 1, nil
		})
		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestAwaitBounds(t *testing.T) {
	release := make(chan struct{})
	f := async.Run(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = f.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, f.IsComplete())

	close(release)
	res, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 1, res)
}

func TestWaitAll(t *testing.T) {
	boom := errors.New("boom")
	futures := []*async.Future[int]{
		async.Resolved(1, nil),
		async.Run(context.Background(), func(context.Context) (int, error) { return 2, boom }),
		async.Resolved(3, nil),
	}

	results, err := async.WaitAll(futures...)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1, 2, 3}, results)
}

func TestWaitAny(t *testing.T) {
	t.Run("no futures", func(t *testing.T) {
		idx, _, err := async.WaitAny[int]()
		assert.Equal(t, -1, idx)
		assert.ErrorIs(t, err, async.ErrNoFutures)
	})

	t.Run("first completed wins", func(t *testing.T) {
		release := make(chan struct{})
		slow := async.Run(context.Background(), func(context.Context) (int, error) {
			<-release
			return 1, nil
		})
		fast := async.Resolved(2, nil)

		idx, res, err := async.WaitAny(slow, fast)
		require.NoError(t, err)
		assert.Equal(t, 1, idx)
		assert.Equal(t, 2, res)

		close(release)
		_, _ = slow.Await()
	})
}
