package loopjob

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfiniteLoop_Run(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	loop := NewInfiniteLoop("test", 5*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		assert.NoError(t, ctx.Err())
		return errors.New("keeps going")
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not exit after cancel")
	}
}

func TestInfiniteLoop_RunFinishesAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})
	var finished atomic.Bool
	loop := NewInfiniteLoop("test", time.Millisecond, func(bizCtx context.Context) error {
		if finished.Load() {
			return nil
		}
		close(started)
		cancel()
		time.Sleep(10 * time.Millisecond)
		finished.Store(bizCtx.Err() == nil)
		return nil
	})

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()
	<-started
	<-done
	assert.True(t, finished.Load())
}
