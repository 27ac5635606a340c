package tasks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(workers, queueSize int) *Runner {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRunner(logger, workers, queueSize, time.Second)
}

func TestRunner_RunsSubmittedTasks(t *testing.T) {
	r := newTestRunner(2, 10)
	require.NoError(t, r.Start(context.Background()))

	var done atomic.Int32
	for range 5 {
		r.Submit("count", func(ctx context.Context) error {
			done.Add(1)
			return nil
		})
	}
	r.Submit("fails", func(ctx context.Context) error { return errors.New("boom") })
	r.Submit("panics", func(ctx context.Context) error { panic("boom") })

	require.NoError(t, r.Close())
	assert.Equal(t, int32(5), done.Load())
}

func TestRunner_SubmitDoesNotBlock(t *testing.T) {
	r := newTestRunner(1, 0)
	require.NoError(t, r.Start(context.Background()))

	release := make(chan struct{})
	var finished atomic.Int32

	start := time.Now()
	for range 3 {
		r.Submit("blocked", func(ctx context.Context) error {
			<-release
			finished.Add(1)
			return nil
		})
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	close(release)
	require.NoError(t, r.Close())
	assert.Equal(t, int32(3), finished.Load())
}

func TestRunner_TaskContextHasDeadline(t *testing.T) {
	r := newTestRunner(1, 1)
	require.NoError(t, r.Start(context.Background()))

	var hasDeadline atomic.Bool
	r.Submit("deadline", func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		hasDeadline.Store(ok)
		return nil
	})

	require.NoError(t, r.Close())
	assert.True(t, hasDeadline.Load())
}

func TestRunner_CloseIsIdempotent(t *testing.T) {
	r := newTestRunner(1, 1)
	require.NoError(t, r.Start(context.Background()))
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	ran := make(chan struct{})
	r.Submit("after close", func(ctx context.Context) error {
		close(ran)
		return nil
	})

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("task submitted after close never ran")
	}
}
