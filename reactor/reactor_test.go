// File: reactor/reactor_test.go
// Author: momentics <momentics@gmail.com>

package reactor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-fs/api"
	"github.com/momentics/hioload-fs/internal/goid"
)

func newTestReactor(t *testing.T) *Reactor {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestRunUntil_NoWorkReturnsImmediately(t *testing.T) {
	r := newTestReactor(t)
	start := time.Now()
	more, err := r.Run()
	require.NoError(t, err)
	require.False(t, more)
	require.Less(t, time.Since(start), time.Second)
	require.NoError(t, r.Close())
}

func TestRunUntil_WrongThread(t *testing.T) {
	r := newTestReactor(t)
	errCh := make(chan error, 1)
	go func() {
		_, err := r.RunUntil(api.Immediate())
		errCh <- err
	}()
	require.ErrorIs(t, <-errCh, api.ErrWrongThread)

	// The rejected call must leave no side effects behind.
	require.Zero(t, r.workQueued.Load())
	require.NoError(t, r.Close())
}

func TestRunUntil_InvalidDeadline(t *testing.T) {
	r := newTestReactor(t)
	_, err := r.RunUntil(api.In(-time.Second))
	require.ErrorIs(t, err, api.ErrInvalidDeadline)
	require.NoError(t, r.Close())
}

func TestPost_FIFOOrder(t *testing.T) {
	r := newTestReactor(t)
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		r.Post(func() { order = append(order, i) })
	}
	for i := 0; i < 5; i++ {
		more, err := r.RunUntil(api.In(time.Second))
		require.NoError(t, err)
		require.Equal(t, i < 4, more)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)
	require.NoError(t, r.Close())
}

func TestRunUntil_Timeout(t *testing.T) {
	r := newTestReactor(t)
	// A unit of work that never becomes ready: the counter is up but
	// nothing sits in either queue.
	r.workQueued.Add(1)
	start := time.Now()
	_, err := r.RunUntil(api.In(50 * time.Millisecond))
	require.ErrorIs(t, err, api.ErrOperationTimeout)
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	r.workQueued.Add(-1)
	require.NoError(t, r.Close())
}

func TestPost_CrossThreadWakeup(t *testing.T) {
	r := newTestReactor(t)
	owner := goid.ID()
	ranOn := make(chan int64, 1)

	go func() {
		time.Sleep(50 * time.Millisecond)
		r.Post(func() { ranOn <- goid.ID() })
	}()

	// Owner parks indefinitely; the post must wake it within a bounded
	// interval and run on the owning goroutine exactly once.
	more, err := r.Run()
	require.NoError(t, err)
	require.False(t, more)
	require.Equal(t, owner, <-ranOn)
	require.NoError(t, r.Close())
}

func TestPost_ExecutesExactlyOnce(t *testing.T) {
	r := newTestReactor(t)
	count := 0
	r.Post(func() { count++ })
	for {
		more, err := r.RunUntil(api.In(time.Second))
		require.NoError(t, err)
		if !more {
			break
		}
	}
	require.Equal(t, 1, count)
	require.NoError(t, r.Close())
}

func TestClose_BusyWithOutstandingWork(t *testing.T) {
	r := newTestReactor(t)
	r.Post(func() {})
	require.ErrorIs(t, r.Close(), api.ErrReactorBusy)

	_, err := r.RunUntil(api.In(time.Second))
	require.NoError(t, err)
	require.NoError(t, r.Close())
}

func TestClose_WrongThread(t *testing.T) {
	r := newTestReactor(t)
	errCh := make(chan error, 1)
	go func() { errCh <- r.Close() }()
	require.ErrorIs(t, <-errCh, api.ErrWrongThread)
	require.NoError(t, r.Close())
}

func TestPost_NilIgnored(t *testing.T) {
	r := newTestReactor(t)
	r.Post(nil)
	require.Zero(t, r.workQueued.Load())
	require.NoError(t, r.Close())
}

func TestPost_ManyFromManyThreads(t *testing.T) {
	r := newTestReactor(t)
	const producers = 4
	const perProducer = 25
	total := 0
	for p := 0; p < producers; p++ {
		go func() {
			for i := 0; i < perProducer; i++ {
				r.Post(func() { total++ })
			}
		}()
	}
	deadline := time.Now().Add(5 * time.Second)
	for total < producers*perProducer {
		_, err := r.RunUntil(api.At(deadline))
		require.NoError(t, err)
	}
	require.Equal(t, producers*perProducer, total)
	for r.workQueued.Load() != 0 {
		_, err := r.RunUntil(api.In(time.Second))
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())
}
