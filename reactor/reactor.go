// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Reactor core: post queue, work counter and the deadline-bounded drain.
// The queue mutex is held only across queue mutation, never across the
// blocking wait. "No more work" derives solely from the work counter, so no
// cross-structure lock ordering exists between the post queue and the
// backend's own bookkeeping.

package reactor

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-fs/api"
	"github.com/momentics/hioload-fs/internal/goid"
)

// post is one deferred callable. Executed entries are cleared in place
// (dead, fn nilled) and reaped lazily from the queue front.
type post struct {
	svc  *Reactor
	fn   func()
	dead bool
}

// backend is the platform wait mechanism. park blocks until a wakeup, the
// timeout, or a positive ready() re-check made after the backend is armed
// against lost wakeups.
type backend interface {
	park(timeout time.Duration, infinite bool, ready func() bool) (woke bool, err error)
	wake()
	close() error
}

// Reactor multiplexes posted work and I/O completions for the thread that
// constructed it. Only Post and Submit may be called from other threads.
type Reactor struct {
	ownerGID int64

	mu          sync.Mutex
	posts       *queue.Queue // of *post
	completions *queue.Queue // of func()
	outstanding map[*ioTicket]struct{}
	closed      bool

	// workQueued counts enqueued units (posts and submitted I/O), each
	// decremented exactly once when the unit completes. Never negative.
	workQueued atomic.Int64

	// needWake is armed by the owner before parking; a waker that clears
	// it sends exactly one wakeup, so redundant signals are skipped while
	// the owner is running.
	needWake atomic.Bool

	backend backend
}

var _ api.Reactor = (*Reactor)(nil)

// New creates a reactor owned by the calling goroutine, pinning it to its
// OS thread for the reactor's lifetime. Backend setup failure is fatal and
// reported here, never retried. On the signal backend the process-wide
// interruption handler is installed lazily on first construction.
func New() (*Reactor, error) {
	runtime.LockOSThread()
	r := &Reactor{
		ownerGID:    goid.ID(),
		posts:       queue.New(),
		completions: queue.New(),
		outstanding: make(map[*ioTicket]struct{}),
	}
	b, err := newBackend(r)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("reactor: backend setup: %w", err)
	}
	r.backend = b
	return r, nil
}

// Post schedules f to run on the owning thread at its next drain
// opportunity. Safe from any thread. Posts after Close are dropped.
func (r *Reactor) Post(f func()) {
	if f == nil {
		return
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.posts.Add(&post{svc: r, fn: f})
	r.workQueued.Add(1)
	r.mu.Unlock()
	r.wakeIfParked()
}

// Run drains one unit of work, blocking indefinitely until work appears.
func (r *Reactor) Run() (bool, error) {
	return r.RunUntil(api.Deadline{})
}

// RunUntil drains at most one ready unit of work. Owner-only.
func (r *Reactor) RunUntil(d api.Deadline) (bool, error) {
	if goid.ID() != r.ownerGID {
		return false, api.ErrWrongThread
	}
	if !d.Valid() {
		return false, api.ErrInvalidDeadline
	}
	expiry, infinite := d.Resolve(time.Now())
	for {
		if r.workQueued.Load() == 0 {
			return false, nil
		}
		if r.dispatchOne() {
			return r.workQueued.Load() > 0, nil
		}
		var left time.Duration
		if !infinite {
			left = time.Until(expiry)
			if left <= 0 {
				return r.workQueued.Load() > 0, api.ErrOperationTimeout
			}
		}
		r.needWake.Store(true)
		woke, err := r.backend.park(left, infinite, r.ready)
		r.needWake.CompareAndSwap(true, false)
		if err != nil {
			return false, fmt.Errorf("reactor: wait: %w", err)
		}
		_ = woke // ready queues and deadline are re-evaluated either way
	}
}

// Close releases the backend and unpins the owning thread. Owner-only.
// Destroying a reactor with outstanding work is a usage error.
func (r *Reactor) Close() error {
	if goid.ID() != r.ownerGID {
		return api.ErrWrongThread
	}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	if r.workQueued.Load() != 0 {
		r.mu.Unlock()
		return api.ErrReactorBusy
	}
	r.closed = true
	r.mu.Unlock()
	err := r.backend.close()
	runtime.UnlockOSThread()
	return err
}

func (r *Reactor) wakeIfParked() {
	if r.needWake.CompareAndSwap(true, false) {
		r.backend.wake()
	}
}

// ready reports whether a unit could be dispatched right now. Backends call
// it once armed so a unit enqueued between the last dispatch attempt and
// the park is never slept past.
func (r *Reactor) ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reapPosts()
	return r.posts.Length() > 0 || r.completions.Length() > 0
}

// dispatchOne executes at most one ready post or completion, preferring
// posts. No ordering is promised between the two classes.
func (r *Reactor) dispatchOne() bool {
	r.mu.Lock()
	r.reapPosts()
	if r.posts.Length() > 0 {
		// The front entry stays queued while its callable runs; only
		// the owner removes entries, so the front is stable.
		p := r.posts.Peek().(*post)
		fn := p.fn
		r.mu.Unlock()
		fn()
		r.mu.Lock()
		p.fn = nil
		p.svc = nil
		p.dead = true
		r.workQueued.Add(-1)
		r.reapPosts()
		r.mu.Unlock()
		return true
	}
	if r.completions.Length() > 0 {
		c := r.completions.Remove().(func())
		r.mu.Unlock()
		c()
		r.workQueued.Add(-1)
		return true
	}
	r.mu.Unlock()
	return false
}

// reapPosts drops cleared entries from the queue front. Caller holds r.mu.
func (r *Reactor) reapPosts() {
	for r.posts.Length() > 0 && r.posts.Peek().(*post).dead {
		r.posts.Remove()
	}
}
