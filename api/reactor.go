// File: api/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Reactor is the single-owner-thread event loop multiplexing posted deferred
// work and asynchronous file I/O completions behind one blocking drain
// primitive, regardless of the wait mechanism the platform backend uses.

package api

// IOOp describes one asynchronous read or write against a native handle.
// Done runs on the reactor's owning thread once the transfer finishes.
type IOOp struct {
	Handle NativeHandle
	Write  bool
	Buf    []byte
	Offset int64
	Done   func(n int, err error)
}

// Reactor multiplexes deferred work and I/O completions for exactly one
// owning thread. Post and Submit are safe from any thread; RunUntil, Run and
// Close are owner-only.
type Reactor interface {
	// Post schedules f to run on the owning thread at its next drain
	// opportunity. Posts execute in FIFO order relative to each other.
	Post(f func())

	// Submit enqueues an asynchronous I/O operation. The completion is
	// delivered through the drain like a post; no ordering holds between
	// posts and completions beyond readiness.
	Submit(op IOOp) error

	// RunUntil drains at most one ready unit of work, blocking up to the
	// deadline. It returns (more, nil) after handling a unit where more
	// reports whether work remains, (false, nil) when no work is
	// outstanding, ErrOperationTimeout when the deadline elapsed first,
	// ErrWrongThread off the owning thread and ErrInvalidDeadline for a
	// malformed deadline.
	RunUntil(d Deadline) (more bool, err error)

	// Run is RunUntil with no deadline.
	Run() (more bool, err error)

	// Close releases the backend. It fails with ErrReactorBusy while any
	// posted or submitted work is outstanding.
	Close() error
}
