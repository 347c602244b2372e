//go:build linux

// File: reactor/backend_linux.go
// Author: momentics <momentics@gmail.com>
//
// Signal-interruptible wait. The interruption signal is blocked on the
// owner thread immediately before the native wait and unblocked only inside
// ppoll(2) via its atomic sigmask swap, so a wakeup sent concurrently with
// entering the wait stays pending and interrupts the poll instead of being
// lost. That scoped block/unblock is mandatory, not an optimization.

package reactor

import (
	"time"

	"golang.org/x/sys/unix"
)

type signalBackend struct {
	sig int
	tid int
}

func newBackend(r *Reactor) (backend, error) {
	sig, err := ensureInterruptionSignal()
	if err != nil {
		return nil, err
	}
	return &signalBackend{sig: sig, tid: unix.Gettid()}, nil
}

func (b *signalBackend) park(timeout time.Duration, infinite bool, ready func() bool) (bool, error) {
	var block unix.Sigset_t
	sigsetAdd(&block, b.sig)
	var old unix.Sigset_t
	if err := unix.PthreadSigmask(unix.SIG_BLOCK, &block, &old); err != nil {
		return false, err
	}
	// With the signal now blocked, anything enqueued since the last
	// dispatch attempt either shows up here or has its wakeup pending.
	if ready() {
		_ = unix.PthreadSigmask(unix.SIG_SETMASK, &old, nil)
		return true, nil
	}
	waitMask := old
	sigsetDel(&waitMask, b.sig)
	var ts *unix.Timespec
	if !infinite {
		if timeout < 0 {
			timeout = 0
		}
		t := unix.NsecToTimespec(timeout.Nanoseconds())
		ts = &t
	}
	n, perr := unix.Ppoll(nil, ts, &waitMask)
	if rerr := unix.PthreadSigmask(unix.SIG_SETMASK, &old, nil); rerr != nil && perr == nil {
		return false, rerr
	}
	if perr == unix.EINTR {
		return true, nil
	}
	if perr != nil {
		return false, perr
	}
	return n > 0, nil
}

func (b *signalBackend) wake() {
	// Directed delivery: only the parked owner thread is interrupted.
	_ = unix.Tgkill(unix.Getpid(), b.tid, unix.Signal(b.sig))
}

func (b *signalBackend) close() error { return nil }

func sigsetAdd(s *unix.Sigset_t, sig int) {
	s.Val[(sig-1)/64] |= 1 << uint((sig-1)%64)
}

func sigsetDel(s *unix.Sigset_t, sig int) {
	s.Val[(sig-1)/64] &^= 1 << uint((sig-1)%64)
}
