//go:build darwin || freebsd

// File: reactor/backend_bsd.go
// Author: momentics <momentics@gmail.com>
//
// Event-queue wait via kqueue(2) user events. A NOTE_TRIGGER raised while
// the owner is not waiting stays pending in the queue, so no wakeup can be
// lost and no signal handler is installed on this path.

package reactor

import (
	"time"

	"golang.org/x/sys/unix"
)

type kqueueBackend struct {
	kq int
}

func newBackend(r *Reactor) (backend, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, err
	}
	_, err = unix.Kevent(kq, []unix.Kevent_t{{
		Ident:  0,
		Filter: unix.EVFILT_USER,
		Flags:  unix.EV_ADD | unix.EV_CLEAR,
	}}, nil, nil)
	if err != nil {
		_ = unix.Close(kq)
		return nil, err
	}
	return &kqueueBackend{kq: kq}, nil
}

func (b *kqueueBackend) park(timeout time.Duration, infinite bool, ready func() bool) (bool, error) {
	if ready() {
		return true, nil
	}
	var ts *unix.Timespec
	if !infinite {
		if timeout < 0 {
			timeout = 0
		}
		t := unix.NsecToTimespec(timeout.Nanoseconds())
		ts = &t
	}
	var evs [1]unix.Kevent_t
	n, err := unix.Kevent(b.kq, nil, evs[:], ts)
	if err == unix.EINTR {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *kqueueBackend) wake() {
	_, _ = unix.Kevent(b.kq, []unix.Kevent_t{{
		Ident:  0,
		Filter: unix.EVFILT_USER,
		Fflags: unix.NOTE_TRIGGER,
	}}, nil, nil)
}

func (b *kqueueBackend) close() error {
	return unix.Close(b.kq)
}
