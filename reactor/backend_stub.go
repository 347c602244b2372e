//go:build !linux && !darwin && !freebsd

// File: reactor/backend_stub.go
// Author: momentics <momentics@gmail.com>
//
// Portable park on a one-token channel for platforms without a native
// backend. The token is sticky like the signal and kqueue wakeups.

package reactor

import "time"

type chanBackend struct {
	ch chan struct{}
}

func newBackend(r *Reactor) (backend, error) {
	return &chanBackend{ch: make(chan struct{}, 1)}, nil
}

func (b *chanBackend) park(timeout time.Duration, infinite bool, ready func() bool) (bool, error) {
	if ready() {
		return true, nil
	}
	if infinite {
		<-b.ch
		return true, nil
	}
	if timeout < 0 {
		timeout = 0
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-b.ch:
		return true, nil
	case <-t.C:
		return false, nil
	}
}

func (b *chanBackend) wake() {
	select {
	case b.ch <- struct{}{}:
	default:
	}
}

func (b *chanBackend) close() error { return nil }
