// File: reactor/io.go
// Author: momentics <momentics@gmail.com>
//
// Asynchronous I/O submission. Each submitted operation joins the
// outstanding set and counts as one unit of work; its completion is
// delivered through the drain on the owning thread, after which the unit
// is retired. Platform files supply the positional transfer syscalls.

package reactor

import "github.com/momentics/hioload-fs/api"

// ioTicket tracks one outstanding operation from submission to completion.
type ioTicket struct {
	op api.IOOp
}

// Submit enqueues an asynchronous read or write against op.Handle. Safe
// from any thread. The completion callback runs on the owning thread during
// a drain; no ordering holds between completions and posts.
func (r *Reactor) Submit(op api.IOOp) error {
	if op.Handle == nil {
		return api.ErrInvalidArgument
	}
	t := &ioTicket{op: op}
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return api.ErrReactorClosed
	}
	r.outstanding[t] = struct{}{}
	r.workQueued.Add(1)
	r.mu.Unlock()
	go r.service(t)
	return nil
}

func (r *Reactor) service(t *ioTicket) {
	n, err := transfer(int(t.op.Handle.Fd()), t.op.Buf, t.op.Offset, t.op.Write)
	r.mu.Lock()
	delete(r.outstanding, t)
	r.completions.Add(func() {
		if t.op.Done != nil {
			t.op.Done(n, err)
		}
	})
	r.mu.Unlock()
	r.wakeIfParked()
}
