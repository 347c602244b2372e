// File: fsmutex/memory.go
// Author: momentics <momentics@gmail.com>
//
// Process-local locking algorithm: a shared/exclusive entity table under one
// mutex. Acquisition is all-or-nothing inside a single critical section, so
// a failed or timed-out request never publishes partial state. Waiters park
// on a generation channel closed at every release.

package fsmutex

import (
	"runtime"
	"sync"
	"time"

	"github.com/momentics/hioload-fs/api"
)

type entityState struct {
	readers int
	writer  bool
}

type memoryLocker struct {
	mu     sync.Mutex
	table  map[uint64]*entityState
	waitCh chan struct{} // closed and replaced on every release
}

// NewMemory returns a mutex backed by the in-process algorithm. It
// coordinates goroutines within one process only; use the byte-range
// algorithm for cross-process exclusion.
func NewMemory(opts ...Option) *Mutex {
	return New(&memoryLocker{
		table:  make(map[uint64]*entityState),
		waitCh: make(chan struct{}),
	}, opts...)
}

func (l *memoryLocker) LockEntities(entities []api.Entity, d api.Deadline, spinNotSleep bool) (uint64, error) {
	expiry, infinite := d.Resolve(time.Now())
	for {
		l.mu.Lock()
		if l.conflictFree(entities) {
			for _, e := range entities {
				st := l.table[e.Value]
				if st == nil {
					st = &entityState{}
					l.table[e.Value] = st
				}
				if e.Exclusive {
					st.writer = true
				} else {
					st.readers++
				}
			}
			l.mu.Unlock()
			return 0, nil
		}
		wait := l.waitCh
		l.mu.Unlock()

		if !infinite && !time.Now().Before(expiry) {
			return 0, api.ErrOperationTimeout
		}
		if spinNotSleep {
			runtime.Gosched()
			continue
		}
		if infinite {
			<-wait
			continue
		}
		t := time.NewTimer(time.Until(expiry))
		select {
		case <-wait:
			t.Stop()
		case <-t.C:
			return 0, api.ErrOperationTimeout
		}
	}
}

// conflictFree reports whether every entity in the request is acquirable
// right now. Caller holds l.mu.
func (l *memoryLocker) conflictFree(entities []api.Entity) bool {
	for _, e := range entities {
		st := l.table[e.Value]
		if st == nil {
			continue
		}
		if st.writer {
			return false
		}
		if e.Exclusive && st.readers > 0 {
			return false
		}
	}
	return true
}

func (l *memoryLocker) Unlock(entities []api.Entity, _ uint64) {
	l.mu.Lock()
	for _, e := range entities {
		st := l.table[e.Value]
		if st == nil {
			continue
		}
		if e.Exclusive {
			st.writer = false
		} else if st.readers > 0 {
			st.readers--
		}
		if !st.writer && st.readers == 0 {
			delete(l.table, e.Value)
		}
	}
	// Wake every parked waiter; each re-evaluates its full request.
	close(l.waitCh)
	l.waitCh = make(chan struct{})
	l.mu.Unlock()
}
