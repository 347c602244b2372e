// File: fsmutex/guard.go
// Author: momentics <momentics@gmail.com>
//
// Guard is the scoped ownership token produced by a successful lock. The
// owner reference clears exactly once, so an explicit Unlock followed by a
// deferred one is a no-op the second time.

package fsmutex

import "github.com/momentics/hioload-fs/api"

// Guard represents a held lock over a set of entities. The zero value is
// invalid (unowned). Guards are created only by Lock/TryLock and must not be
// copied; pass them by pointer. Release on every exit path is the caller's
// obligation, typically via defer g.Unlock().
type Guard struct {
	owner    *Mutex
	entities []api.Entity
	single   [1]api.Entity

	// Hint is an opaque accelerator the concrete algorithm may have
	// populated during lock; 0 means no hint. It is handed back verbatim
	// to the matching unlock.
	Hint uint64
}

// Ok reports whether the guard currently represents a held lock.
func (g *Guard) Ok() bool { return g != nil && g.owner != nil }

// Entities returns the entities this guard holds, in acquisition order.
// The slice is owned by the guard and becomes nil once released.
func (g *Guard) Entities() []api.Entity {
	if g == nil {
		return nil
	}
	return g.entities
}

// Unlock releases the held entities immediately. Calling it on an invalid
// or already released guard is a no-op.
func (g *Guard) Unlock() {
	if g == nil || g.owner == nil {
		return
	}
	owner := g.owner
	entities := g.entities
	hint := g.Hint
	g.Release()
	owner.Unlock(entities, hint)
}

// Release detaches the guard from the locked state without unlocking.
// The release obligation transfers to whoever holds the entities.
func (g *Guard) Release() {
	g.owner = nil
	g.entities = nil
}
