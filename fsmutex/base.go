// File: fsmutex/base.go
// Author: momentics <momentics@gmail.com>
//
// Abstract lock/try-lock/unlock plumbing shared by every concrete locking
// algorithm. Multi-entity requests are sorted and deduplicated centrally
// before dispatch, so a global acquisition order holds regardless of which
// algorithm runs underneath and callers carry no ordering obligation.

package fsmutex

import (
	"io"
	"sort"
	"time"

	"github.com/momentics/hioload-fs/api"
)

// Locker is the contract a concrete locking algorithm satisfies. Requests
// arrive sorted by entity value with duplicates coalesced to the strongest
// access mode. An error return guarantees zero entities are left held.
type Locker interface {
	// LockEntities acquires every entity in the request, honoring each
	// entity's exclusive/shared flag, or fails with ErrOperationTimeout
	// once the deadline elapses. spinNotSleep is an advisory hint to
	// busy-poll instead of blocking on contention; the deadline binds
	// either way. The returned hint (0 = none) accelerates the matching
	// unlock.
	LockEntities(entities []api.Entity, d api.Deadline, spinNotSleep bool) (hint uint64, err error)

	// Unlock releases previously acquired entities. It always succeeds
	// and is called at most once per successful acquisition.
	Unlock(entities []api.Entity, hint uint64)
}

// SharedFSMutex is the polymorphic surface over any concrete algorithm.
type SharedFSMutex interface {
	EntityFromBytes(b []byte, exclusive bool) api.Entity
	EntityFromString(s string, exclusive bool) api.Entity
	RandomEntity(exclusive bool) (api.Entity, error)
	FillRandomEntities(dst []api.Entity, exclusive bool) error

	Lock(entities []api.Entity, d api.Deadline, spinNotSleep bool) (*Guard, error)
	LockEntity(e api.Entity, d api.Deadline, spinNotSleep bool) (*Guard, error)
	TryLock(entities []api.Entity) (*Guard, error)
	TryLockEntity(e api.Entity) (*Guard, error)
	Unlock(entities []api.Entity, hint uint64)
}

// Mutex adapts a Locker into the full SharedFSMutex surface. Lock, TryLock
// and Unlock are safe to call concurrently from any thread; cross-process
// safety depends on the algorithm's backend.
type Mutex struct {
	alg     Locker
	metrics *Metrics
}

var _ SharedFSMutex = (*Mutex)(nil)

// Option configures a Mutex.
type Option func(*Mutex)

// WithMetrics attaches a metrics collector to the mutex.
func WithMetrics(m *Metrics) Option {
	return func(mu *Mutex) { mu.metrics = m }
}

// New wraps a concrete locking algorithm.
func New(alg Locker, opts ...Option) *Mutex {
	m := &Mutex{alg: alg}
	for _, o := range opts {
		o(m)
	}
	return m
}

// EntityFromBytes derives a deterministic entity identifier from bytes.
func (m *Mutex) EntityFromBytes(b []byte, exclusive bool) api.Entity {
	return EntityFromBytes(b, exclusive)
}

// EntityFromString derives a deterministic entity identifier from a string.
func (m *Mutex) EntityFromString(s string, exclusive bool) api.Entity {
	return EntityFromString(s, exclusive)
}

// RandomEntity draws a cryptographically random entity identifier.
func (m *Mutex) RandomEntity(exclusive bool) (api.Entity, error) {
	return RandomEntity(exclusive)
}

// FillRandomEntities fills dst with random identifiers in one batch.
func (m *Mutex) FillRandomEntities(dst []api.Entity, exclusive bool) error {
	return FillRandomEntities(dst, exclusive)
}

// Lock acquires every entity in the set for exclusive or shared access per
// each entity's flag. On deadline expiry it returns ErrOperationTimeout and
// no entity in the request is left held.
func (m *Mutex) Lock(entities []api.Entity, d api.Deadline, spinNotSleep bool) (*Guard, error) {
	if len(entities) == 0 {
		return nil, api.ErrInvalidArgument
	}
	if !d.Valid() {
		return nil, api.ErrInvalidDeadline
	}
	g := &Guard{owner: m, entities: normalize(entities)}
	return m.dispatch(g, d, spinNotSleep)
}

// LockEntity acquires a single entity. The guard owns storage for it, so no
// caller-side slice is needed.
func (m *Mutex) LockEntity(e api.Entity, d api.Deadline, spinNotSleep bool) (*Guard, error) {
	if !d.Valid() {
		return nil, api.ErrInvalidDeadline
	}
	g := &Guard{owner: m}
	g.single[0] = e
	g.entities = g.single[:]
	return m.dispatch(g, d, spinNotSleep)
}

// TryLock is Lock with a zero-wait deadline.
func (m *Mutex) TryLock(entities []api.Entity) (*Guard, error) {
	return m.Lock(entities, api.Immediate(), false)
}

// TryLockEntity is LockEntity with a zero-wait deadline.
func (m *Mutex) TryLockEntity(e api.Entity) (*Guard, error) {
	return m.LockEntity(e, api.Immediate(), false)
}

// Unlock releases entities previously acquired through this mutex. It is
// normally reached through the guard's release path.
func (m *Mutex) Unlock(entities []api.Entity, hint uint64) {
	m.alg.Unlock(entities, hint)
	m.metrics.observeRelease(len(entities))
}

// Close releases algorithm resources when the algorithm holds any, such as
// the byte-range backend's lock file.
func (m *Mutex) Close() error {
	if c, ok := m.alg.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (m *Mutex) dispatch(g *Guard, d api.Deadline, spinNotSleep bool) (*Guard, error) {
	start := time.Now()
	hint, err := m.alg.LockEntities(g.entities, d, spinNotSleep)
	if err != nil {
		g.Release()
		m.metrics.observeAcquire(StatusTimeout, time.Since(start), 0)
		return nil, err
	}
	g.Hint = hint
	m.metrics.observeAcquire(StatusGranted, time.Since(start), len(g.entities))
	return g, nil
}

// normalize copies the caller's request, sorts it by entity value and
// coalesces duplicate values to the strongest access mode, so an algorithm
// never deadlocks against its own request or double-releases a value.
func normalize(entities []api.Entity) []api.Entity {
	out := make([]api.Entity, len(entities))
	copy(out, entities)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		// Exclusive sorts first so dedup keeps the strongest mode.
		return out[i].Exclusive && !out[j].Exclusive
	})
	n := 0
	for i := range out {
		if i > 0 && out[i].Value == out[n-1].Value {
			continue
		}
		out[n] = out[i]
		n++
	}
	return out[:n]
}
