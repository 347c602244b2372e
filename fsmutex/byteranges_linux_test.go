//go:build linux

// File: fsmutex/byteranges_linux_test.go
// Author: momentics <momentics@gmail.com>
//
// Separate mutex instances hold separate open file descriptions, so these
// tests exercise the cross-description exclusion OFD locks provide.

package fsmutex

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-fs/api"
)

func openPair(t *testing.T) (*Mutex, *Mutex) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entities.lock")
	a, err := NewByteRanges(path)
	require.NoError(t, err)
	b, err := NewByteRanges(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = a.Close()
		_ = b.Close()
	})
	return a, b
}

func TestByteRanges_ExclusionAcrossInstances(t *testing.T) {
	a, b := openPair(t)
	e := a.EntityFromString("resource", true)

	held, err := a.LockEntity(e, api.Deadline{}, false)
	require.NoError(t, err)

	_, err = b.TryLockEntity(e)
	require.ErrorIs(t, err, api.ErrOperationTimeout)

	held.Unlock()

	retry, err := b.TryLockEntity(e)
	require.NoError(t, err)
	retry.Unlock()
}

func TestByteRanges_SharedAcrossInstances(t *testing.T) {
	a, b := openPair(t)
	shared := a.EntityFromString("resource", false)

	g1, err := a.TryLockEntity(shared)
	require.NoError(t, err)
	g2, err := b.TryLockEntity(shared)
	require.NoError(t, err)

	g1.Unlock()
	g2.Unlock()
}

func TestByteRanges_ExclusiveWaitsOutShared(t *testing.T) {
	a, b := openPair(t)
	shared := a.EntityFromString("resource", false)
	excl := api.Entity{Value: shared.Value, Exclusive: true}

	g, err := a.TryLockEntity(shared)
	require.NoError(t, err)

	_, err = b.TryLockEntity(excl)
	require.ErrorIs(t, err, api.ErrOperationTimeout)

	g.Unlock()
	g2, err := b.LockEntity(excl, api.In(time.Second), false)
	require.NoError(t, err)
	g2.Unlock()
}

func TestByteRanges_NoPartialLockOnTimeout(t *testing.T) {
	a, b := openPair(t)
	e1 := a.EntityFromString("one", true)
	e2 := a.EntityFromString("two", true)

	blocker, err := a.LockEntity(e2, api.Deadline{}, false)
	require.NoError(t, err)

	_, err = b.Lock([]api.Entity{e1, e2}, api.In(50*time.Millisecond), false)
	require.ErrorIs(t, err, api.ErrOperationTimeout)

	// e1 must have been rolled back by the failed request.
	g, err := a.TryLockEntity(e1)
	require.NoError(t, err)
	g.Unlock()
	blocker.Unlock()
}
