// File: fsmutex/metrics_test.go
// Author: momentics <momentics@gmail.com>

package fsmutex

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-fs/api"
)

func TestMetrics_AcquireReleaseCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	met := NewMetrics(reg)
	m := NewMemory(WithMetrics(met))
	e := m.EntityFromString("observed", true)

	g, err := m.LockEntity(e, api.Deadline{}, false)
	require.NoError(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(met.acquireTotal.WithLabelValues(StatusGranted)))
	require.Equal(t, 1.0, testutil.ToFloat64(met.entitiesHeld))

	_, err = m.TryLockEntity(e)
	require.ErrorIs(t, err, api.ErrOperationTimeout)
	require.Equal(t, 1.0, testutil.ToFloat64(met.acquireTotal.WithLabelValues(StatusTimeout)))

	g.Unlock()
	require.Equal(t, 1.0, testutil.ToFloat64(met.releaseTotal))
	require.Equal(t, 0.0, testutil.ToFloat64(met.entitiesHeld))
}

func TestMetrics_NilCollectorIsSafe(t *testing.T) {
	m := NewMemory()
	g, err := m.TryLockEntity(m.EntityFromString("plain", true))
	require.NoError(t, err)
	g.Unlock()
}
