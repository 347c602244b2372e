//go:build linux

// File: reactor/signal_linux_test.go
// Author: momentics <momentics@gmail.com>
//
// These tests run without live reactors: mutating the interruption signal
// while reactors exist is unsupported.

package reactor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-fs/api"
)

func TestSetInterruptionSignal_Sentinels(t *testing.T) {
	initial := InterruptionSignal()
	defer func() {
		// Put the process back where this test found it.
		if initial == 0 {
			_, _ = SetInterruptionSignal(0)
		} else {
			_, _ = SetInterruptionSignal(initial)
		}
	}()

	old, err := SetInterruptionSignal(sigRTMin)
	require.NoError(t, err)
	require.Equal(t, initial, old)
	require.Equal(t, sigRTMin, InterruptionSignal())

	// Idempotent re-install of the same signal.
	old, err = SetInterruptionSignal(sigRTMin)
	require.NoError(t, err)
	require.Equal(t, sigRTMin, old)

	// -1 auto-selects a real-time signal.
	_, err = SetInterruptionSignal(-1)
	require.NoError(t, err)
	got := InterruptionSignal()
	require.GreaterOrEqual(t, got, sigRTMin)
	require.LessOrEqual(t, got, sigRTMax)

	// 0 uninstalls.
	_, err = SetInterruptionSignal(0)
	require.NoError(t, err)
	require.Zero(t, InterruptionSignal())
}

func TestSetInterruptionSignal_Invalid(t *testing.T) {
	_, err := SetInterruptionSignal(65)
	require.ErrorIs(t, err, api.ErrInvalidArgument)
	_, err = SetInterruptionSignal(-2)
	require.ErrorIs(t, err, api.ErrInvalidArgument)
}
