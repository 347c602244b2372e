//go:build linux

// File: reactor/signal.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide interruption signal configuration for the signal backend.
// The handler is installed at most once no matter how many reactors exist;
// install, uninstall and query are first-class operations rather than
// implicit static state. Changing the signal while reactors exist is
// unsupported and its effect undefined.

package reactor

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/momentics/hioload-fs/api"
)

const (
	// Linux real-time signal range. The runtime reserves 32 and 33 for
	// libc threading, so auto-selection starts above them.
	sigRTMin = 34
	sigRTMax = 64

	// autoSig is the slot auto-selection picks. The raw sigaction table
	// cannot be queried for a genuinely free slot from Go, so a fixed
	// slot clear of the glibc-reserved pair stands in for the scan.
	autoSig = sigRTMin + 2
)

var (
	sigMu        sync.Mutex
	installedSig int // 0 = no handler installed
	sigCh        chan os.Signal
)

// InterruptionSignal returns the signal currently used to interrupt a
// parked drain, or 0 when no handler is installed.
func InterruptionSignal() int {
	sigMu.Lock()
	defer sigMu.Unlock()
	return installedSig
}

// SetInterruptionSignal configures the interruption signal, returning the
// previous setting. Special values: 0 uninstalls the handler, -1 selects a
// free real-time signal. Installation is idempotent.
func SetInterruptionSignal(sig int) (int, error) {
	sigMu.Lock()
	defer sigMu.Unlock()
	old := installedSig
	switch {
	case sig == 0:
		if installedSig != 0 {
			signal.Stop(sigCh)
			sigCh = nil
			installedSig = 0
		}
		return old, nil
	case sig == -1:
		sig = autoSig
	case sig < 1 || sig > sigRTMax:
		return old, api.ErrInvalidArgument
	}
	if installedSig == sig {
		return old, nil
	}
	if installedSig != 0 {
		signal.Stop(sigCh)
	}
	// The channel only absorbs deliveries that land while the owner is
	// not parked; park consumes its wakeup as EINTR from the native wait.
	sigCh = make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.Signal(sig))
	installedSig = sig
	return old, nil
}

// ensureInterruptionSignal installs the auto-selected signal if none is
// configured yet, and returns the active signal number.
func ensureInterruptionSignal() (int, error) {
	if s := InterruptionSignal(); s != 0 {
		return s, nil
	}
	if _, err := SetInterruptionSignal(-1); err != nil {
		return 0, err
	}
	return InterruptionSignal(), nil
}
