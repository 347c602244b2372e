//go:build !linux

// File: reactor/signal_other.go
// Author: momentics <momentics@gmail.com>
//
// Platforms whose backend parks without signals have no interruption
// signal to configure.

package reactor

import "github.com/momentics/hioload-fs/api"

// InterruptionSignal always returns 0: no signal handler exists here.
func InterruptionSignal() int { return 0 }

// SetInterruptionSignal is unsupported on non-signal backends.
func SetInterruptionSignal(sig int) (int, error) {
	return 0, api.ErrNotSupported
}
