// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error values used across the hioload-fs library.

package api

import "fmt"

// Common errors used across the library. Every fallible operation returns one
// of these (possibly wrapped); nothing panics across an API boundary.
var (
	// ErrOperationTimeout reports that a deadline elapsed before the
	// operation could complete. For lock attempts it additionally
	// guarantees that no entity in the request is left held.
	ErrOperationTimeout = fmt.Errorf("operation timeout")

	// ErrWrongThread reports that a drain operation was invoked from a
	// goroutine other than the one that constructed the reactor.
	ErrWrongThread = fmt.Errorf("called from non-owning thread")

	// ErrInvalidDeadline reports a malformed deadline, such as a negative
	// relative duration.
	ErrInvalidDeadline = fmt.Errorf("invalid deadline")

	// ErrReactorBusy reports an attempt to close a reactor while posted
	// work or submitted I/O is still outstanding.
	ErrReactorBusy = fmt.Errorf("reactor has outstanding work")

	// ErrReactorClosed reports use of a reactor after Close.
	ErrReactorClosed = fmt.Errorf("reactor is closed")

	// ErrNotSupported reports a facility absent on this platform or build.
	ErrNotSupported = fmt.Errorf("operation not supported")

	// ErrInvalidArgument reports a malformed argument other than a deadline.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
