// File: api/handle.go
// Author: momentics <momentics@gmail.com>
//
// NativeHandle is the collaborator contract for anything the reactor
// dispatches I/O against. The reactor treats such handles as opaque
// endpoints; the handle package carries the reference implementation.

package api

// NativeHandle exposes a native OS handle, its associated path and,
// optionally, the reactor completions should be delivered through.
type NativeHandle interface {
	// Fd returns the native OS handle.
	Fd() uintptr

	// Path returns the path the handle was opened from.
	Path() string

	// Service returns the reactor bound to this handle, or nil.
	Service() Reactor
}
