// File: handle/file.go
// Author: momentics <momentics@gmail.com>
//
// Thin native-handle wrapper over a regular file: open, clone, length,
// truncate, plus optional reactor binding for asynchronous transfers. The
// reactor treats the handle as an opaque I/O endpoint.

package handle

import (
	"fmt"
	"os"

	"github.com/momentics/hioload-fs/api"
)

// File is a path-bearing handle to a regular file.
type File struct {
	f    *os.File
	path string
	svc  api.Reactor
}

var _ api.NativeHandle = (*File)(nil)

// Open opens the file at path, creating it when writable is set.
func Open(path string, writable bool) (*File, error) {
	flags := os.O_RDONLY
	if writable {
		flags = os.O_RDWR | os.O_CREATE
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("handle: open: %w", err)
	}
	return &File{f: f, path: path}, nil
}

// Clone duplicates the underlying descriptor into an independent handle.
// The clone carries the path but not the reactor binding.
func (h *File) Clone() (*File, error) {
	fd, err := dupFd(int(h.f.Fd()))
	if err != nil {
		return nil, fmt.Errorf("handle: clone: %w", err)
	}
	return &File{f: os.NewFile(uintptr(fd), h.path), path: h.path}, nil
}

// Length returns the current extent of the file.
func (h *File) Length() (int64, error) {
	st, err := h.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("handle: length: %w", err)
	}
	return st.Size(), nil
}

// Truncate resizes the maximum permitted extent of the file.
func (h *File) Truncate(size int64) error {
	if err := h.f.Truncate(size); err != nil {
		return fmt.Errorf("handle: truncate: %w", err)
	}
	return nil
}

// Bind attaches a reactor for asynchronous completion delivery.
func (h *File) Bind(r api.Reactor) { h.svc = r }

// Fd returns the native OS handle.
func (h *File) Fd() uintptr { return h.f.Fd() }

// Path returns the path the handle was opened from.
func (h *File) Path() string { return h.path }

// Service returns the bound reactor, or nil.
func (h *File) Service() api.Reactor { return h.svc }

// Close closes the underlying descriptor.
func (h *File) Close() error { return h.f.Close() }

// ReadAt performs a synchronous positional read.
func (h *File) ReadAt(p []byte, off int64) (int, error) {
	return h.f.ReadAt(p, off)
}

// WriteAt performs a synchronous positional write.
func (h *File) WriteAt(p []byte, off int64) (int, error) {
	return h.f.WriteAt(p, off)
}

// SubmitRead dispatches an asynchronous read through the bound reactor;
// done runs on the reactor's owning thread.
func (h *File) SubmitRead(p []byte, off int64, done func(n int, err error)) error {
	if h.svc == nil {
		return api.ErrInvalidArgument
	}
	return h.svc.Submit(api.IOOp{Handle: h, Buf: p, Offset: off, Done: done})
}

// SubmitWrite dispatches an asynchronous write through the bound reactor.
func (h *File) SubmitWrite(p []byte, off int64, done func(n int, err error)) error {
	if h.svc == nil {
		return api.ErrInvalidArgument
	}
	return h.svc.Submit(api.IOOp{Handle: h, Write: true, Buf: p, Offset: off, Done: done})
}
