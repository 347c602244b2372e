// File: fsmutex/byteranges.go
// Author: momentics <momentics@gmail.com>
//
// Cross-process locking algorithm mapping each entity to a one-byte range
// of a shared lock file. Platform files supply the range-lock syscalls.

package fsmutex

// NewByteRanges returns a mutex backed by byte-range locks on the file at
// path, creating it if absent. Entities map to byte offsets, so separate
// processes (and separate mutex instances within one process) agreeing on
// the path exclude each other. Shared holders of one entity must use
// distinct mutex instances: range locks on a single open file description
// replace rather than stack. Returns ErrNotSupported where the platform
// lacks open-file-description locks.
func NewByteRanges(path string, opts ...Option) (*Mutex, error) {
	alg, err := newByteRangesLocker(path)
	if err != nil {
		return nil, err
	}
	return New(alg, opts...), nil
}
