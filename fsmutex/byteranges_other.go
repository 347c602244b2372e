//go:build !linux

// File: fsmutex/byteranges_other.go
// Author: momentics <momentics@gmail.com>
//
// Platforms without OFD range locks. Always overridden by a matching
// platform file via build tag where the facility exists.

package fsmutex

import "github.com/momentics/hioload-fs/api"

func newByteRangesLocker(path string) (Locker, error) {
	return nil, api.ErrNotSupported
}
