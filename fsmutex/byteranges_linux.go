//go:build linux

// File: fsmutex/byteranges_linux.go
// Author: momentics <momentics@gmail.com>
//
// Open-file-description (OFD) fcntl range locks. Unlike classic POSIX
// record locks, OFD locks attach to the open file description, so closing
// an unrelated fd on the same file never drops a held lock and two
// descriptions within one process still exclude each other.

package fsmutex

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-fs/api"
)

// rangeSpan keeps start+length inside off_t for every entity value.
const rangeSpan = uint64(1) << 62

type byteRangesLocker struct {
	f    *os.File
	path string
}

func newByteRangesLocker(path string) (*byteRangesLocker, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("byteranges: open lock file: %w", err)
	}
	return &byteRangesLocker{f: f, path: path}, nil
}

func (l *byteRangesLocker) LockEntities(entities []api.Entity, d api.Deadline, spinNotSleep bool) (uint64, error) {
	expiry, infinite := d.Resolve(time.Now())
	backoff := 100 * time.Microsecond
	for {
		conflict := false
		for i, e := range entities {
			err := l.lockRange(e)
			if err == nil {
				continue
			}
			// Roll back everything this round acquired before
			// reporting conflict or failure.
			for _, held := range entities[:i] {
				l.unlockRange(held)
			}
			if !isRangeConflict(err) {
				return 0, fmt.Errorf("byteranges: lock entity %#x: %w", e.Value, err)
			}
			conflict = true
			break
		}
		if !conflict {
			return 0, nil
		}
		if !infinite && !time.Now().Before(expiry) {
			return 0, api.ErrOperationTimeout
		}
		if spinNotSleep {
			runtime.Gosched()
			continue
		}
		sleep := backoff
		if !infinite {
			if left := time.Until(expiry); left < sleep {
				sleep = left
			}
		}
		if sleep > 0 {
			time.Sleep(sleep)
		}
		if backoff < 10*time.Millisecond {
			backoff *= 2
		}
	}
}

func (l *byteRangesLocker) Unlock(entities []api.Entity, _ uint64) {
	for _, e := range entities {
		l.unlockRange(e)
	}
}

func (l *byteRangesLocker) Close() error {
	return l.f.Close()
}

func (l *byteRangesLocker) lockRange(e api.Entity) error {
	typ := int16(unix.F_RDLCK)
	if e.Exclusive {
		typ = unix.F_WRLCK
	}
	flk := unix.Flock_t{
		Type:   typ,
		Whence: int16(os.SEEK_SET),
		Start:  int64(e.Value % rangeSpan),
		Len:    1,
	}
	return unix.FcntlFlock(l.f.Fd(), unix.F_OFD_SETLK, &flk)
}

func (l *byteRangesLocker) unlockRange(e api.Entity) {
	flk := unix.Flock_t{
		Type:   unix.F_UNLCK,
		Whence: int16(os.SEEK_SET),
		Start:  int64(e.Value % rangeSpan),
		Len:    1,
	}
	// Unlock always succeeds from the caller's view.
	_ = unix.FcntlFlock(l.f.Fd(), unix.F_OFD_SETLK, &flk)
}

func isRangeConflict(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EACCES)
}
