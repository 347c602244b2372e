//go:build unix

// File: reactor/io_unix.go
// Author: momentics <momentics@gmail.com>
//
// Positional transfers via pread(2)/pwrite(2).

package reactor

import "golang.org/x/sys/unix"

func transfer(fd int, buf []byte, off int64, write bool) (int, error) {
	if write {
		return unix.Pwrite(fd, buf, off)
	}
	return unix.Pread(fd, buf, off)
}
