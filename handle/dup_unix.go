//go:build unix

// File: handle/dup_unix.go
// Author: momentics <momentics@gmail.com>

package handle

import "golang.org/x/sys/unix"

func dupFd(fd int) (int, error) {
	// Clones always start with close-on-exec set.
	return unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, 0)
}
