//go:build !unix

// File: handle/dup_other.go
// Author: momentics <momentics@gmail.com>

package handle

import "github.com/momentics/hioload-fs/api"

func dupFd(fd int) (int, error) {
	return 0, api.ErrNotSupported
}
