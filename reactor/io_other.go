//go:build !unix

// File: reactor/io_other.go
// Author: momentics <momentics@gmail.com>

package reactor

import "github.com/momentics/hioload-fs/api"

func transfer(fd int, buf []byte, off int64, write bool) (int, error) {
	return 0, api.ErrNotSupported
}
