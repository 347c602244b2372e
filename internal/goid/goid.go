// File: internal/goid/goid.go
// Author: momentics <momentics@gmail.com>
//
// Goroutine identity for owner-thread checks. The reactor records the
// constructing goroutine's ID and rejects drain calls from anywhere else.
// Extraction parses the first line of runtime.Stack ("goroutine N [...]"),
// which is stable across Go versions; the cost only matters on blocking
// drain entry, never on a hot path.

package goid

import "runtime"

// ID returns the current goroutine's ID, or 0 if parsing fails.
func ID() int64 {
	// Only the first line is needed: "goroutine 123 [running]:".
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return parse(buf[:n])
}

func parse(b []byte) int64 {
	const prefix = "goroutine "
	if len(b) < len(prefix) {
		return 0
	}
	b = b[len(prefix):]
	var id int64
	for _, c := range b {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + int64(c-'0')
	}
	return id
}
