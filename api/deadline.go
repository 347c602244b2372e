// File: api/deadline.go
// Author: momentics <momentics@gmail.com>
//
// Deadline bounds a blocking wait: infinite, immediate, relative or absolute.

package api

import "time"

type deadlineKind uint8

const (
	deadlineInfinite deadlineKind = iota
	deadlineRelative
	deadlineAbsolute
)

// Deadline bounds a blocking wait. The zero value blocks indefinitely.
type Deadline struct {
	kind deadlineKind
	rel  time.Duration
	abs  time.Time
}

// In returns a deadline expiring after d. In(0) is an immediate (zero-wait)
// deadline.
func In(d time.Duration) Deadline {
	return Deadline{kind: deadlineRelative, rel: d}
}

// At returns a deadline expiring at the absolute time t.
func At(t time.Time) Deadline {
	return Deadline{kind: deadlineAbsolute, abs: t}
}

// Immediate returns a zero-wait deadline.
func Immediate() Deadline { return In(0) }

// Infinite reports whether the deadline never expires.
func (d Deadline) Infinite() bool { return d.kind == deadlineInfinite }

// Valid reports whether the deadline is well formed. A negative relative
// duration is malformed.
func (d Deadline) Valid() bool {
	return d.kind != deadlineRelative || d.rel >= 0
}

// Resolve pins the deadline to an absolute expiry against now. The returned
// time is meaningless when the deadline is infinite.
func (d Deadline) Resolve(now time.Time) (expiry time.Time, infinite bool) {
	switch d.kind {
	case deadlineInfinite:
		return time.Time{}, true
	case deadlineRelative:
		return now.Add(d.rel), false
	default:
		return d.abs, false
	}
}
