// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor implements the single-owner-thread event loop multiplexing
// posted deferred work and asynchronous file I/O completions. Construction
// binds the reactor to the calling thread; all platform branching lives in
// the backend files (signal-interruptible ppoll wait on Linux, kqueue user
// events on BSD, a portable channel park elsewhere).
package reactor
