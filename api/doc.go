// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package api defines the shared contracts of the hioload-fs library:
// deadlines, error values, entity identifiers, the reactor surface and the
// native-handle collaborator interface. Implementations live in the reactor,
// fsmutex and handle packages.
package api
