// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package fsmutex implements an entity-based mutex for coordinating access
// to shared filesystem resources across threads and processes. Callers lock
// abstract 63-bit entity identifiers, never paths; concrete locking
// algorithms plug in behind the Locker contract. Fairness between concurrent
// requesters of overlapping entities is left to the algorithm.
package fsmutex
