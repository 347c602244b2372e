// File: fsmutex/entity.go
// Author: momentics <momentics@gmail.com>
//
// Entity identity derivation. Hash-derived identifiers fold the two halves
// of a 128-bit non-cryptographic digest, so unrelated resources may collide
// with 64-bit birthday probability; that risk is accepted, never detected.
// Identifiers are process-local and not portable across builds using a
// different hash.

package fsmutex

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"

	"github.com/momentics/hioload-fs/api"
	"github.com/momentics/hioload-fs/utils"
)

// EntityFromBytes derives an entity identifier from a byte buffer. The same
// buffer always yields the same identifier within one process.
func EntityFromBytes(b []byte, exclusive bool) api.Entity {
	h1, h2 := murmur3.Sum128(b)
	return api.Entity{Value: (h1 ^ h2) & api.EntityValueMask, Exclusive: exclusive}
}

// EntityFromString derives an entity identifier from a string.
func EntityFromString(s string, exclusive bool) api.Entity {
	return EntityFromBytes([]byte(s), exclusive)
}

// RandomEntity draws an entity identifier from cryptographic randomness.
func RandomEntity(exclusive bool) (api.Entity, error) {
	var raw [8]byte
	if err := utils.RandomFill(raw[:]); err != nil {
		return api.Entity{}, err
	}
	v := binary.LittleEndian.Uint64(raw[:]) & api.EntityValueMask
	return api.Entity{Value: v, Exclusive: exclusive}, nil
}

// FillRandomEntities fills dst with cryptographically random identifiers
// using one bulk randomness read, which is much faster than calling
// RandomEntity per element.
func FillRandomEntities(dst []api.Entity, exclusive bool) error {
	if len(dst) == 0 {
		return nil
	}
	raw := make([]byte, 8*len(dst))
	if err := utils.RandomFill(raw); err != nil {
		return err
	}
	for i := range dst {
		v := binary.LittleEndian.Uint64(raw[8*i:]) & api.EntityValueMask
		dst[i] = api.Entity{Value: v, Exclusive: exclusive}
	}
	return nil
}
