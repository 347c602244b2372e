// File: api/entity.go
// Author: momentics <momentics@gmail.com>
//
// Entity identifies a lockable shared filesystem resource: a 63 bit value
// plus an exclusive/shared flag.

package api

// EntityValueMask bounds the value of an entity to 63 bits.
const EntityValueMask uint64 = 1<<63 - 1

// entityExclusiveBit holds the exclusive flag in the packed 64 bit form.
const entityExclusiveBit uint64 = 1 << 63

// Entity is the identifier of an abstract lockable unit. Value never exceeds
// 63 bits; Exclusive selects exclusive versus shared access semantics for a
// lock request. Identifiers are process-local and never persisted.
type Entity struct {
	Value     uint64
	Exclusive bool
}

// Pack encodes the entity into one 64 bit word: value in the low 63 bits,
// the exclusive flag in bit 63. The packing is an explicit encoding, not a
// memory-layout guarantee.
func (e Entity) Pack() uint64 {
	v := e.Value & EntityValueMask
	if e.Exclusive {
		v |= entityExclusiveBit
	}
	return v
}

// UnpackEntity decodes a word produced by Pack.
func UnpackEntity(w uint64) Entity {
	return Entity{Value: w & EntityValueMask, Exclusive: w&entityExclusiveBit != 0}
}
