package ecs

import "strconv"

// Entity is an opaque handle: a slot id in the low 32 bits and the slot's
// generation in the high 32 bits. The zero Entity is never issued.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

// MakeEntity builds a handle from a host-side id and generation. Hosts that
// already number their actors use this instead of a World.
func MakeEntity(id, gen uint32) Entity {
	return makeEntity(entityID(id), generation(gen))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// ID returns the slot id.
func (e Entity) ID() uint32 { return uint32(e.id()) }

// Generation returns how many times the slot has been recycled.
func (e Entity) Generation() uint32 { return uint32(e.generation()) }

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e has a non-zero slot id.
func (e Entity) Valid() bool {
	return e.id() > 0
}
