package ecs

import "strconv"

// Entity is a generational handle. A handle whose slot has been recycled no
// longer resolves, so holders can keep one around as a weak reference.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

// None is the zero handle; it never resolves.
const None Entity = 0

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e > 0
}
