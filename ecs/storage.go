package ecs

import "fmt"

// Entity packs a generation in the high 32 bits and a 1-based id in the low
// 32 bits. Destroying an entity bumps its generation so stale handles fail
// liveness checks after the id is reused.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID           { return entityID(uint32(e)) }
func (e Entity) generation() generation { return generation(uint32(uint64(e) >> entityIDBits)) }

// Valid reports whether e carries a non-zero id.
func (e Entity) Valid() bool {
	return e.id() != 0
}

func (e Entity) String() string {
	if !e.Valid() {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d@%d)", e.id(), e.generation())
}

// entityStore tracks entity generations and free ids. Ids start at 1 so the
// zero Entity is never valid.
type entityStore struct {
	gen   []generation
	alive []bool
	free  []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gen))
	}
	s.alive[id-1] = true
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gen[idx]++
	s.alive[idx] = false
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.alive[id-1] && s.gen[id-1] == e.generation()
}

func (s *entityStore) count() int {
	return len(s.gen) - len(s.free)
}
