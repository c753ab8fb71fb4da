package ecs

import "github.com/milk9111/shipscroller/ecs/component"

// Add stores value for e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

// Get returns the component of the given kind for e.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v, ok := w.store(kind.ID(), false).Get(e).(*T)
	return v, ok
}

// Has reports whether e has a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.IsAlive(e) && w.store(kind.ID(), false).Has(e)
}

// Remove deletes the component of the given kind from e.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.store(kind.ID(), false).Remove(e)
}

// First returns the first entity holding a component of the given kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	s := w.store(kind.ID(), false)
	for i, e := range s.Entities() {
		if v, ok := s.Values()[i].(*T); ok {
			return e, v, true
		}
	}
	return 0, nil, false
}

// ForEach calls fn for every entity with a component of the given kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, v *T)) {
	s := w.store(kind.ID(), false)
	if s == nil {
		return
	}
	// snapshot so fn may add or remove components
	ents := append([]Entity(nil), s.Entities()...)
	for _, e := range ents {
		if v, ok := s.Get(e).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every entity holding both component kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	for _, e := range w.Query(ka.ID(), kb.ID()) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
