package entity

import (
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
	"github.com/milk9111/shipscroller/prefabs"
)

// NewSession creates the singleton session entity.
func NewSession(w *ecs.World, spec *prefabs.SessionSpec) (ecs.Entity, error) {
	e := w.CreateEntity()
	s := &component.Session{
		ViewportW: spec.Viewport.Width,
		ViewportH: spec.Viewport.Height,
	}
	if err := add(w, e, component.SessionComponent, s, "session"); err != nil {
		return 0, err
	}
	return e, nil
}
