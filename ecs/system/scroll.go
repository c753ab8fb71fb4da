package system

import (
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
)

// ScrollSystem moves every background band one step.
type ScrollSystem struct {
	wrapped []int
}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if paused(w) {
		return
	}
	ecs.ForEach(w, component.BackgroundComponent.Kind(), func(e ecs.Entity, bg *component.Background) {
		if bg.Ring == nil {
			return
		}
		s.wrapped = bg.Ring.Step(s.wrapped[:0])
		for _, idx := range s.wrapped {
			w.Events().Push(ecs.Event{
				Type: ecs.EventTileWrapped,
				Data: ecs.TileWrapped{Entity: e, Index: idx, Offset: bg.Ring.Offsets()[idx]},
			})
		}
	})
}
