package system

import (
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
	"github.com/milk9111/shipscroller/motion"
)

// MotionSystem advances every ship's state machine and copies the position
// into its transform.
type MotionSystem struct{}

func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

func (m *MotionSystem) Update(w *ecs.World) {
	if paused(w) {
		return
	}
	ecs.ForEach2(w, component.ShipComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ship *component.Ship, t *component.Transform) {
		before := ship.Actor.Pose
		motion.Step(&ship.Actor, ship.Tuning)
		t.X = float64(ship.Actor.X)
		t.Y = float64(ship.Actor.Y)
		if ship.Actor.Pose != before {
			w.Events().Push(ecs.Event{Type: ecs.EventPoseChanged, Data: ship.Actor.Pose})
		}
	})
}

func paused(w *ecs.World) bool {
	_, s, ok := ecs.First(w, component.SessionComponent.Kind())
	return ok && s.Paused
}
