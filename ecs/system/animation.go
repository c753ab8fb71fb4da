package system

import (
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
	"github.com/milk9111/shipscroller/motion"
)

// AnimationSystem picks the ship and flame cels from the actor's pose and
// flame selection.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ShipComponent.Kind(), func(e ecs.Entity, ship *component.Ship) {
		if frame, ok := ecs.Get(w, e, component.SheetFrameComponent.Kind()); ok {
			frame.Column = int(ship.Actor.Pose)
			if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
				sprite.Source = frame.Rect()
				sprite.UseSource = true
			}
		}

		exhaust, ok := ecs.Get(w, e, component.ExhaustComponent.Kind())
		if !ok {
			return
		}
		exhaust.Frame.Column = int(ship.Actor.Flame)
		exhaust.Sprite.Source = exhaust.Frame.Rect()
		exhaust.Sprite.UseSource = true
		exhaust.Sprite.FlipX = exhaust.MirrorReverse && ship.Actor.Flame == motion.FlameReverse
	})
}
