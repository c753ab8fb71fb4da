package entity

import (
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
	"github.com/milk9111/shipscroller/motion"
	"github.com/milk9111/shipscroller/prefabs"
)

// NewShip builds the player ship from its spec, centred on the spawn point.
func NewShip(w *ecs.World, spec *prefabs.ShipSpec, viewportW, viewportH int, images ImageLoader) (ecs.Entity, error) {
	shipSheet, err := images.load(spec.Sprite.Image)
	if err != nil {
		return 0, err
	}
	flameSheet, err := images.load(spec.Exhaust.Image)
	if err != nil {
		return 0, err
	}

	x, y := spec.SpawnPosition(viewportW, viewportH)
	e := w.CreateEntity()

	ship := &component.Ship{
		Actor:  motion.NewActor(x, y),
		Tuning: spec.Tuning(viewportW, viewportH),
	}
	if err := add(w, e, component.ShipComponent, ship, "ship"); err != nil {
		return 0, err
	}
	if err := add(w, e, component.KeyQueueComponent, &component.KeyQueue{}, "key queue"); err != nil {
		return 0, err
	}
	if err := add(w, e, component.TransformComponent, &component.Transform{X: float64(x), Y: float64(y)}, "transform"); err != nil {
		return 0, err
	}
	frame := &component.SheetFrame{
		Sheet:  shipSheet,
		FrameW: spec.Sprite.FrameW,
		FrameH: spec.Sprite.FrameH,
		Column: int(ship.Actor.Pose),
	}
	if err := add(w, e, component.SheetFrameComponent, frame, "sheet frame"); err != nil {
		return 0, err
	}
	if err := add(w, e, component.SpriteComponent, &component.Sprite{Image: shipSheet, UseSource: true, Source: frame.Rect()}, "sprite"); err != nil {
		return 0, err
	}
	exhaust := &component.Exhaust{
		Sprite: component.Sprite{
			Image:     flameSheet,
			UseSource: true,
			OffsetX:   spec.Exhaust.OffsetX,
			OffsetY:   spec.Exhaust.OffsetY,
		},
		Frame: component.SheetFrame{
			Sheet:  flameSheet,
			FrameW: spec.Exhaust.FrameW,
			FrameH: spec.Exhaust.FrameH,
			Column: int(ship.Actor.Flame),
		},
		MirrorReverse: spec.Exhaust.MirrorReverse,
	}
	exhaust.Sprite.Source = exhaust.Frame.Rect()
	if err := add(w, e, component.ExhaustComponent, exhaust, "exhaust"); err != nil {
		return 0, err
	}
	if err := add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: spec.RenderLayer}, "render layer"); err != nil {
		return 0, err
	}
	return e, nil
}

// ApplyShipSpec re-tunes an existing ship in place. Intents are kept and the
// position is pulled inside the new bounds.
func ApplyShipSpec(w *ecs.World, e ecs.Entity, spec *prefabs.ShipSpec, viewportW, viewportH int) bool {
	ship, ok := ecs.Get(w, e, component.ShipComponent.Kind())
	if !ok {
		return false
	}
	ship.Tuning = spec.Tuning(viewportW, viewportH)
	if c := ship.Tuning.Ceiling; ship.Actor.SustainUp > c {
		ship.Actor.SustainUp = c
	}
	if c := ship.Tuning.Ceiling; ship.Actor.SustainDown > c {
		ship.Actor.SustainDown = c
	}
	ship.Actor.X, ship.Actor.Y = ship.Tuning.Bounds().Clamp(ship.Actor.X, ship.Actor.Y)
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		tr.X, tr.Y = float64(ship.Actor.X), float64(ship.Actor.Y)
	}

	if frame, ok := ecs.Get(w, e, component.SheetFrameComponent.Kind()); ok {
		frame.FrameW, frame.FrameH = spec.Sprite.FrameW, spec.Sprite.FrameH
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Source = frame.Rect()
		}
	}
	if exhaust, ok := ecs.Get(w, e, component.ExhaustComponent.Kind()); ok {
		exhaust.Sprite.OffsetX = spec.Exhaust.OffsetX
		exhaust.Sprite.OffsetY = spec.Exhaust.OffsetY
		exhaust.MirrorReverse = spec.Exhaust.MirrorReverse
		exhaust.Frame.FrameW, exhaust.Frame.FrameH = spec.Exhaust.FrameW, spec.Exhaust.FrameH
		exhaust.Sprite.Source = exhaust.Frame.Rect()
	}
	return true
}
