package system

import (
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
	"github.com/milk9111/shipscroller/motion"
)

// SamplerSystem drains each ship's KeyQueue into its intents and raises the
// session-level requests.
type SamplerSystem struct{}

func NewSamplerSystem() *SamplerSystem {
	return &SamplerSystem{}
}

func (s *SamplerSystem) Update(w *ecs.World) {
	var sig motion.Signals
	ecs.ForEach2(w, component.ShipComponent.Kind(), component.KeyQueueComponent.Kind(), func(e ecs.Entity, ship *component.Ship, q *component.KeyQueue) {
		sig = sig.Merge(ship.Sampler.Apply(&ship.Actor, q.Take()))
	})

	_, sess, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	if sig.Quit {
		sess.Quit = true
	}
	if sig.TogglePause {
		sess.Paused = !sess.Paused
	}
	if sig.ToggleFullscreen {
		sess.FullscreenRequested = true
	}
}
