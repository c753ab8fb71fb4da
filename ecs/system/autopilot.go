package system

import (
	"context"
	"log"

	"github.com/milk9111/shipscroller/autopilot"
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
)

// AutopilotSystem feeds scripted key events into every KeyQueue. A script
// error is logged once and stops the pilot.
type AutopilotSystem struct {
	pilot *autopilot.Pilot
	ctx   context.Context
}

func NewAutopilotSystem(ctx context.Context, pilot *autopilot.Pilot) *AutopilotSystem {
	if ctx == nil {
		ctx = context.Background()
	}
	return &AutopilotSystem{pilot: pilot, ctx: ctx}
}

// SetPilot replaces the running script, e.g. after a hot reload.
func (a *AutopilotSystem) SetPilot(p *autopilot.Pilot) {
	a.pilot = p
}

func (a *AutopilotSystem) Pilot() *autopilot.Pilot {
	return a.pilot
}

func (a *AutopilotSystem) Update(w *ecs.World) {
	if a == nil || a.pilot == nil {
		return
	}
	if _, s, ok := ecs.First(w, component.SessionComponent.Kind()); ok && s.Paused {
		return
	}

	events, err := a.pilot.Next(a.ctx)
	if err != nil {
		log.Printf("autopilot: %v", err)
		a.pilot = nil
		return
	}
	if len(events) == 0 {
		return
	}
	ecs.ForEach(w, component.KeyQueueComponent.Kind(), func(e ecs.Entity, q *component.KeyQueue) {
		q.Push(events...)
	})
}
