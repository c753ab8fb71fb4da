package system

import (
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
)

// SessionSystem runs first each frame: it clears one-frame requests and
// counts simulated ticks.
type SessionSystem struct{}

func NewSessionSystem() *SessionSystem {
	return &SessionSystem{}
}

func (s *SessionSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.SessionComponent.Kind(), func(e ecs.Entity, sess *component.Session) {
		sess.FullscreenRequested = false
		if !sess.Paused {
			sess.Tick++
		}
	})
}
