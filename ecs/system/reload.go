package system

import (
	"log"

	"github.com/milk9111/shipscroller/autopilot"
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
	"github.com/milk9111/shipscroller/ecs/entity"
	"github.com/milk9111/shipscroller/prefabs"
)

// ReloadSystem consumes ReloadRequest entities and re-applies the named spec
// to the live world. A spec that fails to load leaves the world untouched.
type ReloadSystem struct {
	Autopilot *AutopilotSystem
}

func NewReloadSystem(pilot *AutopilotSystem) *ReloadSystem {
	return &ReloadSystem{Autopilot: pilot}
}

// RequestReload queues a reload of the named spec or script.
func RequestReload(w *ecs.World, spec string) error {
	e := w.CreateEntity()
	return ecs.Add(w, e, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{Spec: spec})
}

func (r *ReloadSystem) Update(w *ecs.World) {
	var requests []string
	ecs.ForEach(w, component.ReloadRequestComponent.Kind(), func(e ecs.Entity, req *component.ReloadRequest) {
		requests = append(requests, req.Spec)
		w.DestroyEntity(e)
	})
	if len(requests) == 0 {
		return
	}

	_, sess, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return
	}
	for _, name := range requests {
		r.reload(w, sess, name)
	}
}

func (r *ReloadSystem) reload(w *ecs.World, sess *component.Session, name string) {
	switch name {
	case prefabs.ShipSpecFile:
		spec, err := prefabs.LoadShipSpec()
		if err != nil {
			log.Printf("reload: %v", err)
			return
		}
		ecs.ForEach(w, component.ShipComponent.Kind(), func(e ecs.Entity, _ *component.Ship) {
			entity.ApplyShipSpec(w, e, spec, sess.ViewportW, sess.ViewportH)
		})
		log.Printf("reload: applied %s", name)
	case prefabs.BackgroundSpecFile:
		spec, err := prefabs.LoadBackgroundSpec()
		if err != nil {
			log.Printf("reload: %v", err)
			return
		}
		ecs.ForEach(w, component.BackgroundComponent.Kind(), func(e ecs.Entity, _ *component.Background) {
			entity.ApplyBackgroundSpec(w, e, spec, sess.ViewportW)
		})
		log.Printf("reload: applied %s", name)
	default:
		if r.Autopilot == nil || r.Autopilot.Pilot() == nil {
			return
		}
		current := r.Autopilot.Pilot().Name()
		if name != current && name != current+".tengo" {
			return
		}
		p, err := autopilot.Load(current)
		if err != nil {
			log.Printf("reload: %v", err)
			return
		}
		r.Autopilot.SetPilot(p)
		log.Printf("reload: restarted script %s", current)
	}
}
