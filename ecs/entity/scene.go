package entity

import (
	"fmt"

	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/prefabs"
)

// Scene is a freshly built world with handles to its singleton entities.
type Scene struct {
	World      *ecs.World
	Session    ecs.Entity
	Ship       ecs.Entity
	Background ecs.Entity
}

// Specs bundles the prefab specs a scene is built from.
type Specs struct {
	Session    *prefabs.SessionSpec
	Ship       *prefabs.ShipSpec
	Background *prefabs.BackgroundSpec
}

// LoadSpecs reads all prefab specs.
func LoadSpecs() (Specs, error) {
	session, err := prefabs.LoadSessionSpec()
	if err != nil {
		return Specs{}, err
	}
	ship, err := prefabs.LoadShipSpec()
	if err != nil {
		return Specs{}, err
	}
	bg, err := prefabs.LoadBackgroundSpec()
	if err != nil {
		return Specs{}, err
	}
	return Specs{Session: session, Ship: ship, Background: bg}, nil
}

// BuildScene creates the session, background and ship entities.
func BuildScene(specs Specs, images ImageLoader) (*Scene, error) {
	if specs.Session == nil || specs.Ship == nil || specs.Background == nil {
		return nil, fmt.Errorf("entity: build scene: missing spec")
	}
	w := ecs.NewWorld()
	vw, vh := specs.Session.Viewport.Width, specs.Session.Viewport.Height

	session, err := NewSession(w, specs.Session)
	if err != nil {
		return nil, err
	}
	bg, err := NewBackground(w, specs.Background, vw, images)
	if err != nil {
		return nil, err
	}
	ship, err := NewShip(w, specs.Ship, vw, vh, images)
	if err != nil {
		return nil, err
	}
	return &Scene{World: w, Session: session, Ship: ship, Background: bg}, nil
}
