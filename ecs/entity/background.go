package entity

import (
	"log"

	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
	"github.com/milk9111/shipscroller/prefabs"
	"github.com/milk9111/shipscroller/scroll"
)

// NewBackground builds the scrolling tile band. A tile count too small to
// cover the viewport is raised to the minimum seamless count.
func NewBackground(w *ecs.World, spec *prefabs.BackgroundSpec, viewportW int, images ImageLoader) (ecs.Entity, error) {
	tile, err := images.load(spec.Image)
	if err != nil {
		return 0, err
	}

	e := w.CreateEntity()
	bg := &component.Background{
		Ring: scroll.NewRing(tileCount(spec, viewportW), spec.TileWidth, spec.Speed),
		Tile: tile,
		Y:    spec.Y,
	}
	if err := add(w, e, component.BackgroundComponent, bg, "background"); err != nil {
		return 0, err
	}
	if err := add(w, e, component.RenderLayerComponent, &component.RenderLayer{Index: spec.RenderLayer}, "render layer"); err != nil {
		return 0, err
	}
	return e, nil
}

// ApplyBackgroundSpec updates speed and tile layout of an existing background.
func ApplyBackgroundSpec(w *ecs.World, e ecs.Entity, spec *prefabs.BackgroundSpec, viewportW int) bool {
	bg, ok := ecs.Get(w, e, component.BackgroundComponent.Kind())
	if !ok {
		return false
	}
	bg.Ring.Speed = spec.Speed
	bg.Y = spec.Y
	if n := tileCount(spec, viewportW); n != bg.Ring.Count() || spec.TileWidth != bg.Ring.TileWidth {
		bg.Ring.Resize(n, spec.TileWidth)
	}
	return true
}

func tileCount(spec *prefabs.BackgroundSpec, viewportW int) int {
	n := spec.TileCount
	if least := spec.MinTileCount(viewportW); n < least {
		log.Printf("entity: background %s: %d tiles leave a seam at width %d, using %d", spec.Name, n, viewportW, least)
		n = least
	}
	return n
}
