package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shipscroller/assets"
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
)

// ImageLoader resolves an asset path to an image. A nil loader builds
// entities without images, which is how the headless runner uses them.
type ImageLoader func(path string) (*ebiten.Image, error)

// EmbeddedImages loads images from the embedded asset bundle.
var EmbeddedImages ImageLoader = assets.LoadImage

func (l ImageLoader) load(path string) (*ebiten.Image, error) {
	if l == nil || path == "" {
		return nil, nil
	}
	img, err := l(path)
	if err != nil {
		return nil, fmt.Errorf("entity: load image %s: %w", path, err)
	}
	return img, nil
}

// add is a small helper that keeps builder bodies flat.
func add[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], value *T, what string) error {
	if err := ecs.Add(w, e, handle.Kind(), value); err != nil {
		return fmt.Errorf("entity: add %s: %w", what, err)
	}
	return nil
}
