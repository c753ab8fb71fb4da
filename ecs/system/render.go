package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
)

type RenderSystem struct {
	Clear color.Color

	order []ecs.Entity
}

func NewRenderSystem(clear color.Color) *RenderSystem {
	return &RenderSystem{Clear: clear}
}

// Order returns drawable entities sorted by render layer, then entity id.
func (r *RenderSystem) Order(w *ecs.World) []ecs.Entity {
	r.order = r.order[:0]
	ecs.ForEach(w, component.RenderLayerComponent.Kind(), func(e ecs.Entity, _ *component.RenderLayer) {
		r.order = append(r.order, e)
	})
	sort.SliceStable(r.order, func(i, j int) bool {
		li, lj := layerOf(w, r.order[i]), layerOf(w, r.order[j])
		if li != lj {
			return li < lj
		}
		return uint64(r.order[i]) < uint64(r.order[j])
	})
	return r.order
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.Clear != nil {
		screen.Fill(r.Clear)
	}

	viewportH := screen.Bounds().Dy()
	if _, sess, ok := ecs.First(w, component.SessionComponent.Kind()); ok && sess.ViewportH > 0 {
		viewportH = sess.ViewportH
	}

	for _, e := range r.Order(w) {
		if bg, ok := ecs.Get(w, e, component.BackgroundComponent.Kind()); ok {
			drawBackground(screen, bg, viewportH)
		}

		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		// exhaust sits behind the hull
		if exhaust, ok := ecs.Get(w, e, component.ExhaustComponent.Kind()); ok {
			drawSprite(screen, &exhaust.Sprite, t.X, t.Y)
		}
		if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			drawSprite(screen, s, t.X, t.Y)
		}
	}
}

func drawBackground(screen *ebiten.Image, bg *component.Background, viewportH int) {
	if bg.Tile == nil || bg.Ring == nil {
		return
	}
	b := bg.Tile.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	sx := float64(bg.Ring.TileWidth) / float64(b.Dx())
	sy := float64(viewportH) / float64(b.Dy())
	for _, off := range bg.Ring.Offsets() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(float64(off), bg.Y)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(bg.Tile, op)
	}
}

func drawSprite(screen *ebiten.Image, s *component.Sprite, x, y float64) {
	if s == nil || s.Image == nil {
		return
	}
	img := s.Image
	if s.UseSource {
		if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
			img = sub
		}
	}

	op := &ebiten.DrawImageOptions{}
	if s.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(x+s.OffsetX, y+s.OffsetY)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}
