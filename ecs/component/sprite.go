package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a drawable cel. When UseSource is set only Source is drawn from Image.
type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
	OffsetX   float64
	OffsetY   float64
	FlipX     bool
}

var SpriteComponent = NewComponent[Sprite]()
