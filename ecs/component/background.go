package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shipscroller/scroll"
)

// Background is a horizontally repeating band of identical tiles.
type Background struct {
	Ring *scroll.Ring
	Tile *ebiten.Image
	Y    float64
}

var BackgroundComponent = NewComponent[Background]()
