package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// SheetFrame selects one column of a single-row sprite sheet.
type SheetFrame struct {
	Sheet  *ebiten.Image
	FrameW int
	FrameH int
	Column int
}

// Rect returns the source rectangle of the current column.
func (f SheetFrame) Rect() image.Rectangle {
	x := f.Column * f.FrameW
	return image.Rect(x, 0, x+f.FrameW, f.FrameH)
}

var SheetFrameComponent = NewComponent[SheetFrame]()
