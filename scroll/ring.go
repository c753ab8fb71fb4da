// Package scroll models the repeating background band as a ring of tile offsets.
package scroll

// Ring is an ordered set of horizontal tile offsets that scroll left and wrap
// back to the trailing edge.
type Ring struct {
	TileWidth int
	Speed     int

	offsets []int
}

// NewRing lays out count tiles edge to edge starting at x=0.
func NewRing(count, tileWidth, speed int) *Ring {
	if count < 1 {
		count = 1
	}
	if tileWidth < 1 {
		tileWidth = 1
	}
	r := &Ring{
		TileWidth: tileWidth,
		Speed:     speed,
		offsets:   make([]int, count),
	}
	for i := range r.offsets {
		r.offsets[i] = i * tileWidth
	}
	return r
}

// Count returns the number of tiles.
func (r *Ring) Count() int {
	if r == nil {
		return 0
	}
	return len(r.offsets)
}

// Period is the total width of the band.
func (r *Ring) Period() int {
	return r.Count() * r.TileWidth
}

// Offsets returns the current offsets. The slice is owned by the ring.
func (r *Ring) Offsets() []int {
	if r == nil {
		return nil
	}
	return r.offsets
}

// Step scrolls every tile by Speed. A tile that reaches -TileWidth is moved
// one period to the right. The indices of wrapped tiles are appended to dst.
func (r *Ring) Step(dst []int) []int {
	if r == nil || len(r.offsets) == 0 {
		return dst
	}
	period := r.Period()
	for i, off := range r.offsets {
		off -= r.Speed
		wrapped := false
		for off <= -r.TileWidth {
			off += period
			wrapped = true
		}
		r.offsets[i] = off
		if wrapped {
			dst = append(dst, i)
		}
	}
	return dst
}

// Covers reports whether the tiles leave no gap over [0, width).
func (r *Ring) Covers(width int) bool {
	if r == nil || len(r.offsets) == 0 {
		return width <= 0
	}
	covered := 0
	for covered < width {
		advanced := false
		for _, off := range r.offsets {
			if off <= covered && off+r.TileWidth > covered {
				covered = off + r.TileWidth
				advanced = true
			}
		}
		if !advanced {
			return false
		}
	}
	return true
}

// Resize rebuilds the ring for a new tile count or width, keeping the scroll
// position of the first tile.
func (r *Ring) Resize(count, tileWidth int) {
	if r == nil {
		return
	}
	first := 0
	if len(r.offsets) > 0 {
		first = r.offsets[0]
	}
	next := NewRing(count, tileWidth, r.Speed)
	if first <= -next.TileWidth || first > 0 {
		first = 0
	}
	for i := range next.offsets {
		next.offsets[i] += first
	}
	*r = *next
}
