package motion

const (
	DefaultCeiling = 16
	DefaultSpeed   = 1
	DefaultMargin  = 8
)

// DefaultThrustBands are the exclusive upper phase limits for each thrust cel.
var DefaultThrustBands = []int{6, 12}

// Tuning holds the constants the state machine is evaluated against.
type Tuning struct {
	ViewportW int
	ViewportH int
	SpriteW   int
	SpriteH   int

	// Margin is how far the ship may travel past the top and bottom edges.
	Margin int
	// Ceiling saturates both sustain counters and marks the full-tilt pose.
	Ceiling int
	Speed   int
	// ThrustBands must be strictly increasing; the last entry is the phase period.
	ThrustBands []int
}

// Bounds are position limits. Top and Left are inclusive, Bottom and Right exclusive.
type Bounds struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// DefaultTuning returns the tuning used by the demo for the given viewport and sprite size.
func DefaultTuning(viewportW, viewportH, spriteW, spriteH int) Tuning {
	return Tuning{
		ViewportW:   viewportW,
		ViewportH:   viewportH,
		SpriteW:     spriteW,
		SpriteH:     spriteH,
		Margin:      DefaultMargin,
		Ceiling:     DefaultCeiling,
		Speed:       DefaultSpeed,
		ThrustBands: append([]int(nil), DefaultThrustBands...),
	}
}

// Bounds derives the position limits from the viewport and sprite size.
func (t Tuning) Bounds() Bounds {
	return Bounds{
		Top:    -t.Margin,
		Bottom: t.Margin + t.ViewportH - t.SpriteH,
		Left:   0,
		Right:  t.ViewportW - t.SpriteW,
	}
}

// Clamp moves a position inside the bounds.
func (b Bounds) Clamp(x, y int) (int, int) {
	x = max(min(x, b.Right-1), b.Left)
	y = max(min(y, b.Bottom-1), b.Top)
	return x, y
}

// Normalized fills zero fields with defaults and drops non-increasing bands.
func (t Tuning) Normalized() Tuning {
	if t.Ceiling <= 0 {
		t.Ceiling = DefaultCeiling
	}
	if t.Speed <= 0 {
		t.Speed = DefaultSpeed
	}
	if t.Margin < 0 {
		t.Margin = 0
	}
	bands := make([]int, 0, len(t.ThrustBands))
	last := 0
	for _, b := range t.ThrustBands {
		if b <= last {
			continue
		}
		bands = append(bands, b)
		last = b
	}
	if len(bands) == 0 {
		bands = append(bands, DefaultThrustBands...)
	}
	t.ThrustBands = bands
	return t
}
