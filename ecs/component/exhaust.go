package component

// Exhaust is the thruster flame drawn behind a ship. Its column follows the
// ship's flame cel.
type Exhaust struct {
	Sprite Sprite
	Frame  SheetFrame
	// MirrorReverse draws the reverse cel flipped horizontally.
	MirrorReverse bool
}

var ExhaustComponent = NewComponent[Exhaust]()
