package component

// Session holds loop-level flags shared by the systems and the game loop.
type Session struct {
	ViewportW int
	ViewportH int

	Tick   uint64
	Quit   bool
	Paused bool
	// FullscreenRequested is set for one frame when the toggle key rises.
	FullscreenRequested bool
}

var SessionComponent = NewComponent[Session]()
