package motion

import "strings"

// Key is a logical control, already mapped from physical keys.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
	KeyFullscreen
	KeyPause
)

var keyNames = map[string]Key{
	"up":         KeyUp,
	"down":       KeyDown,
	"left":       KeyLeft,
	"right":      KeyRight,
	"quit":       KeyQuit,
	"fullscreen": KeyFullscreen,
	"pause":      KeyPause,
}

// ParseKey maps a control name to a Key. Unknown names return KeyNone.
func ParseKey(name string) Key {
	return keyNames[strings.ToLower(strings.TrimSpace(name))]
}

func (k Key) String() string {
	for name, key := range keyNames {
		if key == k {
			return name
		}
	}
	return "none"
}

// KeyEvent is one press or release signal.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// Press and Release build key events.
func Press(k Key) KeyEvent   { return KeyEvent{Key: k, Pressed: true} }
func Release(k Key) KeyEvent { return KeyEvent{Key: k} }

// Signals are the session-level outputs of sampling.
type Signals struct {
	Quit             bool
	ToggleFullscreen bool
	TogglePause      bool
}

// Sampler folds key signals into an actor's intents. A direction only rises
// when it is not already held, and a direction cannot rise in the same batch
// its opposite rose in.
type Sampler struct {
	rose Intent
}

// Begin starts a new frame's batch of signals.
func (s *Sampler) Begin() {
	s.rose = Intent{}
}

// Apply begins a batch and applies events in order.
func (s *Sampler) Apply(a *Actor, events []KeyEvent) Signals {
	s.Begin()
	var sig Signals
	for _, ev := range events {
		s.apply(a, ev, &sig)
	}
	return sig
}

func (s *Sampler) apply(a *Actor, ev KeyEvent, sig *Signals) {
	if a == nil {
		return
	}
	if !ev.Pressed {
		switch ev.Key {
		case KeyUp:
			a.Intent.Up = false
		case KeyDown:
			a.Intent.Down = false
		case KeyLeft:
			a.Intent.Left = false
		case KeyRight:
			a.Intent.Right = false
		}
		return
	}

	switch ev.Key {
	case KeyUp:
		if a.Intent.Up || s.rose.Down {
			return
		}
		a.Intent.Up = true
		a.Intent.Down = false
		a.SustainUp = 0
		s.rose.Up = true
	case KeyDown:
		if a.Intent.Down || s.rose.Up {
			return
		}
		a.Intent.Down = true
		a.Intent.Up = false
		a.SustainDown = 0
		s.rose.Down = true
	case KeyLeft:
		if a.Intent.Left || s.rose.Right {
			return
		}
		a.Intent.Left = true
		a.Intent.Right = false
		s.rose.Left = true
	case KeyRight:
		if a.Intent.Right || s.rose.Left {
			return
		}
		a.Intent.Right = true
		a.Intent.Left = false
		a.ThrustPhase = 0
		s.rose.Right = true
	case KeyQuit:
		sig.Quit = true
	case KeyFullscreen:
		sig.ToggleFullscreen = !sig.ToggleFullscreen
	case KeyPause:
		sig.TogglePause = !sig.TogglePause
	}
}

// Merge combines signals from several batches.
func (s Signals) Merge(o Signals) Signals {
	return Signals{
		Quit:             s.Quit || o.Quit,
		ToggleFullscreen: s.ToggleFullscreen != o.ToggleFullscreen,
		TogglePause:      s.TogglePause != o.TogglePause,
	}
}
