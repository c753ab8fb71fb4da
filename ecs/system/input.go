package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/shipscroller/ecs"
	"github.com/milk9111/shipscroller/ecs/component"
	"github.com/milk9111/shipscroller/motion"
)

// DefaultBindings maps physical keys to controls.
var DefaultBindings = map[ebiten.Key]motion.Key{
	ebiten.KeyArrowUp:    motion.KeyUp,
	ebiten.KeyW:          motion.KeyUp,
	ebiten.KeyArrowDown:  motion.KeyDown,
	ebiten.KeyS:          motion.KeyDown,
	ebiten.KeyArrowLeft:  motion.KeyLeft,
	ebiten.KeyA:          motion.KeyLeft,
	ebiten.KeyArrowRight: motion.KeyRight,
	ebiten.KeyD:          motion.KeyRight,
	ebiten.KeyEscape:     motion.KeyQuit,
	ebiten.KeyF:          motion.KeyFullscreen,
	ebiten.KeyP:          motion.KeyPause,
}

// InputSystem turns this frame's key edges into key events on every KeyQueue.
type InputSystem struct {
	Bindings map[ebiten.Key]motion.Key

	pressed  []ebiten.Key
	released []ebiten.Key
	events   []motion.KeyEvent
}

func NewInputSystem() *InputSystem {
	return &InputSystem{Bindings: DefaultBindings}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	i.pressed = inpututil.AppendJustPressedKeys(i.pressed[:0])
	i.released = inpututil.AppendJustReleasedKeys(i.released[:0])
	i.events = Translate(i.Bindings, i.released, i.pressed, i.events[:0])
	if ebiten.IsWindowBeingClosed() {
		i.events = append(i.events, motion.Press(motion.KeyQuit))
	}
	if len(i.events) == 0 {
		return
	}

	ecs.ForEach(w, component.KeyQueueComponent.Kind(), func(e ecs.Entity, q *component.KeyQueue) {
		q.Push(i.events...)
	})
}

// Translate maps released then pressed keys through bindings, appending to
// dst. Several physical keys bound to one control collapse into one event.
func Translate(bindings map[ebiten.Key]motion.Key, released, pressed []ebiten.Key, dst []motion.KeyEvent) []motion.KeyEvent {
	var seen [2]map[motion.Key]bool
	emit := func(keys []ebiten.Key, down bool) {
		idx := 0
		if down {
			idx = 1
		}
		for _, k := range keys {
			c, ok := bindings[k]
			if !ok || c == motion.KeyNone || seen[idx][c] {
				continue
			}
			if seen[idx] == nil {
				seen[idx] = make(map[motion.Key]bool)
			}
			seen[idx][c] = true
			dst = append(dst, motion.KeyEvent{Key: c, Pressed: down})
		}
	}
	emit(released, false)
	emit(pressed, true)
	return dst
}
