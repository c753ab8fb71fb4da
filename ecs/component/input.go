package component

import "github.com/milk9111/shipscroller/motion"

// KeyQueue collects this frame's press and release signals until the
// sampler consumes them.
type KeyQueue struct {
	Events []motion.KeyEvent
}

// Push appends events to the queue.
func (q *KeyQueue) Push(events ...motion.KeyEvent) {
	q.Events = append(q.Events, events...)
}

// Take returns the queued events and empties the queue.
func (q *KeyQueue) Take() []motion.KeyEvent {
	out := q.Events
	q.Events = nil
	return out
}

var KeyQueueComponent = NewComponent[KeyQueue]()
