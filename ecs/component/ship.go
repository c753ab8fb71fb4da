package component

import "github.com/milk9111/shipscroller/motion"

// Ship owns the controlled actor and the tuning its motion is evaluated with.
type Ship struct {
	Actor   motion.Actor
	Tuning  motion.Tuning
	Sampler motion.Sampler
}

var ShipComponent = NewComponent[Ship]()
