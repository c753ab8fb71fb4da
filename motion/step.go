package motion

// StepVertical moves the actor along y and updates the sustain counters.
func StepVertical(a *Actor, t Tuning) {
	b := t.Bounds()
	if a.Intent.Up {
		if y := a.Y - t.Speed; y >= b.Top {
			a.Y = y
		}
		a.SustainUp++
	} else if a.SustainUp > 0 {
		a.SustainUp--
	}

	if a.Intent.Down {
		if y := a.Y + t.Speed; y < b.Bottom {
			a.Y = y
		}
		a.SustainDown++
	} else if a.SustainDown > 0 {
		a.SustainDown--
	}
}

// DerivePose maps the sustain counters to a pose. It returns the counters
// after damping and saturation; the inputs are not modified.
func DerivePose(up, down int, upHeld, downHeld bool, ceiling int) (Pose, int, int) {
	switch {
	case (up > 0 && down > 0) || (up == 0 && down == 0):
		// a reversal drains the stale opposite counter quickly
		if upHeld {
			down /= 2
		} else if downHeld {
			up /= 2
		}
		return PoseNeutral, up, down
	case up < ceiling && down == 0:
		return PoseUpPartial, up, down
	case up >= ceiling:
		return PoseUpFull, ceiling, down
	case up == 0 && down < ceiling:
		return PoseDownPartial, up, down
	default:
		return PoseDownFull, up, ceiling
	}
}

// UpdatePose applies DerivePose to the actor.
func UpdatePose(a *Actor, t Tuning) {
	a.Pose, a.SustainUp, a.SustainDown = DerivePose(a.SustainUp, a.SustainDown, a.Intent.Up, a.Intent.Down, t.Ceiling)
}

// ThrustFlame returns the thrust cel for a phase, and false once the phase
// has run past the last band and must restart.
func ThrustFlame(phase int, bands []int) (Flame, bool) {
	for i, limit := range bands {
		if phase < limit {
			return FlameThrust + Flame(i), true
		}
	}
	return 0, false
}

// StepHorizontal moves the actor along x and selects the flame cel.
func StepHorizontal(a *Actor, t Tuning) {
	b := t.Bounds()
	switch {
	case a.Intent.Right:
		if f, ok := ThrustFlame(a.ThrustPhase, t.ThrustBands); ok {
			a.Flame = f
		} else {
			a.ThrustPhase = 0
		}
		a.ThrustPhase++
		if x := a.X + t.Speed; x < b.Right {
			a.X = x
		}
	case a.Intent.Left:
		if x := a.X - t.Speed; x > b.Left {
			a.X = x
		}
		a.Flame = FlameReverse
	default:
		a.Flame = FlameIdle
	}
}

// Step advances the actor by one tick.
func Step(a *Actor, t Tuning) {
	if a == nil {
		return
	}
	StepVertical(a, t)
	UpdatePose(a, t)
	StepHorizontal(a, t)
}
