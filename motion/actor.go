package motion

// Pose is the visible tilt of the ship. The value doubles as the column in
// the ship sprite sheet.
type Pose int

const (
	PoseUpFull Pose = iota
	PoseUpPartial
	PoseNeutral
	PoseDownPartial
	PoseDownFull
)

func (p Pose) String() string {
	switch p {
	case PoseUpFull:
		return "up_full"
	case PoseUpPartial:
		return "up_partial"
	case PoseNeutral:
		return "neutral"
	case PoseDownPartial:
		return "down_partial"
	case PoseDownFull:
		return "down_full"
	default:
		return "unknown"
	}
}

// Flame selects the thruster cel. The value is the column in the flame sheet;
// thrust bands continue upward from FlameThrust.
type Flame int

const (
	FlameReverse Flame = iota
	FlameIdle
	FlameThrust
)

func (f Flame) String() string {
	switch {
	case f == FlameReverse:
		return "reverse"
	case f == FlameIdle:
		return "idle"
	case f >= FlameThrust:
		return "thrust"
	default:
		return "unknown"
	}
}

// Intent is the set of directional controls currently held.
type Intent struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Actor is the full per-session state of the controlled ship.
type Actor struct {
	X, Y int

	Intent Intent

	SustainUp   int
	SustainDown int
	ThrustPhase int

	Pose  Pose
	Flame Flame
}

// NewActor places an actor at x, y at rest.
func NewActor(x, y int) Actor {
	return Actor{
		X:     x,
		Y:     y,
		Pose:  PoseNeutral,
		Flame: FlameIdle,
	}
}
