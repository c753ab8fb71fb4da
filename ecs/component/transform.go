package component

// Transform is the top-left draw position in viewport pixels.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
