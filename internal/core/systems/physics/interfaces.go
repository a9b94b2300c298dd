package physics

// Physical is implemented by anything simulated through a Body.
type Physical interface {
	Physics() *Body
}

// Transform exposes the read-only spatial state used by targeting code.
type Transform interface {
	Position() Vector
	Velocity() Vector
	Rotation() float64
}

var _ Transform = (*Body)(nil)

// Distance returns the distance between two transforms.
func Distance(a, b Transform) float64 { return a.Position().Distance(b.Position()) }
