package physics

import "errors"

// Geometry and integration errors
var (
	ErrTooFewVertices   = errors.New("polygon needs at least 3 vertices")
	ErrTooFewSides      = errors.New("regular polygon needs at least 3 sides")
	ErrInvalidMass      = errors.New("body mass must be positive")
	ErrCoincidentBodies = errors.New("bodies share a position")
)
