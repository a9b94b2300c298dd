package physics

import (
	"fmt"
	"math"
)

// Vector is a 2D vector in world units. It is a value type; every operation
// returns a new Vector.
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector { return Vector{X: x, Y: y} }

// FromAngle returns a vector pointing at rot radians with the given magnitude.
func FromAngle(rot, magnitude float64) Vector {
	return Vector{X: math.Cos(rot) * magnitude, Y: math.Sin(rot) * magnitude}
}

func (v Vector) Add(o Vector) Vector { return Vector{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vector) Sub(o Vector) Vector { return Vector{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vector) Scale(s float64) Vector { return Vector{X: v.X * s, Y: v.Y * s} }

func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vector) Magnitude() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// MagnitudeSquared avoids the square root; use it for comparisons.
func (v Vector) MagnitudeSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Unit returns the unit vector, or the zero vector when v has no length.
func (v Vector) Unit() Vector {
	m := v.Magnitude()
	if m > 0 {
		return v.Scale(1 / m)
	}
	return Vector{}
}

// Perpendicular returns v rotated by +90 degrees.
func (v Vector) Perpendicular() Vector { return Vector{X: -v.Y, Y: v.X} }

func (v Vector) Distance(o Vector) float64 { return v.Sub(o).Magnitude() }

func (v Vector) DistanceSquared(o Vector) float64 { return v.Sub(o).MagnitudeSquared() }

// Rotation returns the angle of v in radians, atan2(y, x).
func (v Vector) Rotation() float64 { return math.Atan2(v.Y, v.X) }

func (v Vector) RotateBy(rads float64) Vector {
	sin, cos := math.Sincos(rads)
	return Vector{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// RotateTo rotates v onto the target angle along the shortest path.
func (v Vector) RotateTo(target float64) Vector {
	return v.RotateBy(shortestDelta(target - v.Rotation()))
}

// RotateToStep rotates v towards the target angle by at most step radians.
func (v Vector) RotateToStep(target, step float64) Vector {
	delta := shortestDelta(target - v.Rotation())
	if delta > 0 {
		return v.RotateBy(math.Min(delta, step))
	}
	return v.RotateBy(math.Max(delta, -step))
}

func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vector) String() string { return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y) }

// shortestDelta maps an angle difference into (-pi, pi].
func shortestDelta(d float64) float64 {
	d = math.Mod(d, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// WrapAngle maps an angle into [0, 2pi).
func WrapAngle(rads float64) float64 {
	rads = math.Mod(rads, 2*math.Pi)
	if rads < 0 {
		rads += 2 * math.Pi
	}
	if rads >= 2*math.Pi {
		rads = 0
	}
	return rads
}
