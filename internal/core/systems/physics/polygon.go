package physics

import (
	"fmt"
	"math"
)

// Polygon is a convex hitbox. Vertex order is the winding order and edge i
// runs from vertex i+1 to vertex i. Concave input is not detected.
type Polygon struct {
	vertices []Vector
	edges    []Vector
	center   Vector
}

// NewPolygon copies vertices into a new polygon.
func NewPolygon(vertices []Vector) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}
	vs := make([]Vector, len(vertices))
	copy(vs, vertices)
	return &Polygon{vertices: vs, edges: edgesOf(vs), center: centroidOf(vs)}, nil
}

// NewRect builds an axis-aligned rectangle around center.
func NewRect(center Vector, width, height float64) *Polygon {
	hw, hh := width/2, height/2
	vs := []Vector{
		Vec(center.X-hw, center.Y+hh),
		Vec(center.X+hw, center.Y+hh),
		Vec(center.X+hw, center.Y-hh),
		Vec(center.X-hw, center.Y-hh),
	}
	return &Polygon{vertices: vs, edges: edgesOf(vs), center: center}
}

// NewRegular builds a regular polygon whose first vertex sits at angle 0.
func NewRegular(center Vector, sides int, diameter float64) (*Polygon, error) {
	if sides < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSides, sides)
	}
	step := 2 * math.Pi / float64(sides)
	vs := make([]Vector, sides)
	for i := range vs {
		vs[i] = center.Add(FromAngle(step*float64(i), diameter/2))
	}
	return &Polygon{vertices: vs, edges: edgesOf(vs), center: centroidOf(vs)}, nil
}

// MustRegular is NewRegular for shapes fixed at compile time.
func MustRegular(center Vector, sides int, diameter float64) *Polygon {
	p, err := NewRegular(center, sides, diameter)
	if err != nil {
		panic(err)
	}
	return p
}

// PolygonFromAABB converts a box into an equivalent rectangle.
func PolygonFromAABB(b AABB) *Polygon {
	ext := b.Extents()
	return NewRect(b.Center(), ext.X, ext.Y)
}

func edgesOf(vs []Vector) []Vector {
	edges := make([]Vector, len(vs))
	for i := range vs {
		edges[i] = vs[i].Sub(vs[(i+1)%len(vs)])
	}
	return edges
}

func centroidOf(vs []Vector) Vector {
	var sum Vector
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(vs)))
}

// Collides runs the separating axis test against other.
func (p *Polygon) Collides(other *Polygon) bool {
	for _, edges := range [2][]Vector{p.edges, other.edges} {
		for _, e := range edges {
			axis := e.Perpendicular()
			aMin, aMax := project(p.vertices, axis)
			bMin, bMax := project(other.vertices, axis)
			if aMax <= bMin || bMax <= aMin {
				return false
			}
		}
	}
	return true
}

// CollidesAABB tests the polygon against a box.
func (p *Polygon) CollidesAABB(b AABB) bool {
	return p.Collides(PolygonFromAABB(b))
}

func project(vs []Vector, axis Vector) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		d := axis.Dot(v)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// OffsetBy translates every vertex and the centroid.
func (p *Polygon) OffsetBy(offset Vector) {
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Add(offset)
	}
	p.center = p.center.Add(offset)
}

// RotateAround rotates the polygon, centroid included, about pivot.
func (p *Polygon) RotateAround(rads float64, pivot Vector) {
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Sub(pivot).RotateBy(rads).Add(pivot)
	}
	p.edges = edgesOf(p.vertices)
	p.center = p.center.Sub(pivot).RotateBy(rads).Add(pivot)
}

// RotateBy rotates the polygon about its tracked centroid, which stays put.
func (p *Polygon) RotateBy(rads float64) {
	c := p.center
	for i := range p.vertices {
		p.vertices[i] = p.vertices[i].Sub(c).RotateBy(rads).Add(c)
	}
	p.edges = edgesOf(p.vertices)
}

// MoveTo translates the polygon so its centroid lands on pos.
func (p *Polygon) MoveTo(pos Vector) {
	p.OffsetBy(pos.Sub(p.center))
}

func (p *Polygon) Center() Vector { return p.center }

func (p *Polygon) Len() int { return len(p.vertices) }

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() []Vector {
	out := make([]Vector, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Edges returns a copy of the edge list.
func (p *Polygon) Edges() []Vector {
	out := make([]Vector, len(p.edges))
	copy(out, p.edges)
	return out
}

// Clone returns an independent copy.
func (p *Polygon) Clone() *Polygon {
	return &Polygon{vertices: p.Vertices(), edges: p.Edges(), center: p.center}
}

func (p *Polygon) String() string { return fmt.Sprint(p.vertices) }
