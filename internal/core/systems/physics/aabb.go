package physics

import "fmt"

// AABB is an axis-aligned bounding box. Min is the bottom-left corner and Max
// the top-right one; Min <= Max holds componentwise.
type AABB struct {
	Min Vector
	Max Vector
}

// NewAABB builds a box from its bottom-left corner and extents.
func NewAABB(x, y, ex, ey float64) AABB {
	return AABB{Min: Vec(x, y), Max: Vec(x+ex, y+ey)}
}

// AABBFromCorners builds a box from two opposite corners.
func AABBFromCorners(minPoint, maxPoint Vector) AABB {
	return NewAABB(minPoint.X, minPoint.Y, maxPoint.X-minPoint.X, maxPoint.Y-minPoint.Y)
}

// Translate returns the box moved by offset.
func (b AABB) Translate(offset Vector) AABB {
	return AABB{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// MoveTo returns the box with its bottom-left corner at position.
func (b AABB) MoveTo(position Vector) AABB {
	return AABB{Min: position, Max: position.Add(b.Extents())}
}

// MoveCentreTo returns the box centred on position.
func (b AABB) MoveCentreTo(position Vector) AABB {
	half := b.Extents().Scale(0.5)
	return AABB{Min: position.Sub(half), Max: position.Add(half)}
}

// Overlaps reports whether the interiors of both boxes intersect. Boxes that
// only share an edge do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y
}

// ContainsPoint reports whether p lies strictly inside the box.
func (b AABB) ContainsPoint(p Vector) bool {
	return b.Min.X < p.X && b.Max.X > p.X &&
		b.Min.Y < p.Y && b.Max.Y > p.Y
}

// Inside reports whether b lies within o, edges included.
func (b AABB) Inside(o AABB) bool {
	return b.Min.X >= o.Min.X && b.Max.X <= o.Max.X &&
		b.Min.Y >= o.Min.Y && b.Max.Y <= o.Max.Y
}

// Corners returns top-left, top-right, bottom-left and bottom-right.
func (b AABB) Corners() [4]Vector {
	return [4]Vector{
		Vec(b.Min.X, b.Max.Y),
		b.Max,
		b.Min,
		Vec(b.Max.X, b.Min.Y),
	}
}

func (b AABB) Extents() Vector { return b.Max.Sub(b.Min) }

func (b AABB) Center() Vector { return b.Min.Add(b.Extents().Scale(0.5)) }

func (b AABB) String() string {
	return fmt.Sprintf("minPoint = %s, maxPoint = %s", b.Min, b.Max)
}
