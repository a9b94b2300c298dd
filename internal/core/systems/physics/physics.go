package physics

import (
	"fmt"
	"math"
)

// MinSeparationSquared is the smallest squared distance between two body
// positions for which ElasticCollision is defined.
const MinSeparationSquared = 1e-12

// Body carries simple Newtonian state. Velocity is in units per tick and
// acceleration in units per tick squared. A Body owns its AABB and hitbox.
type Body struct {
	mass   float64
	pos    Vector
	vel    Vector
	accel  Vector
	force  Vector
	rot    float64
	rotVel float64
	drag   float64

	aabb   AABB
	hitbox *Polygon

	exists   bool
	drawn    bool
	lastTick int
}

// BodyParams describes the initial state of a Body.
type BodyParams struct {
	Mass     float64
	Position Vector
	Velocity Vector
	Drag     float64
	Rotation float64
	Spin     float64
	// Size is the side length of the square AABB and default hitbox.
	Size float64
}

// NewBody builds a body with a square AABB and hitbox centred on the position.
func NewBody(p BodyParams) (*Body, error) {
	if !(p.Mass > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMass, p.Mass)
	}
	return &Body{
		mass:     p.Mass,
		pos:      p.Position,
		vel:      p.Velocity,
		drag:     p.Drag,
		rot:      p.Rotation,
		rotVel:   p.Spin,
		aabb:     NewAABB(p.Position.X-p.Size/2, p.Position.Y-p.Size/2, p.Size, p.Size),
		hitbox:   NewRect(p.Position, p.Size, p.Size),
		exists:   true,
		lastTick: -1,
	}, nil
}

// MustBody is NewBody for parameters known to be valid.
func MustBody(p BodyParams) *Body {
	b, err := NewBody(p)
	if err != nil {
		panic(err)
	}
	return b
}

// Update integrates one tick. Bodies that no longer exist are left untouched.
func (b *Body) Update(tick int) {
	if !b.exists {
		return
	}
	// quadratic drag opposing the current velocity
	b.ApplyForce(b.vel.Scale(-b.drag * b.vel.Magnitude()))
	b.accel = b.force.Scale(1 / b.mass)
	b.vel = b.vel.Add(b.accel)
	b.pos = b.pos.Add(b.vel)
	b.aabb = b.aabb.Translate(b.vel)
	b.hitbox.OffsetBy(b.vel)
	b.Rotate(b.rotVel)
	b.force = Vector{}
	b.lastTick = tick
	b.drawn = false
}

// ApplyForce adds f to the accumulator consumed by the next Update.
func (b *Body) ApplyForce(f Vector) {
	b.force = b.force.Add(f)
}

// Rotate turns the body and its hitbox about the body position.
func (b *Body) Rotate(rads float64) {
	if rads == 0 {
		return
	}
	b.rot = WrapAngle(b.rot + rads)
	b.hitbox.RotateAround(rads, b.pos)
}

// RotateTo turns the body to face the given absolute angle.
func (b *Body) RotateTo(rads float64) {
	b.Rotate(rads - b.rot)
}

// Collides runs SAT between both hitboxes. Non-existing bodies never collide.
func (b *Body) Collides(other *Body) bool {
	if !b.exists || !other.exists {
		return false
	}
	return b.hitbox.Collides(other.hitbox)
}

func (b *Body) CollidesPolygon(p *Polygon) bool { return b.hitbox.Collides(p) }

func (b *Body) CollidesAABB(box AABB) bool { return b.hitbox.CollidesAABB(box) }

// ElasticCollision exchanges momentum between b and other using the 2D
// elastic collision formula. Coincident positions leave both velocities
// unchanged and return ErrCoincidentBodies.
func (b *Body) ElasticCollision(other *Body) error {
	dPos := b.pos.Sub(other.pos)
	distSq := dPos.MagnitudeSquared()
	if distSq < MinSeparationSquared {
		return ErrCoincidentBodies
	}
	dVel := b.vel.Sub(other.vel)
	total := b.mass + other.mass
	// dot(v2-v1, x2-x1) == dot(v1-v2, x1-x2), so one dot product serves both
	dot := dVel.Dot(dPos)
	s1 := 2 * other.mass / total * dot / distSq
	s2 := 2 * b.mass / total * dot / distSq
	b.vel = b.vel.Sub(dPos.Scale(s1))
	other.vel = other.vel.Add(dPos.Scale(s2))
	return nil
}

func (b *Body) Mass() float64 { return b.mass }

func (b *Body) Position() Vector { return b.pos }

func (b *Body) Velocity() Vector { return b.vel }

func (b *Body) SetVelocity(v Vector) { b.vel = v }

func (b *Body) SetVelX(x float64) { b.vel.X = x }

func (b *Body) SetVelY(y float64) { b.vel.Y = y }

func (b *Body) Acceleration() Vector { return b.accel }

// Force returns the accumulated, not yet integrated force.
func (b *Body) Force() Vector { return b.force }

// Rotation is in radians within [0, 2pi).
func (b *Body) Rotation() float64 { return b.rot }

func (b *Body) RotationDegrees() float64 { return b.rot * 180 / math.Pi }

func (b *Body) Spin() float64 { return b.rotVel }

func (b *Body) SetSpin(rads float64) { b.rotVel = rads }

func (b *Body) Drag() float64 { return b.drag }

func (b *Body) AABB() AABB { return b.aabb }

// Hitbox returns the live hitbox; callers must not retain it across ticks.
func (b *Body) Hitbox() *Polygon { return b.hitbox }

// SetHitbox replaces the hitbox wholesale.
func (b *Body) SetHitbox(p *Polygon) { b.hitbox = p }

func (b *Body) Exists() bool { return b.exists }

func (b *Body) SetExists(exists bool) { b.exists = exists }

func (b *Body) Drawn() bool { return b.drawn }

func (b *Body) SetDrawn(drawn bool) { b.drawn = drawn }

// LastTick is the tick of the most recent Update, or -1 before the first.
func (b *Body) LastTick() int { return b.lastTick }

func (b *Body) String() string {
	return fmt.Sprintf("pos = %s, vel = %s, accel = %s, exists = %t", b.pos, b.vel, b.accel, b.exists)
}
