package models

import "github.com/zeusync/planetattack/internal/core/systems/physics"

type EntityID uint64

// Simulated objects advance once per tick.
type Simulated interface {
	Update(tick int)
	Exists() bool
	LastTick() int
}

// Collidable objects take part in the chunk collision pass.
type Collidable interface {
	physics.Physical
	Kind() Kind
	// Hit applies the default reaction to a collision.
	Hit()
}

// Drawable objects describe themselves to a renderer.
type Drawable interface {
	Render() RenderState
	Drawn() bool
	SetDrawn(bool)
}

// Object is anything that lives in the world grid.
type Object interface {
	ID() EntityID
	Simulated
	Collidable
	Drawable
}

// BounceExempt objects are allowed to leave the world instead of bouncing
// off its border.
type BounceExempt interface {
	BounceExempt() bool
}

// Base binds an identity and kind to a body. Kinds embed it and inherit
// the body's accessors.
type Base struct {
	*physics.Body
	id   EntityID
	kind Kind
}

func NewBase(id EntityID, kind Kind, body *physics.Body) Base {
	return Base{Body: body, id: id, kind: kind}
}

func (b *Base) ID() EntityID { return b.id }

func (b *Base) Kind() Kind { return b.kind }

func (b *Base) Physics() *physics.Body { return b.Body }

// Hit removes the object from the world.
func (b *Base) Hit() { b.SetExists(false) }
