package models

import "github.com/zeusync/planetattack/internal/core/systems/physics"

// RenderState is what a renderer needs to draw one object.
type RenderState struct {
	ID              EntityID
	Kind            Kind
	Variant         string
	Position        physics.Vector
	RotationDegrees float64
	Size            float64
	Health          int
	MaxHealth       int
	Shielded        bool
	// BladeDegrees spins the blade sprite of a spinner with extended blades.
	BladeDegrees float64
}

func (b *Base) RenderBase(variant string, size float64) RenderState {
	return RenderState{
		ID:              b.id,
		Kind:            b.kind,
		Variant:         variant,
		Position:        b.Position(),
		RotationDegrees: b.RotationDegrees(),
		Size:            size,
	}
}
