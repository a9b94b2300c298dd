package models

import "github.com/zeusync/planetattack/internal/core/systems/physics"

// Input is one player's control snapshot for a tick.
type Input struct {
	Forward bool
	Left    bool
	Right   bool
	Shoot   bool
	// Pointer is the aim point in world coordinates, read only when
	// HasPointer is set.
	Pointer    physics.Vector
	HasPointer bool
}

// AnyHeld reports whether any control is held.
func (in Input) AnyHeld() bool {
	return in.Forward || in.Left || in.Right || in.Shoot
}
