package models

import (
	"math/rand"

	"github.com/zeusync/planetattack/internal/core/config"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

// Environment is the world as seen by the objects living in it. It never
// lets an object change chunk membership directly: spawns are queued and
// joined at the end of the tick.
type Environment interface {
	Config() *config.Config
	Rand() *rand.Rand
	Tick() int

	NextID() EntityID
	Spawn(obj Object)
	// Count is the number of live objects of a kind, pending spawns included.
	Count(kind Kind) int

	// Neighbours lists the distinct objects in the 3x3 chunk block around p.
	Neighbours(p physics.Vector) []Object
	// RandomPlayer returns nil when no player is registered.
	RandomPlayer() Object
	// EnemyRemoved drops a dead enemy from the wave registry.
	EnemyRemoved(obj Object)

	Publish(eventType string, data any)
}
