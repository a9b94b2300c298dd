// Package entities holds the kinds of object that populate the world and
// the reactions between them.
package entities

import (
	"github.com/zeusync/planetattack/internal/core/config"
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

var (
	_ models.Object = (*Player)(nil)
	_ models.Object = (*Bullet)(nil)
	_ models.Object = (*Asteroid)(nil)
	_ models.Object = (*Enemy)(nil)
	_ models.Object = (*PowerUp)(nil)
)

func entityParams(cfg *config.Config, maxHealth, heal int) models.EntityParams {
	return models.EntityParams{
		MaxHealth:        maxHealth,
		InvulnTicks:      cfg.Timing.Ticks(cfg.Entity.CollisionInvuln),
		HealAmount:       heal,
		ShieldBlinkTicks: cfg.Entity.ShieldBlinkTicks,
	}
}

// newBody builds a body from validated configuration.
func newBody(mass float64, pos, vel physics.Vector, drag, spin, size float64) *physics.Body {
	return physics.MustBody(physics.BodyParams{
		Mass:     mass,
		Position: pos,
		Velocity: vel,
		Drag:     drag,
		Spin:     spin,
		Size:     size,
	})
}

// steerTowards returns the offset from pos to a live target, or false when
// there is nothing to steer at.
func steerTowards(pos physics.Vector, target models.Object) (physics.Vector, bool) {
	if target == nil || !target.Exists() {
		return physics.Vector{}, false
	}
	return target.Physics().Position().Sub(pos), true
}
