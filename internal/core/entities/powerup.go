package entities

import (
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

// PowerUp floats where it was dropped until a player collects it.
type PowerUp struct {
	models.Base

	effect models.PowerUpType
	size   float64
}

func NewPowerUp(env models.Environment, pos, vel physics.Vector, effect models.PowerUpType) *PowerUp {
	pc := env.Config().PowerUp
	return &PowerUp{
		Base:   models.NewBase(env.NextID(), models.KindPowerUp, newBody(pc.Mass, pos, vel, pc.Drag, 0, pc.Size)),
		effect: effect,
		size:   pc.Size,
	}
}

func (p *PowerUp) Effect() models.PowerUpType { return p.effect }

func (p *PowerUp) Render() models.RenderState {
	return p.RenderBase("power_up_"+p.effect.String(), p.size)
}
