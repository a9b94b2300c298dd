package entities

import (
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

// Player is a ship driven by an input snapshot each tick.
type Player struct {
	*models.Entity

	env      models.Environment
	number   int
	input    models.Input
	cooldown int
	score    int
	thrust   float64
	turnStep float64
	size     float64
}

// NewPlayer places player number at pos, facing along +X.
func NewPlayer(env models.Environment, pos physics.Vector, number int) *Player {
	cfg := env.Config()
	pc := cfg.Player
	body := newBody(pc.Mass, pos, physics.Vector{}, pc.Drag, 0, pc.Size)
	body.SetHitbox(physics.MustRegular(pos, pc.HitboxSides, pc.Size))

	return &Player{
		Entity:   models.NewEntity(models.NewBase(env.NextID(), models.KindPlayer, body), entityParams(cfg, pc.MaxHealth, pc.HealAmount)),
		env:      env,
		number:   number,
		thrust:   cfg.Timing.PerSecondSquaredToPerTickSquared(pc.Thrust),
		turnStep: cfg.Timing.PerSecondToPerTick(pc.RotationSpeed),
		size:     pc.Size,
	}
}

// SetInput stores the controls read on the next Update.
func (p *Player) SetInput(in models.Input) { p.input = in }

func (p *Player) Input() models.Input { return p.input }

// Update integrates first; the controls then shape the next tick.
func (p *Player) Update(tick int) {
	p.Entity.Update(tick)
	p.handleInput()
	if p.cooldown > 0 {
		p.cooldown--
	}
}

func (p *Player) handleInput() {
	in := p.input
	if in.Forward {
		p.ApplyForce(physics.FromAngle(p.Rotation(), p.thrust))
	}
	if in.Left {
		p.Rotate(p.turnStep)
	}
	if in.Right {
		p.Rotate(-p.turnStep)
	}
	if in.Shoot && p.cooldown == 0 && p.Exists() {
		b := NewBullet(p.env, p, BulletVariantFor(p.PowerUp()))
		if in.HasPointer {
			b.SetVelocity(b.Velocity().RotateTo(in.Pointer.Sub(p.Position()).Rotation()))
		}
		p.env.Spawn(b)
		p.cooldown = b.Cooldown()
	}
}

func (p *Player) Number() int { return p.number }

func (p *Player) Score() int { return p.score }

func (p *Player) AddScore(points int) { p.score += points }

// Cooldown is the number of ticks until the next shot.
func (p *Player) Cooldown() int { return p.cooldown }

func (p *Player) Render() models.RenderState {
	return p.RenderBase("spaceship", p.size)
}
