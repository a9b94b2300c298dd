package entities

import (
	"github.com/zeusync/planetattack/internal/core/config"
	"github.com/zeusync/planetattack/internal/core/events/bus"
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

type AsteroidSize uint8

const (
	AsteroidSmall AsteroidSize = iota
	AsteroidMedium
	AsteroidLarge
	AsteroidHuge
)

// AsteroidSizes lists sizes from smallest to largest.
var AsteroidSizes = []AsteroidSize{AsteroidSmall, AsteroidMedium, AsteroidLarge, AsteroidHuge}

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "huge"
	}
}

func asteroidSpec(c config.AsteroidConfig, s AsteroidSize) config.AsteroidSpec {
	switch s {
	case AsteroidSmall:
		return c.Small
	case AsteroidMedium:
		return c.Medium
	case AsteroidLarge:
		return c.Large
	default:
		return c.Huge
	}
}

// AsteroidParams describes a new asteroid.
type AsteroidParams struct {
	Position   physics.Vector
	Velocity   physics.Vector
	Size       AsteroidSize
	Rotation   float64
	Spin       float64
	Protection int
}

// Asteroid drifts until something breaks it apart.
type Asteroid struct {
	*models.Entity

	env        models.Environment
	size       AsteroidSize
	extent     float64
	protection int
}

func NewAsteroid(env models.Environment, p AsteroidParams) *Asteroid {
	cfg := env.Config()
	spec := asteroidSpec(cfg.Asteroid, p.Size)
	body := newBody(spec.Mass, p.Position, p.Velocity, spec.Drag, p.Spin, spec.Size)
	body.SetHitbox(physics.MustRegular(p.Position, cfg.Asteroid.HitboxSides, spec.Size))
	body.RotateTo(p.Rotation)

	return &Asteroid{
		Entity:     models.NewEntity(models.NewBase(env.NextID(), models.KindAsteroid, body), entityParams(cfg, cfg.Asteroid.Health, cfg.Entity.HealAmount)),
		env:        env,
		size:       p.Size,
		extent:     spec.Size,
		protection: p.Protection,
	}
}

func (a *Asteroid) Update(tick int) {
	if a.protection > 0 {
		a.protection--
	}
	a.Entity.Update(tick)
}

// Explode destroys the asteroid unless it is protected. Anything larger than
// small splits into two pieces one size down, pushed apart perpendicular to
// the impact velocity.
func (a *Asteroid) Explode(impact physics.Vector) bool {
	if a.protection > 0 || !a.Exists() {
		return false
	}
	a.SetExists(false)
	if a.size == AsteroidSmall {
		return true
	}

	cfg := a.env.Config()
	if a.env.Count(models.KindAsteroid)+2 > cfg.AsteroidCap() {
		// the field is full, the asteroid just crumbles
		a.env.Publish(bus.TypeAsteroidSplit, bus.AsteroidSplit{ID: uint64(a.ID()), Size: a.size.String()})
		return true
	}
	next := a.size - 1
	spec := asteroidSpec(cfg.Asteroid, next)

	perp := impact.Perpendicular()
	factor := cfg.Asteroid.SplitSpeedFactor
	vel1 := impact.Add(perp).Scale(factor)
	vel2 := impact.Sub(perp).Scale(factor)

	dir := impact.Unit()
	if dir.IsZero() {
		dir = physics.FromAngle(a.Rotation(), 1)
	}
	offset := dir.Scale(spec.Size / 2).Perpendicular()

	r := a.env.Rand()
	spin1 := r.Float64() * cfg.Asteroid.MaxSplitSpin
	spin2 := -r.Float64() * cfg.Asteroid.MaxSplitSpin
	protection := cfg.Asteroid.SpawnProtectionTicks

	a.env.Spawn(NewAsteroid(a.env, AsteroidParams{
		Position: a.Position().Add(offset), Velocity: vel1, Size: next, Spin: spin1, Protection: protection,
	}))
	a.env.Spawn(NewAsteroid(a.env, AsteroidParams{
		Position: a.Position().Sub(offset), Velocity: vel2, Size: next, Spin: spin2, Protection: protection,
	}))
	a.env.Publish(bus.TypeAsteroidSplit, bus.AsteroidSplit{ID: uint64(a.ID()), Size: a.size.String(), Pieces: 2})
	return true
}

func (a *Asteroid) Size() AsteroidSize { return a.size }

func (a *Asteroid) Protection() int { return a.protection }

func (a *Asteroid) Protected() bool { return a.protection > 0 }

func (a *Asteroid) SetProtection(ticks int) { a.protection = max(0, ticks) }

func (a *Asteroid) Render() models.RenderState {
	return a.RenderBase("asteroid_"+a.size.String(), a.extent)
}
