package entities

import (
	"math"

	"github.com/zeusync/planetattack/internal/core/config"
	"github.com/zeusync/planetattack/internal/core/events/bus"
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

type EnemyVariant uint8

const (
	EnemyKamikaze EnemyVariant = iota
	EnemyShooter
	EnemySpinner
	EnemyCargo
)

func (v EnemyVariant) String() string {
	switch v {
	case EnemyShooter:
		return "shooter"
	case EnemySpinner:
		return "spinner"
	case EnemyCargo:
		return "cargo"
	default:
		return "kamikaze"
	}
}

func enemySpec(c config.EnemyConfig, v EnemyVariant) config.EnemySpec {
	switch v {
	case EnemyShooter:
		return c.Shooter
	case EnemySpinner:
		return c.Spinner
	case EnemyCargo:
		return c.Cargo
	default:
		return c.Kamikaze
	}
}

// Enemy hunts a player. The variant decides how.
type Enemy struct {
	*models.Entity

	env     models.Environment
	cfg     *config.EnemyConfig
	variant EnemyVariant
	target  models.Object
	size    float64
	thrust  float64

	// shooter
	fireCooldown int

	// spinner
	dashCooldown  int
	dashTicks     int
	bladeCooldown int
	bladesActive  bool
	bladeRotation float64 // degrees
}

// NewEnemy spawns an enemy of the given variant aimed at a random player.
func NewEnemy(env models.Environment, pos physics.Vector, v EnemyVariant) *Enemy {
	cfg := env.Config()
	spec := enemySpec(cfg.Enemy, v)
	body := newBody(spec.Mass, pos, physics.Vector{}, spec.Drag, 0, spec.Size)

	e := &Enemy{
		Entity:  models.NewEntity(models.NewBase(env.NextID(), models.KindEnemy, body), entityParams(cfg, spec.MaxHealth, cfg.Entity.HealAmount)),
		env:     env,
		cfg:     &cfg.Enemy,
		variant: v,
		target:  env.RandomPlayer(),
		size:    spec.Size,
	}

	switch v {
	case EnemySpinner:
		// the dash sets the velocity directly, in units per tick
		e.thrust = spec.Thrust
		e.dashTicks = cfg.Timing.Ticks(cfg.Enemy.SpinnerDashCooldown)
		body.SetHitbox(e.bodyHitbox())
	case EnemyShooter:
		e.thrust = cfg.Timing.PerSecondSquaredToPerTickSquared(spec.Thrust)
		body.SetHitbox(physics.MustRegular(pos, 3, spec.Size))
	case EnemyCargo:
		e.thrust = cfg.Timing.PerSecondSquaredToPerTickSquared(spec.Thrust)
		body.SetHitbox(physics.NewRect(pos, spec.Size, spec.Size-2))
	default:
		e.thrust = cfg.Timing.PerSecondSquaredToPerTickSquared(spec.Thrust)
	}

	e.OnDeath(e.onDeath)
	return e
}

// NewRandomEnemy rolls the variant for a wave slot. Shooters only appear
// after the configured wave.
func NewRandomEnemy(env models.Environment, pos physics.Vector, wave int) *Enemy {
	ec := env.Config().Enemy
	r := env.Rand()
	v := EnemyKamikaze
	if r.Float64() >= ec.KamikazeChance {
		v = EnemySpinner
		if r.Float64() < ec.ShooterChance && wave > ec.ShooterMinWave {
			v = EnemyShooter
		}
	}
	return NewEnemy(env, pos, v)
}

func (e *Enemy) onDeath() {
	if e.variant == EnemyCargo {
		r := e.env.Rand()
		effect := models.DroppablePowerUps[r.Intn(len(models.DroppablePowerUps))]
		e.env.Spawn(NewPowerUp(e.env, e.Position(), e.Velocity(), effect))
	}
	e.env.EnemyRemoved(e)
	e.env.Publish(bus.TypeEnemyKilled, bus.EnemyKilled{ID: uint64(e.ID()), Variant: e.variant.String()})
}

func (e *Enemy) Update(tick int) {
	if e.target == nil || !e.target.Exists() {
		e.target = e.env.RandomPlayer()
	}
	switch e.variant {
	case EnemyKamikaze:
		e.updateKamikaze()
	case EnemyShooter:
		e.updateShooter()
	case EnemySpinner:
		e.updateSpinner()
	case EnemyCargo:
		e.updateCargo()
	}
	e.Entity.Update(tick)
}

func (e *Enemy) updateKamikaze() {
	dir, ok := steerTowards(e.Position(), e.target)
	if !ok {
		return
	}
	force := dir.Unit().Scale(e.thrust)
	e.RotateTo(force.Rotation())
	e.ApplyForce(force)
}

func (e *Enemy) updateShooter() {
	if e.fireCooldown > 0 {
		e.fireCooldown--
	}
	dir, ok := steerTowards(e.Position(), e.target)
	if !ok {
		return
	}
	e.RotateTo(dir.Rotation())
	if e.fireCooldown == 0 {
		b := NewBullet(e.env, e, BulletEnemy)
		e.env.Spawn(b)
		e.fireCooldown = b.Cooldown()
	}
}

func (e *Enemy) updateSpinner() {
	if e.dashCooldown > 0 {
		e.dashCooldown--
	}
	if e.bladeCooldown > 0 {
		e.bladeCooldown--
	}
	dir, ok := steerTowards(e.Position(), e.target)
	if !ok {
		return
	}

	trigger := e.cfg.SpinnerTriggerRange
	if dir.MagnitudeSquared() <= trigger*trigger && e.bladeCooldown == 0 {
		if !e.bladesActive {
			e.bladesActive = true
			e.SetHitbox(physics.MustRegular(e.Position(), 8, e.cfg.SpinnerBladeRange))
		}
	} else if e.bladesActive {
		e.bladesActive = false
		e.SetHitbox(e.bodyHitbox())
	}
	if e.bladesActive {
		e.bladeRotation = math.Mod(e.bladeRotation+e.cfg.SpinnerBladeRotStep, 360)
	}

	if e.dashCooldown == 0 {
		dash := dir.Unit().Scale(e.thrust)
		if e.bladeCooldown > 0 {
			// retreat while the blades recover
			dash = dash.Scale(-1)
		}
		e.SetVelocity(dash)
		e.dashCooldown = e.dashTicks
	}
}

func (e *Enemy) updateCargo() {
	r := e.env.Rand()
	if r.Float64() < e.cfg.CargoTurnChance {
		if r.Intn(2) > 0 {
			e.Rotate(e.cfg.CargoTurnStep)
		} else {
			e.Rotate(-e.cfg.CargoTurnStep)
		}
	}
	e.ApplyForce(physics.FromAngle(e.Rotation(), e.thrust))
}

// bodyHitbox is the spinner's octagon with its blades retracted.
func (e *Enemy) bodyHitbox() *physics.Polygon {
	p := physics.MustRegular(e.Position(), 8, e.size)
	p.RotateBy(e.cfg.SpinnerHitboxRotation)
	return p
}

// BladesReady reports whether a spinner can deflect the next impact.
func (e *Enemy) BladesReady() bool {
	return e.variant == EnemySpinner && e.bladesActive && e.bladeCooldown == 0
}

// Deflect spends the blades on an impact and schedules a quick retreat.
func (e *Enemy) Deflect() {
	e.bladeCooldown = e.cfg.SpinnerBladeCooldown
	e.dashCooldown = e.dashTicks / 10
}

// HitBy applies a hit from a bullet and reports whether it killed the enemy.
func (e *Enemy) HitBy(b *Bullet) bool {
	alive := e.Alive()
	e.Hit()
	killed := alive && !e.Alive()
	if killed {
		if p, ok := b.Shooter().(*Player); ok {
			p.AddScore(e.cfg.Score)
		}
	}
	return killed
}

func (e *Enemy) Variant() EnemyVariant { return e.variant }

func (e *Enemy) Target() models.Object { return e.target }

func (e *Enemy) BladesActive() bool { return e.bladesActive }

func (e *Enemy) BladeCooldown() int { return e.bladeCooldown }

// BladeRotation is the spin of the blade sprite in degrees.
func (e *Enemy) BladeRotation() float64 { return e.bladeRotation }

func (e *Enemy) DashCooldown() int { return e.dashCooldown }

func (e *Enemy) Render() models.RenderState {
	name := "enemy_" + e.variant.String()
	if e.bladesActive {
		name += "_blades"
	}
	s := e.RenderBase(name, e.size)
	if e.bladesActive {
		s.BladeDegrees = e.bladeRotation
	}
	if e.MaxHealth() <= 1 {
		s.Shielded = false
	}
	return s
}
