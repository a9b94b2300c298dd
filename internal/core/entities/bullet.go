package entities

import (
	"math"

	"github.com/zeusync/planetattack/internal/core/config"
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

type BulletVariant uint8

const (
	BulletNormal BulletVariant = iota
	BulletRapidFire
	BulletHuge
	BulletBounce
	BulletHoming
	BulletEnemy
)

func (v BulletVariant) String() string {
	switch v {
	case BulletRapidFire:
		return "rapid_fire"
	case BulletHuge:
		return "huge"
	case BulletBounce:
		return "bounce"
	case BulletHoming:
		return "homing"
	case BulletEnemy:
		return "enemy"
	default:
		return "normal"
	}
}

// BulletVariantFor picks the bullet fired under an active power-up.
func BulletVariantFor(p models.PowerUpType) BulletVariant {
	switch p {
	case models.PowerUpBounce:
		return BulletBounce
	case models.PowerUpRapidFire:
		return BulletRapidFire
	case models.PowerUpHuge:
		return BulletHuge
	case models.PowerUpHoming:
		return BulletHoming
	default:
		return BulletNormal
	}
}

func bulletSpec(c config.BulletConfig, v BulletVariant) config.BulletSpec {
	switch v {
	case BulletRapidFire:
		return c.RapidFire
	case BulletHuge:
		return c.Huge
	case BulletBounce:
		return c.Bounce
	case BulletHoming:
		return c.Homing
	case BulletEnemy:
		return c.Enemy
	default:
		return c.Normal
	}
}

// Bullet flies from its shooter for a fixed number of ticks.
type Bullet struct {
	models.Base

	env        models.Environment
	variant    BulletVariant
	shooter    models.Object
	lifetime   int
	cooldown   int
	size       float64
	homingStep float64
	target     models.Object
}

// NewBullet fires a bullet from the shooter's position along its heading,
// inheriting its velocity and a random spread.
func NewBullet(env models.Environment, shooter models.Object, v BulletVariant) *Bullet {
	cfg := env.Config()
	spec := bulletSpec(cfg.Bullet, v)
	sb := shooter.Physics()

	speed := cfg.Timing.PerSecondToPerTick(spec.Speed)
	vel := physics.FromAngle(sb.Rotation(), speed).
		Add(sb.Velocity()).
		RotateBy((env.Rand().Float64() - 0.5) * spec.Spread)

	body := newBody(cfg.Bullet.Mass, sb.Position(), vel, cfg.Bullet.Drag, 0, spec.Size)
	return &Bullet{
		Base:       models.NewBase(env.NextID(), models.KindBullet, body),
		env:        env,
		variant:    v,
		shooter:    shooter,
		lifetime:   cfg.Timing.Ticks(spec.Lifetime),
		cooldown:   cfg.Timing.Ticks(spec.Cooldown),
		size:       spec.Size,
		homingStep: cfg.Bullet.HomingStep,
	}
}

func (b *Bullet) Update(tick int) {
	if b.variant == BulletHoming {
		b.steer()
	}
	if b.lifetime > 0 {
		b.lifetime--
	} else {
		b.SetExists(false)
	}
	b.Body.Update(tick)
}

// steer locks onto the nearest enemy around the bullet and turns towards it.
func (b *Bullet) steer() {
	if b.target != nil && !b.target.Exists() {
		b.target = nil
	}
	if b.target == nil {
		best := math.Inf(1)
		for _, obj := range b.env.Neighbours(b.Position()) {
			if obj.Kind() != models.KindEnemy || !obj.Exists() {
				continue
			}
			if d := obj.Physics().Position().DistanceSquared(b.Position()); d < best {
				best = d
				b.target = obj
			}
		}
	}
	if dir, ok := steerTowards(b.Position(), b.target); ok {
		b.SetVelocity(b.Velocity().RotateToStep(dir.Rotation(), b.homingStep))
	}
}

func (b *Bullet) Variant() BulletVariant { return b.variant }

// Shooter is the object that fired the bullet. It may no longer exist.
func (b *Bullet) Shooter() models.Object { return b.shooter }

// FiredBy reports whether the shooter is of the given kind.
func (b *Bullet) FiredBy(k models.Kind) bool {
	return b.shooter != nil && b.shooter.Kind() == k
}

// Cooldown is how long the shooter waits before firing again.
func (b *Bullet) Cooldown() int { return b.cooldown }

// Lifetime is the number of ticks left before the bullet expires.
func (b *Bullet) Lifetime() int { return b.lifetime }

func (b *Bullet) Target() models.Object { return b.target }

// BounceExempt lets every bullet but the bouncing kind leave the world.
func (b *Bullet) BounceExempt() bool { return b.variant != BulletBounce }

func (b *Bullet) Render() models.RenderState {
	name := "bullet_normal"
	if !b.FiredBy(models.KindPlayer) {
		name = "bullet_enemy"
	}
	return b.RenderBase(name, b.size)
}
