package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

func newTestEntity(maxHealth, invuln int) *Entity {
	body := physics.MustBody(physics.BodyParams{Mass: 1, Size: 2})
	return NewEntity(NewBase(7, KindPlayer, body), EntityParams{
		MaxHealth:        maxHealth,
		InvulnTicks:      invuln,
		HealAmount:       5,
		ShieldBlinkTicks: 5,
	})
}

func TestEntityInvulnerabilityWindow(t *testing.T) {
	const window = 50
	e := newTestEntity(3, window)

	// hit at tick 0, in the collision pass after the update
	e.Update(0)
	e.Hit()
	assert.Equal(t, 2, e.Health())
	assert.Equal(t, window, e.Invuln())

	// hits up to and including tick 0+window are ignored
	for tick := 1; tick <= window; tick++ {
		e.Update(tick)
		e.Hit()
	}
	assert.Equal(t, 2, e.Health())
	assert.Equal(t, 1, e.Invuln())

	e.Update(window + 1)
	assert.False(t, e.Invulnerable())
	e.Hit()
	assert.Equal(t, 1, e.Health())
}

func TestEntityDeathHooks(t *testing.T) {
	e := newTestEntity(1, 10)
	var order []string
	e.OnDeath(func() {
		assert.True(t, e.Exists(), "hooks run before removal")
		order = append(order, "first")
	})
	e.OnDeath(func() { order = append(order, "second") })

	e.Hit()
	assert.False(t, e.Exists())
	assert.False(t, e.Alive())
	assert.Equal(t, []string{"first", "second"}, order)

	e.Hit()
	e.Kill()
	assert.Len(t, order, 2)
	assert.Equal(t, 0, e.Health())
}

func TestEntityPowerUps(t *testing.T) {
	e := newTestEntity(20, 0)
	for i := 0; i < 8; i++ {
		e.Hit()
	}
	require.Equal(t, 12, e.Health())

	e.ApplyPowerUp(PowerUpHeal)
	assert.Equal(t, 17, e.Health())
	assert.Equal(t, PowerUpNone, e.PowerUp())
	e.ApplyPowerUp(PowerUpHeal)
	assert.Equal(t, 20, e.Health())

	e.ApplyPowerUp(PowerUpRapidFire)
	assert.Equal(t, PowerUpRapidFire, e.PowerUp())
	e.ApplyPowerUp(PowerUpHoming)
	assert.Equal(t, PowerUpHoming, e.PowerUp())
}

func TestEntityShieldBlink(t *testing.T) {
	e := newTestEntity(5, 50)
	assert.False(t, e.ShieldVisible())

	e.SetInvuln(7)
	assert.True(t, e.ShieldVisible())
	e.SetInvuln(4)
	assert.False(t, e.ShieldVisible())
	e.SetInvuln(-3)
	assert.Equal(t, 0, e.Invuln())
}

func TestEntityRender(t *testing.T) {
	e := newTestEntity(4, 45)
	e.Hit()

	s := e.RenderBase("ship", 8)
	assert.Equal(t, EntityID(7), s.ID)
	assert.Equal(t, KindPlayer, s.Kind)
	assert.Equal(t, "ship", s.Variant)
	assert.Equal(t, 3, s.Health)
	assert.Equal(t, 4, s.MaxHealth)
	assert.True(t, s.Shielded)
}

func TestBaseHitRemoves(t *testing.T) {
	b := NewBase(1, KindBullet, physics.MustBody(physics.BodyParams{Mass: 1, Size: 1}))
	assert.Same(t, b.Body, b.Physics())
	b.Hit()
	assert.False(t, b.Exists())
}

func TestKindNames(t *testing.T) {
	assert.Len(t, Kinds(), 5)
	assert.Equal(t, "asteroid", KindAsteroid.String())
	assert.Equal(t, "homing", PowerUpHoming.String())
	assert.NotContains(t, DroppablePowerUps, PowerUpNone)
}

func TestInputAnyHeld(t *testing.T) {
	assert.False(t, Input{}.AnyHeld())
	assert.True(t, Input{Shoot: true}.AnyHeld())
}
