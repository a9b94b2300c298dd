package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

func TestEveryPairRegistered(t *testing.T) {
	tbl := newFakeEnv().table()
	for _, a := range models.Kinds() {
		for _, b := range models.Kinds() {
			assert.True(t, tbl.Registered(a, b), "%s-%s", a, b)
		}
	}
}

func TestPlayerIgnoresPlayerBullets(t *testing.T) {
	env := newFakeEnv()
	p1 := env.player(physics.Vec(0, 0))
	p2 := env.player(physics.Vec(5, 0))
	b := NewBullet(env, p1, BulletNormal)

	env.table().Dispatch(p2, b)
	assert.True(t, b.Exists())
	assert.Equal(t, 20, p2.Health())
}

func TestEnemyBulletHitsPlayer(t *testing.T) {
	env := newFakeEnv()
	p := env.player(physics.Vec(0, 0))
	shooter := NewEnemy(env, physics.Vec(50, 0), EnemyShooter)
	b := NewBullet(env, shooter, BulletEnemy)

	tbl := env.table()
	tbl.Dispatch(b, p)
	assert.False(t, b.Exists())
	assert.Equal(t, 19, p.Health())
	assert.Equal(t, 50, p.Invuln())

	// a second bullet inside the window does no damage
	b2 := NewBullet(env, shooter, BulletEnemy)
	tbl.Dispatch(p, b2)
	assert.False(t, b2.Exists())
	assert.Equal(t, 19, p.Health())
}

func TestPlayerCollectsPowerUp(t *testing.T) {
	env := newFakeEnv()
	p := env.player(physics.Vec(0, 0))
	u := NewPowerUp(env, physics.Vec(0, 0), physics.Vector{}, models.PowerUpRapidFire)

	env.table().Dispatch(u, p)
	assert.False(t, u.Exists())
	assert.Equal(t, models.PowerUpRapidFire, p.PowerUp())
	assert.Equal(t, 20, p.Health())
	assert.Equal(t, "power_up_rapid_fire", u.Render().Variant)
}

func TestPlayerRamsAsteroid(t *testing.T) {
	env := newFakeEnv()
	p := env.player(physics.Vec(0, 0))
	p.SetVelocity(physics.Vec(0, 1))
	rock := NewAsteroid(env, AsteroidParams{Position: physics.Vec(0, 5), Size: AsteroidHuge})

	env.table().Dispatch(rock, p)
	assert.Equal(t, 19, p.Health())
	assert.False(t, rock.Exists())
	assert.Len(t, env.spawnedOf(models.KindAsteroid), 2)
}

func TestBounceBulletRicochets(t *testing.T) {
	env := newFakeEnv()
	p := env.player(physics.Vec(0, 0))
	rock := NewAsteroid(env, AsteroidParams{Position: physics.Vec(4, 0), Size: AsteroidSmall})
	b := NewBullet(env, p, BulletBounce)
	b.SetVelocity(physics.Vec(2, 0))

	env.table().Dispatch(rock, b)
	assert.True(t, b.Exists())
	assert.True(t, rock.Exists())
	assert.Less(t, b.Velocity().X, 0.0)
	assert.Greater(t, rock.Velocity().X, 0.0)
}

func TestAsteroidsBounceAndProtect(t *testing.T) {
	env := newFakeEnv()
	a1 := NewAsteroid(env, AsteroidParams{Position: physics.Vec(0, 0), Velocity: physics.Vec(1, 0), Size: AsteroidMedium})
	a2 := NewAsteroid(env, AsteroidParams{Position: physics.Vec(5, 0), Velocity: physics.Vec(-1, 0), Size: AsteroidMedium})

	tbl := env.table()
	tbl.Dispatch(a1, a2)
	assert.InDelta(t, -1, a1.Velocity().X, 1e-12)
	assert.InDelta(t, 1, a2.Velocity().X, 1e-12)
	assert.Equal(t, 20, a1.Protection())
	assert.Equal(t, 20, a2.Protection())

	tbl.Dispatch(a1, a2)
	assert.InDelta(t, -1, a1.Velocity().X, 1e-12, "protected asteroids pass through")
}

func TestAsteroidCrushesEnemy(t *testing.T) {
	env := newFakeEnv()
	e := NewEnemy(env, physics.Vec(0, 0), EnemyKamikaze)
	rock := NewAsteroid(env, AsteroidParams{Position: physics.Vec(5, 0), Size: AsteroidSmall})

	env.table().Dispatch(e, rock)
	assert.False(t, e.Exists())
	assert.False(t, rock.Exists())
}

func TestSpinnerBladesDeflectAsteroid(t *testing.T) {
	env := newFakeEnv()
	env.player(physics.Vec(0, 0))
	e := NewEnemy(env, physics.Vec(50, 0), EnemySpinner)
	e.Update(0)
	require.True(t, e.BladesReady())
	// the spinner dashed left, towards the rock
	rock := NewAsteroid(env, AsteroidParams{Position: physics.Vec(40, 0), Size: AsteroidMedium})

	env.table().Dispatch(rock, e)
	assert.True(t, rock.Exists())
	assert.True(t, e.Exists())
	assert.Equal(t, 200, e.BladeCooldown())
	assert.Less(t, rock.Velocity().X, 0.0)
}

func TestEnemiesBounce(t *testing.T) {
	env := newFakeEnv()
	e1 := NewEnemy(env, physics.Vec(0, 0), EnemyKamikaze)
	e2 := NewEnemy(env, physics.Vec(3, 0), EnemyKamikaze)
	e1.SetVelocity(physics.Vec(1, 0))

	env.table().Dispatch(e1, e2)
	assert.InDelta(t, 0, e1.Velocity().X, 1e-12)
	assert.InDelta(t, 1, e2.Velocity().X, 1e-12)
	assert.Equal(t, 1, e1.Health())
}

func TestPlayerAndEnemyBothHit(t *testing.T) {
	env := newFakeEnv()
	p := env.player(physics.Vec(0, 0))
	e := NewEnemy(env, physics.Vec(3, 0), EnemyKamikaze)

	env.table().Dispatch(e, p)
	assert.Equal(t, 19, p.Health())
	assert.False(t, e.Exists())
}
