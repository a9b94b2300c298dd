package entities

import (
	"github.com/zeusync/planetattack/internal/core/collision"
	"github.com/zeusync/planetattack/internal/core/models"
)

// RegisterCollisions installs the reactions between every pair of kinds.
func RegisterCollisions(t *collision.Table) {
	t.Register(models.KindPlayer, models.KindPlayer, collision.BothHit)
	t.Register(models.KindPlayer, models.KindEnemy, collision.BothHit)
	t.Register(models.KindPlayer, models.KindBullet, playerBullet)
	t.Register(models.KindPlayer, models.KindPowerUp, playerPowerUp)
	t.Register(models.KindPlayer, models.KindAsteroid, playerAsteroid)

	t.Register(models.KindBullet, models.KindBullet, collision.Ignore)
	t.Register(models.KindBullet, models.KindPowerUp, collision.Ignore)
	t.Register(models.KindBullet, models.KindAsteroid, bulletAsteroid)
	t.Register(models.KindBullet, models.KindEnemy, bulletEnemy)

	t.Register(models.KindAsteroid, models.KindAsteroid, asteroidAsteroid)
	t.Register(models.KindAsteroid, models.KindEnemy, asteroidEnemy)
	t.Register(models.KindAsteroid, models.KindPowerUp, collision.Ignore)

	t.Register(models.KindEnemy, models.KindEnemy, elastic)
	t.Register(models.KindEnemy, models.KindPowerUp, collision.Ignore)
	t.Register(models.KindPowerUp, models.KindPowerUp, collision.Ignore)
}

// elastic bounces two bodies off each other. Coincident bodies are left as
// they are.
func elastic(a, b models.Object) {
	_ = a.Physics().ElasticCollision(b.Physics())
}

func playerBullet(p, b models.Object) {
	bullet, ok := b.(*Bullet)
	if !ok {
		collision.BothHit(p, b)
		return
	}
	if bullet.FiredBy(models.KindPlayer) {
		return
	}
	bullet.Hit()
	p.Hit()
}

func playerPowerUp(p, u models.Object) {
	player, ok := p.(*Player)
	powerUp, ok2 := u.(*PowerUp)
	if !ok || !ok2 {
		return
	}
	player.ApplyPowerUp(powerUp.Effect())
	powerUp.Hit()
}

func playerAsteroid(p, a models.Object) {
	p.Hit()
	if asteroid, ok := a.(*Asteroid); ok {
		asteroid.Explode(p.Physics().Velocity())
		return
	}
	a.Hit()
}

func bulletAsteroid(b, a models.Object) {
	bullet, ok := b.(*Bullet)
	asteroid, ok2 := a.(*Asteroid)
	if !ok || !ok2 {
		collision.BothHit(b, a)
		return
	}
	if bullet.Variant() == BulletBounce {
		elastic(bullet, asteroid)
		return
	}
	bullet.Hit()
	asteroid.Explode(bullet.Velocity())
}

func bulletEnemy(b, e models.Object) {
	bullet, ok := b.(*Bullet)
	enemy, ok2 := e.(*Enemy)
	if !ok || !ok2 {
		collision.BothHit(b, e)
		return
	}
	if bullet.FiredBy(models.KindEnemy) {
		return
	}
	if enemy.BladesReady() {
		enemy.Deflect()
		bullet.Hit()
		return
	}
	enemy.HitBy(bullet)
	bullet.Hit()
}

func asteroidAsteroid(a, b models.Object) {
	a1, ok := a.(*Asteroid)
	a2, ok2 := b.(*Asteroid)
	if !ok || !ok2 || a1.Protected() || a2.Protected() {
		return
	}
	elastic(a1, a2)
	protection := a1.env.Config().Asteroid.SpawnProtectionTicks
	a1.SetProtection(protection)
	a2.SetProtection(protection)
}

func asteroidEnemy(a, e models.Object) {
	asteroid, ok := a.(*Asteroid)
	enemy, ok2 := e.(*Enemy)
	if !ok || !ok2 {
		collision.BothHit(a, e)
		return
	}
	if enemy.BladesReady() {
		elastic(asteroid, enemy)
		enemy.Deflect()
		return
	}
	enemy.Hit()
	asteroid.Explode(enemy.Velocity())
}
