package config

import (
	"fmt"
	"strings"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate reports the first setting the simulation cannot run with.
func (c *Config) Validate() error {
	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		return invalid("world size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.ChunkSize <= 0 {
		return invalid("chunk size must be positive, got %d", w.ChunkSize)
	}
	if w.Width%w.ChunkSize != 0 || w.Height%w.ChunkSize != 0 {
		return invalid("world %dx%d is not divisible by chunk size %d", w.Width, w.Height, w.ChunkSize)
	}
	if w.AsteroidBuffer < 0 || w.WaveEnemyIncrement < 0 {
		return invalid("asteroid buffer and wave increment must not be negative")
	}
	if err := probability("cargo spawn chance", w.CargoSpawnChance); err != nil {
		return err
	}

	if c.Timing.TickTime <= 0 {
		return invalid("tick time must be positive, got %s", c.Timing.TickTime)
	}

	n := c.Counts
	if n.MaxPlayers < 0 || n.MaxEnemies < 0 || n.MaxAsteroids < 0 {
		return invalid("entity counts must not be negative")
	}
	if chunks := w.GridWidth() * w.GridHeight(); n.MaxPlayers+n.MaxEnemies+n.MaxAsteroids > chunks {
		return invalid("%d initial bodies do not fit into %d chunks", n.MaxPlayers+n.MaxEnemies+n.MaxAsteroids, chunks)
	}

	if c.Entity.CollisionInvuln < 0 || c.Entity.ShieldBlinkTicks <= 0 {
		return invalid("entity invulnerability and shield blink must be positive")
	}

	p := c.Player
	if err := body("player", p.Mass, p.Size, p.Drag); err != nil {
		return err
	}
	if p.MaxHealth <= 0 || p.HitboxSides < 3 {
		return invalid("player needs positive health and at least 3 hitbox sides")
	}

	b := c.Bullet
	if err := body("bullet", b.Mass, 1, b.Drag); err != nil {
		return err
	}
	for name, s := range map[string]BulletSpec{
		"normal": b.Normal, "rapid_fire": b.RapidFire, "huge": b.Huge,
		"bounce": b.Bounce, "homing": b.Homing, "enemy": b.Enemy,
	} {
		if s.Size <= 0 || s.Lifetime <= 0 || s.Cooldown < 0 {
			return invalid("bullet %s: size and lifetime must be positive", name)
		}
	}

	a := c.Asteroid
	if a.HitboxSides < 3 || a.Health <= 0 || a.SpawnProtectionTicks < 0 {
		return invalid("asteroid needs at least 3 hitbox sides and positive health")
	}
	for name, s := range map[string]AsteroidSpec{
		"small": a.Small, "medium": a.Medium, "large": a.Large, "huge": a.Huge,
	} {
		if err := body("asteroid "+name, s.Mass, s.Size, s.Drag); err != nil {
			return err
		}
	}

	e := c.Enemy
	for _, pr := range []struct {
		name string
		v    float64
	}{
		{"kamikaze chance", e.KamikazeChance},
		{"shooter chance", e.ShooterChance},
		{"cargo turn chance", e.CargoTurnChance},
	} {
		if err := probability(pr.name, pr.v); err != nil {
			return err
		}
	}
	for name, s := range map[string]EnemySpec{
		"kamikaze": e.Kamikaze, "shooter": e.Shooter, "spinner": e.Spinner, "cargo": e.Cargo,
	} {
		if err := body("enemy "+name, s.Mass, s.Size, s.Drag); err != nil {
			return err
		}
		if s.MaxHealth <= 0 {
			return invalid("enemy %s needs positive health", name)
		}
	}

	if err := body("power-up", c.PowerUp.Mass, c.PowerUp.Size, c.PowerUp.Drag); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error", "fatal":
	default:
		return invalid("unknown log level %q", c.Log.Level)
	}
	switch c.Log.Encoding {
	case "", "json", "console":
	default:
		return invalid("unknown log encoding %q", c.Log.Encoding)
	}
	return nil
}

func body(name string, mass, size, drag float64) error {
	if !(mass > 0) {
		return invalid("%s mass must be positive, got %v", name, mass)
	}
	if !(size > 0) {
		return invalid("%s size must be positive, got %v", name, size)
	}
	if drag < 0 {
		return invalid("%s drag must not be negative, got %v", name, drag)
	}
	return nil
}

func probability(name string, v float64) error {
	if v < 0 || v > 1 {
		return invalid("%s must be within [0, 1], got %v", name, v)
	}
	return nil
}
