package models

// EntityParams configures the health machine of an Entity.
type EntityParams struct {
	MaxHealth int
	// InvulnTicks is the protection window granted after each hit.
	InvulnTicks      int
	HealAmount       int
	ShieldBlinkTicks int
}

// Entity is a Base with health, post-hit invulnerability and an active
// power-up. It is alive while health is positive.
type Entity struct {
	Base

	health      int
	maxHealth   int
	invuln      int
	invulnTicks int
	justHit     bool
	healAmount  int
	blinkTicks  int
	powerUp     PowerUpType
	onDeath     []func()
}

func NewEntity(base Base, p EntityParams) *Entity {
	if p.ShieldBlinkTicks <= 0 {
		p.ShieldBlinkTicks = 1
	}
	return &Entity{
		Base:        base,
		health:      p.MaxHealth,
		maxHealth:   p.MaxHealth,
		invulnTicks: p.InvulnTicks,
		healAmount:  p.HealAmount,
		blinkTicks:  p.ShieldBlinkTicks,
	}
}

// Update integrates the body and counts down invulnerability.
func (e *Entity) Update(tick int) {
	e.Body.Update(tick)
	// the tick after a hit still counts as fully protected
	if e.justHit {
		e.justHit = false
	} else if e.invuln > 0 {
		e.invuln--
	}
}

// Hit costs one health point unless the entity is protected or dead.
// The last point runs the death hooks.
func (e *Entity) Hit() {
	if e.health <= 0 || e.invuln > 0 {
		return
	}
	e.health--
	e.invuln = e.invulnTicks
	e.justHit = e.invuln > 0
	if e.health <= 0 {
		e.Kill()
	}
}

// Kill drops health to zero, runs the death hooks in registration order
// and removes the entity. Killing a dead entity does nothing.
func (e *Entity) Kill() {
	if !e.Exists() {
		return
	}
	e.health = 0
	for _, fn := range e.onDeath {
		fn()
	}
	e.SetExists(false)
}

// OnDeath registers a hook run by Kill before the entity stops existing.
func (e *Entity) OnDeath(fn func()) {
	e.onDeath = append(e.onDeath, fn)
}

// ApplyPowerUp heals immediately for PowerUpHeal and otherwise replaces the
// active power-up.
func (e *Entity) ApplyPowerUp(p PowerUpType) {
	if p == PowerUpHeal {
		e.Heal(e.healAmount)
		return
	}
	e.powerUp = p
}

// Heal restores up to amount health, capped at the maximum.
func (e *Entity) Heal(amount int) {
	if e.health <= 0 {
		return
	}
	e.health = min(e.maxHealth, e.health+amount)
}

func (e *Entity) Health() int { return e.health }

func (e *Entity) MaxHealth() int { return e.maxHealth }

func (e *Entity) Alive() bool { return e.health > 0 }

func (e *Entity) Invuln() int { return e.invuln }

func (e *Entity) Invulnerable() bool { return e.invuln > 0 }

// SetInvuln overrides the remaining protection.
func (e *Entity) SetInvuln(ticks int) {
	e.invuln = max(0, ticks)
	e.justHit = false
}

func (e *Entity) PowerUp() PowerUpType { return e.powerUp }

// ShieldVisible flickers while the entity is invulnerable.
func (e *Entity) ShieldVisible() bool {
	return e.invuln > 0 && (e.invuln/e.blinkTicks)%2 > 0
}

// RenderBase fills the fields of a RenderState every entity shares.
func (e *Entity) RenderBase(variant string, size float64) RenderState {
	s := e.Base.RenderBase(variant, size)
	s.Health = e.health
	s.MaxHealth = e.maxHealth
	s.Shielded = e.ShieldVisible()
	return s
}
