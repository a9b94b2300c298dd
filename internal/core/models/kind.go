package models

// Kind identifies the collision class of an object.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBullet
	KindAsteroid
	KindEnemy
	KindPowerUp

	kindCount
)

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindAsteroid:
		return "asteroid"
	case KindEnemy:
		return "enemy"
	case KindPowerUp:
		return "power_up"
	default:
		return "unknown"
	}
}

// PowerUpType is the effect a power-up grants on pickup.
type PowerUpType uint8

const (
	PowerUpNone PowerUpType = iota
	PowerUpHeal
	PowerUpBounce
	PowerUpRapidFire
	PowerUpHuge
	PowerUpHoming
)

// DroppablePowerUps are the types a cargo ship may carry.
var DroppablePowerUps = []PowerUpType{
	PowerUpHeal, PowerUpBounce, PowerUpRapidFire, PowerUpHuge, PowerUpHoming,
}

func (p PowerUpType) String() string {
	switch p {
	case PowerUpHeal:
		return "heal"
	case PowerUpBounce:
		return "bounce"
	case PowerUpRapidFire:
		return "rapid_fire"
	case PowerUpHuge:
		return "huge"
	case PowerUpHoming:
		return "homing"
	default:
		return "none"
	}
}
