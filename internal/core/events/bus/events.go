package bus

// Gameplay event types raised by the world.
const (
	TypeWaveSpawned   = "wave.spawned"
	TypeEnemyKilled   = "enemy.killed"
	TypeAsteroidSplit = "asteroid.split"
	TypeSpawnDropped  = "spawn.dropped"
	TypeWorldUnpaused = "world.unpaused"
)

type WaveSpawned struct {
	Wave     int
	Enemies  int
	MaxAlive int
}

type EnemyKilled struct {
	ID      uint64
	Variant string
}

type AsteroidSplit struct {
	ID     uint64
	Size   string
	Pieces int
}

type SpawnDropped struct {
	ID   uint64
	Kind string
	X, Y float64
}
