package config

import (
	"math"
	"time"
)

// Config holds every tunable of the simulation. Speeds are given per second
// and accelerations per second squared; Timing converts them to ticks.
type Config struct {
	Seed     int64          `json:"seed" yaml:"seed"`
	World    WorldConfig    `json:"world" yaml:"world"`
	Timing   TimingConfig   `json:"timing" yaml:"timing"`
	Counts   CountsConfig   `json:"counts" yaml:"counts"`
	Entity   EntityConfig   `json:"entity" yaml:"entity"`
	Player   PlayerConfig   `json:"player" yaml:"player"`
	Bullet   BulletConfig   `json:"bullet" yaml:"bullet"`
	Asteroid AsteroidConfig `json:"asteroid" yaml:"asteroid"`
	Enemy    EnemyConfig    `json:"enemy" yaml:"enemy"`
	PowerUp  PowerUpConfig  `json:"power_up" yaml:"power_up"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

type WorldConfig struct {
	Width     int `json:"width" yaml:"width"`
	Height    int `json:"height" yaml:"height"`
	ChunkSize int `json:"chunk_size" yaml:"chunk_size"`
	// AsteroidBuffer is added to the asteroid cap but never spawned at setup,
	// leaving room for asteroids split off later. See AsteroidCap.
	AsteroidBuffer     int     `json:"asteroid_buffer" yaml:"asteroid_buffer"`
	CargoSpawnChance   float64 `json:"cargo_spawn_chance" yaml:"cargo_spawn_chance"`
	WaveEnemyIncrement int     `json:"wave_enemy_increment" yaml:"wave_enemy_increment"`
	StartPaused        bool    `json:"start_paused" yaml:"start_paused"`
}

// AsteroidCap bounds the live asteroid count once splits start adding pieces.
func (c Config) AsteroidCap() int { return c.Counts.MaxAsteroids + c.World.AsteroidBuffer }

// GridWidth is the number of chunk columns.
func (w WorldConfig) GridWidth() int { return w.Width / w.ChunkSize }

// GridHeight is the number of chunk rows.
func (w WorldConfig) GridHeight() int { return w.Height / w.ChunkSize }

type CountsConfig struct {
	MaxPlayers   int `json:"max_players" yaml:"max_players"`
	MaxEnemies   int `json:"max_enemies" yaml:"max_enemies"`
	MaxAsteroids int `json:"max_asteroids" yaml:"max_asteroids"`
}

type EntityConfig struct {
	CollisionInvuln time.Duration `json:"collision_invuln" yaml:"collision_invuln"`
	// ShieldBlinkTicks is the half period of the shield flicker shown while
	// an entity is invulnerable.
	ShieldBlinkTicks int `json:"shield_blink_ticks" yaml:"shield_blink_ticks"`
	HealAmount       int `json:"heal_amount" yaml:"heal_amount"`
}

type PlayerConfig struct {
	Mass          float64 `json:"mass" yaml:"mass"`
	Size          float64 `json:"size" yaml:"size"`
	HitboxSides   int     `json:"hitbox_sides" yaml:"hitbox_sides"`
	MaxHealth     int     `json:"max_health" yaml:"max_health"`
	Thrust        float64 `json:"thrust" yaml:"thrust"`
	Drag          float64 `json:"drag" yaml:"drag"`
	RotationSpeed float64 `json:"rotation_speed" yaml:"rotation_speed"`
	HealAmount    int     `json:"heal_amount" yaml:"heal_amount"`
}

// BulletSpec describes one bullet variant.
type BulletSpec struct {
	Size     float64       `json:"size" yaml:"size"`
	Speed    float64       `json:"speed" yaml:"speed"`
	Lifetime time.Duration `json:"lifetime" yaml:"lifetime"`
	Spread   float64       `json:"spread" yaml:"spread"`
	Cooldown time.Duration `json:"cooldown" yaml:"cooldown"`
}

type BulletConfig struct {
	Mass float64 `json:"mass" yaml:"mass"`
	Drag float64 `json:"drag" yaml:"drag"`
	// HomingStep is the largest heading change of a homing bullet per tick.
	HomingStep float64    `json:"homing_step" yaml:"homing_step"`
	Normal     BulletSpec `json:"normal" yaml:"normal"`
	RapidFire  BulletSpec `json:"rapid_fire" yaml:"rapid_fire"`
	Huge       BulletSpec `json:"huge" yaml:"huge"`
	Bounce     BulletSpec `json:"bounce" yaml:"bounce"`
	Homing     BulletSpec `json:"homing" yaml:"homing"`
	Enemy      BulletSpec `json:"enemy" yaml:"enemy"`
}

// AsteroidSpec describes one asteroid size tier.
type AsteroidSpec struct {
	Size float64 `json:"size" yaml:"size"`
	Mass float64 `json:"mass" yaml:"mass"`
	Drag float64 `json:"drag" yaml:"drag"`
}

type AsteroidConfig struct {
	HitboxSides          int     `json:"hitbox_sides" yaml:"hitbox_sides"`
	Health               int     `json:"health" yaml:"health"`
	SpawnProtectionTicks int     `json:"spawn_protection_ticks" yaml:"spawn_protection_ticks"`
	MaxSplitSpin         float64 `json:"max_split_spin" yaml:"max_split_spin"`
	// SplitSpeedFactor scales the impact velocity handed to split pieces.
	SplitSpeedFactor float64      `json:"split_speed_factor" yaml:"split_speed_factor"`
	Small            AsteroidSpec `json:"small" yaml:"small"`
	Medium           AsteroidSpec `json:"medium" yaml:"medium"`
	Large            AsteroidSpec `json:"large" yaml:"large"`
	Huge             AsteroidSpec `json:"huge" yaml:"huge"`
}

// EnemySpec describes one enemy variant. Thrust is per second squared except
// for the spinner, whose dash sets its velocity directly in units per tick.
type EnemySpec struct {
	Mass      float64 `json:"mass" yaml:"mass"`
	Drag      float64 `json:"drag" yaml:"drag"`
	Thrust    float64 `json:"thrust" yaml:"thrust"`
	Size      float64 `json:"size" yaml:"size"`
	MaxHealth int     `json:"max_health" yaml:"max_health"`
}

type EnemyConfig struct {
	Score int `json:"score" yaml:"score"`
	// KamikazeChance is the probability a wave slot becomes a kamikaze.
	KamikazeChance float64 `json:"kamikaze_chance" yaml:"kamikaze_chance"`
	// ShooterChance applies to non-kamikaze slots once ShooterMinWave is passed.
	ShooterChance   float64 `json:"shooter_chance" yaml:"shooter_chance"`
	ShooterMinWave  int     `json:"shooter_min_wave" yaml:"shooter_min_wave"`
	CargoTurnStep   float64 `json:"cargo_turn_step" yaml:"cargo_turn_step"`
	CargoTurnChance float64 `json:"cargo_turn_chance" yaml:"cargo_turn_chance"`

	SpinnerBladeRange float64 `json:"spinner_blade_range" yaml:"spinner_blade_range"`
	// SpinnerTriggerRange is the target distance under which blades extend.
	SpinnerTriggerRange   float64       `json:"spinner_trigger_range" yaml:"spinner_trigger_range"`
	SpinnerDashCooldown   time.Duration `json:"spinner_dash_cooldown" yaml:"spinner_dash_cooldown"`
	SpinnerBladeCooldown  int           `json:"spinner_blade_cooldown" yaml:"spinner_blade_cooldown"`
	SpinnerBladeRotStep   float64       `json:"spinner_blade_rot_step" yaml:"spinner_blade_rot_step"`
	SpinnerHitboxRotation float64       `json:"spinner_hitbox_rotation" yaml:"spinner_hitbox_rotation"`

	Kamikaze EnemySpec `json:"kamikaze" yaml:"kamikaze"`
	Shooter  EnemySpec `json:"shooter" yaml:"shooter"`
	Spinner  EnemySpec `json:"spinner" yaml:"spinner"`
	Cargo    EnemySpec `json:"cargo" yaml:"cargo"`
}

type PowerUpConfig struct {
	Mass float64 `json:"mass" yaml:"mass"`
	Size float64 `json:"size" yaml:"size"`
	Drag float64 `json:"drag" yaml:"drag"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

// Default returns the tuning the game ships with.
func Default() Config {
	normal := BulletSpec{Size: 2, Speed: 135, Lifetime: 10 * time.Second, Spread: 0.1, Cooldown: 200 * time.Millisecond}
	rapid := normal
	rapid.Spread = 0.3
	rapid.Cooldown = 70 * time.Millisecond
	huge := normal
	huge.Size = 5
	huge.Speed = 100
	huge.Cooldown = 400 * time.Millisecond
	bounce := normal
	bounce.Lifetime = 20 * time.Second

	return Config{
		Seed: 1,
		World: WorldConfig{
			Width:              1024,
			Height:             1024,
			ChunkSize:          64,
			AsteroidBuffer:     20,
			CargoSpawnChance:   0.2,
			WaveEnemyIncrement: 5,
			StartPaused:        true,
		},
		Timing: TimingConfig{TickTime: 20 * time.Millisecond},
		Counts: CountsConfig{
			MaxPlayers:   1,
			MaxEnemies:   5,
			MaxAsteroids: 150,
		},
		Entity: EntityConfig{
			CollisionInvuln:  time.Second,
			ShieldBlinkTicks: 5,
			HealAmount:       1,
		},
		Player: PlayerConfig{
			Mass:          2000,
			Size:          8,
			HitboxSides:   8,
			MaxHealth:     20,
			Thrust:        250000,
			Drag:          40,
			RotationSpeed: 3,
			HealAmount:    5,
		},
		Bullet: BulletConfig{
			Mass:       0.5,
			Drag:       0,
			HomingStep: 0.1,
			Normal:     normal,
			RapidFire:  rapid,
			Huge:       huge,
			Bounce:     bounce,
			Homing:     normal,
			Enemy:      BulletSpec{Size: 3, Speed: 50, Lifetime: 10 * time.Second, Spread: 0.1, Cooldown: 4 * time.Second},
		},
		Asteroid: AsteroidConfig{
			HitboxSides:          8,
			Health:               1000,
			SpawnProtectionTicks: 20,
			MaxSplitSpin:         1.0 / 30,
			SplitSpeedFactor:     0.5,
			Small:                AsteroidSpec{Size: 4, Mass: 10000, Drag: 100},
			Medium:               AsteroidSpec{Size: 6, Mass: 40000, Drag: 150},
			Large:                AsteroidSpec{Size: 8, Mass: 120000, Drag: 250},
			Huge:                 AsteroidSpec{Size: 16, Mass: 300000, Drag: 500},
		},
		Enemy: EnemyConfig{
			Score:                 5,
			KamikazeChance:        0.7,
			ShooterChance:         0.4,
			ShooterMinWave:        2,
			CargoTurnStep:         math.Pi / 10,
			CargoTurnChance:       0.01,
			SpinnerBladeRange:     30,
			SpinnerTriggerRange:   120,
			SpinnerDashCooldown:   3 * time.Second,
			SpinnerBladeCooldown:  200,
			SpinnerBladeRotStep:   20,
			SpinnerHitboxRotation: math.Pi / 8,
			Kamikaze:              EnemySpec{Mass: 1500, Drag: 40, Thrust: 150000, Size: 8, MaxHealth: 1},
			Shooter:               EnemySpec{Mass: 1500, Drag: 40, Thrust: 150000, Size: 8, MaxHealth: 1},
			Spinner:               EnemySpec{Mass: 1500, Drag: 80, Thrust: 14, Size: 8, MaxHealth: 1},
			Cargo:                 EnemySpec{Mass: 150000, Drag: 60, Thrust: 150000, Size: 8, MaxHealth: 5},
		},
		PowerUp: PowerUpConfig{Mass: 1, Size: 8, Drag: 1},
		Log:     LogConfig{Level: "info", Encoding: "json"},
	}
}
