// Package world owns the chunk grid and everything living in it.
package world

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/zeusync/planetattack/internal/core/collision"
	"github.com/zeusync/planetattack/internal/core/config"
	"github.com/zeusync/planetattack/internal/core/entities"
	"github.com/zeusync/planetattack/internal/core/events/bus"
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/observability/log"
	"github.com/zeusync/planetattack/internal/core/systems"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
	"github.com/zeusync/planetattack/pkg/generic"
	"github.com/zeusync/planetattack/pkg/sequence"
)

// Source is the event source of everything the world publishes.
const Source = "world"

// System names registered on the world pipeline.
const (
	SystemWaves   = "waves"
	SystemUpdate  = "chunks.update"
	SystemCollide = "chunks.collide"
	SystemSpawns  = "spawns.drain"
)

var _ models.Environment = (*World)(nil)

// World is a single simulation. It is not safe for concurrent use; run one
// world per goroutine.
type World struct {
	cfg      config.Config
	logger   log.Log
	bus      bus.EventBus
	rng      *rand.Rand
	runID    uuid.UUID
	table    *collision.Table
	pipeline *systems.Pipeline
	digests  *generic.Pool[*xxhash.Digest]

	chunks       []*Chunk
	gridW, gridH int
	chunkSize    float64

	spawnQueue *sequence.Queue[models.Object]
	players    []*entities.Player
	enemies    []models.Object

	wave         int
	maxEnemies   int
	spawnedCargo bool
	paused       bool
	tick         int
	nextID       models.EntityID
	dropped      int
}

// Option configures a World at construction.
type Option func(*World)

func WithLogger(l log.Log) Option {
	return func(w *World) { w.logger = l }
}

func WithBus(b bus.EventBus) Option {
	return func(w *World) { w.bus = b }
}

// WithRunID fixes the run identifier attached to every log line.
func WithRunID(id uuid.UUID) Option {
	return func(w *World) { w.runID = id }
}

// WithCollisions replaces the collision table. The table must already carry
// every reaction the world should apply.
func WithCollisions(t *collision.Table) Option {
	return func(w *World) { w.table = t }
}

// New validates cfg and builds an empty world seeded with cfg.Seed.
func New(cfg config.Config, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	w := &World{
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		runID:      uuid.New(),
		spawnQueue: sequence.NewQueue[models.Object](64),
		paused:     cfg.World.StartPaused,
		maxEnemies: cfg.Counts.MaxEnemies,
		gridW:      cfg.World.GridWidth(),
		gridH:      cfg.World.GridHeight(),
		chunkSize:  float64(cfg.World.ChunkSize),
		digests: generic.NewPool(
			func() *xxhash.Digest { return xxhash.New() },
			func(d *xxhash.Digest) { d.Reset() },
		),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = log.NewNop()
	}
	w.logger = w.logger.With(log.String("component", Source), log.String("run_id", w.runID.String()))
	if w.bus == nil {
		w.bus = bus.New()
	}
	if w.table == nil {
		w.table = collision.NewTable()
		entities.RegisterCollisions(w.table)
	}

	w.pipeline = systems.NewPipeline()
	for _, s := range []systems.System{
		systems.NewFunc(SystemWaves, systems.PhasePreUpdate, systems.PriorityNormal, w.runWaves),
		systems.NewFunc(SystemUpdate, systems.PhaseUpdate, systems.PriorityNormal, w.runUpdate),
		systems.NewFunc(SystemCollide, systems.PhasePostUpdate, systems.PriorityNormal, w.runCollisions),
		systems.NewFunc(SystemSpawns, systems.PhaseLateUpdate, systems.PriorityNormal, w.runSpawns),
	} {
		if err := w.pipeline.Add(s); err != nil {
			return nil, err
		}
	}

	w.initChunks()
	return w, nil
}

func (w *World) initChunks() {
	w.chunks = make([]*Chunk, w.gridW*w.gridH)
	for y := 0; y < w.gridH; y++ {
		for x := 0; x < w.gridW; x++ {
			bounds := physics.NewAABB(float64(x)*w.chunkSize, float64(y)*w.chunkSize, w.chunkSize, w.chunkSize)
			w.chunks[y*w.gridW+x] = newChunk(w, bounds)
		}
	}
}

// Randomize rebuilds the grid and populates it: players first, then
// enemies, then asteroids, each in its own randomly chosen chunk.
func (w *World) Randomize() {
	w.initChunks()
	w.players = nil
	w.enemies = nil
	w.spawnQueue = sequence.NewQueue[models.Object](64)
	w.maxEnemies = w.cfg.Counts.MaxEnemies

	counts := w.cfg.Counts
	total := counts.MaxPlayers + counts.MaxEnemies + counts.MaxAsteroids
	half := w.chunkSize / 2
	var players, enemies, asteroids int

	order := w.shuffledChunks()
	for i := 0; players+enemies+asteroids < total && i < len(order); i++ {
		chunk := w.chunks[order[i]]
		pos := chunk.Center().Add(physics.Vec(w.rng.Float64()*half, w.rng.Float64()*half))

		switch {
		case players < counts.MaxPlayers:
			p := entities.NewPlayer(w, pos, players+1)
			w.players = append(w.players, p)
			chunk.Add(p)
			players++
		case enemies < counts.MaxEnemies:
			w.spawnEnemy(chunk)
			enemies++
		default:
			size := entities.AsteroidSizes[w.rng.Intn(len(entities.AsteroidSizes))]
			w.Spawn(entities.NewAsteroid(w, entities.AsteroidParams{
				Position: pos,
				Size:     size,
				Rotation: w.rng.Float64() * 2 * math.Pi,
			}))
			asteroids++
		}
	}

	w.logger.Info("world randomized",
		log.Int("players", players),
		log.Int("enemies", enemies),
		log.Int("asteroids", asteroids),
		log.Int64("seed", w.cfg.Seed),
	)
}

// Update runs one tick. inputs[i] drives player number i+1. A paused world
// only joins pending spawns until some player holds a control.
func (w *World) Update(tick int, inputs []models.Input) error {
	w.tick = tick
	for i, p := range w.players {
		var in models.Input
		if i < len(inputs) {
			in = inputs[i]
		}
		p.SetInput(in)
	}

	if w.paused {
		w.drain()
		if !w.anyHeld(inputs) {
			return nil
		}
		w.paused = false
		w.logger.Info("world unpaused", log.Int("tick", tick))
		w.Publish(bus.TypeWorldUnpaused, tick)
	}

	return w.pipeline.Run(tick)
}

// anyHeld only looks at inputs for registered players.
func (w *World) anyHeld(inputs []models.Input) bool {
	inputs = inputs[:min(len(inputs), len(w.players))]
	return slices.ContainsFunc(inputs, models.Input.AnyHeld)
}

// Pause stops the world until a player holds a control again.
func (w *World) Pause() {
	if !w.paused {
		w.paused = true
		w.logger.Info("world paused", log.Int("tick", w.tick))
	}
}

func (w *World) runWaves(int) (int, error) {
	if len(w.enemies) > 0 {
		return 0, nil
	}
	return w.spawnWave(), nil
}

func (w *World) runUpdate(tick int) (int, error) {
	n := 0
	for _, c := range w.chunks {
		if !c.IsEmpty() {
			n += c.Update(tick)
		}
	}
	return n, nil
}

func (w *World) runCollisions(int) (int, error) {
	n := 0
	for _, c := range w.chunks {
		if !c.IsEmpty() {
			n += c.CheckCollisions(w.table)
		}
	}
	return n, nil
}

func (w *World) runSpawns(int) (int, error) {
	return w.drain(), nil
}

// spawnWave fills empty chunks with enemies up to the current cap and
// raises the cap for the next wave.
func (w *World) spawnWave() int {
	w.spawnedCargo = false
	spawned := 0
	for _, idx := range w.shuffledChunks() {
		if len(w.enemies) >= w.maxEnemies {
			break
		}
		if w.spawnEnemy(w.chunks[idx]) {
			spawned++
		}
	}
	w.wave++
	w.maxEnemies += w.cfg.World.WaveEnemyIncrement

	w.logger.Info("wave spawned",
		log.Int("wave", w.wave),
		log.Int("enemies", spawned),
		log.Int("next_cap", w.maxEnemies),
	)
	w.Publish(bus.TypeWaveSpawned, bus.WaveSpawned{Wave: w.wave, Enemies: spawned, MaxAlive: w.maxEnemies})
	return spawned
}

// spawnEnemy queues a random enemy at the centre of an empty chunk. At most
// one cargo ship appears per wave.
func (w *World) spawnEnemy(c *Chunk) bool {
	if !c.IsEmpty() {
		return false
	}
	var e *entities.Enemy
	if !w.spawnedCargo && w.rng.Float64() < w.cfg.World.CargoSpawnChance {
		e = entities.NewEnemy(w, c.Center(), entities.EnemyCargo)
		w.spawnedCargo = true
	} else {
		e = entities.NewRandomEnemy(w, c.Center(), w.wave)
	}
	w.Spawn(e)
	w.enemies = append(w.enemies, e)
	return true
}

func (w *World) shuffledChunks() []int {
	order := make([]int, len(w.chunks))
	for i := range order {
		order[i] = i
	}
	w.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}

// drain joins queued objects to the chunk holding their position.
func (w *World) drain() int {
	return w.spawnQueue.Drain(func(obj models.Object) {
		pos := obj.Physics().Position()
		if c := w.ChunkAt(pos); c != nil {
			c.Add(obj)
			return
		}

		w.dropped++
		if obj.Kind() == models.KindEnemy {
			w.removeEnemy(obj)
		}
		w.logger.Warn("spawn target outside world",
			log.Uint64("id", uint64(obj.ID())),
			log.String("kind", obj.Kind().String()),
			log.Float64("x", pos.X),
			log.Float64("y", pos.Y),
		)
		w.Publish(bus.TypeSpawnDropped, bus.SpawnDropped{ID: uint64(obj.ID()), Kind: obj.Kind().String(), X: pos.X, Y: pos.Y})
	})
}

// bounce reflects the velocity components that carry a body further out of
// the world.
// bounce reflects the velocity components that carry the predicted box next
// further across a world border.
func (w *World) bounce(b *physics.Body, next physics.AABB) {
	vel := b.Velocity()
	width, height := float64(w.cfg.World.Width), float64(w.cfg.World.Height)
	if (next.Max.X > width && vel.X > 0) || (next.Min.X < 0 && vel.X < 0) {
		b.SetVelX(-vel.X)
	}
	if (next.Max.Y > height && vel.Y > 0) || (next.Min.Y < 0 && vel.Y < 0) {
		b.SetVelY(-vel.Y)
	}
}

func (w *World) removeEnemy(obj models.Object) bool {
	n := len(w.enemies)
	w.enemies = slices.DeleteFunc(w.enemies, func(e models.Object) bool { return e.ID() == obj.ID() })
	return len(w.enemies) < n
}

// Config returns the world's own copy of the configuration.
func (w *World) Config() *config.Config { return &w.cfg }

func (w *World) Rand() *rand.Rand { return w.rng }

func (w *World) Tick() int { return w.tick }

// NextID hands out identifiers starting at 1.
func (w *World) NextID() models.EntityID {
	w.nextID++
	return w.nextID
}

// Spawn queues obj; it joins the grid at the end of the current tick.
func (w *World) Spawn(obj models.Object) { w.spawnQueue.Enqueue(obj) }

func (w *World) Count(kind models.Kind) int {
	live := func(o models.Object) bool { return o.Kind() == kind && o.Exists() }
	return w.Objects().Filter(live).Count() + sequence.FromSeq(w.spawnQueue.All()).Filter(live).Count()
}

// ChunkAt returns the chunk containing p, or nil outside the world. Points
// on the far edges belong to the last row and column.
func (w *World) ChunkAt(p physics.Vector) *Chunk {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return nil
	}
	if p.X < 0 || p.Y < 0 || p.X > float64(w.cfg.World.Width) || p.Y > float64(w.cfg.World.Height) {
		return nil
	}
	x := min(int(p.X/w.chunkSize), w.gridW-1)
	y := min(int(p.Y/w.chunkSize), w.gridH-1)
	return w.chunks[y*w.gridW+x]
}

// NeighbourChunks returns the distinct chunks of the 3x3 block around p
// that lie inside the world.
func (w *World) NeighbourChunks(p physics.Vector) []*Chunk {
	out := make([]*Chunk, 0, 9)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			c := w.ChunkAt(p.Add(physics.Vec(float64(i)*w.chunkSize, float64(j)*w.chunkSize)))
			if c != nil && !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func (w *World) Neighbours(p physics.Vector) []models.Object {
	seen := make(map[models.EntityID]struct{})
	var out []models.Object
	for _, c := range w.NeighbourChunks(p) {
		for _, obj := range c.objects {
			if _, ok := seen[obj.ID()]; ok {
				continue
			}
			seen[obj.ID()] = struct{}{}
			out = append(out, obj)
		}
	}
	return out
}

// RandomPlayer picks among players that still exist.
func (w *World) RandomPlayer() models.Object {
	alive := make([]*entities.Player, 0, len(w.players))
	for _, p := range w.players {
		if p.Exists() {
			alive = append(alive, p)
		}
	}
	if len(alive) == 0 {
		return nil
	}
	return alive[w.rng.Intn(len(alive))]
}

func (w *World) EnemyRemoved(obj models.Object) {
	if w.removeEnemy(obj) {
		w.logger.Debug("enemy removed", log.Uint64("id", uint64(obj.ID())), log.Int("remaining", len(w.enemies)))
	}
}

// Publish raises a gameplay event on the world bus. Handler errors are
// logged and never interrupt the tick.
func (w *World) Publish(eventType string, data any) {
	if err := w.bus.Publish(bus.NewEvent(eventType, Source, w.tick, data)); err != nil {
		w.logger.Warn("event handler failed", log.String("type", eventType), log.Error(err))
	}
}

func (w *World) Bus() bus.EventBus { return w.bus }

func (w *World) Logger() log.Log { return w.logger }

func (w *World) RunID() uuid.UUID { return w.runID }

func (w *World) Players() []*entities.Player { return slices.Clone(w.players) }

// Player returns player number n, counted from 1.
func (w *World) Player(n int) (*entities.Player, bool) {
	if n < 1 || n > len(w.players) {
		return nil, false
	}
	return w.players[n-1], true
}

// Enemies returns the enemies of the running wave.
func (w *World) Enemies() []models.Object { return slices.Clone(w.enemies) }

func (w *World) Wave() int { return w.wave }

func (w *World) MaxEnemies() int { return w.maxEnemies }

func (w *World) Paused() bool { return w.paused }

// Pending is the number of queued spawns.
func (w *World) Pending() int { return w.spawnQueue.Len() }

func (w *World) Chunks() []*Chunk { return slices.Clone(w.chunks) }

// SetSystemEnabled toggles one of the world pipeline systems.
func (w *World) SetSystemEnabled(name string, enabled bool) error {
	return w.pipeline.SetEnabled(name, enabled)
}
