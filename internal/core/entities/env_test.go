package entities

import (
	"math/rand"

	"github.com/zeusync/planetattack/internal/core/collision"
	"github.com/zeusync/planetattack/internal/core/config"
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

type event struct {
	typ  string
	data any
}

// fakeEnv records everything objects ask of the world.
type fakeEnv struct {
	cfg     *config.Config
	rng     *rand.Rand
	tick    int
	nextID  models.EntityID
	spawned []models.Object
	nearby  []models.Object
	players []models.Object
	removed []models.Object
	events  []event
	// counts adds objects the fake does not track to Count.
	counts map[models.Kind]int
}

func newFakeEnv() *fakeEnv {
	cfg := config.Default()
	return &fakeEnv{cfg: &cfg, rng: rand.New(rand.NewSource(1))}
}

func (f *fakeEnv) Config() *config.Config { return f.cfg }
func (f *fakeEnv) Rand() *rand.Rand       { return f.rng }
func (f *fakeEnv) Tick() int              { return f.tick }

func (f *fakeEnv) NextID() models.EntityID {
	f.nextID++
	return f.nextID
}

func (f *fakeEnv) Spawn(obj models.Object) { f.spawned = append(f.spawned, obj) }

func (f *fakeEnv) Count(kind models.Kind) int {
	n := f.counts[kind]
	for _, o := range f.spawned {
		if o.Kind() == kind && o.Exists() {
			n++
		}
	}
	return n
}

func (f *fakeEnv) Neighbours(physics.Vector) []models.Object { return f.nearby }

func (f *fakeEnv) RandomPlayer() models.Object {
	if len(f.players) == 0 {
		return nil
	}
	return f.players[0]
}

func (f *fakeEnv) EnemyRemoved(obj models.Object) { f.removed = append(f.removed, obj) }

func (f *fakeEnv) Publish(typ string, data any) { f.events = append(f.events, event{typ, data}) }

func (f *fakeEnv) player(pos physics.Vector) *Player {
	p := NewPlayer(f, pos, len(f.players)+1)
	f.players = append(f.players, p)
	return p
}

func (f *fakeEnv) table() *collision.Table {
	t := collision.NewTable()
	RegisterCollisions(t)
	return t
}

func (f *fakeEnv) spawnedOf(kind models.Kind) []models.Object {
	var out []models.Object
	for _, o := range f.spawned {
		if o.Kind() == kind {
			out = append(out, o)
		}
	}
	return out
}
