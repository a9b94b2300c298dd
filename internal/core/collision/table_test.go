package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

type stub struct {
	models.Base
	hits int
}

func newStub(id models.EntityID, kind models.Kind) *stub {
	return &stub{Base: models.NewBase(id, kind, physics.MustBody(physics.BodyParams{Mass: 1, Size: 1}))}
}

func (s *stub) Hit() { s.hits++ }

func (s *stub) Render() models.RenderState { return s.RenderBase("stub", 1) }

func TestDispatchIsSymmetric(t *testing.T) {
	tbl := NewTable()
	var got [][2]models.EntityID
	tbl.Register(models.KindBullet, models.KindAsteroid, func(a, b models.Object) {
		assert.Equal(t, models.KindBullet, a.Kind())
		assert.Equal(t, models.KindAsteroid, b.Kind())
		got = append(got, [2]models.EntityID{a.ID(), b.ID()})
	})

	bullet, rock := newStub(1, models.KindBullet), newStub(2, models.KindAsteroid)
	tbl.Dispatch(bullet, rock)
	tbl.Dispatch(rock, bullet)

	assert.Equal(t, [][2]models.EntityID{{1, 2}, {1, 2}}, got)
	assert.True(t, tbl.Registered(models.KindAsteroid, models.KindBullet))
	assert.Zero(t, bullet.hits)
}

func TestFallbackHitsBoth(t *testing.T) {
	tbl := NewTable()
	a, b := newStub(1, models.KindPlayer), newStub(2, models.KindEnemy)
	tbl.Dispatch(a, b)
	assert.Equal(t, 1, a.hits)
	assert.Equal(t, 1, b.hits)

	tbl.SetFallback(Ignore)
	tbl.Dispatch(a, b)
	assert.Equal(t, 1, a.hits)

	tbl.SetFallback(nil)
	tbl.Dispatch(a, b)
	assert.Equal(t, 2, a.hits)
}

func TestRegisterReplaces(t *testing.T) {
	tbl := NewTable()
	calls := ""
	tbl.Register(models.KindEnemy, models.KindEnemy, func(models.Object, models.Object) { calls += "a" })
	tbl.Register(models.KindEnemy, models.KindEnemy, func(models.Object, models.Object) { calls += "b" })

	e1, e2 := newStub(1, models.KindEnemy), newStub(2, models.KindEnemy)
	tbl.Dispatch(e1, e2)
	assert.Equal(t, "b", calls)
}
