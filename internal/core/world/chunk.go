package world

import (
	"slices"

	"github.com/zeusync/planetattack/internal/core/collision"
	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems/physics"
)

// Chunk is one cell of the world grid. Objects are shared between chunks:
// a body straddling a border is a member of every chunk it touches.
type Chunk struct {
	world   *World
	bounds  physics.AABB
	objects []models.Object
	members map[models.EntityID]struct{}
}

func newChunk(w *World, bounds physics.AABB) *Chunk {
	return &Chunk{
		world:   w,
		bounds:  bounds,
		members: make(map[models.EntityID]struct{}),
	}
}

// Update advances every member that has not been updated this tick and
// moves membership along with it. It returns the number of members visited.
func (c *Chunk) Update(tick int) int {
	visited := slices.Clone(c.objects)
	for _, obj := range visited {
		if obj.LastTick() < tick {
			obj.Update(tick)
		}

		body := obj.Physics()
		exempt := bounceExempt(obj)
		next := body.AABB().Translate(body.Velocity())
		bounced, placed := false, false
		for _, corner := range next.Corners() {
			if target := c.world.ChunkAt(corner); target != nil {
				target.Add(obj)
				placed = true
				continue
			}
			if bounced || exempt {
				continue
			}
			c.world.bounce(body, next)
			bounced = true
		}

		// a bouncing body that has nowhere else to go stays here until it
		// turns back into the grid
		stranded := !placed && !exempt
		if !obj.Exists() || (!body.CollidesAABB(c.bounds) && !stranded) {
			c.Remove(obj)
		}
	}
	return len(visited)
}

// CheckCollisions dispatches every colliding unordered pair of members and
// returns how many pairs collided.
func (c *Chunk) CheckCollisions(table *collision.Table) int {
	if len(c.objects) < 2 {
		return 0
	}
	objs := slices.Clone(c.objects)
	hits := 0
	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			if objs[i].Physics().Collides(objs[j].Physics()) {
				table.Dispatch(objs[i], objs[j])
				hits++
			}
		}
	}
	return hits
}

// Add is idempotent and ignores objects that no longer exist.
func (c *Chunk) Add(obj models.Object) {
	if !obj.Exists() {
		return
	}
	if _, ok := c.members[obj.ID()]; ok {
		return
	}
	c.members[obj.ID()] = struct{}{}
	c.objects = append(c.objects, obj)
}

func (c *Chunk) Remove(obj models.Object) {
	if _, ok := c.members[obj.ID()]; !ok {
		return
	}
	delete(c.members, obj.ID())
	c.objects = slices.DeleteFunc(c.objects, func(o models.Object) bool { return o.ID() == obj.ID() })
}

func (c *Chunk) Contains(obj models.Object) bool {
	_, ok := c.members[obj.ID()]
	return ok
}

// Objects returns a copy of the members in insertion order.
func (c *Chunk) Objects() []models.Object { return slices.Clone(c.objects) }

func (c *Chunk) Len() int { return len(c.objects) }

func (c *Chunk) IsEmpty() bool { return len(c.objects) == 0 }

func (c *Chunk) Center() physics.Vector { return c.bounds.Center() }

func (c *Chunk) Bounds() physics.AABB { return c.bounds }

func bounceExempt(obj models.Object) bool {
	e, ok := obj.(models.BounceExempt)
	return ok && e.BounceExempt()
}
