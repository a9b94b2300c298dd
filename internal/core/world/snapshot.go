package world

import (
	"cmp"
	"encoding/binary"
	"iter"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/planetattack/internal/core/models"
	"github.com/zeusync/planetattack/internal/core/systems"
	"github.com/zeusync/planetattack/pkg/generic"
	"github.com/zeusync/planetattack/pkg/sequence"
)

// Objects iterates the distinct objects on the grid in chunk order. Queued
// spawns are not included.
func (w *World) Objects() *sequence.Iterator[models.Object] {
	return sequence.FromSeq(iter.Seq[models.Object](func(yield func(models.Object) bool) {
		seen := make(map[models.EntityID]struct{})
		for _, c := range w.chunks {
			for _, obj := range c.objects {
				if _, ok := seen[obj.ID()]; ok {
					continue
				}
				seen[obj.ID()] = struct{}{}
				if !yield(obj) {
					return
				}
			}
		}
	}))
}

func (w *World) sortedObjects() []models.Object {
	objs := w.Objects().Collect()
	slices.SortFunc(objs, func(a, b models.Object) int { return cmp.Compare(a.ID(), b.ID()) })
	return objs
}

// Snapshot renders every object on the grid ordered by ID and marks each
// one drawn.
func (w *World) Snapshot() []models.RenderState {
	objs := w.sortedObjects()
	out := make([]models.RenderState, 0, len(objs))
	for _, obj := range objs {
		out = append(out, obj.Render())
		obj.SetDrawn(true)
	}
	return out
}

type healthy interface {
	Health() int
}

// Digest hashes the simulation state. Two worlds built from the same
// configuration and driven with the same inputs produce the same digest.
func (w *World) Digest() uint64 {
	objs := w.sortedObjects()
	return generic.With(w.digests, func(d *xxhash.Digest) uint64 {
		buf := make([]byte, 0, 128)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(w.tick))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(w.wave))
		_, _ = d.Write(buf)

		for _, obj := range objs {
			b := obj.Physics()
			buf = buf[:0]
			buf = binary.LittleEndian.AppendUint64(buf, uint64(obj.ID()))
			buf = append(buf, byte(obj.Kind()))
			for _, f := range []float64{
				b.Position().X, b.Position().Y,
				b.Velocity().X, b.Velocity().Y,
				b.Rotation(),
			} {
				buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
			}
			if h, ok := obj.(healthy); ok {
				buf = binary.LittleEndian.AppendUint64(buf, uint64(h.Health()))
			}
			_, _ = d.Write(buf)
		}
		return d.Sum64()
	})
}

// Stats is a point-in-time summary of a world.
type Stats struct {
	Tick    int
	Wave    int
	Paused  bool
	Objects int
	ByKind  map[models.Kind]int
	Enemies int
	Pending int
	Dropped int
	Systems map[string]systems.Metrics
}

func (w *World) Stats() Stats {
	byKind := sequence.CountBy(w.Objects(), models.Object.Kind)
	total := 0
	for _, n := range byKind {
		total += n
	}
	return Stats{
		Tick:    w.tick,
		Wave:    w.wave,
		Paused:  w.paused,
		Objects: total,
		ByKind:  byKind,
		Enemies: len(w.enemies),
		Pending: w.spawnQueue.Len(),
		Dropped: w.dropped,
		Systems: w.pipeline.Metrics(),
	}
}
