// Package collision routes a colliding pair of objects to the reaction
// registered for their kinds.
package collision

import "github.com/zeusync/planetattack/internal/core/models"

// Handler reacts to a collision. Arguments arrive in the kind order the
// handler was registered with.
type Handler func(a, b models.Object)

type pair struct{ a, b models.Kind }

// Table is an open (Kind, Kind) dispatch table. It is not safe for
// concurrent registration.
type Table struct {
	handlers map[pair]Handler
	fallback Handler
}

// BothHit makes each object take its default hit.
func BothHit(a, b models.Object) {
	a.Hit()
	b.Hit()
}

// Ignore is a Handler that does nothing.
func Ignore(models.Object, models.Object) {}

// NewTable builds a table whose unregistered pairs fall back to BothHit.
func NewTable() *Table {
	return &Table{handlers: make(map[pair]Handler), fallback: BothHit}
}

// SetFallback replaces the handler used for unregistered pairs.
func (t *Table) SetFallback(h Handler) {
	if h == nil {
		h = BothHit
	}
	t.fallback = h
}

// Register installs h for (a, b) and the swapped form for (b, a), replacing
// earlier registrations of either order.
func (t *Table) Register(a, b models.Kind, h Handler) {
	t.handlers[pair{a, b}] = h
	if a != b {
		t.handlers[pair{b, a}] = func(x, y models.Object) { h(y, x) }
	}
}

// Registered reports whether (a, b) has its own handler.
func (t *Table) Registered(a, b models.Kind) bool {
	_, ok := t.handlers[pair{a, b}]
	return ok
}

// Dispatch runs the reaction for a colliding pair.
func (t *Table) Dispatch(a, b models.Object) {
	if h, ok := t.handlers[pair{a.Kind(), b.Kind()}]; ok {
		h(a, b)
		return
	}
	t.fallback(a, b)
}
