package systems

import (
	"fmt"
	"sort"
	"time"
)

type entry struct {
	system  System
	enabled bool
	metrics Metrics
	order   int
}

// Pipeline runs systems by phase, then priority, then registration order.
// It is not safe for concurrent use.
type Pipeline struct {
	entries []*entry
	byName  map[string]*entry
	now     func() time.Time
}

func NewPipeline() *Pipeline {
	return &Pipeline{byName: make(map[string]*entry), now: time.Now}
}

// Add registers a system. Names must be unique.
func (p *Pipeline) Add(s System) error {
	if _, ok := p.byName[s.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, s.Name())
	}
	e := &entry{system: s, enabled: true, order: len(p.entries)}
	p.entries = append(p.entries, e)
	p.byName[s.Name()] = e
	sort.SliceStable(p.entries, func(i, j int) bool {
		a, b := p.entries[i], p.entries[j]
		if a.system.Phase() != b.system.Phase() {
			return a.system.Phase() < b.system.Phase()
		}
		if a.system.Priority() != b.system.Priority() {
			return a.system.Priority() > b.system.Priority()
		}
		return a.order < b.order
	})
	return nil
}

// SetEnabled toggles a registered system.
func (p *Pipeline) SetEnabled(name string, enabled bool) error {
	e, ok := p.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSystem, name)
	}
	e.enabled = enabled
	return nil
}

// Run executes every enabled system once. The first failing system stops
// the tick.
func (p *Pipeline) Run(tick int) error {
	for _, e := range p.entries {
		if !e.enabled {
			continue
		}
		start := p.now()
		processed, err := e.system.Run(tick)
		e.metrics.record(start, p.now().Sub(start), processed, err)
		if err != nil {
			return fmt.Errorf("system %s: %w", e.system.Name(), err)
		}
	}
	return nil
}

// Names lists systems in execution order.
func (p *Pipeline) Names() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.system.Name()
	}
	return out
}

// Metrics returns a snapshot per system name.
func (p *Pipeline) Metrics() map[string]Metrics {
	out := make(map[string]Metrics, len(p.entries))
	for _, e := range p.entries {
		out[e.system.Name()] = e.metrics
	}
	return out
}
