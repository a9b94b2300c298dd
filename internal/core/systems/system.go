package systems

import "time"

// System is one step of the world tick.
type System interface {
	Name() string
	Phase() ExecutionPhase
	Priority() Priority
	// Run executes the step and reports how many objects it touched.
	Run(tick int) (processed int, err error)
}

// Priority orders systems inside a phase; higher runs first.
type Priority uint16

const (
	PriorityLowest  Priority = 100
	PriorityLow     Priority = 500
	PriorityNormal  Priority = 600
	PriorityHigh    Priority = 1000
	PriorityHighest Priority = 1300
)

// ExecutionPhase defines when a system runs within a tick.
type ExecutionPhase uint8

const (
	PhasePreUpdate ExecutionPhase = iota
	PhaseUpdate
	PhasePostUpdate
	PhaseLateUpdate
)

func (p ExecutionPhase) String() string {
	switch p {
	case PhasePreUpdate:
		return "pre_update"
	case PhaseUpdate:
		return "update"
	case PhasePostUpdate:
		return "post_update"
	case PhaseLateUpdate:
		return "late_update"
	default:
		return "unknown"
	}
}

// Metrics provides runtime metrics for a system
type Metrics struct {
	ExecutionCount       uint64
	TotalExecutionTime   time.Duration
	AverageExecutionTime time.Duration
	MaxExecutionTime     time.Duration
	MinExecutionTime     time.Duration
	ErrorCount           uint64
	LastError            error
	LastExecutionTime    time.Time
	EntitiesProcessed    uint64
}

func (m *Metrics) record(start time.Time, elapsed time.Duration, processed int, err error) {
	m.ExecutionCount++
	m.TotalExecutionTime += elapsed
	m.AverageExecutionTime = m.TotalExecutionTime / time.Duration(m.ExecutionCount)
	if elapsed > m.MaxExecutionTime {
		m.MaxExecutionTime = elapsed
	}
	if m.ExecutionCount == 1 || elapsed < m.MinExecutionTime {
		m.MinExecutionTime = elapsed
	}
	m.LastExecutionTime = start
	m.EntitiesProcessed += uint64(processed)
	if err != nil {
		m.ErrorCount++
		m.LastError = err
	}
}

type funcSystem struct {
	name     string
	phase    ExecutionPhase
	priority Priority
	fn       func(tick int) (int, error)
}

// NewFunc adapts a function into a System.
func NewFunc(name string, phase ExecutionPhase, priority Priority, fn func(tick int) (int, error)) System {
	return &funcSystem{name: name, phase: phase, priority: priority, fn: fn}
}

func (s *funcSystem) Name() string              { return s.name }
func (s *funcSystem) Phase() ExecutionPhase     { return s.phase }
func (s *funcSystem) Priority() Priority        { return s.priority }
func (s *funcSystem) Run(tick int) (int, error) { return s.fn(tick) }
