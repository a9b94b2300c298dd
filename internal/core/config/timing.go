package config

import "time"

// TimingConfig fixes the length of a simulation tick.
type TimingConfig struct {
	TickTime time.Duration `json:"tick_time" yaml:"tick_time"`
}

// SecondsPerTick is the tick length in seconds.
func (t TimingConfig) SecondsPerTick() float64 { return t.TickTime.Seconds() }

// Ticks converts a duration into whole ticks, truncating.
func (t TimingConfig) Ticks(d time.Duration) int { return int(d / t.TickTime) }

// SecondsToTicks converts seconds into whole ticks, truncating.
func (t TimingConfig) SecondsToTicks(seconds float64) int {
	return int(seconds / t.SecondsPerTick())
}

func (t TimingConfig) TicksToSeconds(ticks int) float64 {
	return float64(ticks) * t.SecondsPerTick()
}

// PerSecondToPerTick converts a rate per second into a rate per tick.
func (t TimingConfig) PerSecondToPerTick(v float64) float64 { return v * t.SecondsPerTick() }

// PerSecondSquaredToPerTickSquared converts an acceleration.
func (t TimingConfig) PerSecondSquaredToPerTickSquared(v float64) float64 {
	return t.PerSecondToPerTick(t.PerSecondToPerTick(v))
}

func (t TimingConfig) PerTickToPerSecond(v float64) float64 { return v / t.SecondsPerTick() }

func (t TimingConfig) PerTickSquaredToPerSecondSquared(v float64) float64 {
	return t.PerTickToPerSecond(t.PerTickToPerSecond(v))
}
