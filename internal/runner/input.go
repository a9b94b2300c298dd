package runner

import "github.com/zeusync/planetattack/internal/core/models"

// InputFunc samples the controls of every player for a tick. inputs[i]
// drives player number i+1.
type InputFunc func(tick int) []models.Input

// NoInput holds nothing. A world started paused stays paused under it.
func NoInput(int) []models.Input { return nil }

// Autopilot flies player one in a slow weave while firing continuously.
// It depends on the tick alone, so replays stay deterministic.
func Autopilot(tick int) []models.Input {
	phase := tick % 120
	return []models.Input{{
		Forward: phase < 70,
		Left:    phase >= 70 && phase < 85,
		Right:   phase >= 100,
		Shoot:   true,
	}}
}
