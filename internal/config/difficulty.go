package config

// DifficultyManager answers speed questions for the in-run ramp.
// The multiplier steps up once per full score step and applies only to
// entities spawned after the step is reached; anything already on screen
// keeps the speed it spawned with. Spawn interval shrink is handled by the
// spawn scheduler, not here.
type DifficultyManager struct {
	scoreStep int
	increment float64
}

// NewDifficultyManager creates a manager from ramp parameters.
func NewDifficultyManager(ramp RampConfig) *DifficultyManager {
	m := &DifficultyManager{
		scoreStep: ramp.ScoreStep,
		increment: ramp.SpeedIncrement,
	}
	if m.scoreStep <= 0 {
		m.scoreStep = 10
	}
	if m.increment < 0 {
		m.increment = 0
	}
	return m
}

// Multiplier returns the speed multiplier at the given score:
// 1 plus one increment per completed score step.
func (m *DifficultyManager) Multiplier(score int) float64 {
	if score < 0 {
		score = 0
	}
	return 1.0 + float64(score/m.scoreStep)*m.increment
}
