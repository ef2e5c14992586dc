package tui

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Game is the contract the terminal loop drives. Step runs one nominal tick;
// StepTimed scales kinematics by the measured frame time so a stalled
// terminal does not teleport entities.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	StepTimed(elapsed time.Duration, in core.InputFrame) core.StepResult
	Render(screen *core.Screen)
	State() core.GameState
	SetBestScore(score int)

	// Run bookkeeping for persistence.
	Stats() runner.RunStats
	Seed() int64
	Ticks() uint64
}

var _ Game = (*runner.Game)(nil)
