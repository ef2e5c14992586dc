package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// ThresholdTracker watches the score stream and converts period crossings
// into one-shot power-up availability.
type ThresholdTracker struct {
	lastScore     int
	regularPeriod int
	superPeriod   int
	available     PowerUpKind
}

// NewThresholdTracker creates a tracker with both periods at their
// configured values and no score observed yet.
func NewThresholdTracker(cfg config.PowerUpConfig) *ThresholdTracker {
	return &ThresholdTracker{
		regularPeriod: cfg.RegularPeriod,
		superPeriod:   cfg.SuperPeriod,
	}
}

// Evaluate compares the current score against the last evaluated one and
// rewrites availability. An unchanged score is a no-op.
//
// Crossing detection compares floor(score/period) before and after, so
// several periods skipped in one jump register exactly one crossing.
// Precedence: a super crossing wins and clears any pending regular; a
// regular crossing is suppressed when the new score is itself an exact
// multiple of the super period, or while the actor already holds a
// power-up. Availability not consumed before the next changed-score
// evaluation is overwritten by it.
func (t *ThresholdTracker) Evaluate(score int, actorHasPower bool) {
	if score == t.lastScore {
		return
	}

	crossedSuper := score/t.superPeriod > t.lastScore/t.superPeriod
	crossedRegular := score/t.regularPeriod > t.lastScore/t.regularPeriod

	avail := PowerNone
	switch {
	case crossedSuper:
		avail = PowerSuper
	case crossedRegular && score%t.superPeriod != 0 && !actorHasPower:
		avail = PowerRegular
	}
	t.available = avail
	t.lastScore = score
}

// Available returns the pending availability without consuming it.
func (t *ThresholdTracker) Available() PowerUpKind {
	return t.available
}

// Take consumes and returns the available power-up, if any.
func (t *ThresholdTracker) Take() PowerUpKind {
	k := t.available
	t.available = PowerNone
	return k
}
