package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// PowerUpKind identifies the actor's active power-up, if any.
type PowerUpKind int

const (
	PowerNone PowerUpKind = iota
	PowerRegular
	PowerSuper
)

// String returns a human-readable name for the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerRegular:
		return "regular"
	case PowerSuper:
		return "super"
	default:
		return "none"
	}
}

// Actor is the controlled character. It runs in a fixed column while the
// world scrolls past; the player supplies only jump and attack intents.
// Jump availability, attack state and power-up state are independent axes,
// not one flat state enum.
type Actor struct {
	X, Y float64 // top-left corner
	VY   float64
	W, H float64

	Grounded       bool
	doubleJumpUsed bool

	Attacking      bool
	attackTicks    int // remaining attack duration
	cooldownTicks  int // remaining cooldown, counts only while not attacking
	attackInvTicks int // remaining attack-triggered invincibility

	power      PowerUpKind
	powerTicks int // remaining power-up duration

	cfg     config.ActorConfig
	groundY float64 // the actor's bottom edge rests on this line
}

// NewActor places the actor grounded at its fixed column.
func NewActor(cfg config.ActorConfig, groundY float64) *Actor {
	a := &Actor{
		X:       float64(cfg.X),
		W:       float64(cfg.Width),
		H:       float64(cfg.Height),
		cfg:     cfg,
		groundY: groundY,
	}
	a.Y = groundY - a.H
	a.Grounded = true
	return a
}

// TryJump consumes a jump intent. Precedence: ground jump, then the one-shot
// double jump, then the Super infinite jump checked only as a fallback.
// Anything else is a silent no-op.
func (a *Actor) TryJump() bool {
	switch {
	case a.Grounded:
		a.VY = a.cfg.JumpImpulse
		a.Grounded = false
		a.doubleJumpUsed = false
		return true
	case !a.doubleJumpUsed:
		a.VY = a.cfg.DoubleJumpImpulse
		a.doubleJumpUsed = true
		return true
	case a.power == PowerSuper:
		a.VY = a.cfg.SuperJumpImpulse
		return true
	}
	return false
}

// TryAttack consumes an attack intent. Valid only while not attacking and
// off cooldown. The invincibility window opens on the first attack tick and
// is strictly shorter than the attack itself.
func (a *Actor) TryAttack() bool {
	if a.Attacking || a.cooldownTicks > 0 {
		return false
	}
	a.Attacking = true
	a.attackTicks = a.cfg.AttackDuration
	a.attackInvTicks = a.cfg.AttackInvincibility
	return true
}

// ApplyPowerUp activates a power-up for the given duration in ticks,
// replacing any active one.
func (a *Actor) ApplyPowerUp(kind PowerUpKind, duration int) {
	if kind == PowerNone || duration <= 0 {
		return
	}
	a.power = kind
	a.powerTicks = duration
}

// HasPowerUp reports whether any power-up is active.
func (a *Actor) HasPowerUp() bool {
	return a.power != PowerNone
}

// Power returns the active power-up kind.
func (a *Actor) Power() PowerUpKind {
	return a.power
}

// PowerTicks returns the remaining power-up duration.
func (a *Actor) PowerTicks() int {
	return a.powerTicks
}

// AttackInvincible reports whether the attack-triggered window is open.
func (a *Actor) AttackInvincible() bool {
	return a.attackInvTicks > 0
}

// Invincible is the single derived predicate both invincibility sources
// feed. The two timers run independently and may overlap.
func (a *Actor) Invincible() bool {
	return a.HasPowerUp() || a.attackInvTicks > 0
}

// Update consumes intents and advances physics and timers by one tick.
// scale stretches kinematic integration for off-nominal frame times; a zero
// scale freezes movement while timers still advance.
func (a *Actor) Update(jump, attack bool, scale float64) {
	if jump {
		a.TryJump()
	}
	if attack {
		a.TryAttack()
	}

	if !a.Grounded && scale > 0 {
		a.VY += a.cfg.Gravity * scale
		if a.VY > a.cfg.MaxFallSpeed {
			a.VY = a.cfg.MaxFallSpeed
		}
		a.Y += a.VY * scale
		if a.Y+a.H >= a.groundY {
			// Landing restores both jump flags.
			a.Y = a.groundY - a.H
			a.VY = 0
			a.Grounded = true
			a.doubleJumpUsed = false
		}
	}

	// The attack runs to completion, then the cooldown starts. The two
	// never count down together.
	if a.Attacking {
		a.attackTicks--
		if a.attackTicks <= 0 {
			a.Attacking = false
			a.cooldownTicks = a.cfg.AttackCooldown
		}
	} else if a.cooldownTicks > 0 {
		a.cooldownTicks--
	}

	if a.attackInvTicks > 0 {
		a.attackInvTicks--
	}

	// Expiry clears the kind and the super distinction together.
	if a.power != PowerNone {
		a.powerTicks--
		if a.powerTicks <= 0 {
			a.power = PowerNone
			a.powerTicks = 0
		}
	}
}

// Bounds returns the actor's collision box.
func (a *Actor) Bounds() Box {
	return Box{X: a.X, Y: a.Y, W: a.W, H: a.H}
}
