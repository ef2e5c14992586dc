package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// EnemyState tracks the enemy behaviour cycle.
type EnemyState int

const (
	EnemyGrounding EnemyState = iota // falling toward the ground line
	EnemyIdle
	EnemyAttacking
	EnemyCooling
	EnemyDefeated // pending respawn at the end-of-tick sweep
)

// String returns a human-readable name for the state.
func (s EnemyState) String() string {
	switch s {
	case EnemyGrounding:
		return "grounding"
	case EnemyIdle:
		return "idle"
	case EnemyAttacking:
		return "attacking"
	case EnemyCooling:
		return "cooling"
	case EnemyDefeated:
		return "defeated"
	default:
		return "unknown"
	}
}

// Enemy drifts left in every state, falls under gravity until grounded, and
// attacks unconditionally whenever the actor enters its proximity band.
type Enemy struct {
	X, Y  float64
	W, H  float64
	VY    float64
	Speed float64 // leftward drift, set at spawn

	State         EnemyState
	attackTicks   int
	cooldownTicks int
	removed       bool
}

// Bounds returns the enemy's collision box.
func (e Enemy) Bounds() Box {
	return Box{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// EnemyManager owns enemy lifetime. A defeated enemy is reset far to the
// right rather than destroyed; only drifting fully past the left edge
// removes one from the pool.
type EnemyManager struct {
	enemies []Enemy
	cfg     config.EnemyConfig
	fieldW  float64
	groundY float64
	rng     *rand.Rand
}

// NewEnemyManager creates an empty pool for the given field.
func NewEnemyManager(cfg config.EnemyConfig, fieldW, groundY float64, rng *rand.Rand) *EnemyManager {
	return &EnemyManager{
		cfg:     cfg,
		fieldW:  fieldW,
		groundY: groundY,
		rng:     rng,
	}
}

// TrySpawn creates one enemy unless its column lands within the configured
// gap of a live obstacle. Returns false on rejection so the scheduler can
// defer and retry; a rejection never drops the spawn.
func (m *EnemyManager) TrySpawn(obstacles []Obstacle) bool {
	x := m.spawnX()
	for i := range obstacles {
		if math.Abs(x-obstacles[i].X) < m.cfg.ObstacleGap {
			return false
		}
	}
	m.enemies = append(m.enemies, m.newEnemy(x))
	return true
}

// spawnX picks a column past the right edge with random jitter.
func (m *EnemyManager) spawnX() float64 {
	x := m.fieldW + float64(m.cfg.SpawnOffset)
	if m.cfg.SpawnJitter > 0 {
		x += float64(m.rng.Intn(m.cfg.SpawnJitter))
	}
	return x
}

// newEnemy builds a fresh airborne enemy at the given column with all
// timers cleared.
func (m *EnemyManager) newEnemy(x float64) Enemy {
	return Enemy{
		X:     x,
		Y:     m.groundY - float64(m.cfg.SpawnAltitude) - float64(m.cfg.Height),
		W:     float64(m.cfg.Width),
		H:     float64(m.cfg.Height),
		Speed: m.cfg.DriftSpeed,
		State: EnemyGrounding,
	}
}

// Update advances drift, gravity and the attack cycle for every enemy, then
// sweeps those fully past the left edge.
func (m *EnemyManager) Update(actorCX, scale float64) {
	for i := range m.enemies {
		e := &m.enemies[i]
		m.advance(e, actorCX, scale)
		if e.X+e.W <= 0 {
			e.removed = true
		}
	}
	m.Compact()
}

func (m *EnemyManager) advance(e *Enemy, actorCX, scale float64) {
	if e.State == EnemyDefeated {
		// Repositioned by the end-of-tick sweep; nothing moves it here.
		return
	}

	// Drift continues in every active state, reduced while attacking.
	drift := e.Speed
	if e.State == EnemyAttacking {
		drift *= m.cfg.AttackDriftFactor
	}
	e.X -= drift * scale

	switch e.State {
	case EnemyGrounding:
		if scale > 0 {
			e.VY += m.cfg.Gravity * scale
			e.Y += e.VY * scale
			if e.Y+e.H >= m.groundY {
				e.Y = m.groundY - e.H
				e.VY = 0
				e.State = EnemyIdle
			}
		}
	case EnemyIdle:
		// Attacking is unconditional once the actor is in range, not a
		// probability roll.
		cx, _ := e.Bounds().Center()
		if math.Abs(cx-actorCX) <= m.cfg.Proximity {
			e.State = EnemyAttacking
			e.attackTicks = m.cfg.AttackDuration
		}
	case EnemyAttacking:
		e.attackTicks--
		if e.attackTicks <= 0 {
			e.State = EnemyCooling
			e.cooldownTicks = m.cfg.AttackCooldown
		}
	case EnemyCooling:
		e.cooldownTicks--
		if e.cooldownTicks <= 0 {
			e.State = EnemyIdle
		}
	}
}

// SweepDefeated re-enters defeated enemies far to the right as fresh
// spawns. Runs at the end of the tick so the collision phase never observes
// a half-reset enemy.
func (m *EnemyManager) SweepDefeated() {
	for i := range m.enemies {
		if m.enemies[i].State == EnemyDefeated {
			m.enemies[i] = m.newEnemy(m.spawnX())
		}
	}
}

// Compact physically drops enemies marked during the off-field sweep.
func (m *EnemyManager) Compact() {
	valid := m.enemies[:0]
	for _, e := range m.enemies {
		if !e.removed {
			valid = append(valid, e)
		}
	}
	m.enemies = valid
}

// LiveCount returns the number of enemies in the pool.
func (m *EnemyManager) LiveCount() int {
	return len(m.enemies)
}

// Enemies exposes the live pool for collision and rendering.
func (m *EnemyManager) Enemies() []Enemy {
	return m.enemies
}
