// Package runner implements the Shadow Runner simulation: a deterministic,
// tick-stepped side-scroller core with no rendering or I/O dependencies.
// The platform drives it through Reset/Step and reads results back through
// State and Snapshot.
package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Platform-set options applied on the next Reset.
var (
	configPath       string
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets a custom config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects the preset applied on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	if config.ValidPreset(preset) {
		difficultyPreset = preset
	}
}

// StepTimed treats frame times beyond this as a stall (e.g. a suspended
// terminal) and collapses them to zero motion.
const maxTickElapsed = 250 * time.Millisecond

// RunStats accumulates per-run counters for persistence and display; they
// have no effect on the rules.
type RunStats struct {
	CoinsCollected     int
	EnemiesDefeated    int
	ObstaclesDestroyed int
}

// Game is the top-level simulation context. It owns the actor, the three
// entity pools, the spawn scheduler and the threshold tracker, and advances
// them in a fixed order each tick: spawn, entity updates, actor, collisions,
// thresholds, end-of-tick sweep.
type Game struct {
	actor     *Actor
	obstacles *ObstacleManager
	coins     *CoinManager
	enemies   *EnemyManager
	scheduler *Scheduler
	tracker   *ThresholdTracker

	score    int
	best     int
	gameOver bool
	paused   bool

	tickCount  uint64
	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	groundY    float64
	seed       int64
	stats      RunStats
	preset     config.DifficultyPreset
}

// New creates an unstarted game; call Reset before stepping.
func New() *Game {
	return &Game{}
}

// SetDifficulty pins a preset to this instance, overriding the package-level
// preset on the next Reset. SSH sessions run games concurrently and must not
// share the package-level setting.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	if config.ValidPreset(preset) {
		g.preset = preset
	}
}

// ID returns the stable game identifier used for persistence and files.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Shadow Runner"
}

// Reset starts a fresh run: all entities are discarded, every timer and
// threshold returns to its initial value, and the actor is recreated. The
// reset is atomic with respect to the tick boundary; no tick can observe a
// partially reset state. Best score survives resets.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = cfg

	rc, err := config.LoadRunner(configPath)
	if err != nil {
		rc = config.DefaultRunnerConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyRunnerPreset(&rc, preset)
	g.cfg = rc

	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(g.seed))

	g.groundY = float64(cfg.ScreenH - rc.Actor.GroundOffset)
	fieldW := float64(cfg.ScreenW)

	g.actor = NewActor(rc.Actor, g.groundY)
	g.obstacles = NewObstacleManager(fieldW, g.groundY, g.rng)
	g.coins = NewCoinManager(rc.Coins, fieldW, g.groundY, g.rng)
	g.enemies = NewEnemyManager(rc.Enemies, fieldW, g.groundY, g.rng)
	g.difficulty = config.NewDifficultyManager(rc.Ramp)
	g.scheduler = NewScheduler(&g.cfg, g.difficulty, g.obstacles, g.coins, g.enemies)
	g.tracker = NewThresholdTracker(rc.PowerUps)

	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.stats = RunStats{}

	// A run begins with exactly one enemy already inbound. Placement cannot
	// be rejected here: no obstacle is live yet.
	g.enemies.TrySpawn(nil)
}

// Step advances one nominal tick. Equivalent to StepTimed with exactly one
// tick of elapsed time; used by tests and anywhere determinism matters.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.step(1.0, in)
}

// StepTimed advances one tick with kinematics scaled by real elapsed time.
// Non-positive or out-of-range elapsed values collapse to zero motion:
// timers and spawn countdowns still advance, positions do not.
func (g *Game) StepTimed(elapsed time.Duration, in core.InputFrame) core.StepResult {
	scale := 0.0
	if elapsed > 0 && elapsed <= maxTickElapsed {
		scale = elapsed.Seconds() * float64(g.runtime.TickRate)
	}
	return g.step(scale, in)
}

func (g *Game) step(scale float64, in core.InputFrame) core.StepResult {
	if g.gameOver {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tickCount++

	// Spawn phase.
	g.scheduler.Update(g.score)

	// Update phase: entity kinematics with the off-field sweep, then the
	// actor.
	g.obstacles.Update(scale)
	g.coins.Update(g.actor, scale)
	actorCX, _ := g.actor.Bounds().Center()
	g.enemies.Update(actorCX, scale)
	g.actor.Update(in.Has(core.ActionJump), in.Has(core.ActionAttack), scale)

	// Collision phase. A lethal overlap freezes the run as it stands.
	g.resolveCollisions()
	if g.gameOver {
		return g.result()
	}

	// Threshold phase: crossings convert into an immediate activation.
	g.tracker.Evaluate(g.score, g.actor.HasPowerUp())
	if kind := g.tracker.Take(); kind != PowerNone {
		g.activatePowerUp(kind)
	}

	// End-of-tick sweep: entities consumed by collision leave the pools,
	// defeated enemies re-enter on the right.
	g.obstacles.Compact()
	g.coins.Compact()
	g.enemies.SweepDefeated()

	if g.score > g.best {
		g.best = g.score
	}

	return g.result()
}

// activatePowerUp applies a threshold-granted power-up to the actor.
func (g *Game) activatePowerUp(kind PowerUpKind) {
	duration := g.cfg.PowerUps.RegularDuration
	if kind == PowerSuper {
		duration = g.cfg.PowerUps.SuperDuration
	}
	g.actor.ApplyPowerUp(kind, duration)
}

// addScore increases the running total. The ledger is monotonic; negative
// deltas are ignored.
func (g *Game) addScore(points int) {
	if points > 0 {
		g.score += points
	}
}

// State returns the platform-visible run state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

// SetBestScore seeds the session best, e.g. from persisted history. It
// never lowers the current value.
func (g *Game) SetBestScore(best int) {
	if best > g.best {
		g.best = best
	}
}

// Stats returns the per-run counters.
func (g *Game) Stats() RunStats {
	return g.stats
}

// Seed returns the seed the current run was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Ticks returns the number of simulated ticks in the current run.
func (g *Game) Ticks() uint64 {
	return g.tickCount
}
