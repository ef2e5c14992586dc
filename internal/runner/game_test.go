package runner

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(testRuntime(seed))
	return g
}

// driveTicks runs n fixed ticks with a jump every jumpEvery ticks and an
// attack every attackEvery ticks (0 disables either).
func driveTicks(g *Game, n, jumpEvery, attackEvery int) {
	for i := 0; i < n; i++ {
		frame := core.NewInputFrame()
		if jumpEvery > 0 && i%jumpEvery == 0 {
			frame.Set(core.ActionJump)
		}
		if attackEvery > 0 && i%attackEvery == 0 {
			frame.Set(core.ActionAttack)
		}
		g.Step(frame)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() []Snapshot {
		g := newTestGame(12345)
		var snaps []Snapshot
		for i := 0; i < 600; i++ {
			frame := core.NewInputFrame()
			if i%15 == 0 {
				frame.Set(core.ActionJump)
			}
			if i%47 == 0 {
				frame.Set(core.ActionAttack)
			}
			g.Step(frame)
			if i%50 == 0 {
				snaps = append(snaps, g.Snapshot())
			}
		}
		return snaps
	}

	first := run()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("snapshot counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !reflect.DeepEqual(first[i], second[i]) {
			t.Errorf("Determinism failed: snapshot %d differs\nfirst:  %+v\nsecond: %+v",
				i, first[i], second[i])
		}
	}
}

func TestGameStartsWithOneEnemy(t *testing.T) {
	g := newTestGame(1)

	if got := g.enemies.LiveCount(); got != 1 {
		t.Errorf("a fresh run should have exactly one enemy, got %d", got)
	}
	if got := g.obstacles.LiveCount(); got != 0 {
		t.Errorf("a fresh run should have no obstacles, got %d", got)
	}
	if got := len(g.coins.Coins()); got != 0 {
		t.Errorf("a fresh run should have no coins, got %d", got)
	}

	snap := g.Snapshot()
	if len(snap.Enemies) != 1 {
		t.Errorf("snapshot should show the pre-spawned enemy, got %d", len(snap.Enemies))
	}
	if snap.Enemies[0].State != EnemyGrounding {
		t.Errorf("pre-spawned enemy should be grounding, got %v", snap.Enemies[0].State)
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(777)
	driveTicks(g, 200, 20, 0)

	if g.tickCount != 200 {
		t.Fatalf("expected 200 ticks before reset, got %d", g.tickCount)
	}

	g.Reset(testRuntime(777))

	if g.score != 0 {
		t.Errorf("score should reset to 0, got %d", g.score)
	}
	if g.gameOver {
		t.Error("gameOver should reset to false")
	}
	if g.paused {
		t.Error("paused should reset to false")
	}
	if g.tickCount != 0 {
		t.Errorf("tickCount should reset to 0, got %d", g.tickCount)
	}
	if got := g.obstacles.LiveCount(); got != 0 {
		t.Errorf("obstacles should be discarded on reset, got %d", got)
	}
	if got := g.enemies.LiveCount(); got != 1 {
		t.Errorf("reset should leave exactly the pre-spawned enemy, got %d", got)
	}
	if !g.actor.Grounded || g.actor.Invincible() {
		t.Error("actor should be recreated grounded without invincibility")
	}
	if g.stats != (RunStats{}) {
		t.Errorf("run stats should reset, got %+v", g.stats)
	}
}

func TestGameResetIsDeterministicRestart(t *testing.T) {
	// Restarting with the same seed must reproduce the same run.
	g := newTestGame(99)
	driveTicks(g, 300, 13, 60)
	first := g.Snapshot()

	g.Reset(testRuntime(99))
	driveTicks(g, 300, 13, 60)
	second := g.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("restart with same seed diverged\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(5)
	driveTicks(g, 10, 0, 0)
	ticksBefore := g.tickCount

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.paused {
		t.Fatal("pause intent should pause the game")
	}

	// Paused ticks freeze the simulation entirely.
	driveTicks(g, 20, 5, 0)
	if g.tickCount != ticksBefore {
		t.Errorf("paused game advanced from %d to %d ticks", ticksBefore, g.tickCount)
	}

	g.Step(pause)
	if g.paused {
		t.Error("second pause intent should resume")
	}
	g.Step(core.NewInputFrame())
	if g.tickCount != ticksBefore+1 {
		t.Errorf("resumed game should advance, got %d ticks", g.tickCount)
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	g := newTestGame(3)
	// Park an obstacle on top of the actor; the actor is not invincible.
	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{
		X: g.actor.X, Y: g.actor.Y, W: 2, H: 2, Speed: 0,
	})

	g.Step(core.NewInputFrame())
	if !g.gameOver {
		t.Fatal("overlapping an obstacle without invincibility should end the run")
	}

	ticks := g.tickCount
	score := g.score
	driveTicks(g, 30, 5, 5)
	if g.tickCount != ticks || g.score != score {
		t.Error("a finished run should ignore further steps until reset")
	}
}

func TestStepTimedZeroAndNegativeElapsed(t *testing.T) {
	g := newTestGame(8)
	// Put a moving obstacle on screen and let the enemy keep falling.
	g.obstacles.Spawn(0.5)
	obstacleX := g.obstacles.Obstacles()[0].X
	enemyY := g.enemies.Enemies()[0].Y
	countdownBefore := g.scheduler.coinCountdown

	for _, elapsed := range []time.Duration{0, -5 * time.Millisecond, time.Second} {
		g.StepTimed(elapsed, core.NewInputFrame())
	}

	if got := g.obstacles.Obstacles()[0].X; got != obstacleX {
		t.Errorf("zero-motion ticks must not move obstacles: %v -> %v", obstacleX, got)
	}
	if got := g.enemies.Enemies()[0].Y; got != enemyY {
		t.Errorf("zero-motion ticks must not move enemies: %v -> %v", enemyY, got)
	}
	// Countdowns still advance on zero-motion ticks.
	if got := g.scheduler.coinCountdown; got != countdownBefore-3 {
		t.Errorf("coin countdown should advance by 3, got %d -> %d", countdownBefore, got)
	}
	if g.tickCount != 3 {
		t.Errorf("zero-motion ticks still count, got %d", g.tickCount)
	}
}

func TestStepTimedScalesKinematics(t *testing.T) {
	a := newTestGame(21)
	b := newTestGame(21)

	// One 1/30s tick at 60fps covers the same ground as two nominal ticks.
	a.StepTimed(time.Second/30, core.NewInputFrame())
	b.Step(core.NewInputFrame())
	b.Step(core.NewInputFrame())

	ea := a.enemies.Enemies()[0]
	eb := b.enemies.Enemies()[0]
	if diff := ea.X - eb.X; diff > 0.01 || diff < -0.01 {
		t.Errorf("scaled tick X %v should be close to two nominal ticks %v", ea.X, eb.X)
	}
}

func TestBestScoreAcrossResets(t *testing.T) {
	g := newTestGame(4)
	g.addScore(37)
	g.Step(core.NewInputFrame())

	if g.State().Best != 37 {
		t.Fatalf("best should track score, got %d", g.State().Best)
	}

	g.Reset(testRuntime(4))
	if g.State().Best != 37 {
		t.Errorf("best should survive reset, got %d", g.State().Best)
	}
	if g.State().Score != 0 {
		t.Errorf("score should reset, got %d", g.State().Score)
	}

	g.SetBestScore(10)
	if g.State().Best != 37 {
		t.Errorf("SetBestScore must never lower best, got %d", g.State().Best)
	}
	g.SetBestScore(120)
	if g.State().Best != 120 {
		t.Errorf("SetBestScore should raise best, got %d", g.State().Best)
	}
}

func TestCoinPickupTriggersThresholdPowerUp(t *testing.T) {
	g := newTestGame(6)
	g.score = 19
	// Park a common coin inside the actor; clear everything else.
	g.enemies.enemies = g.enemies.enemies[:0]
	g.coins.coins = append(g.coins.coins, Coin{
		X: g.actor.X + 1, Y: g.actor.Y + 1, Speed: 0, Class: CoinCommon,
	})

	g.Step(core.NewInputFrame())

	if g.score != 20 {
		t.Fatalf("coin pickup should raise score to 20, got %d", g.score)
	}
	if g.actor.Power() != PowerRegular {
		t.Errorf("crossing 20 should activate a regular power-up, got %v", g.actor.Power())
	}
	if len(g.coins.Coins()) != 0 {
		t.Error("collected coin should be swept at the end of the tick")
	}
	if g.stats.CoinsCollected != 1 {
		t.Errorf("stats should count the coin, got %+v", g.stats)
	}
}

func TestRunStatsAccumulate(t *testing.T) {
	g := newTestGame(7)
	g.enemies.enemies = g.enemies.enemies[:0]
	g.actor.attackInvTicks = 10

	g.obstacles.obstacles = append(g.obstacles.obstacles, Obstacle{
		X: g.actor.X, Y: g.actor.Y, W: 2, H: 2,
	})
	g.resolveCollisions()

	if g.stats.ObstaclesDestroyed != 1 {
		t.Errorf("obstacle destruction should be counted, got %+v", g.stats)
	}
	if g.score != awardObstacleAttack {
		t.Errorf("score should be %d, got %d", awardObstacleAttack, g.score)
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "runner" {
		t.Errorf("ID should be 'runner', got %s", g.ID())
	}
	if g.Title() != "Shadow Runner" {
		t.Errorf("Title should be 'Shadow Runner', got %s", g.Title())
	}
}

func TestInstanceDifficultyOverridesPackagePreset(t *testing.T) {
	SetDifficultyPreset(config.DifficultyEasy)
	defer SetDifficultyPreset(config.DifficultyNormal)

	pinned := New()
	pinned.SetDifficulty(config.DifficultyHard)
	pinned.Reset(testRuntime(1))
	if got := pinned.cfg.Obstacles.BaseSpeed; got != 0.70 {
		t.Errorf("pinned hard preset should win over the package preset, got base speed %v", got)
	}

	plain := newTestGame(1)
	if got := plain.cfg.Obstacles.BaseSpeed; got != 0.45 {
		t.Errorf("unpinned game should follow the package preset, got base speed %v", got)
	}
}
