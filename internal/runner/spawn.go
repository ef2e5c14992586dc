package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Scheduler decides entity creation each tick. Obstacles and coins run on
// shrinking countdowns; enemies spawn on explicit triggers with a deferred
// retry when placement is rejected.
type Scheduler struct {
	obstacleInterval  int
	obstacleCountdown int
	coinInterval      int
	coinCountdown     int
	enemyRetry        int

	cfg        *config.RunnerConfig
	difficulty *config.DifficultyManager
	obstacles  *ObstacleManager
	coins      *CoinManager
	enemies    *EnemyManager
}

// NewScheduler wires the scheduler to the pools it feeds.
func NewScheduler(
	cfg *config.RunnerConfig,
	difficulty *config.DifficultyManager,
	obstacles *ObstacleManager,
	coins *CoinManager,
	enemies *EnemyManager,
) *Scheduler {
	return &Scheduler{
		obstacleInterval:  cfg.Obstacles.StartInterval,
		obstacleCountdown: cfg.Obstacles.StartInterval,
		coinInterval:      cfg.Coins.StartInterval,
		coinCountdown:     cfg.Coins.StartInterval,
		cfg:               cfg,
		difficulty:        difficulty,
		obstacles:         obstacles,
		coins:             coins,
		enemies:           enemies,
	}
}

// Update runs the spawn phase. The difficulty multiplier is recomputed from
// the current score every tick and baked into the speed of entities created
// on this tick only; live entities keep the speed they spawned with.
func (s *Scheduler) Update(score int) {
	mult := s.difficulty.Multiplier(score)
	s.updateObstacle(mult)
	s.updateCoin(mult)
	s.updateEnemy(score)
}

// updateObstacle counts down only while the track is clear, keeping the
// pool at a single obstacle. Each spawn shrinks the interval by one tick
// down to the floor; this shrink is the sole obstacle difficulty ramp.
func (s *Scheduler) updateObstacle(mult float64) {
	if s.obstacles.LiveCount() > 0 {
		return
	}
	s.obstacleCountdown--
	if s.obstacleCountdown > 0 {
		return
	}
	s.obstacles.Spawn(s.cfg.Obstacles.BaseSpeed * mult)
	s.obstacleInterval = core.Max(s.cfg.Obstacles.MinInterval, s.obstacleInterval-1)
	s.obstacleCountdown = s.obstacleInterval
}

// updateCoin counts down every tick regardless of what else is live. Coins
// move at a fraction of the multiplied obstacle speed.
func (s *Scheduler) updateCoin(mult float64) {
	s.coinCountdown--
	if s.coinCountdown > 0 {
		return
	}
	s.coins.Spawn(s.cfg.Obstacles.BaseSpeed * mult * s.cfg.Coins.SpeedFactor)
	s.coinInterval = core.Max(s.cfg.Coins.MinInterval, s.coinInterval-1)
	s.coinCountdown = s.coinInterval
}

// updateEnemy handles the explicit triggers: an empty pool (including the
// start of a run), score milestones below the live cap, and a pending retry
// after a rejected placement.
func (s *Scheduler) updateEnemy(score int) {
	if s.enemyRetry > 0 {
		s.enemyRetry--
		if s.enemyRetry == 0 {
			s.trySpawnEnemy()
		}
		return
	}
	live := s.enemies.LiveCount()
	switch {
	case live == 0:
		s.trySpawnEnemy()
	case score > 0 && score%s.cfg.Enemies.ScoreStep == 0 && live < s.cfg.Enemies.MaxLive:
		s.trySpawnEnemy()
	}
}

// trySpawnEnemy arms the retry timer when placement is rejected, so the
// spawn is deferred rather than dropped.
func (s *Scheduler) trySpawnEnemy() {
	if !s.enemies.TrySpawn(s.obstacles.Obstacles()) {
		s.enemyRetry = s.cfg.Enemies.RetryDelay
	}
}
