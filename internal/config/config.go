// Package config provides YAML-based configuration loading and difficulty
// presets for the runner.
package config

// RunnerConfig contains all tuning for a run. Defaults live in
// defaults/runner.yaml; users override via ~/.tui-runner/config.yaml
// or an explicit --config path.
type RunnerConfig struct {
	Actor     ActorConfig    `yaml:"actor"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Coins     CoinConfig     `yaml:"coins"`
	Enemies   EnemyConfig    `yaml:"enemies"`
	PowerUps  PowerUpConfig  `yaml:"powerups"`
	Ramp      RampConfig     `yaml:"ramp"`
}

// ActorConfig defines the player character: placement, jump physics and
// attack timing. Impulses are negative because y grows downward.
type ActorConfig struct {
	X                   int     `yaml:"x"`
	Width               int     `yaml:"width"`
	Height              int     `yaml:"height"`
	GroundOffset        int     `yaml:"ground_offset"`
	Gravity             float64 `yaml:"gravity"`
	JumpImpulse         float64 `yaml:"jump_impulse"`
	DoubleJumpImpulse   float64 `yaml:"double_jump_impulse"`
	SuperJumpImpulse    float64 `yaml:"super_jump_impulse"`
	MaxFallSpeed        float64 `yaml:"max_fall_speed"`
	AttackDuration      int     `yaml:"attack_duration"`
	AttackCooldown      int     `yaml:"attack_cooldown"`
	AttackInvincibility int     `yaml:"attack_invincibility"`
}

// ObstacleConfig defines obstacle speed and spawn pacing.
// Intervals are in ticks; the interval shrinks by one per spawn down to
// min_interval.
type ObstacleConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`
	StartInterval int     `yaml:"start_interval"`
	MinInterval   int     `yaml:"min_interval"`
}

// CoinConfig defines coin spawn pacing, rarity weights, placement band and
// magnetism. speed_factor is applied on top of the obstacle speed at spawn.
type CoinConfig struct {
	SpeedFactor    float64 `yaml:"speed_factor"`
	StartInterval  int     `yaml:"start_interval"`
	MinInterval    int     `yaml:"min_interval"`
	WeightCommon   int     `yaml:"weight_common"`
	WeightUncommon int     `yaml:"weight_uncommon"`
	WeightRare     int     `yaml:"weight_rare"`
	MinAltitude    int     `yaml:"min_altitude"` // cells above the ground line
	MaxAltitude    int     `yaml:"max_altitude"`
	MagnetRadius   float64 `yaml:"magnet_radius"`
	MagnetForce    float64 `yaml:"magnet_force"`
	PickupMargin   float64 `yaml:"pickup_margin"`
}

// EnemyConfig defines enemy size, movement, attack behaviour and spawn
// placement rules.
type EnemyConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	DriftSpeed        float64 `yaml:"drift_speed"`
	AttackDriftFactor float64 `yaml:"attack_drift_factor"`
	Gravity           float64 `yaml:"gravity"`
	Proximity         float64 `yaml:"proximity"`
	AttackDuration    int     `yaml:"attack_duration"`
	AttackCooldown    int     `yaml:"attack_cooldown"`
	MaxLive           int     `yaml:"max_live"`
	ScoreStep         int     `yaml:"score_step"`
	SpawnOffset       int     `yaml:"spawn_offset"`
	SpawnJitter       int     `yaml:"spawn_jitter"`
	SpawnAltitude     int     `yaml:"spawn_altitude"`
	ObstacleGap       float64 `yaml:"obstacle_gap"`
	RetryDelay        int     `yaml:"retry_delay"`
}

// PowerUpConfig defines score thresholds and effect durations (in ticks).
type PowerUpConfig struct {
	RegularPeriod   int `yaml:"regular_period"`
	SuperPeriod     int `yaml:"super_period"`
	RegularDuration int `yaml:"regular_duration"`
	SuperDuration   int `yaml:"super_duration"`
}

// RampConfig defines the in-run speed ramp: the multiplier steps up by
// speed_increment for every score_step points, applied to newly spawned
// entities only.
type RampConfig struct {
	ScoreStep      int     `yaml:"score_step"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// DefaultRunnerConfig returns the hardcoded fallback configuration,
// mirroring defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Actor: ActorConfig{
			X:                   8,
			Width:               3,
			Height:              3,
			GroundOffset:        2,
			Gravity:             0.09,
			JumpImpulse:         -1.05,
			DoubleJumpImpulse:   -0.85,
			SuperJumpImpulse:    -0.65,
			MaxFallSpeed:        1.6,
			AttackDuration:      24,
			AttackCooldown:      36,
			AttackInvincibility: 12,
		},
		Obstacles: ObstacleConfig{
			BaseSpeed:     0.55,
			StartInterval: 120,
			MinInterval:   60,
		},
		Coins: CoinConfig{
			SpeedFactor:    0.8,
			StartInterval:  80,
			MinInterval:    40,
			WeightCommon:   70,
			WeightUncommon: 22,
			WeightRare:     8,
			MinAltitude:    2,
			MaxAltitude:    8,
			MagnetRadius:   12.0,
			MagnetForce:    0.9,
			PickupMargin:   1.0,
		},
		Enemies: EnemyConfig{
			Width:             3,
			Height:            2,
			DriftSpeed:        0.38,
			AttackDriftFactor: 0.4,
			Gravity:           0.09,
			Proximity:         14.0,
			AttackDuration:    30,
			AttackCooldown:    90,
			MaxLive:           3,
			ScoreStep:         200,
			SpawnOffset:       6,
			SpawnJitter:       20,
			SpawnAltitude:     8,
			ObstacleGap:       12.0,
			RetryDelay:        12,
		},
		PowerUps: PowerUpConfig{
			RegularPeriod:   20,
			SuperPeriod:     100,
			RegularDuration: 240,
			SuperDuration:   360,
		},
		Ramp: RampConfig{
			ScoreStep:      10,
			SpeedIncrement: 0.1,
		},
	}
}

// Validate normalizes values the simulation cannot run with back to their
// defaults. The game never reports config errors mid-run, so bad input is
// repaired here instead of surfaced.
func (c *RunnerConfig) Validate() {
	def := DefaultRunnerConfig()

	if c.Actor.Width <= 0 {
		c.Actor.Width = def.Actor.Width
	}
	if c.Actor.Height <= 0 {
		c.Actor.Height = def.Actor.Height
	}
	if c.Actor.Gravity <= 0 {
		c.Actor.Gravity = def.Actor.Gravity
	}
	if c.Actor.JumpImpulse >= 0 {
		c.Actor.JumpImpulse = def.Actor.JumpImpulse
	}
	if c.Actor.DoubleJumpImpulse >= 0 {
		c.Actor.DoubleJumpImpulse = def.Actor.DoubleJumpImpulse
	}
	if c.Actor.SuperJumpImpulse >= 0 {
		c.Actor.SuperJumpImpulse = def.Actor.SuperJumpImpulse
	}
	if c.Actor.MaxFallSpeed <= 0 {
		c.Actor.MaxFallSpeed = def.Actor.MaxFallSpeed
	}
	if c.Actor.AttackDuration <= 0 {
		c.Actor.AttackDuration = def.Actor.AttackDuration
	}
	if c.Actor.AttackCooldown <= 0 {
		c.Actor.AttackCooldown = def.Actor.AttackCooldown
	}
	// Attack invincibility must be strictly shorter than the attack itself.
	if c.Actor.AttackInvincibility <= 0 || c.Actor.AttackInvincibility >= c.Actor.AttackDuration {
		c.Actor.AttackInvincibility = c.Actor.AttackDuration / 2
	}

	if c.Obstacles.BaseSpeed <= 0 {
		c.Obstacles.BaseSpeed = def.Obstacles.BaseSpeed
	}
	if c.Obstacles.MinInterval <= 0 {
		c.Obstacles.MinInterval = def.Obstacles.MinInterval
	}
	if c.Obstacles.StartInterval < c.Obstacles.MinInterval {
		c.Obstacles.StartInterval = c.Obstacles.MinInterval
	}

	if c.Coins.SpeedFactor <= 0 {
		c.Coins.SpeedFactor = def.Coins.SpeedFactor
	}
	if c.Coins.MinInterval <= 0 {
		c.Coins.MinInterval = def.Coins.MinInterval
	}
	if c.Coins.StartInterval < c.Coins.MinInterval {
		c.Coins.StartInterval = c.Coins.MinInterval
	}
	if c.Coins.WeightCommon < 0 {
		c.Coins.WeightCommon = 0
	}
	if c.Coins.WeightUncommon < 0 {
		c.Coins.WeightUncommon = 0
	}
	if c.Coins.WeightRare < 0 {
		c.Coins.WeightRare = 0
	}
	if c.Coins.WeightCommon+c.Coins.WeightUncommon+c.Coins.WeightRare == 0 {
		c.Coins.WeightCommon = def.Coins.WeightCommon
		c.Coins.WeightUncommon = def.Coins.WeightUncommon
		c.Coins.WeightRare = def.Coins.WeightRare
	}
	if c.Coins.MinAltitude < 0 {
		c.Coins.MinAltitude = def.Coins.MinAltitude
	}
	if c.Coins.MaxAltitude < c.Coins.MinAltitude {
		c.Coins.MaxAltitude = c.Coins.MinAltitude
	}
	if c.Coins.MagnetRadius < 0 {
		c.Coins.MagnetRadius = 0
	}
	if c.Coins.PickupMargin < 0 {
		c.Coins.PickupMargin = 0
	}

	if c.Enemies.Width <= 0 {
		c.Enemies.Width = def.Enemies.Width
	}
	if c.Enemies.Height <= 0 {
		c.Enemies.Height = def.Enemies.Height
	}
	if c.Enemies.DriftSpeed <= 0 {
		c.Enemies.DriftSpeed = def.Enemies.DriftSpeed
	}
	if c.Enemies.AttackDriftFactor < 0 || c.Enemies.AttackDriftFactor > 1 {
		c.Enemies.AttackDriftFactor = def.Enemies.AttackDriftFactor
	}
	if c.Enemies.Gravity <= 0 {
		c.Enemies.Gravity = def.Enemies.Gravity
	}
	if c.Enemies.AttackDuration <= 0 {
		c.Enemies.AttackDuration = def.Enemies.AttackDuration
	}
	if c.Enemies.AttackCooldown <= 0 {
		c.Enemies.AttackCooldown = def.Enemies.AttackCooldown
	}
	if c.Enemies.MaxLive <= 0 {
		c.Enemies.MaxLive = def.Enemies.MaxLive
	}
	if c.Enemies.ScoreStep <= 0 {
		c.Enemies.ScoreStep = def.Enemies.ScoreStep
	}
	if c.Enemies.RetryDelay <= 0 {
		c.Enemies.RetryDelay = def.Enemies.RetryDelay
	}

	if c.PowerUps.RegularPeriod <= 0 {
		c.PowerUps.RegularPeriod = def.PowerUps.RegularPeriod
	}
	if c.PowerUps.SuperPeriod <= 0 {
		c.PowerUps.SuperPeriod = def.PowerUps.SuperPeriod
	}
	if c.PowerUps.RegularDuration <= 0 {
		c.PowerUps.RegularDuration = def.PowerUps.RegularDuration
	}
	if c.PowerUps.SuperDuration <= 0 {
		c.PowerUps.SuperDuration = def.PowerUps.SuperDuration
	}

	if c.Ramp.ScoreStep <= 0 {
		c.Ramp.ScoreStep = def.Ramp.ScoreStep
	}
	if c.Ramp.SpeedIncrement < 0 {
		c.Ramp.SpeedIncrement = def.Ramp.SpeedIncrement
	}
}

// DifficultyPreset represents a named difficulty level. Presets scale base
// values before the run starts; the in-run ramp applies on top regardless.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset returns true for a known difficulty preset name.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
