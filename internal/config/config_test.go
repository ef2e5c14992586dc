package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMultiplierLaw(t *testing.T) {
	m := NewDifficultyManager(RampConfig{ScoreStep: 10, SpeedIncrement: 0.1})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 1.0},
		{9, 1.0},
		{10, 1.1},
		{19, 1.1},
		{20, 1.2},
		{95, 1.9},
		{100, 2.0},
		{-5, 1.0}, // negative scores clamp to zero steps
	}

	for _, tc := range tests {
		got := m.Multiplier(tc.score)
		want := 1.0 + float64(tc.score/10)*0.1
		if tc.score < 0 {
			want = 1.0
		}
		if got != tc.expected || got != want {
			t.Errorf("Multiplier(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestMultiplierZeroStepFallsBack(t *testing.T) {
	m := NewDifficultyManager(RampConfig{ScoreStep: 0, SpeedIncrement: 0.1})
	// A zero step would divide by zero; the manager falls back to 10.
	if got := m.Multiplier(10); got != 1.1 {
		t.Errorf("Multiplier(10) with fallback step = %v, expected 1.1", got)
	}
}

func TestValidateRepairsBadValues(t *testing.T) {
	cfg := RunnerConfig{}
	cfg.Actor.AttackDuration = 20
	cfg.Actor.AttackInvincibility = 25 // longer than the attack, must be repaired
	cfg.Obstacles.StartInterval = 10
	cfg.Obstacles.MinInterval = 60
	cfg.Validate()

	if cfg.Actor.AttackInvincibility >= cfg.Actor.AttackDuration {
		t.Errorf("invincibility %d should be shorter than attack %d",
			cfg.Actor.AttackInvincibility, cfg.Actor.AttackDuration)
	}
	if cfg.Obstacles.StartInterval < cfg.Obstacles.MinInterval {
		t.Errorf("start interval %d should not be below floor %d",
			cfg.Obstacles.StartInterval, cfg.Obstacles.MinInterval)
	}
	if cfg.Actor.Gravity <= 0 {
		t.Error("gravity should be repaired to a positive value")
	}
	if cfg.Coins.WeightCommon+cfg.Coins.WeightUncommon+cfg.Coins.WeightRare == 0 {
		t.Error("coin weights should be repaired to a non-zero sum")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	easy := DefaultRunnerConfig()
	ApplyRunnerPreset(&easy, DifficultyEasy)
	hard := DefaultRunnerConfig()
	ApplyRunnerPreset(&hard, DifficultyHard)

	if easy.Obstacles.BaseSpeed >= hard.Obstacles.BaseSpeed {
		t.Errorf("easy base speed %v should be below hard %v",
			easy.Obstacles.BaseSpeed, hard.Obstacles.BaseSpeed)
	}
	// Preset must not break the interval floors.
	if easy.Obstacles.StartInterval < easy.Obstacles.MinInterval {
		t.Error("easy preset broke the obstacle interval floor")
	}
	if hard.Coins.StartInterval < hard.Coins.MinInterval {
		t.Error("hard preset broke the coin interval floor")
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("obstacles:\n  base_speed: 0.33\n  start_interval: 200\n  min_interval: 60\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner(%s) error: %v", path, err)
	}
	if cfg.Obstacles.BaseSpeed != 0.33 {
		t.Errorf("BaseSpeed = %v, expected 0.33", cfg.Obstacles.BaseSpeed)
	}
	if cfg.Obstacles.StartInterval != 200 {
		t.Errorf("StartInterval = %d, expected 200", cfg.Obstacles.StartInterval)
	}
	// Unset sections are normalized, not left at zero.
	if cfg.Actor.Gravity <= 0 {
		t.Error("unset actor gravity should be normalized to a positive default")
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("explicit config path that does not exist should return an error")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Point home at an empty dir so a developer's own config cannot shadow
	// the embedded defaults.
	t.Setenv("HOME", t.TempDir())

	// The embedded YAML and DefaultRunnerConfig must agree on the values the
	// rules depend on.
	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	def := DefaultRunnerConfig()
	if cfg.Obstacles.MinInterval != def.Obstacles.MinInterval {
		t.Errorf("obstacle min interval: yaml %d vs hardcoded %d",
			cfg.Obstacles.MinInterval, def.Obstacles.MinInterval)
	}
	if cfg.Coins.MinInterval != def.Coins.MinInterval {
		t.Errorf("coin min interval: yaml %d vs hardcoded %d",
			cfg.Coins.MinInterval, def.Coins.MinInterval)
	}
	if cfg.Enemies.ScoreStep != def.Enemies.ScoreStep {
		t.Errorf("enemy score step: yaml %d vs hardcoded %d",
			cfg.Enemies.ScoreStep, def.Enemies.ScoreStep)
	}
	if cfg.PowerUps.SuperPeriod != def.PowerUps.SuperPeriod {
		t.Errorf("super period: yaml %d vs hardcoded %d",
			cfg.PowerUps.SuperPeriod, def.PowerUps.SuperPeriod)
	}
}
