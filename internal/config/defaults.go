package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultYAML returns the embedded default configuration file. Useful for
// writing a starter config into the user directory.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
