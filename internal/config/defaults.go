package config

import (
	_ "embed"
)

//go:embed defaults/gridstrike.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Gameplay: GameplayConfig{
			MoveDurationMS:   250,
			RefillEveryTicks: 30,
			AttackRule:       "single",
			Easing:           "ease_in_out",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
