// Package config provides YAML-based configuration loading for GridStrike.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridstrike/internal/games/gridstrike/core"
)

// Config is the complete GridStrike configuration.
type Config struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Log      LogConfig      `yaml:"log"`
}

// GameplayConfig tunes the rules and the host loop.
type GameplayConfig struct {
	MoveDurationMS   int    `yaml:"move_duration_ms"`
	RefillEveryTicks int    `yaml:"refill_every_ticks"`
	AttackRule       string `yaml:"attack_rule"`
	Easing           string `yaml:"easing"`
}

// LogConfig controls where and how much is logged.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// MoveDuration returns the move animation length.
func (g GameplayConfig) MoveDuration() time.Duration {
	return time.Duration(g.MoveDurationMS) * time.Millisecond
}

// Rule returns the configured attack rule.
func (g GameplayConfig) Rule() (core.AttackRule, error) {
	return core.RuleByName(g.AttackRule)
}

// EasingCurve returns the configured move easing.
func (g GameplayConfig) EasingCurve() (core.Easing, error) {
	e, ok := core.ParseEasing(g.Easing)
	if !ok {
		return e, fmt.Errorf("unknown easing %q", g.Easing)
	}
	return e, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Gameplay.MoveDurationMS <= 0 {
		return fmt.Errorf("gameplay.move_duration_ms must be positive, got %d", c.Gameplay.MoveDurationMS)
	}
	if c.Gameplay.RefillEveryTicks <= 0 {
		return fmt.Errorf("gameplay.refill_every_ticks must be positive, got %d", c.Gameplay.RefillEveryTicks)
	}
	if _, err := c.Gameplay.Rule(); err != nil {
		return fmt.Errorf("gameplay.attack_rule: %w", err)
	}
	if _, err := c.Gameplay.EasingCurve(); err != nil {
		return fmt.Errorf("gameplay.easing: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
