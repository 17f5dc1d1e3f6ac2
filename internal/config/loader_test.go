package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, builtin = %+v", cfg, Default())
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yamlData := "gameplay:\n  attack_rule: same_color\n  move_duration_ms: 400\n"
	if err := os.WriteFile(path, []byte(yamlData), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Gameplay.AttackRule != "same_color" {
		t.Errorf("attack_rule = %q", cfg.Gameplay.AttackRule)
	}
	if cfg.Gameplay.MoveDuration() != 400*time.Millisecond {
		t.Errorf("MoveDuration() = %v", cfg.Gameplay.MoveDuration())
	}
	// Keys missing from the file keep their defaults
	if cfg.Gameplay.RefillEveryTicks != Default().Gameplay.RefillEveryTicks {
		t.Errorf("refill_every_ticks = %d, expected default", cfg.Gameplay.RefillEveryTicks)
	}
	if rule, _ := cfg.Gameplay.Rule(); rule.Name() != "same_color" {
		t.Errorf("Rule() = %q", rule.Name())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "gameplay: [", "failed to parse"},
		{"unknown rule", "gameplay:\n  attack_rule: flood\n", "attack_rule"},
		{"unknown easing", "gameplay:\n  easing: bounce\n", "easing"},
		{"zero duration", "gameplay:\n  move_duration_ms: 0\n", "move_duration_ms"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, expected to mention %q", err, tt.wantErr)
			}
		})
	}

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}
}

func TestLoadPrefersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, ".gridstrike")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if src != SourceUser || cfg.Log.Level != "debug" {
		t.Errorf("Load() = %+v from %q, expected debug level from user config", cfg.Log, src)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "attack_rule: single") {
		t.Errorf("Marshal() output missing attack_rule:\n%s", data)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
