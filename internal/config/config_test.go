package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"snakegym/internal/env"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env:\n  width: 12\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env.Width != 12 {
		t.Errorf("width = %d, want 12", cfg.Env.Width)
	}
	if cfg.Env.Height != 30 {
		t.Errorf("height = %d, want default 30", cfg.Env.Height)
	}
	if cfg.Env.StartLength != 3 {
		t.Errorf("start length = %d, want default 3", cfg.Env.StartLength)
	}
	if cfg.Rewards.Step != -0.005 {
		t.Errorf("step reward = %v, want default -0.005", cfg.Rewards.Step)
	}
	if cfg.Bench.Episodes != 10 {
		t.Errorf("bench episodes = %d, want default 10", cfg.Bench.Episodes)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"bad player mode", "player:\n  mode: alien\n", "player mode"},
		{"bad speed", "player:\n  speed: ludicrous\n", "speed"},
		{"bad obs", "env:\n  obs: psychic\n", "observation mode"},
		{"bad actions", "env:\n  actions: diagonal\n", "action framing"},
		{"tiny board", "env:\n  width: 2\n  height: 2\n", "too small"},
		{"oversize window", "env:\n  width: 8\n  height: 8\n  obs: local\n  local_radius: 5\n", "local window"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.yaml))
			if err == nil {
				t.Fatal("Load accepted invalid config")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestEnvParamsMapping(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
player:
  mode: human
env:
  width: 16
  height: 16
  obs: local
  local_radius: 3
  actions: absolute
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p := cfg.EnvParams()
	if p.Player != env.PlayerHuman {
		t.Errorf("player = %s, want human", p.Player)
	}
	if p.Obs != env.ObsLocal || p.LocalRadius != 3 {
		t.Errorf("obs = %s radius = %d, want local radius 3", p.Obs, p.LocalRadius)
	}
	if p.Actions != env.ActionsAbsolute {
		t.Errorf("actions = %s, want absolute", p.Actions)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("mapped params invalid: %v", err)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSpeedInterval(t *testing.T) {
	cfg := Default()
	cases := map[string]int{
		"easy": 80, "medium": 60, "hard": 40, "mega_hardcore": 65,
	}
	for speed, want := range cases {
		cfg.Player.Speed = speed
		if got := cfg.SpeedInterval(); got != want {
			t.Errorf("SpeedInterval(%s) = %d, want %d", speed, got, want)
		}
	}
}
