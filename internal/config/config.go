package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"snakegym/internal/env"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64         `yaml:"seed"`
	Player  PlayerConfig  `yaml:"player"`
	Env     EnvConfig     `yaml:"env"`
	Rewards RewardConfig  `yaml:"rewards"`
	Bench   BenchConfig   `yaml:"bench"`
	Logging LoggingConfig `yaml:"logging"`
}

// PlayerConfig selects who drives the game and, for humans, how fast
type PlayerConfig struct {
	Mode  string `yaml:"mode"`  // human|agent
	Speed string `yaml:"speed"` // easy|medium|hard|mega_hardcore
}

// EnvConfig defines the environment shape
type EnvConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	StartLength int    `yaml:"start_length"`
	Obs         string `yaml:"obs"` // global|local
	LocalRadius int    `yaml:"local_radius"`
	Actions     string `yaml:"actions"` // absolute|relative
}

// RewardConfig defines the reward signals. All magnitudes are tunables.
type RewardConfig struct {
	Food     float64 `yaml:"food"`
	Step     float64 `yaml:"step"`
	Terminal float64 `yaml:"terminal"`
	Win      float64 `yaml:"win"`
}

// BenchConfig defines the benchmark harness parameters
type BenchConfig struct {
	Episodes int    `yaml:"episodes"`
	MaxSteps int    `yaml:"max_steps"` // per-episode truncation, 0 = 50 * snake length
	BaseSeed int    `yaml:"base_seed"`
	DBPath   string `yaml:"db_path"`
}

// LoggingConfig defines episode log artifacts
type LoggingConfig struct {
	CSVPath   string `yaml:"csv_path"`
	JSONLPath string `yaml:"jsonl_path"`
}

// Load reads a YAML config file, applies defaults and validates
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Player.Mode == "" {
		cfg.Player.Mode = "agent"
	}
	if cfg.Player.Speed == "" {
		cfg.Player.Speed = "easy"
	}
	if cfg.Env.Width == 0 {
		cfg.Env.Width = 30
	}
	if cfg.Env.Height == 0 {
		cfg.Env.Height = 30
	}
	if cfg.Env.StartLength == 0 {
		cfg.Env.StartLength = 3
	}
	if cfg.Env.Obs == "" {
		cfg.Env.Obs = "global"
	}
	if cfg.Env.Obs == "local" && cfg.Env.LocalRadius == 0 {
		cfg.Env.LocalRadius = 2
	}
	if cfg.Env.Actions == "" {
		cfg.Env.Actions = "relative"
	}
	if cfg.Rewards.Food == 0 {
		cfg.Rewards.Food = 1
	}
	if cfg.Rewards.Step == 0 {
		cfg.Rewards.Step = -0.005
	}
	if cfg.Rewards.Terminal == 0 {
		cfg.Rewards.Terminal = -1
	}
	if cfg.Rewards.Win == 0 {
		cfg.Rewards.Win = 1
	}
	if cfg.Bench.Episodes == 0 {
		cfg.Bench.Episodes = 10
	}
	if cfg.Bench.BaseSeed == 0 {
		cfg.Bench.BaseSeed = 2000
	}
	if cfg.Bench.DBPath == "" {
		cfg.Bench.DBPath = "runs/leaderboard.db"
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/episodes.csv"
	}
	if cfg.Logging.JSONLPath == "" {
		cfg.Logging.JSONLPath = "runs/episodes.jsonl"
	}
}

// Validate checks the closed option sets and delegates board and radius
// checks to the engine params.
func (c *Config) Validate() error {
	switch c.Player.Mode {
	case "human", "agent":
	default:
		return fmt.Errorf("config: unknown player mode %q", c.Player.Mode)
	}
	switch c.Player.Speed {
	case "easy", "medium", "hard", "mega_hardcore":
	default:
		return fmt.Errorf("config: unknown speed %q", c.Player.Speed)
	}
	switch c.Env.Obs {
	case "global", "local":
	default:
		return fmt.Errorf("config: unknown observation mode %q", c.Env.Obs)
	}
	switch c.Env.Actions {
	case "absolute", "relative":
	default:
		return fmt.Errorf("config: unknown action framing %q", c.Env.Actions)
	}
	if c.Bench.Episodes < 1 {
		return fmt.Errorf("config: bench episodes %d must be positive", c.Bench.Episodes)
	}
	return c.EnvParams().Validate()
}

// EnvParams maps the configuration onto engine parameters
func (c *Config) EnvParams() env.Params {
	p := env.Params{
		Width:       c.Env.Width,
		Height:      c.Env.Height,
		StartLength: c.Env.StartLength,
		LocalRadius: c.Env.LocalRadius,
		Rewards: env.Rewards{
			Food:     c.Rewards.Food,
			Step:     c.Rewards.Step,
			Terminal: c.Rewards.Terminal,
			Win:      c.Rewards.Win,
		},
	}
	if c.Player.Mode == "human" {
		p.Player = env.PlayerHuman
	} else {
		p.Player = env.PlayerAgent
	}
	if c.Env.Obs == "local" {
		p.Obs = env.ObsLocal
	}
	if c.Env.Actions == "absolute" {
		p.Actions = env.ActionsAbsolute
	} else {
		p.Actions = env.ActionsRelative
	}
	return p
}

// SpeedInterval returns the human move interval in milliseconds for the
// configured speed level. Mega hardcore starts near medium speed and the
// play loop shortens the interval as the snake grows.
func (c *Config) SpeedInterval() int {
	switch c.Player.Speed {
	case "medium":
		return 60
	case "hard":
		return 40
	case "mega_hardcore":
		return 65
	default:
		return 80
	}
}
