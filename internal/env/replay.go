package env

import (
	"encoding/json"
	"os"
)

// Replay stores a deterministic action trace for playback
type Replay struct {
	Seed       uint32       `json:"seed"`
	Actions    []int        `json:"actions"`
	FinalStats EpisodeStats `json:"final_stats"`
	Config     ReplayConfig `json:"config"`
}

// ReplayConfig stores the environment shape needed to recreate the game
type ReplayConfig struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	StartLength int    `json:"start_length"`
	Obs         string `json:"obs"`
	LocalRadius int    `json:"local_radius,omitempty"`
	Actions     string `json:"actions"`
}

// NewReplay creates a new replay recorder
func NewReplay(seed uint32, config ReplayConfig) *Replay {
	return &Replay{
		Seed:    seed,
		Actions: make([]int, 0, 256),
		Config:  config,
	}
}

// ReplayConfigFor captures the replay-relevant fields of params
func ReplayConfigFor(p Params) ReplayConfig {
	return ReplayConfig{
		Width:       p.Width,
		Height:      p.Height,
		StartLength: p.StartLength,
		Obs:         p.Obs.String(),
		LocalRadius: p.LocalRadius,
		Actions:     p.Actions.String(),
	}
}

// Record adds an action to the replay
func (r *Replay) Record(action int) {
	r.Actions = append(r.Actions, action)
}

// SetFinalStats sets the final episode statistics
func (r *Replay) SetFinalStats(stats EpisodeStats) {
	r.FinalStats = stats
}

// Save writes the replay to a file
func (r *Replay) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadReplay loads a replay from a file
func LoadReplay(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Replay
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Playback recreates the game the replay was recorded against
func (r *Replay) Playback() (*Game, error) {
	params := Params{
		Width:       r.Config.Width,
		Height:      r.Config.Height,
		StartLength: r.Config.StartLength,
		Player:      PlayerAgent,
		Actions:     ActionsRelative,
		Rewards:     DefaultRewards(),
	}
	if r.Config.Actions == ActionsAbsolute.String() {
		params.Actions = ActionsAbsolute
	}
	if r.Config.Obs == ObsLocal.String() {
		params.Obs = ObsLocal
		params.LocalRadius = r.Config.LocalRadius
	}
	return NewGame(params, r.Seed)
}

// PlaybackSteps replays the recorded actions on g, up to n of them
func (r *Replay) PlaybackSteps(g *Game, n int) error {
	if n > len(r.Actions) {
		n = len(r.Actions)
	}
	for i := 0; i < n && !g.GameOver(); i++ {
		if _, err := g.Step(r.Actions[i]); err != nil {
			return err
		}
	}
	return nil
}
