// Package bench runs scoring episodes against the environment and
// aggregates the results for the leaderboard.
package bench

import (
	"fmt"
	"runtime"
	"sync"

	"snakegym/internal/config"
	"snakegym/internal/env"
	"snakegym/internal/policy"
)

// Runner evaluates a policy over a suite of seeded episodes
type Runner struct {
	cfg     *config.Config
	workers int
}

// NewRunner creates a benchmark runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg, workers: runtime.NumCPU()}
}

// Result holds the per-episode stats and their aggregate
type Result struct {
	Episodes []env.EpisodeStats
	Agg      env.AggregatedStats
}

// RunEpisode plays a single seeded episode to completion or truncation.
// Truncation stops a stalling agent without marking the game terminal;
// the engine itself only ends on collision or a full board.
func (r *Runner) RunEpisode(p policy.Policy, seed uint32) (env.EpisodeStats, error) {
	game, err := env.NewGame(r.cfg.EnvParams(), seed)
	if err != nil {
		return env.EpisodeStats{}, err
	}

	var reward float64
	for !game.GameOver() && game.Steps() < r.maxSteps(game) {
		res, err := game.Step(p.Act(game))
		if err != nil {
			return env.EpisodeStats{}, fmt.Errorf("bench: episode seed %d: %w", seed, err)
		}
		reward += res.Reward
	}

	stats := game.Stats(seed)
	stats.Reward = reward
	return stats, nil
}

// Run plays the configured number of episodes with consecutive seeds
// starting at baseSeed. Episodes run in parallel on independent game
// instances.
func (r *Runner) Run(p policy.Policy, episodes int, baseSeed uint32) (Result, error) {
	stats := make([]env.EpisodeStats, episodes)
	errs := make([]error, episodes)

	var wg sync.WaitGroup
	sem := make(chan struct{}, r.workers)
	for i := 0; i < episodes; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			stats[i], errs[i] = r.RunEpisode(p, baseSeed+uint32(i))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Result{}, err
		}
	}
	return Result{Episodes: stats, Agg: env.Aggregate(stats)}, nil
}

// RunWithReplay plays one episode and records its action trace
func (r *Runner) RunWithReplay(p policy.Policy, seed uint32) (*env.Replay, env.EpisodeStats, error) {
	params := r.cfg.EnvParams()
	game, err := env.NewGame(params, seed)
	if err != nil {
		return nil, env.EpisodeStats{}, err
	}

	replay := env.NewReplay(seed, env.ReplayConfigFor(params))
	var reward float64
	for !game.GameOver() && game.Steps() < r.maxSteps(game) {
		action := p.Act(game)
		replay.Record(action)
		res, err := game.Step(action)
		if err != nil {
			return nil, env.EpisodeStats{}, err
		}
		reward += res.Reward
	}

	stats := game.Stats(seed)
	stats.Reward = reward
	replay.SetFinalStats(stats)
	return replay, stats, nil
}

// maxSteps scales the truncation budget with snake length, so a longer
// snake earns more time to reach the next food.
func (r *Runner) maxSteps(game *env.Game) int {
	if r.cfg.Bench.MaxSteps > 0 {
		return r.cfg.Bench.MaxSteps
	}
	return 50 * game.SnakeLength()
}
