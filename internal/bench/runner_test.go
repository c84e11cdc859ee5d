package bench

import (
	"testing"

	"snakegym/internal/config"
	"snakegym/internal/env"
	"snakegym/internal/policy"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Env.Width = 10
	cfg.Env.Height = 10
	return cfg
}

func TestRunCollectsAllEpisodes(t *testing.T) {
	runner := NewRunner(testConfig())

	result, err := runner.Run(policy.Greedy{}, 5, 100)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Episodes) != 5 {
		t.Fatalf("episodes = %d, want 5", len(result.Episodes))
	}
	if result.Agg.NumEpisodes != 5 {
		t.Errorf("aggregate episodes = %d, want 5", result.Agg.NumEpisodes)
	}

	for i, ep := range result.Episodes {
		if ep.Seed != 100+uint32(i) {
			t.Errorf("episode %d seed = %d, want %d", i, ep.Seed, 100+i)
		}
		if ep.Steps == 0 {
			t.Errorf("episode %d took no steps", i)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	runner := NewRunner(testConfig())

	a, err := runner.Run(policy.Greedy{}, 3, 500)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := runner.Run(policy.Greedy{}, 3, 500)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for i := range a.Episodes {
		if a.Episodes[i] != b.Episodes[i] {
			t.Errorf("episode %d differs: %+v vs %+v", i, a.Episodes[i], b.Episodes[i])
		}
	}
}

func TestRunEpisodeTruncates(t *testing.T) {
	cfg := testConfig()
	cfg.Bench.MaxSteps = 5
	runner := NewRunner(cfg)

	stats, err := runner.RunEpisode(policy.Greedy{}, 100)
	if err != nil {
		t.Fatalf("RunEpisode: %v", err)
	}
	if stats.Steps > 5 {
		t.Errorf("steps = %d, want at most 5", stats.Steps)
	}
}

func TestRunWithReplayMatchesLiveRun(t *testing.T) {
	runner := NewRunner(testConfig())

	replay, stats, err := runner.RunWithReplay(policy.Greedy{}, 321)
	if err != nil {
		t.Fatalf("RunWithReplay: %v", err)
	}
	if len(replay.Actions) != stats.Steps {
		t.Fatalf("recorded %d actions for %d steps", len(replay.Actions), stats.Steps)
	}

	game, err := replay.Playback()
	if err != nil {
		t.Fatalf("playback: %v", err)
	}
	if err := replay.PlaybackSteps(game, len(replay.Actions)); err != nil {
		t.Fatalf("playback steps: %v", err)
	}
	if game.Score() != stats.Score || game.Steps() != stats.Steps {
		t.Errorf("playback score=%d steps=%d, want score=%d steps=%d",
			game.Score(), game.Steps(), stats.Score, stats.Steps)
	}
	if got := game.TerminationCause(); got != stats.Cause {
		t.Errorf("playback cause = %s, want %s", got, stats.Cause)
	}
}

func TestRunEpisodeCumulativeReward(t *testing.T) {
	cfg := testConfig()
	runner := NewRunner(cfg)

	stats, err := runner.RunEpisode(policy.Greedy{}, 42)
	if err != nil {
		t.Fatalf("RunEpisode: %v", err)
	}

	// Reconstruct the expected cumulative reward from the counters.
	expected := float64(stats.Score) * cfg.Rewards.Food
	plainMoves := stats.Steps - stats.Score
	switch stats.Cause {
	case env.CauseWall, env.CauseSelf:
		plainMoves--
		expected += cfg.Rewards.Terminal
	case env.CauseWin:
		// The winning step scored food but paid the win bonus instead.
		expected += cfg.Rewards.Win - cfg.Rewards.Food
	}
	expected += float64(plainMoves) * cfg.Rewards.Step

	if diff := stats.Reward - expected; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("reward = %v, want %v", stats.Reward, expected)
	}
}
