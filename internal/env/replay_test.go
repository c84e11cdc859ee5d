package env

import (
	"path/filepath"
	"testing"
)

func TestReplayRoundTrip(t *testing.T) {
	params := testParams(10, 10, ActionsRelative)
	g := mustGame(t, params, 77)

	replay := NewReplay(77, ReplayConfigFor(params))
	actions := []int{ActionStraight, ActionLeft, ActionStraight, ActionRight, ActionStraight}
	for _, a := range actions {
		replay.Record(a)
		if _, err := g.Step(a); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	replay.SetFinalStats(g.Stats(77))

	path := filepath.Join(t.TempDir(), "replay.json")
	if err := replay.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadReplay(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Seed != 77 || len(loaded.Actions) != len(actions) {
		t.Fatalf("loaded seed=%d actions=%d, want 77, %d", loaded.Seed, len(loaded.Actions), len(actions))
	}

	playback, err := loaded.Playback()
	if err != nil {
		t.Fatalf("playback game: %v", err)
	}
	if err := loaded.PlaybackSteps(playback, len(loaded.Actions)); err != nil {
		t.Fatalf("playback steps: %v", err)
	}

	if playback.Head() != g.Head() {
		t.Errorf("playback head = %v, want %v", playback.Head(), g.Head())
	}
	if playback.FoodPos() != g.FoodPos() {
		t.Errorf("playback food = %v, want %v", playback.FoodPos(), g.FoodPos())
	}
	if playback.Stats(77) != loaded.FinalStats {
		t.Errorf("playback stats = %+v, want %+v", playback.Stats(77), loaded.FinalStats)
	}
}
