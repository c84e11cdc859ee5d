package env

import "gonum.org/v1/gonum/stat"

// Cause indicates how an episode ended
type Cause int

const (
	CauseNone Cause = iota
	CauseWall       // hit a wall
	CauseSelf       // hit own body
	CauseWin        // snake filled the board
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseWin:
		return "win"
	default:
		return "unknown"
	}
}

// EpisodeStats captures the raw metrics of a single episode
type EpisodeStats struct {
	Score  int     `json:"score"`
	Steps  int     `json:"steps"`
	Reward float64 `json:"reward"` // cumulative reward over the episode
	Cause  Cause   `json:"cause"`
	Seed   uint32  `json:"seed"`
}

// AggregatedStats holds statistics across multiple episodes
type AggregatedStats struct {
	ScoreMean   float64
	ScoreStd    float64
	StepsMean   float64
	StepsStd    float64
	RewardMean  float64
	CauseCounts map[Cause]int
	NumEpisodes int
}

// Aggregate computes statistics across episodes
func Aggregate(episodes []EpisodeStats) AggregatedStats {
	agg := AggregatedStats{CauseCounts: make(map[Cause]int)}
	n := len(episodes)
	if n == 0 {
		return agg
	}
	agg.NumEpisodes = n

	scores := make([]float64, n)
	steps := make([]float64, n)
	rewards := make([]float64, n)
	for i, ep := range episodes {
		scores[i] = float64(ep.Score)
		steps[i] = float64(ep.Steps)
		rewards[i] = ep.Reward
		agg.CauseCounts[ep.Cause]++
	}

	agg.ScoreMean = stat.Mean(scores, nil)
	agg.StepsMean = stat.Mean(steps, nil)
	agg.RewardMean = stat.Mean(rewards, nil)
	if n > 1 {
		agg.ScoreStd = stat.StdDev(scores, nil)
		agg.StepsStd = stat.StdDev(steps, nil)
	}
	return agg
}
