package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"snakegym/internal/env"
)

// Logger writes per-episode records as CSV rows and JSON lines
type Logger struct {
	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewLogger creates a logger for the given artifact paths
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
	}

	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// Init opens the log files and writes the CSV header
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{"episode", "seed", "score", "steps", "reward", "cause"}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *Logger) Close() {
	if l.csvWriter != nil {
		l.csvWriter.Flush()
	}
	if l.csvFile != nil {
		l.csvFile.Close()
	}
	if l.jsonFile != nil {
		l.jsonFile.Close()
	}
}

// episodeRecord is the JSONL shape of a logged episode
type episodeRecord struct {
	Episode int     `json:"episode"`
	Seed    uint32  `json:"seed"`
	Score   int     `json:"score"`
	Steps   int     `json:"steps"`
	Reward  float64 `json:"reward"`
	Cause   string  `json:"cause"`
}

// LogEpisode logs one finished episode
func (l *Logger) LogEpisode(episode int, stats env.EpisodeStats) {
	if !l.initialized {
		return
	}

	row := []string{
		strconv.Itoa(episode),
		strconv.FormatUint(uint64(stats.Seed), 10),
		strconv.Itoa(stats.Score),
		strconv.Itoa(stats.Steps),
		fmt.Sprintf("%.3f", stats.Reward),
		stats.Cause.String(),
	}
	l.csvWriter.Write(row)
	l.csvWriter.Flush()

	rec := episodeRecord{
		Episode: episode,
		Seed:    stats.Seed,
		Score:   stats.Score,
		Steps:   stats.Steps,
		Reward:  stats.Reward,
		Cause:   stats.Cause.String(),
	}
	jsonLine, _ := json.Marshal(rec)
	l.jsonFile.WriteString(string(jsonLine) + "\n")

	fmt.Printf("Episode %2d | Seed %5d | Score: %3d | Steps: %4d | Reward: %7.3f | End: %s\n",
		episode, stats.Seed, stats.Score, stats.Steps, stats.Reward, stats.Cause)
}

// LogAggregate prints the run summary
func (l *Logger) LogAggregate(agg env.AggregatedStats) {
	fmt.Printf("Benchmark: %d episodes | Score %.2f ± %.2f | Steps %.1f ± %.1f | Ends: wall=%d self=%d win=%d\n",
		agg.NumEpisodes, agg.ScoreMean, agg.ScoreStd, agg.StepsMean, agg.StepsStd,
		agg.CauseCounts[env.CauseWall], agg.CauseCounts[env.CauseSelf], agg.CauseCounts[env.CauseWin])
}
