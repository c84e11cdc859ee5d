package main

import (
	"flag"
	"fmt"
	"os"

	"snakegym/internal/bench"
	"snakegym/internal/config"
	"snakegym/internal/leaderboard"
	"snakegym/internal/logging"
	"snakegym/internal/policy"
)

func main() {
	configPath := flag.String("config", "configs/agent.yaml", "path to config file")
	name := flag.String("name", "greedy", "name to store on the leaderboard")
	episodes := flag.Int("episodes", 0, "episode count, overrides config when > 0")
	seed := flag.Uint("seed", 0, "base seed, overrides config when > 0")
	replayPath := flag.String("replay", "", "save a replay of the first episode to this path")
	top := flag.Int("top", 10, "leaderboard entries to print")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *episodes > 0 {
		cfg.Bench.Episodes = *episodes
	}
	if *seed > 0 {
		cfg.Bench.BaseSeed = int(*seed)
	}

	fmt.Printf("Snake Benchmark - Board: %dx%d, Obs: %s, Actions: %s\n",
		cfg.Env.Width, cfg.Env.Height, cfg.Env.Obs, cfg.Env.Actions)
	fmt.Printf("Config: %s, Episodes: %d, Base seed: %d\n", *configPath, cfg.Bench.Episodes, cfg.Bench.BaseSeed)
	fmt.Println("---")

	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONLPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	runner := bench.NewRunner(cfg)
	agent := policy.Greedy{}

	result, err := runner.Run(agent, cfg.Bench.Episodes, uint32(cfg.Bench.BaseSeed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	for i, ep := range result.Episodes {
		logger.LogEpisode(i+1, ep)
	}
	fmt.Println("---")
	logger.LogAggregate(result.Agg)

	if *replayPath != "" {
		replay, _, err := runner.RunWithReplay(agent, uint32(cfg.Bench.BaseSeed))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: replay run failed: %v\n", err)
		} else if err := replay.Save(*replayPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save replay: %v\n", err)
		} else {
			fmt.Printf("Replay saved to %s\n", *replayPath)
		}
	}

	store, err := leaderboard.Open(cfg.Bench.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec := &leaderboard.Record{
		Name:      *name,
		Episodes:  result.Agg.NumEpisodes,
		MeanScore: result.Agg.ScoreMean,
		StdScore:  result.Agg.ScoreStd,
		MeanSteps: result.Agg.StepsMean,
	}
	if err := store.Save(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving record: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved run %s\n", rec.ID)

	records, err := store.Top(*top)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading leaderboard: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Leaderboard:")
	fmt.Printf("  %-4s %-16s %9s %9s %8s\n", "#", "name", "score", "steps", "episodes")
	for i, r := range records {
		fmt.Printf("  %-4d %-16s %9.2f %9.1f %8d\n", i+1, r.Name, r.MeanScore, r.MeanSteps, r.Episodes)
	}
}
