package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"

	"snakegym/internal/config"
	"snakegym/internal/env"
	"snakegym/internal/policy"
)

func main() {
	configPath := flag.String("config", "configs/agent.yaml", "path to config file")
	seed := flag.Uint("seed", 12345, "random seed for the game")
	delay := flag.Int("delay", 100, "delay between frames in milliseconds")
	replayPath := flag.String("replay", "", "play back a saved replay instead of the live agent")
	noDisplay := flag.Bool("no-display", false, "run without display (just print stats)")
	flag.Parse()

	if *replayPath != "" {
		if err := watchReplay(*replayPath, *delay, *noDisplay); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	game, err := env.NewGame(cfg.EnvParams(), uint32(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Config: %s, Seed: %d\n", *configPath, *seed)
	fmt.Println("Press Ctrl+C to exit")
	fmt.Println()

	agent := policy.Greedy{}
	display := NewDisplay(game.Board())
	frameDelay := time.Duration(*delay) * time.Millisecond

	for !game.GameOver() {
		action := agent.Act(game)

		if !*noDisplay {
			display.Render(game, action)
			time.Sleep(frameDelay)
		}

		if _, err := game.Step(action); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if !*noDisplay {
		display.Render(game, -1)
	}
	printFinal(game, uint32(*seed))
}

func watchReplay(path string, delay int, noDisplay bool) error {
	replay, err := env.LoadReplay(path)
	if err != nil {
		return err
	}
	game, err := replay.Playback()
	if err != nil {
		return err
	}

	display := NewDisplay(game.Board())
	frameDelay := time.Duration(delay) * time.Millisecond

	for _, action := range replay.Actions {
		if game.GameOver() {
			break
		}
		if !noDisplay {
			display.Render(game, action)
			time.Sleep(frameDelay)
		}
		if _, err := game.Step(action); err != nil {
			return err
		}
	}

	if !noDisplay {
		display.Render(game, -1)
	}
	printFinal(game, replay.Seed)
	return nil
}

func printFinal(game *env.Game, seed uint32) {
	stats := game.Stats(seed)
	fmt.Println()
	fmt.Println("═══════════════════════════════════")
	fmt.Printf("  Game Over! End: %s\n", stats.Cause)
	fmt.Printf("  Steps: %d, Score: %d\n", stats.Steps, stats.Score)
	fmt.Println("═══════════════════════════════════")
}

// Display handles terminal rendering
type Display struct {
	board env.Board
}

// NewDisplay creates a display sized to the board
func NewDisplay(board env.Board) *Display {
	return &Display{board: board}
}

// Render draws the game state to the terminal
func (d *Display) Render(game *env.Game, action int) {
	clearScreen()

	grid := make([][]rune, d.board.Height)
	for y := 0; y < d.board.Height; y++ {
		grid[y] = make([]rune, d.board.Width)
		for x := 0; x < d.board.Width; x++ {
			grid[y][x] = '·'
		}
	}

	food := game.FoodPos()
	grid[food.Y][food.X] = '@'

	body := game.SnakeBody()
	for i := len(body) - 1; i >= 0; i-- {
		p := body[i]
		if i == 0 {
			grid[p.Y][p.X] = directionHead(game.Heading())
		} else {
			grid[p.Y][p.X] = '█'
		}
	}

	fmt.Print("┌")
	for x := 0; x < d.board.Width; x++ {
		fmt.Print("──")
	}
	fmt.Println("┐")

	for y := 0; y < d.board.Height; y++ {
		fmt.Print("│")
		for x := 0; x < d.board.Width; x++ {
			fmt.Printf(" %c", grid[y][x])
		}
		fmt.Println("│")
	}

	fmt.Print("└")
	for x := 0; x < d.board.Width; x++ {
		fmt.Print("──")
	}
	fmt.Println("┘")

	fmt.Printf("  Step: %3d | Score: %d | Length: %d | Action: %d\n",
		game.Steps(), game.Score(), game.SnakeLength(), action)

	if game.GameOver() {
		fmt.Printf("  💀 OVER: %s\n", game.TerminationCause())
	}
}

func directionHead(dir env.Direction) rune {
	switch dir {
	case env.DirUp:
		return '▲'
	case env.DirRight:
		return '▶'
	case env.DirDown:
		return '▼'
	case env.DirLeft:
		return '◀'
	}
	return 'O'
}

func clearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
}
