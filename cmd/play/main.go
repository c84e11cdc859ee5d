package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nsf/termbox-go"

	"snakegym/internal/config"
	"snakegym/internal/env"
)

var keyActions = map[termbox.Key]int{
	termbox.KeyArrowUp:    int(env.DirUp),
	termbox.KeyArrowRight: int(env.DirRight),
	termbox.KeyArrowDown:  int(env.DirDown),
	termbox.KeyArrowLeft:  int(env.DirLeft),
}

func main() {
	configPath := flag.String("config", "configs/human.yaml", "path to config file")
	seed := flag.Uint("seed", 0, "random seed, 0 picks the current time")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	// Arrow keys are compass directions; relative framing makes no sense here.
	cfg.Player.Mode = "human"
	cfg.Env.Actions = "absolute"

	gameSeed := uint32(*seed)
	if gameSeed == 0 {
		gameSeed = uint32(time.Now().UnixNano())
	}

	if err := run(cfg, gameSeed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, seed uint32) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	events := make(chan termbox.Event)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	for {
		game, err := env.NewGame(cfg.EnvParams(), seed)
		if err != nil {
			return err
		}

		again, err := playMatch(cfg, game, events)
		if err != nil || !again {
			return err
		}
		seed++
	}
}

// playMatch runs one game to its end. Returns true when the player asked
// for another round.
func playMatch(cfg *config.Config, game *env.Game, events chan termbox.Event) (bool, error) {
	megaHardcore := cfg.Player.Speed == "mega_hardcore"
	interval := func() time.Duration {
		ms := cfg.SpeedInterval()
		if megaHardcore {
			// Hardest mode speeds up as the snake grows.
			ms -= 2 * (game.SnakeLength() - 3)
			if ms < 20 {
				ms = 20
			}
		}
		return time.Duration(ms) * time.Millisecond
	}

	// Buffer the latest pressed key between ticks; only the last key
	// before a tick counts.
	pending := int(game.Heading())

	ticker := time.NewTicker(interval())
	defer ticker.Stop()

	draw(game, cfg)
	for !game.GameOver() {
		select {
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			if quitKey(ev) {
				return false, nil
			}
			if action, ok := keyActions[ev.Key]; ok {
				// Reversals are dropped here so a buffered valid key
				// is not overwritten by a no-op.
				if env.Direction(action) != game.Heading().Opposite() {
					pending = action
				}
			}
		case <-ticker.C:
			if _, err := game.Step(pending); err != nil {
				return false, err
			}
			if megaHardcore {
				ticker.Reset(interval())
			}
			draw(game, cfg)
		}
	}

	// Game over screen: wait for replay or quit.
	drawText(1, game.Board().Height+3, fmt.Sprintf("GAME OVER (%s) - press R to play again, Q to quit", game.TerminationCause()))
	termbox.Flush()
	for {
		ev := <-events
		if ev.Type != termbox.EventKey {
			continue
		}
		if quitKey(ev) {
			return false, nil
		}
		if ev.Ch == 'r' || ev.Ch == 'R' {
			return true, nil
		}
	}
}

func quitKey(ev termbox.Event) bool {
	return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' || ev.Ch == 'Q'
}

// draw renders the full frame: border, food, snake, status line
func draw(game *env.Game, cfg *config.Config) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	board := game.Board()
	for x := -1; x <= board.Width; x++ {
		setCell(x, -1, '▒', termbox.ColorWhite)
		setCell(x, board.Height, '▒', termbox.ColorWhite)
	}
	for y := 0; y < board.Height; y++ {
		setCell(-1, y, '▒', termbox.ColorWhite)
		setCell(board.Width, y, '▒', termbox.ColorWhite)
	}

	food := game.FoodPos()
	setCell(food.X, food.Y, '◎', termbox.ColorRed)

	for i, p := range game.SnakeBody() {
		ch := '█'
		color := termbox.ColorGreen
		if i == 0 {
			color = termbox.ColorYellow
		}
		setCell(p.X, p.Y, ch, color)
	}

	drawText(1, board.Height+2, fmt.Sprintf("Score: %d  Steps: %d  Speed: %s", game.Score(), game.Steps(), cfg.Player.Speed))
	termbox.Flush()
}

// setCell draws one board cell two terminal columns wide, offset past
// the border row and column.
func setCell(x, y int, ch rune, color termbox.Attribute) {
	termbox.SetCell((x+1)*2, y+1, ch, color, termbox.ColorDefault)
	termbox.SetCell((x+1)*2+1, y+1, ch, color, termbox.ColorDefault)
}

func drawText(x, y int, text string) {
	for i, ch := range text {
		termbox.SetCell(x+i, y, ch, termbox.ColorDefault, termbox.ColorDefault)
	}
}
