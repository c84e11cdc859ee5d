package env

import (
	"fmt"
	"math/rand"
)

// Rewards holds the scalar reward signals. The exact magnitudes are
// tunables, not engine constants.
type Rewards struct {
	Food     float64 // eating food
	Step     float64 // plain move, small shaping cost
	Terminal float64 // wall or self collision
	Win      float64 // board filled
}

// DefaultRewards mirrors the classic shaping: small per-move cost, unit
// food reward, unit terminal penalty.
func DefaultRewards() Rewards {
	return Rewards{Food: 1, Step: -0.005, Terminal: -1, Win: 1}
}

// Params is the fixed configuration of a Game, validated at construction
type Params struct {
	Width       int
	Height      int
	StartLength int
	Player      PlayerMode
	Obs         ObsMode
	LocalRadius int // only used when Obs == ObsLocal
	Actions     ActionMode
	Rewards     Rewards
}

// Validate fails fast on configurations the engine cannot honor
func (p Params) Validate() error {
	if p.Width < 4 || p.Height < 4 {
		return fmt.Errorf("env: board %dx%d too small, need at least 4x4", p.Width, p.Height)
	}
	if p.StartLength < 1 {
		return fmt.Errorf("env: start length %d must be positive", p.StartLength)
	}
	if p.StartLength > p.Width/2 {
		return fmt.Errorf("env: start length %d does not fit the starting row of a %d-wide board", p.StartLength, p.Width)
	}
	if p.Obs != ObsGlobal && p.Obs != ObsLocal {
		return fmt.Errorf("env: unknown observation mode %d", p.Obs)
	}
	if p.Obs == ObsLocal {
		if p.LocalRadius < 1 {
			return fmt.Errorf("env: local radius %d must be positive", p.LocalRadius)
		}
		if side := 2*p.LocalRadius + 1; side > p.Width || side > p.Height {
			return fmt.Errorf("env: local window %dx%d exceeds %dx%d board", side, side, p.Width, p.Height)
		}
	}
	if p.Actions != ActionsAbsolute && p.Actions != ActionsRelative {
		return fmt.Errorf("env: unknown action framing %d", p.Actions)
	}
	if p.Player != PlayerHuman && p.Player != PlayerAgent {
		return fmt.Errorf("env: unknown player mode %d", p.Player)
	}
	return nil
}

// Info carries the diagnostic fields of a step
type Info struct {
	Steps int
	Score int
	Cause Cause
}

// StepResult is the (observation, reward, done, info) tuple
type StepResult struct {
	Obs    []float32
	Reward float64
	Done   bool
	Info   Info
}

// Game owns the board, snake and food and drives the reset/step state
// machine. A single instance must be driven by one caller at a time;
// batched rollouts use independent instances.
type Game struct {
	params  Params
	board   Board
	snake   *Snake
	food    Point
	heading Direction
	steps   int
	score   int
	over    bool
	cause   Cause
	enc     *encoder
	rng     *rand.Rand
}

// NewGame validates params, seeds the food RNG and resets the game
func NewGame(params Params, seed uint32) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board := Board{Width: params.Width, Height: params.Height}
	g := &Game{
		params: params,
		board:  board,
		enc:    newEncoder(params.Obs, params.LocalRadius, board),
		rng:    rand.New(rand.NewSource(int64(seed))),
	}
	g.Reset()
	return g, nil
}

// Reset reinitializes the snake at its fixed start, places food, zeroes
// the counters and returns the initial observation.
func (g *Game) Reset() []float32 {
	g.heading = DirRight
	start := Point{X: g.params.Width / 4, Y: g.params.Height / 2}
	g.snake = newSnake(start, g.params.StartLength, g.heading)
	g.steps = 0
	g.score = 0
	g.over = false
	g.cause = CauseNone

	food, err := g.generateFood()
	if err != nil {
		// A validated board always has room next to the initial snake.
		panic(err)
	}
	g.food = food

	return g.State()
}

// Step decodes the action, advances the snake and resolves the outcome.
// Calling Step on a terminal game or with an out-of-range action is a
// usage error, distinct from gameplay termination.
func (g *Game) Step(action int) (StepResult, error) {
	if g.over {
		return StepResult{}, ErrGameOver
	}
	if action < 0 || action >= g.NumActions() {
		return StepResult{}, fmt.Errorf("%w: %d of %d", ErrInvalidAction, action, g.NumActions())
	}

	g.steps++

	dir := DecodeAction(g.params.Actions, action, g.heading)
	if dir == g.heading.Opposite() {
		// An exact reversal can never be honored; keep going straight.
		dir = g.heading
	}
	g.heading = dir

	next := g.snake.Head().Add(dir.Vector())
	reward := g.params.Rewards.Step

	switch {
	case !g.board.Contains(next):
		g.over = true
		g.cause = CauseWall
		reward = g.params.Rewards.Terminal
	case g.hitsBody(next):
		g.over = true
		g.cause = CauseSelf
		reward = g.params.Rewards.Terminal
	case next == g.food:
		g.snake.Move(dir, true)
		g.score++
		reward = g.params.Rewards.Food
		food, err := g.generateFood()
		if err != nil {
			// Snake fills the board: a win, not a failure.
			g.over = true
			g.cause = CauseWin
			reward = g.params.Rewards.Win
		} else {
			g.food = food
		}
	default:
		g.snake.Move(dir, false)
	}

	return StepResult{
		Obs:    g.State(),
		Reward: reward,
		Done:   g.over,
		Info:   Info{Steps: g.steps, Score: g.score, Cause: g.cause},
	}, nil
}

// hitsBody reports whether the candidate head lands on a segment that
// will still be occupied after the move. The tail cell does not count:
// it is vacated this step unless the snake grows, and growth only
// happens on the food cell, which is never on the body.
func (g *Game) hitsBody(next Point) bool {
	body := g.snake.body
	for i := 0; i < len(body)-1; i++ {
		if body[i] == next {
			return true
		}
	}
	return false
}

// generateFood samples a free cell uniformly, or ErrOutOfSpace when the
// snake occupies the whole board.
func (g *Game) generateFood() (Point, error) {
	free := make([]Point, 0, g.board.Area()-g.snake.Length())
	for y := 0; y < g.board.Height; y++ {
		for x := 0; x < g.board.Width; x++ {
			p := Point{X: x, Y: y}
			if !g.snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, ErrOutOfSpace
	}
	return free[g.rng.Intn(len(free))], nil
}

// State returns the current observation
func (g *Game) State() []float32 {
	return g.enc.encode(g)
}

// ObsDims returns the width and height of the observation grid
func (g *Game) ObsDims() (int, int) {
	return g.enc.dims()
}

// DecodeAction translates the action index for this game's framing
func (g *Game) DecodeAction(action int) Direction {
	return DecodeAction(g.params.Actions, action, g.heading)
}

// NumActions returns the size of the discrete action space
func (g *Game) NumActions() int {
	return g.params.Actions.NumActions()
}

// Dangerous reports whether p is a wall cell or a body segment that
// survives the next move. Read-only helper for policies and renderers.
func (g *Game) Dangerous(p Point) bool {
	return !g.board.Contains(p) || g.hitsBody(p)
}

// Board returns the bounds oracle
func (g *Game) Board() Board {
	return g.board
}

// FoodPos returns the current food coordinate
func (g *Game) FoodPos() Point {
	return g.food
}

// Heading returns the current absolute heading
func (g *Game) Heading() Direction {
	return g.heading
}

// Steps returns the number of steps taken since the last reset
func (g *Game) Steps() int {
	return g.steps
}

// Score returns the number of food eaten since the last reset
func (g *Game) Score() int {
	return g.score
}

// Head returns the snake's head position
func (g *Game) Head() Point {
	return g.snake.Head()
}

// SnakeLength returns the current body length
func (g *Game) SnakeLength() int {
	return g.snake.Length()
}

// SnakeBody returns a copy of the body, head first
func (g *Game) SnakeBody() []Point {
	body := make([]Point, len(g.snake.body))
	copy(body, g.snake.body)
	return body
}

// GameOver reports whether the game is terminal
func (g *Game) GameOver() bool {
	return g.over
}

// TerminationCause returns how the game ended, or CauseNone while running
func (g *Game) TerminationCause() Cause {
	return g.cause
}

// Stats summarizes the episode so far
func (g *Game) Stats(seed uint32) EpisodeStats {
	return EpisodeStats{
		Score: g.score,
		Steps: g.steps,
		Cause: g.cause,
		Seed:  seed,
	}
}
