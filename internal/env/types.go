package env

import "errors"

// Direction represents the snake's heading
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Vector returns the unit step for the direction
func (d Direction) Vector() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirRight:
		return Point{X: 1, Y: 0}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	}
	return Point{}
}

// Opposite returns the 180-degree reversal of the direction
func (d Direction) Opposite() Direction {
	return Direction((d + 2) % 4)
}

// Relative actions, defined against the current heading
const (
	ActionStraight = iota
	ActionLeft
	ActionRight
)

// Point represents a coordinate on the grid
type Point struct {
	X, Y int
}

// Add returns the point translated by p
func (a Point) Add(p Point) Point {
	return Point{X: a.X + p.X, Y: a.Y + p.Y}
}

// Board is the bounds oracle for the playing field. It holds no mutable
// state of its own.
type Board struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the board
func (b Board) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Area returns the number of cells on the board
func (b Board) Area() int {
	return b.Width * b.Height
}

// ObsMode selects the spatial observation encoding
type ObsMode int

const (
	ObsGlobal ObsMode = iota // full board grid
	ObsLocal                 // fixed-radius window around the head
)

func (m ObsMode) String() string {
	switch m {
	case ObsGlobal:
		return "global"
	case ObsLocal:
		return "local"
	default:
		return "unknown"
	}
}

// ActionMode selects the action space framing
type ActionMode int

const (
	ActionsAbsolute ActionMode = iota // 4 compass directions
	ActionsRelative                   // straight / left / right
)

func (m ActionMode) String() string {
	switch m {
	case ActionsAbsolute:
		return "absolute"
	case ActionsRelative:
		return "relative"
	default:
		return "unknown"
	}
}

// NumActions returns the size of the discrete action space
func (m ActionMode) NumActions() int {
	if m == ActionsRelative {
		return 3
	}
	return 4
}

// PlayerMode distinguishes a human-driven game from an agent-driven one
type PlayerMode int

const (
	PlayerHuman PlayerMode = iota
	PlayerAgent
)

func (m PlayerMode) String() string {
	switch m {
	case PlayerHuman:
		return "human"
	case PlayerAgent:
		return "agent"
	default:
		return "unknown"
	}
}

var (
	// ErrOutOfSpace is reported by food placement when no free cell is
	// left. The controller treats it as the board-full win condition.
	ErrOutOfSpace = errors.New("env: no free cell left for food")

	// ErrGameOver is returned by Step when the game is already terminal.
	ErrGameOver = errors.New("env: step called on terminal game")

	// ErrInvalidAction is returned by Step for an out-of-range action index.
	ErrInvalidAction = errors.New("env: action index out of range")
)
