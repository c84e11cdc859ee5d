package env

// Cell tags used in observation grids
const (
	CellEmpty float32 = 0
	CellFood  float32 = 1
	CellBody  float32 = 2
	CellHead  float32 = 3
	CellWall  float32 = 4
)

// encoder projects raw snake/food/board positions into the observation
// grid. It is a pure function of the game state plus its configuration;
// the buffer is reused across calls and must not be retained by callers.
type encoder struct {
	mode   ObsMode
	radius int
	board  Board
	buffer []float32
}

func newEncoder(mode ObsMode, radius int, board Board) *encoder {
	e := &encoder{mode: mode, radius: radius, board: board}
	w, h := e.dims()
	e.buffer = make([]float32, w*h)
	return e
}

// dims returns the observation grid dimensions. Global mode matches the
// board; local mode is always (2r+1) squared, wherever the head sits.
func (e *encoder) dims() (int, int) {
	if e.mode == ObsLocal {
		side := 2*e.radius + 1
		return side, side
	}
	return e.board.Width, e.board.Height
}

func (e *encoder) encode(g *Game) []float32 {
	for i := range e.buffer {
		e.buffer[i] = CellEmpty
	}
	// A terminal game has no meaningful positions; keep the grid empty.
	if g.over {
		return e.buffer
	}
	if e.mode == ObsLocal {
		e.encodeLocal(g)
	} else {
		e.encodeGlobal(g)
	}
	return e.buffer
}

// encodeGlobal tags the full board, row-major
func (e *encoder) encodeGlobal(g *Game) {
	for _, seg := range g.snake.body {
		e.buffer[seg.Y*e.board.Width+seg.X] = CellBody
	}
	head := g.snake.Head()
	e.buffer[head.Y*e.board.Width+head.X] = CellHead
	e.buffer[g.food.Y*e.board.Width+g.food.X] = CellFood
}

// encodeLocal tags a fixed window centered on the head. Cells outside
// the board read as wall, which keeps the encoding translation-invariant.
func (e *encoder) encodeLocal(g *Game) {
	side := 2*e.radius + 1
	head := g.snake.Head()
	for wy := 0; wy < side; wy++ {
		for wx := 0; wx < side; wx++ {
			p := Point{X: head.X + wx - e.radius, Y: head.Y + wy - e.radius}
			tag := CellEmpty
			switch {
			case !e.board.Contains(p):
				tag = CellWall
			case p == head:
				tag = CellHead
			case p == g.food:
				tag = CellFood
			case g.snake.Occupies(p):
				tag = CellBody
			}
			e.buffer[wy*side+wx] = tag
		}
	}
}

// DecodeAction maps a numerical action to an absolute direction. In
// absolute framing the index is the compass direction itself; in relative
// framing the index rotates the current heading.
func DecodeAction(mode ActionMode, action int, heading Direction) Direction {
	if mode == ActionsAbsolute {
		return Direction(action)
	}
	switch action {
	case ActionLeft:
		return Direction((heading + 3) % 4)
	case ActionRight:
		return Direction((heading + 1) % 4)
	default:
		return heading
	}
}
