package env

// Snake is the ordered body of the player, head at index 0. It knows how
// to move and grow; collision detection lives in Game, which has the board
// and food context.
type Snake struct {
	body []Point
}

// newSnake creates a snake of the given length with its head at start,
// body extending opposite to the heading.
func newSnake(start Point, length int, heading Direction) *Snake {
	back := heading.Opposite().Vector()
	body := make([]Point, length)
	for i := range body {
		body[i] = Point{X: start.X + back.X*i, Y: start.Y + back.Y*i}
	}
	return &Snake{body: body}
}

// Move pushes a new head one cell in dir and pops the tail unless grow is
// set. The caller is responsible for having validated dir against the
// current heading.
func (s *Snake) Move(dir Direction, grow bool) {
	newHead := s.body[0].Add(dir.Vector())
	if grow {
		s.body = append([]Point{newHead}, s.body...)
	} else {
		copy(s.body[1:], s.body[:len(s.body)-1])
		s.body[0] = newHead
	}
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Head returns the front segment
func (s *Snake) Head() Point {
	return s.body[0]
}

// Tail returns the last segment
func (s *Snake) Tail() Point {
	return s.body[len(s.body)-1]
}

// Length returns the number of segments
func (s *Snake) Length() int {
	return len(s.body)
}
