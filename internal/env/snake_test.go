package env

import "testing"

func TestNewSnakeLayout(t *testing.T) {
	s := newSnake(Point{X: 5, Y: 3}, 3, DirRight)

	if s.Length() != 3 {
		t.Fatalf("length = %d, want 3", s.Length())
	}
	if s.Head() != (Point{X: 5, Y: 3}) {
		t.Errorf("head = %v, want (5,3)", s.Head())
	}
	if s.Tail() != (Point{X: 3, Y: 3}) {
		t.Errorf("tail = %v, want (3,3)", s.Tail())
	}
}

func TestSnakeMove(t *testing.T) {
	s := newSnake(Point{X: 5, Y: 3}, 3, DirRight)

	s.Move(DirRight, false)
	if s.Head() != (Point{X: 6, Y: 3}) {
		t.Errorf("head = %v, want (6,3)", s.Head())
	}
	if s.Length() != 3 {
		t.Errorf("length = %d, want 3 after plain move", s.Length())
	}
	if s.Occupies(Point{X: 3, Y: 3}) {
		t.Error("old tail cell still occupied")
	}

	s.Move(DirUp, true)
	if s.Head() != (Point{X: 6, Y: 2}) {
		t.Errorf("head = %v, want (6,2)", s.Head())
	}
	if s.Length() != 4 {
		t.Errorf("length = %d, want 4 after growth", s.Length())
	}
	if !s.Occupies(Point{X: 4, Y: 3}) {
		t.Error("tail cell lost during growth")
	}
}

func TestSnakeOccupies(t *testing.T) {
	s := newSnake(Point{X: 2, Y: 2}, 3, DirDown)

	for _, p := range []Point{{2, 2}, {2, 1}, {2, 0}} {
		if !s.Occupies(p) {
			t.Errorf("Occupies(%v) = false, want true", p)
		}
	}
	if s.Occupies(Point{X: 3, Y: 2}) {
		t.Error("Occupies reported a free cell")
	}
}

func TestBoardContains(t *testing.T) {
	b := Board{Width: 4, Height: 6}

	inside := []Point{{0, 0}, {3, 5}, {2, 3}}
	outside := []Point{{-1, 0}, {4, 0}, {0, 6}, {0, -1}}
	for _, p := range inside {
		if !b.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range outside {
		if b.Contains(p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirRight: DirLeft,
		DirDown:  DirUp,
		DirLeft:  DirRight,
	}
	for dir, want := range pairs {
		if got := dir.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", dir, got, want)
		}
	}
}
