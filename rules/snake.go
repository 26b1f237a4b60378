package rules

// Snake is the authoritative record of what the snake occupies. The board
// only mirrors it.
type Snake struct {
	Position   Point
	Facing     Direction
	PrevFacing Direction
	// Length is the target number of body segments, the head excluded.
	Length int

	tail *tail
}

func newSnake(start Point, length, capacity int) *Snake {
	return &Snake{
		Position:   start,
		Facing:     Up,
		PrevFacing: Up,
		Length:     length,
		tail:       newTail(capacity),
	}
}

// SetFacing changes the facing for the next move. Reversing onto the
// direction used by the last move, or an invalid direction, is ignored and
// false is returned.
func (s *Snake) SetFacing(d Direction) bool {
	if !d.Valid() || d == s.PrevFacing.Opposite() {
		return false
	}
	s.Facing = d
	return true
}

// Next is the cell the head moves into on the next tick.
func (s *Snake) Next() Point {
	return s.Position.Add(s.Facing.Delta())
}

// Tail returns the tracked history, oldest first.
func (s *Snake) Tail() []Point {
	return s.tail.points()
}

// Body returns the body segments, neck first.
func (s *Snake) Body() []Point {
	n := s.tail.len()
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = s.tail.at(n - 1 - i)
	}
	return out
}

// advance commits a move into next and redraws the snake on the board. The
// old marks are cleared before the tail is trimmed and the survivors are
// marked afterwards, so a dropped segment never stays on the board.
func (s *Snake) advance(b *Board, next Point, grow bool) {
	s.PrevFacing = s.Facing
	b.Set(next, SnakeHead)
	s.tail.push(s.Position)
	s.Position = next
	if grow {
		s.Length++
	}

	for i := 0; i < s.tail.len(); i++ {
		b.Set(s.tail.at(i), Empty)
	}
	s.tail.trim(s.Length)
	for i := 0; i < s.tail.len(); i++ {
		b.Set(s.tail.at(i), SnakeBody)
	}
}
