package rules

// Frame is a snapshot of a session taken after a tick. Frames are never
// modified once built so they can be handed to other goroutines.
type Frame struct {
	ID     string     `json:"id"`
	Turn   int        `json:"turn"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Head   Point      `json:"head"`
	Body   []Point    `json:"body"`
	Food   *Point     `json:"food,omitempty"`
	Length int        `json:"length"`
	Facing Direction  `json:"facing"`
	Status GameStatus `json:"status"`
	Cause  string     `json:"cause,omitempty"`
}

// Frame snapshots the current state of the session.
func (s *Session) Frame() *Frame {
	f := &Frame{
		ID:     s.id,
		Turn:   s.turn,
		Width:  s.board.Width,
		Height: s.board.Height,
		Head:   s.snake.Position,
		Body:   s.snake.Body(),
		Length: s.snake.Length,
		Facing: s.snake.Facing,
		Status: s.status,
		Cause:  s.cause,
	}
	if p, ok := s.board.Find(Food); ok {
		f.Food = &p
	}
	return f
}

// Done reports whether this is the last frame of its session.
func (f *Frame) Done() bool {
	return f.Status == GameStatusComplete
}

// Board rebuilds the tile grid described by the frame.
func (f *Frame) Board() *Board {
	b := NewBoard(f.Width, f.Height)
	if f.Food != nil {
		b.Set(*f.Food, Food)
	}
	for _, p := range f.Body {
		b.Set(p, SnakeBody)
	}
	b.Set(f.Head, SnakeHead)
	return b
}
