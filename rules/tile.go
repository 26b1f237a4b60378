package rules

// TileState classifies a single board cell.
type TileState uint8

const (
	// Empty is the zero value so a freshly allocated board is empty.
	Empty TileState = iota
	Food
	SnakeBody
	SnakeHead
)

// IsSnake reports whether the tile is occupied by the snake.
func (t TileState) IsSnake() bool {
	return t == SnakeBody || t == SnakeHead
}

func (t TileState) String() string {
	switch t {
	case Empty:
		return "empty"
	case Food:
		return "food"
	case SnakeBody:
		return "snake-body"
	case SnakeHead:
		return "snake-head"
	}
	return "unknown"
}

// glyph is the character used by Board.String.
func (t TileState) glyph() byte {
	switch t {
	case Food:
		return '*'
	case SnakeBody:
		return 's'
	case SnakeHead:
		return 'S'
	}
	return '.'
}
