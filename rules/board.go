package rules

import "strings"

// Board is a fixed size grid of tile states stored as a flat slice, index
// x + y*Width.
//
// Get and Set do not check bounds, that is the step engine's job since a move
// off the board has to be detected before the board is indexed.
type Board struct {
	Width  int
	Height int
	cells  []TileState
}

// NewBoard returns an empty board of the given size.
func NewBoard(width, height int) *Board {
	return &Board{
		Width:  width,
		Height: height,
		cells:  make([]TileState, width*height),
	}
}

func (b *Board) index(p Point) int {
	return p.X + p.Y*b.Width
}

// Get returns the state of the cell at p.
func (b *Board) Get(p Point) TileState {
	return b.cells[b.index(p)]
}

// Set replaces the state of the cell at p.
func (b *Board) Set(p Point, state TileState) {
	b.cells[b.index(p)] = state
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Size is the number of cells on the board.
func (b *Board) Size() int {
	return len(b.cells)
}

// Count returns how many cells currently hold state.
func (b *Board) Count(state TileState) int {
	n := 0
	for _, c := range b.cells {
		if c == state {
			n++
		}
	}
	return n
}

// Find returns the first cell holding state, scanning from the origin.
func (b *Board) Find(state TileState) (Point, bool) {
	for i, c := range b.cells {
		if c == state {
			return b.point(i), true
		}
	}
	return Point{}, false
}

func (b *Board) point(i int) Point {
	return Point{X: i % b.Width, Y: i / b.Width}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{
		Width:  b.Width,
		Height: b.Height,
		cells:  make([]TileState, len(b.cells)),
	}
	copy(out.cells, b.cells)
	return out
}

// String draws the board with the top row first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.Width + 1) * b.Height)
	for y := b.Height - 1; y >= 0; y-- {
		for x := 0; x < b.Width; x++ {
			sb.WriteByte(b.Get(Point{X: x, Y: y}).glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
