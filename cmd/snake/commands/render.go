package commands

import (
	"fmt"
	"sync"

	"github.com/battlesnakeio/gridsnake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorWhite

	// each tile is drawn two cells wide so it looks square
	tileWidth = 2
	left      = 2
	top       = 2
)

// tileCell maps a tile state to what is drawn for it.
func tileCell(state rules.TileState) termbox.Cell {
	switch state {
	case rules.Food:
		return termbox.Cell{Ch: ' ', Fg: defaultColor, Bg: termbox.ColorRed}
	case rules.SnakeBody:
		return termbox.Cell{Ch: ' ', Fg: defaultColor, Bg: termbox.ColorGreen}
	case rules.SnakeHead:
		return termbox.Cell{Ch: '█', Fg: termbox.ColorGreen | termbox.AttrBold, Bg: termbox.ColorGreen}
	}
	return termbox.Cell{Ch: ' ', Fg: defaultColor, Bg: termbox.ColorBlack}
}

// screen draws the latest frame. Frames are immutable so redraws can happen
// from the event loop independently of the ticks.
type screen struct {
	sync.Mutex
	last   *rules.Frame
	footer string
}

func (s *screen) show(f *rules.Frame) error {
	s.Lock()
	defer s.Unlock()
	s.last = f
	return s.draw()
}

func (s *screen) redraw() error {
	s.Lock()
	defer s.Unlock()
	return s.draw()
}

func (s *screen) setFooter(msg string) error {
	s.Lock()
	defer s.Unlock()
	s.footer = msg
	return s.draw()
}

// draw must be called with the lock held.
func (s *screen) draw() error {
	if s.last == nil {
		return nil
	}
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	f := s.last
	b := f.Board()
	width := f.Width*tileWidth + 2
	height := f.Height + 2

	renderTitle(f)
	fill(left-1, top, width, height, termbox.Cell{Ch: ' ', Fg: defaultColor, Bg: bgColor})
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			cell := tileCell(b.Get(rules.Point{X: x, Y: y}))
			// y grows upward on the board and downward on the terminal
			fill(left+x*tileWidth, top+f.Height-y, tileWidth, 1, cell)
		}
	}
	if s.footer != "" {
		tbprint(left, top+height+1, defaultColor, defaultColor, s.footer)
	}
	return termbox.Flush()
}

func renderTitle(f *rules.Frame) {
	text := fmt.Sprintf("Snake - Turn %d - Length %d", f.Turn, f.Length)
	if f.Cause != "" {
		text = fmt.Sprintf("%s - %s", text, f.Cause)
	}
	tbprint(left, top-1, defaultColor, defaultColor, text)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
