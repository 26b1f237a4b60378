package worker

import (
	"github.com/battlesnakeio/gridsnake/rules"
	"github.com/pkg/errors"
)

// Move is one scripted tick. A zero Facing keeps the current facing.
type Move struct {
	Facing rules.Direction
}

// ParseScript reads one move per character: U, D, L or R turn the snake
// (case is ignored) and '.' keeps going. Whitespace is skipped.
func ParseScript(script string) ([]Move, error) {
	moves := []Move{}
	for i, c := range script {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '.':
			moves = append(moves, Move{})
			continue
		}
		d, err := rules.ParseDirection(string(c))
		if err != nil {
			return nil, errors.Wrapf(err, "script position %d", i)
		}
		moves = append(moves, Move{Facing: d})
	}
	return moves, nil
}

// RunScript plays moves against s without pacing, stopping early if the
// session ends. onFrame may be nil. The last frame is returned.
func RunScript(s *rules.Session, moves []Move, onFrame func(*rules.Frame)) *rules.Frame {
	frame := s.Frame()
	if onFrame != nil {
		onFrame(frame)
	}
	for _, m := range moves {
		if s.Done() {
			break
		}
		if m.Facing.Valid() {
			s.SetFacing(m.Facing)
		}
		s.Step()
		frame = s.Frame()
		if onFrame != nil {
			onFrame(frame)
		}
	}
	return frame
}
