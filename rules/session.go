// Package rules is the snake simulation core: the board, the snake, food
// placement and the step engine that advances a session one tick at a time.
//
// A Session is not safe for concurrent use. The driver owns it and calls
// SetFacing between ticks and Step once per tick.
package rules

import (
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrInvalidDimensions is returned for boards that can't hold a snake and
	// a piece of food.
	ErrInvalidDimensions = errors.New("rules: invalid board dimensions")
	// ErrInvalidLength is returned when the initial length does not fit the
	// board.
	ErrInvalidLength = errors.New("rules: invalid initial length")
	// ErrDuplicateHead is raised when a move targets a second head marker.
	ErrDuplicateHead = errors.New("rules: move into a snake head")
)

// DefaultLength is the body length a snake starts with.
const DefaultLength = 3

// Session is a single game: the board, the snake on it and the randomness
// used to place food.
type Session struct {
	id     string
	board  *Board
	snake  *Snake
	rng    RandSource
	turn   int
	status GameStatus
	cause  string
}

// NewSession creates a width x height board with the snake's head at the
// origin facing up, then places the first food. A nil rng gives a session
// that never spawns food, so the snake keeps its initial length.
func NewSession(width, height, initialLength int, rng RandSource) (*Session, error) {
	if width <= 0 || height <= 0 || width*height < 2 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if initialLength < 0 || initialLength >= width*height {
		return nil, errors.Wrapf(ErrInvalidLength, "%d on a %dx%d board", initialLength, width, height)
	}

	b := NewBoard(width, height)
	origin := Point{X: 0, Y: 0}
	b.Set(origin, SnakeHead)

	s := &Session{
		id:     uuid.NewV4().String(),
		board:  b,
		snake:  newSnake(origin, initialLength, width*height),
		rng:    rng,
		status: GameStatusRunning,
	}
	if rng != nil {
		s.PlaceFood(rng)
	}

	log.WithFields(log.Fields{
		"SessionID": s.id,
		"Width":     width,
		"Height":    height,
		"Length":    initialLength,
		"Food":      rng != nil,
	}).Debug("session created")
	return s, nil
}

// ID is the unique id of the session.
func (s *Session) ID() string { return s.id }

// Turn is the number of moves made so far.
func (s *Session) Turn() int { return s.turn }

// Status is the lifecycle state of the session.
func (s *Session) Status() GameStatus { return s.status }

// Cause is why the session ended, empty while it is running.
func (s *Session) Cause() string { return s.cause }

// Done reports whether the session has ended.
func (s *Session) Done() bool { return s.status == GameStatusComplete }

// Head is the position of the snake's head.
func (s *Session) Head() Point { return s.snake.Position }

// Facing is the direction the snake moves on the next tick.
func (s *Session) Facing() Direction { return s.snake.Facing }

// Length is the target body length.
func (s *Session) Length() int { return s.snake.Length }

// Body returns the body segments, neck first.
func (s *Session) Body() []Point { return s.snake.Body() }

// Tail returns the tracked head history, oldest first.
func (s *Session) Tail() []Point { return s.snake.Tail() }

// Board returns the live board. Callers must not modify it.
func (s *Session) Board() *Board { return s.board }

// TileAt returns the state of the cell at (x, y).
func (s *Session) TileAt(x, y int) TileState {
	return s.board.Get(Point{X: x, Y: y})
}

// SetFacing changes the direction of the next move, see Snake.SetFacing.
func (s *Session) SetFacing(d Direction) bool {
	return s.snake.SetFacing(d)
}

// PlaceFood puts a piece of food on a random free cell. It panics when the
// snake covers the whole board, callers have to check before asking.
func (s *Session) PlaceFood(rng RandSource) Point {
	p, err := PlaceFood(s.board, rng)
	if err != nil {
		log.WithError(err).WithField("SessionID", s.id).Error("food placement on a full board")
		panic(err)
	}
	log.WithFields(log.Fields{
		"SessionID": s.id,
		"Turn":      s.turn,
		"Food":      p,
	}).Debug("food placed")
	return p
}

// Step advances the session by one tick.
//
// A move off the board or into the body ends the session and leaves the board
// and snake untouched. A move into empty space or food commits the move and
// redraws the snake; eating also grows the target length and places new food.
func (s *Session) Step() Outcome {
	if s.Done() {
		return GameOver
	}

	next := s.snake.Next()
	if !s.board.InBounds(next) {
		return s.end(EndCauseWallCollision)
	}

	var outcome Outcome
	switch tile := s.board.Get(next); tile {
	case SnakeBody:
		return s.end(EndCauseSnakeSelfCollision)
	case SnakeHead:
		err := errors.Wrapf(ErrDuplicateHead, "head %v moving into %v", s.snake.Position, next)
		log.WithError(err).WithField("SessionID", s.id).Error("board invariant violated")
		panic(err)
	case Food:
		s.snake.advance(s.board, next, true)
		outcome = Grew
	default:
		s.snake.advance(s.board, next, false)
		outcome = Continue
	}
	s.turn++

	log.WithFields(log.Fields{
		"SessionID": s.id,
		"Turn":      s.turn,
		"Head":      next,
		"Facing":    s.snake.Facing,
		"Outcome":   outcome,
	}).Debug("step")
	stepsCounter.WithLabelValues(outcome.String()).Inc()

	if outcome == Grew {
		if s.board.Count(Empty) == 0 {
			s.finish(EndCauseBoardFilled)
			return Grew
		}
		if s.rng != nil {
			s.PlaceFood(s.rng)
		}
	}
	return outcome
}

func (s *Session) end(cause string) Outcome {
	s.finish(cause)
	stepsCounter.WithLabelValues(GameOver.String()).Inc()
	return GameOver
}

func (s *Session) finish(cause string) {
	s.status = GameStatusComplete
	s.cause = cause
	endsCounter.WithLabelValues(cause).Inc()
	log.WithFields(log.Fields{
		"SessionID": s.id,
		"Turn":      s.turn,
		"Length":    s.snake.Length,
		"Cause":     cause,
	}).Info("session ended")
}
