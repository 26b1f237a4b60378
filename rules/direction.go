package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// Direction is one of the four facings a snake can move in.
type Direction uint8

// Zero value is intentionally not a valid direction.
const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// ErrInvalidDirection is returned when a direction can't be parsed.
var ErrInvalidDirection = errors.New("rules: invalid direction")

var deltas = map[Direction]Point{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	_, ok := deltas[d]
	return ok
}

// Delta returns the unit offset for the direction, the zero point for an
// invalid direction.
func (d Direction) Delta() Point {
	return deltas[d]
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// ParseDirection converts "up", "down", "left", "right" or their first letter
// into a Direction. Case is ignored.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, errors.Wrapf(ErrInvalidDirection, "%q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.Wrapf(ErrInvalidDirection, "%d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
