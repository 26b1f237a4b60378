package rules

import (
	"github.com/pkg/errors"
)

// ErrBoardFull is returned when there is no cell left to put food on.
var ErrBoardFull = errors.New("rules: no free cell for food")

// RandSource supplies randomness for food placement. *rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// PlaceFood samples random cells until it finds one the snake does not occupy
// and puts food there. Empty and Food cells are both valid targets.
func PlaceFood(b *Board, rng RandSource) (Point, error) {
	if b.Count(SnakeHead)+b.Count(SnakeBody) >= b.Size() {
		return Point{}, ErrBoardFull
	}

	attempts := 0
	for {
		attempts++
		p := b.point(rng.Intn(b.Size()))
		if b.Get(p).IsSnake() {
			continue
		}
		b.Set(p, Food)
		foodSamplesHistogram.Observe(float64(attempts))
		return p, nil
	}
}
