package rules

// Outcome is the result of a single Step.
type Outcome uint8

const (
	// Continue means the snake moved into an empty cell.
	Continue Outcome = iota
	// Grew means the snake ate food and a new one was placed.
	Grew
	// GameOver means the session has ended, see Session.Cause.
	GameOver
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Grew:
		return "grew"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}
