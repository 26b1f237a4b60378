package rules

// GameStatus is the lifecycle state of a session
type GameStatus string

const (
	// GameStatusRunning represents a session that still accepts steps
	GameStatusRunning GameStatus = "running"
	// GameStatusComplete represents a session that is done
	GameStatusComplete GameStatus = "complete"
)
