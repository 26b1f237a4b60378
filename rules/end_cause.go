package rules

const (
	// EndCauseWallCollision is when the snake runs off the board
	EndCauseWallCollision = "wall-collision"
	// EndCauseSnakeSelfCollision is when the head moves into the body
	EndCauseSnakeSelfCollision = "snake-self-collision"
	// EndCauseBoardFilled is when the snake has grown to cover every cell and
	// no food can be placed
	EndCauseBoardFilled = "board-filled"
)
