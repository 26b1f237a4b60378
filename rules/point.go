package rules

import "fmt"

// Point is a board coordinate. (0,0) is the bottom-left cell.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Equals checks if 2 points are the same x,y coordinate
func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
