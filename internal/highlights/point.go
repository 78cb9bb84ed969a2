package highlights

import "fmt"

// Point is an unsigned 2-D coordinate in a heat-map cell grid.
type Point struct {
	X, Y uint32
}

// Add returns the component-wise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("P(%d;%d)", p.X, p.Y)
}
