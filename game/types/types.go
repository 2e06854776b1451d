package types

// Point is an integer coordinate on the game grid.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the bounded game grid dimensions.
type Grid struct {
	Width  int
	Height int
}

func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Neighbors returns the in-bounds cardinal neighbors of p. The order is
// fixed (up, down, left, right) so searches over the grid are reproducible.
func (g Grid) Neighbors(p Point) []Point {
	candidates := [4]Point{
		{X: p.X, Y: p.Y - 1},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X + 1, Y: p.Y},
	}
	neighbors := make([]Point, 0, 4)
	for _, c := range candidates {
		if g.InBounds(c) {
			neighbors = append(neighbors, c)
		}
	}
	return neighbors
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 1, Y: 0}
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}
