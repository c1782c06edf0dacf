package types

// Point is one grid cell addressed by column (X) and row (Y).
type Point struct {
	X, Y int
}

// Add returns the cell reached by moving p one step along d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// NewGrid returns a square grid of side n.
func NewGrid(n int) Grid {
	return Grid{Width: n, Height: n}
}

// InBounds reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center is the cell the snake spawns on.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Index flattens p into a row-major offset. p must be in bounds.
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Direction is a unit step on the grid, or None before the first move.
type Direction struct {
	X, Y int
}

var (
	None  = Direction{X: 0, Y: 0}
	Up    = Direction{X: 0, Y: -1}
	Right = Direction{X: 1, Y: 0}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
)

// Directions is the expansion order used by the pathfinders and the flood fill.
var Directions = [4]Direction{Up, Right, Down, Left}

// Clockwise is the probe order used by the autopilot's secondary heuristic.
var Clockwise = [4]Direction{Right, Down, Left, Up}

// Opposite returns the negated vector.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsNone reports whether d is the zero vector.
func (d Direction) IsNone() bool {
	return d == None
}

// Reverses reports whether d is the exact 180° turn of heading.
// Nothing reverses the zero heading.
func (d Direction) Reverses(heading Direction) bool {
	return !heading.IsNone() && d == heading.Opposite()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case None:
		return "none"
	default:
		return "invalid"
	}
}

// Manhattan returns |dx| + |dy| between two cells.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
