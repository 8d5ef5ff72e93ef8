package grid

// Point is a (row, col) position. Rows grow southwards.
type Point struct {
	Row, Col int
}

// Add returns p moved by q.
func (p Point) Add(q Point) Point {
	return Point{p.Row + q.Row, p.Col + q.Col}
}

// Move returns p moved n steps in direction d.
func (p Point) Move(d Direction, n int) Point {
	delta := d.Delta()
	return Point{p.Row + delta.Row*n, p.Col + delta.Col*n}
}

// Direction is one of the four compass directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the compass directions clockwise from North.
var Directions = [4]Direction{North, East, South, West}

// Delta returns the unit step for d.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{-1, 0}
	case East:
		return Point{0, 1}
	case South:
		return Point{1, 0}
	case West:
		return Point{0, -1}
	}
	panic("grid: invalid direction")
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// TurnRight rotates d clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) % 4 }

// TurnLeft rotates d counter-clockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) % 4 }

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "invalid"
}
