package world

import "fmt"

// Position addresses a grid cell by row and column.
type Position struct {
	Row, Col int
}

// Add returns the position offset by the given direction.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats the position the way the status line shows it.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Neighbors returns the 8 surrounding positions: the four orthogonal ones
// in Direction order, then the four diagonals. Positions may lie outside
// the grid.
func (p Position) Neighbors() [8]Position {
	return [8]Position{
		p.Add(Up),
		p.Add(Right),
		p.Add(Down),
		p.Add(Left),
		{Row: p.Row - 1, Col: p.Col - 1},
		{Row: p.Row - 1, Col: p.Col + 1},
		{Row: p.Row + 1, Col: p.Col - 1},
		{Row: p.Row + 1, Col: p.Col + 1},
	}
}

// Direction is one of the four orthogonal compass directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all directions in clockwise order starting from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Offset returns the (dRow, dCol) step for the direction.
// Unknown directions return (0, 0).
func (d Direction) Offset() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// String returns the direction name.
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
	default:
		return "unknown"
	}
}
