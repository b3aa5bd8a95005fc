package world

// Room represents a rectangular room carved by the rooms generator.
type Room struct {
	Row, Col      int // Top-left corner position
	Height, Width int // Dimensions of the room
}

// Center returns the center position of the room.
func (r Room) Center() Position {
	return Position{Row: r.Row + r.Height/2, Col: r.Col + r.Width/2}
}

// Contains returns true if the given position is inside the room.
func (r Room) Contains(p Position) bool {
	return p.Row >= r.Row && p.Row < r.Row+r.Height && p.Col >= r.Col && p.Col < r.Col+r.Width
}
