// Package world provides the maze grid, fog of war, and world placement.
package world

// TileKind represents the content of a single grid cell.
type TileKind int

const (
	// TileEmpty is open floor with nothing on it.
	TileEmpty TileKind = iota
	// TileWall is impassable.
	TileWall
	// TilePlayer marks the player's cell. Exactly one exists per grid.
	TilePlayer
	// TileTreasure is collected for money. At most one exists per grid.
	TileTreasure
	// TileTrap damages the player when entered.
	TileTrap
	// TileHeal restores health when entered.
	TileHeal

	// TileUnknown is the fog marker returned by the render path for
	// cells that have not been revealed. It is never stored in a Grid.
	TileUnknown TileKind = -1
)

// String returns the tile's identifier, also used as the palette key.
func (t TileKind) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TilePlayer:
		return "player"
	case TileTreasure:
		return "treasure"
	case TileTrap:
		return "trap"
	case TileHeal:
		return "heal"
	case TileUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// IsPassable returns true if the player can step onto the tile.
func (t TileKind) IsPassable() bool {
	return t.valid() && t != TileWall
}

// valid reports whether t may be stored in a Grid.
func (t TileKind) valid() bool {
	return t >= TileEmpty && t <= TileHeal
}
