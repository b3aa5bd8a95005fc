package ui

import "github.com/samdwyer/fogmaze/internal/world"

// Frame is everything the renderer needs for one draw. Cells hold what
// may be shown, with world.TileUnknown for fogged cells.
type Frame struct {
	Cells [][]world.TileKind

	Health, MaxHealth int
	Money             int
	HealthDelta       int
	MoneyDelta        int

	Status string
	Dead   bool
}
