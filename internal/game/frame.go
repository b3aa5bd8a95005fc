package game

import (
	"github.com/samdwyer/fogmaze/internal/ui"
	"github.com/samdwyer/fogmaze/internal/world"
)

// Frame snapshots what the player is allowed to see: revealed tiles,
// TileUnknown under the fog, and the stat panel.
func (s *Session) Frame() ui.Frame {
	g := s.world.Grid
	cells := make([][]world.TileKind, g.Rows)
	for r := range cells {
		cells[r] = make([]world.TileKind, g.Cols)
		for c := range cells[r] {
			// In range by construction, so the error is always nil
			cells[r][c], _ = s.world.Shown(world.Position{Row: r, Col: c})
		}
	}

	return ui.Frame{
		Cells:       cells,
		Health:      s.player.Health,
		MaxHealth:   s.player.MaxHealth,
		Money:       s.player.Money,
		HealthDelta: s.last.HealthDelta,
		MoneyDelta:  s.last.MoneyDelta,
		Status:      s.status,
		Dead:        s.state == StateDead,
	}
}
