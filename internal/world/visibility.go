package world

import "fmt"

// VisibilityMask tracks which cells have been revealed to the player.
// Cells only ever go from hidden to revealed; a new mask is created when
// the world is regenerated.
type VisibilityMask struct {
	rows, cols int
	revealed   [][]bool
}

// NewVisibilityMask creates a fully hidden mask with the grid's dimensions.
func NewVisibilityMask(g *Grid) *VisibilityMask {
	revealed := make([][]bool, g.Rows)
	for r := range revealed {
		revealed[r] = make([]bool, g.Cols)
	}
	return &VisibilityMask{rows: g.Rows, cols: g.Cols, revealed: revealed}
}

// Reveal marks pos as revealed. Revealing an already revealed cell is a no-op.
func (m *VisibilityMask) Reveal(pos Position) error {
	if !m.inBounds(pos) {
		return fmt.Errorf("%w: %v in %dx%d mask", ErrOutOfBounds, pos, m.rows, m.cols)
	}
	m.revealed[pos.Row][pos.Col] = true
	return nil
}

// IsRevealed returns true if pos has been revealed. Positions outside the
// mask are never revealed.
func (m *VisibilityMask) IsRevealed(pos Position) bool {
	return m.inBounds(pos) && m.revealed[pos.Row][pos.Col]
}

// RevealAll marks every cell as revealed.
func (m *VisibilityMask) RevealAll() {
	for r := range m.revealed {
		for c := range m.revealed[r] {
			m.revealed[r][c] = true
		}
	}
}

// RevealedCount returns the number of revealed cells.
func (m *VisibilityMask) RevealedCount() int {
	n := 0
	for _, row := range m.revealed {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// RenderValueAt returns what the renderer may show at pos: the grid's
// current tile if revealed, TileUnknown otherwise.
func (m *VisibilityMask) RenderValueAt(pos Position, g *Grid) (TileKind, error) {
	kind, err := g.Get(pos)
	if err != nil {
		return TileUnknown, err
	}
	if !m.IsRevealed(pos) {
		return TileUnknown, nil
	}
	return kind, nil
}

// RevealFrom applies the fog policy for a player standing at pos: pos
// itself is revealed, and of its 8 neighbours only walls are revealed.
// Hazards, heals, and treasure next to the player stay hidden until the
// player steps on them.
func (m *VisibilityMask) RevealFrom(pos Position, g *Grid) error {
	if err := m.Reveal(pos); err != nil {
		return err
	}
	for _, n := range pos.Neighbors() {
		if kind, err := g.Get(n); err == nil && kind == TileWall {
			m.revealed[n.Row][n.Col] = true
		}
	}
	return nil
}

func (m *VisibilityMask) inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < m.rows && pos.Col >= 0 && pos.Col < m.cols
}
