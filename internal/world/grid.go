package world

import "fmt"

// Grid is a fixed-size store of tiles. Its dimensions never change after
// construction, and it is the only place tiles are mutated.
type Grid struct {
	Rows, Cols int

	tiles [][]TileKind
	free  []Position

	// counts of unique kinds currently on the grid
	players   int
	treasures int
}

// NewGrid builds a grid from a wall layout where true marks a wall.
// The layout must be rectangular with positive dimensions.
func NewGrid(layout [][]bool) (*Grid, error) {
	rows := len(layout)
	if rows == 0 {
		return nil, configErrorf("layout", "no rows")
	}
	cols := len(layout[0])
	if cols == 0 {
		return nil, configErrorf("layout", "no columns")
	}

	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		tiles: make([][]TileKind, rows),
	}
	for r, row := range layout {
		if len(row) != cols {
			return nil, configErrorf("layout", "row %d has %d columns, want %d", r, len(row), cols)
		}
		g.tiles[r] = make([]TileKind, cols)
		for c, wall := range row {
			if wall {
				g.tiles[r][c] = TileWall
				continue
			}
			g.tiles[r][c] = TileEmpty
			g.free = append(g.free, Position{Row: r, Col: c})
		}
	}
	return g, nil
}

// InBounds returns true if pos addresses a cell of the grid.
func (g *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Rows && pos.Col >= 0 && pos.Col < g.Cols
}

// Get returns the tile at pos.
func (g *Grid) Get(pos Position) (TileKind, error) {
	if !g.InBounds(pos) {
		return TileWall, g.outOfBounds(pos)
	}
	return g.tiles[pos.Row][pos.Col], nil
}

// Set replaces the tile at pos. It refuses to create a second player or
// treasure cell; on error the grid is unchanged.
func (g *Grid) Set(pos Position, kind TileKind) error {
	if !g.InBounds(pos) {
		return g.outOfBounds(pos)
	}
	if !kind.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidTile, int(kind))
	}

	prev := g.tiles[pos.Row][pos.Col]
	if prev == kind {
		return nil
	}
	switch {
	case kind == TilePlayer && g.players > 0:
		return fmt.Errorf("%w: player already on grid", ErrDuplicateTile)
	case kind == TileTreasure && g.treasures > 0:
		return fmt.Errorf("%w: treasure already on grid", ErrDuplicateTile)
	}

	g.adjust(prev, -1)
	g.adjust(kind, 1)
	g.tiles[pos.Row][pos.Col] = kind
	return nil
}

// FreeCells returns every cell that was not a wall in the source layout,
// in row-major order.
func (g *Grid) FreeCells() []Position {
	out := make([]Position, len(g.free))
	copy(out, g.free)
	return out
}

// Count returns how many cells currently hold kind.
func (g *Grid) Count(kind TileKind) int {
	switch kind {
	case TilePlayer:
		return g.players
	case TileTreasure:
		return g.treasures
	}
	n := 0
	for _, row := range g.tiles {
		for _, t := range row {
			if t == kind {
				n++
			}
		}
	}
	return n
}

func (g *Grid) adjust(kind TileKind, delta int) {
	switch kind {
	case TilePlayer:
		g.players += delta
	case TileTreasure:
		g.treasures += delta
	}
}

func (g *Grid) outOfBounds(pos Position) error {
	return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, pos, g.Rows, g.Cols)
}
