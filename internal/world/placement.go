package world

import "math/rand"

// Placement says where the player, the treasure, and any traps or heals
// go on a freshly generated grid.
type Placement struct {
	Player   Position
	Treasure Position
	Features map[Position]TileKind // TileTrap or TileHeal only
}

// Placer chooses a Placement from a grid's free cells.
type Placer interface {
	Place(free []Position, rng *rand.Rand) (Placement, error)
}

// stockEntry is one weighted choice when stocking a free cell.
type stockEntry struct {
	kind   TileKind
	weight float64
}

// stockTable gives each remaining free cell roughly 1-in-12 odds each of
// becoming a trap or a heal.
var stockTable = []stockEntry{
	{TileEmpty, 1},
	{TileTrap, 0.1},
	{TileHeal, 0.1},
}

// RandomPlacer puts the player and treasure on two distinct free cells
// chosen uniformly, then stocks every other free cell independently from
// a weighted table.
type RandomPlacer struct{}

// Place draws a placement from free.
func (RandomPlacer) Place(free []Position, rng *rand.Rand) (Placement, error) {
	if len(free) < minFreeCells {
		return Placement{}, configErrorf("layout", "need at least %d free cells, got %d", minFreeCells, len(free))
	}

	rest := append([]Position(nil), free...)
	take := func() Position {
		i := rng.Intn(len(rest))
		p := rest[i]
		rest = append(rest[:i], rest[i+1:]...)
		return p
	}

	p := Placement{Features: make(map[Position]TileKind)}
	p.Player = take()
	p.Treasure = take()
	for _, pos := range rest {
		if kind := stockRandom(rng); kind != TileEmpty {
			p.Features[pos] = kind
		}
	}
	return p, nil
}

// stockRandom selects a tile kind using weighted probability.
func stockRandom(rng *rand.Rand) TileKind {
	total := 0.0
	for _, e := range stockTable {
		total += e.weight
	}

	roll := rng.Float64() * total
	cumulative := 0.0
	for _, e := range stockTable {
		cumulative += e.weight
		if roll < cumulative {
			return e.kind
		}
	}
	return TileEmpty
}

// FixedPlacer always returns the same placement. Useful for scripted
// scenarios and tests.
type FixedPlacer struct {
	Placement Placement
}

// Place returns the fixed placement.
func (f FixedPlacer) Place(_ []Position, _ *rand.Rand) (Placement, error) {
	return f.Placement, nil
}
