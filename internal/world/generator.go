package world

import (
	"context"
	"math/rand"
)

// Generator produces a wall layout for a grid of the given size. The
// returned matrix must have rows entries of cols values each; true marks
// a wall. Generators draw all randomness from rng so layouts are
// reproducible from a seed.
type Generator interface {
	Generate(ctx context.Context, rows, cols int, rng *rand.Rand) ([][]bool, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx context.Context, rows, cols int, rng *rand.Rand) ([][]bool, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, rows, cols int, rng *rand.Rand) ([][]bool, error) {
	return f(ctx, rows, cols, rng)
}

// LayoutGenerator always returns a copy of a fixed layout, ignoring the
// requested size. Shape mismatches are caught when the world is built.
type LayoutGenerator struct {
	Layout [][]bool
}

// Generate returns a copy of the fixed layout.
func (g LayoutGenerator) Generate(_ context.Context, _, _ int, _ *rand.Rand) ([][]bool, error) {
	out := make([][]bool, len(g.Layout))
	for i, row := range g.Layout {
		out[i] = append([]bool(nil), row...)
	}
	return out, nil
}

// OpenLayout returns a rows x cols layout with no walls at all.
func OpenLayout(rows, cols int) [][]bool {
	layout := make([][]bool, rows)
	for r := range layout {
		layout[r] = make([]bool, cols)
	}
	return layout
}

// ParseLayout builds a layout from text rows where '#' is a wall and any
// other character is open floor.
func ParseLayout(lines ...string) [][]bool {
	layout := make([][]bool, len(lines))
	for r, line := range lines {
		layout[r] = make([]bool, len(line))
		for c, ch := range line {
			layout[r][c] = ch == '#'
		}
	}
	return layout
}

// solidLayout returns a rows x cols layout filled with walls.
func solidLayout(rows, cols int) [][]bool {
	layout := make([][]bool, rows)
	for r := range layout {
		layout[r] = make([]bool, cols)
		for c := range layout[r] {
			layout[r][c] = true
		}
	}
	return layout
}
