package world

import (
	"context"
	"math/rand"
)

// MazeGenerator carves a perfect maze with a recursive backtracker. Open
// cells sit on odd coordinates inside a solid border, so every open cell
// is reachable from every other.
type MazeGenerator struct{}

// Generate carves a maze into a rows x cols layout.
func (MazeGenerator) Generate(ctx context.Context, rows, cols int, rng *rand.Rand) ([][]bool, error) {
	if rows < 3 || cols < 3 {
		return nil, configErrorf("size", "maze needs at least 3x3, got %dx%d", rows, cols)
	}

	layout := solidLayout(rows, cols)
	start := Position{Row: 1, Col: 1}
	layout[start.Row][start.Col] = false
	stack := []Position{start}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := stack[len(stack)-1]
		carved := false
		for _, i := range rng.Perm(len(Directions)) {
			dr, dc := Directions[i].Offset()
			next := Position{Row: cur.Row + 2*dr, Col: cur.Col + 2*dc}
			if next.Row <= 0 || next.Row >= rows-1 || next.Col <= 0 || next.Col >= cols-1 {
				continue
			}
			if !layout[next.Row][next.Col] {
				continue
			}
			// Knock down the wall between the two cells
			layout[cur.Row+dr][cur.Col+dc] = false
			layout[next.Row][next.Col] = false
			stack = append(stack, next)
			carved = true
			break
		}
		if !carved {
			stack = stack[:len(stack)-1]
		}
	}

	return layout, nil
}
