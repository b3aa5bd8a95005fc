package world

import "github.com/zyedidia/generic/mapset"

// Reachable returns true if to can be reached from from by orthogonal
// steps over non-wall cells.
func Reachable(g *Grid, from, to Position) bool {
	if !g.InBounds(from) || !g.InBounds(to) {
		return false
	}

	visited := mapset.New[Position]()
	visited.Put(from)
	queue := []Position{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			return true
		}
		for _, d := range Directions {
			next := cur.Add(d)
			if visited.Has(next) {
				continue
			}
			if kind, err := g.Get(next); err != nil || !kind.IsPassable() {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return false
}
