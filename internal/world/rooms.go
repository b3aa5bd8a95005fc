package world

import (
	"context"
	"math/rand"
)

const (
	// BSP defaults sized for small grids
	defaultMinRoomSize = 3
	defaultMaxRoomSize = 6
	defaultMinLeafSize = 5
)

// RoomsGenerator lays out rectangular rooms with a BSP split and joins
// sibling rooms with L-shaped corridors. Zero fields use the defaults.
type RoomsGenerator struct {
	MinRoomSize int // Minimum room dimension
	MaxRoomSize int // Maximum room dimension
	MinLeafSize int // Minimum BSP leaf size before stopping split
}

// Generate builds a rooms-and-corridors layout.
func (g RoomsGenerator) Generate(ctx context.Context, rows, cols int, rng *rand.Rand) ([][]bool, error) {
	if rows < 3 || cols < 3 {
		return nil, configErrorf("size", "rooms need at least 3x3, got %dx%d", rows, cols)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := &roomsBuilder{
		layout:      solidLayout(rows, cols),
		rows:        rows,
		cols:        cols,
		rng:         rng,
		minRoomSize: orDefault(g.MinRoomSize, defaultMinRoomSize),
		maxRoomSize: orDefault(g.MaxRoomSize, defaultMaxRoomSize),
		minLeafSize: orDefault(g.MinLeafSize, defaultMinLeafSize),
	}

	// Start BSP with everything inside the border as root
	root := &bspNode{row: 1, col: 1, height: rows - 2, width: cols - 2}
	b.splitNode(root)
	b.createRooms(root)
	b.connectRooms(root)

	return b.layout, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type roomsBuilder struct {
	layout     [][]bool
	rows, cols int
	rng        *rand.Rand
	rooms      []Room

	minRoomSize, maxRoomSize, minLeafSize int
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	row, col      int
	height, width int
	left, right   *bspNode
	room          *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (b *roomsBuilder) splitNode(node *bspNode) {
	min2 := b.minLeafSize * 2
	if node.width < min2 && node.height < min2 {
		return
	}

	// Split across the longer axis when it is large enough
	var splitRows bool
	switch {
	case node.width > node.height && node.width >= min2:
		splitRows = false
	case node.height >= min2:
		splitRows = true
	case node.width >= min2:
		splitRows = false
	default:
		return
	}

	span := node.width
	if splitRows {
		span = node.height
	}
	lo, hi := b.minLeafSize, span-b.minLeafSize
	if hi <= lo {
		return
	}
	split := lo + b.rng.Intn(hi-lo+1)

	if splitRows {
		node.left = &bspNode{row: node.row, col: node.col, height: split, width: node.width}
		node.right = &bspNode{row: node.row + split, col: node.col, height: node.height - split, width: node.width}
	} else {
		node.left = &bspNode{row: node.row, col: node.col, height: node.height, width: split}
		node.right = &bspNode{row: node.row, col: node.col + split, height: node.height, width: node.width - split}
	}

	b.splitNode(node.left)
	b.splitNode(node.right)
}

// createRooms creates rooms in leaf nodes of the BSP tree.
func (b *roomsBuilder) createRooms(node *bspNode) {
	if node == nil {
		return
	}
	if !node.isLeaf() {
		b.createRooms(node.left)
		b.createRooms(node.right)
		return
	}

	// Leaves too small for a room plus its surrounding wall stay solid
	if node.width < b.minRoomSize+2 || node.height < b.minRoomSize+2 {
		return
	}

	spread := b.maxRoomSize - b.minRoomSize + 1
	width := b.minRoomSize + b.rng.Intn(min(spread, node.width-b.minRoomSize+1))
	height := b.minRoomSize + b.rng.Intn(min(spread, node.height-b.minRoomSize+1))
	width = min(width, node.width-2)
	height = min(height, node.height-2)

	room := Room{
		Row:    node.row + 1 + b.rng.Intn(node.height-height-1),
		Col:    node.col + 1 + b.rng.Intn(node.width-width-1),
		Height: height,
		Width:  width,
	}
	node.room = &room
	b.rooms = append(b.rooms, room)
	b.carveRoom(room)
}

// carveRoom opens every cell within the room.
func (b *roomsBuilder) carveRoom(room Room) {
	for r := room.Row; r < room.Row+room.Height; r++ {
		for c := room.Col; c < room.Col+room.Width; c++ {
			b.open(r, c)
		}
	}
}

// connectRooms connects rooms with corridors.
func (b *roomsBuilder) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	b.connectRooms(node.left)
	b.connectRooms(node.right)

	left := b.getRoom(node.left)
	right := b.getRoom(node.right)
	if left != nil && right != nil {
		b.carveCorridor(*left, *right)
	}
}

// getRoom returns a room from a subtree (any room will do).
func (b *roomsBuilder) getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := b.getRoom(node.left); room != nil {
		return room
	}
	return b.getRoom(node.right)
}

// carveCorridor creates an L-shaped corridor between two room centers.
func (b *roomsBuilder) carveCorridor(a, z Room) {
	from, to := a.Center(), z.Center()

	if b.rng.Intn(2) == 0 {
		b.carveAcross(from.Col, to.Col, from.Row)
		b.carveDown(from.Row, to.Row, to.Col)
	} else {
		b.carveDown(from.Row, to.Row, from.Col)
		b.carveAcross(from.Col, to.Col, to.Row)
	}
}

func (b *roomsBuilder) carveAcross(c1, c2, row int) {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for c := c1; c <= c2; c++ {
		b.open(row, c)
	}
}

func (b *roomsBuilder) carveDown(r1, r2, col int) {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for r := r1; r <= r2; r++ {
		b.open(r, col)
	}
}

// open clears a cell, leaving the outer border intact.
func (b *roomsBuilder) open(r, c int) {
	if r > 0 && r < b.rows-1 && c > 0 && c < b.cols-1 {
		b.layout[r][c] = false
	}
}
