package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fogmaze/internal/telemetry"
)

const (
	// DefaultRows and DefaultCols match the classic 15x15 board.
	DefaultRows = 15
	DefaultCols = 15

	// player, treasure, and at least one more open cell
	minFreeCells = 3
)

// ErrImpassable is returned by MovePlayer when the destination is a wall.
var ErrImpassable = errors.New("destination is not passable")

// State owns one grid, its visibility mask, and the positions of the
// cells that matter for play. The player position kept here is the single
// source of truth for where the player is.
type State struct {
	Grid *Grid
	Mask *VisibilityMask

	player    Position
	treasure  Position
	collected bool
	features  mapset.Set[Position]
}

// NewState builds a world from a wall layout and a placement. The player's
// surroundings are revealed before it returns.
func NewState(layout [][]bool, p Placement) (*State, error) {
	grid, err := NewGrid(layout)
	if err != nil {
		return nil, err
	}
	free := grid.FreeCells()
	if len(free) < minFreeCells {
		return nil, configErrorf("layout", "need at least %d free cells, got %d", minFreeCells, len(free))
	}

	if p.Player == p.Treasure {
		return nil, configErrorf("placement", "player and treasure share %v", p.Player)
	}
	if err := placeOn(grid, p.Player, TilePlayer); err != nil {
		return nil, err
	}
	if err := placeOn(grid, p.Treasure, TileTreasure); err != nil {
		return nil, err
	}

	features := mapset.New[Position]()
	for pos, kind := range p.Features {
		if kind != TileTrap && kind != TileHeal {
			return nil, configErrorf("placement", "feature at %v must be trap or heal, got %v", pos, kind)
		}
		if pos == p.Player || pos == p.Treasure {
			return nil, configErrorf("placement", "feature at %v overlaps player or treasure", pos)
		}
		if err := placeOn(grid, pos, kind); err != nil {
			return nil, err
		}
		features.Put(pos)
	}

	s := &State{
		Grid:     grid,
		Mask:     NewVisibilityMask(grid),
		player:   p.Player,
		treasure: p.Treasure,
		features: features,
	}
	if err := s.Reveal(); err != nil {
		return nil, err
	}
	return s, nil
}

// placeOn puts kind on an open cell of a freshly built grid.
func placeOn(g *Grid, pos Position, kind TileKind) error {
	cur, err := g.Get(pos)
	if err != nil {
		return &ConfigError{Field: "placement", Reason: err.Error()}
	}
	if cur != TileEmpty {
		return configErrorf("placement", "%v at %v is not an open cell", kind, pos)
	}
	return g.Set(pos, kind)
}

// BuildOptions describes how to generate a world.
type BuildOptions struct {
	Rows, Cols int
	Generator  Generator
	Placer     Placer
	Rand       *rand.Rand

	// RequireReachable re-rolls layout and placement until the treasure
	// can be reached from the player, up to MaxAttempts times.
	RequireReachable bool
	MaxAttempts      int
}

// DefaultMaxAttempts bounds the reachability re-rolls.
const DefaultMaxAttempts = 32

// Build generates a layout, validates its shape, and places the player,
// the treasure, and the features on it.
func Build(ctx context.Context, opts BuildOptions) (*State, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, configErrorf("size", "dimensions must be positive, got %dx%d", opts.Rows, opts.Cols)
	}
	if opts.Generator == nil {
		return nil, configErrorf("generator", "no generator")
	}
	if opts.Placer == nil {
		opts.Placer = RandomPlacer{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	attempts := 1
	if opts.RequireReachable {
		attempts = opts.MaxAttempts
		if attempts <= 0 {
			attempts = DefaultMaxAttempts
		}
	}

	for i := 1; i <= attempts; i++ {
		s, err := buildOnce(ctx, opts)
		if err != nil {
			return nil, err
		}
		if !opts.RequireReachable || Reachable(s.Grid, s.player, s.treasure) {
			span.SetAttributes(
				attribute.Int("world.rows", opts.Rows),
				attribute.Int("world.cols", opts.Cols),
				attribute.Int("world.free_cells", len(s.Grid.FreeCells())),
				attribute.Int("world.features", s.features.Size()),
				attribute.Int("world.attempts", i),
				attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
			)
			return s, nil
		}
	}

	return nil, configErrorf("generator", "treasure unreachable after %d attempts", attempts)
}

func buildOnce(ctx context.Context, opts BuildOptions) (*State, error) {
	layout, err := opts.Generator.Generate(ctx, opts.Rows, opts.Cols, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("generate layout: %w", err)
	}
	if err := checkShape(layout, opts.Rows, opts.Cols); err != nil {
		return nil, err
	}

	grid, err := NewGrid(layout)
	if err != nil {
		return nil, err
	}
	placement, err := opts.Placer.Place(grid.FreeCells(), opts.Rand)
	if err != nil {
		return nil, err
	}
	return NewState(layout, placement)
}

func checkShape(layout [][]bool, rows, cols int) error {
	if len(layout) != rows {
		return configErrorf("generator", "layout has %d rows, want %d", len(layout), rows)
	}
	for r, row := range layout {
		if len(row) != cols {
			return configErrorf("generator", "layout row %d has %d columns, want %d", r, len(row), cols)
		}
	}
	return nil
}

// Player returns the player's position.
func (s *State) Player() Position {
	return s.player
}

// Treasure returns the treasure's position and whether it is still on
// the grid.
func (s *State) Treasure() (Position, bool) {
	return s.treasure, !s.collected
}

// RemainingFeatures returns the number of traps and heals not yet stepped on.
func (s *State) RemainingFeatures() int {
	return s.features.Size()
}

// HasFeature returns true if an untouched trap or heal sits at pos.
func (s *State) HasFeature(pos Position) bool {
	return s.features.Has(pos)
}

// MovePlayer moves the player onto next and returns the tile that was
// there before. The old cell becomes empty. Walls are refused with
// ErrImpassable and nothing changes.
func (s *State) MovePlayer(next Position) (TileKind, error) {
	prev, err := s.Grid.Get(next)
	if err != nil {
		return TileWall, err
	}
	if !prev.IsPassable() {
		return prev, fmt.Errorf("%w: %v", ErrImpassable, next)
	}
	if next == s.player {
		return TilePlayer, nil
	}

	if err := s.Grid.Set(s.player, TileEmpty); err != nil {
		return prev, err
	}
	if err := s.Grid.Set(next, TilePlayer); err != nil {
		// Put the player back so the grid keeps exactly one
		_ = s.Grid.Set(s.player, TilePlayer)
		return prev, err
	}

	s.player = next
	s.features.Remove(next)
	if prev == TileTreasure {
		s.collected = true
	}
	return prev, nil
}

// Reveal lifts the fog around the player's current position.
func (s *State) Reveal() error {
	return s.Mask.RevealFrom(s.player, s.Grid)
}

// RevealAll lifts the fog everywhere.
func (s *State) RevealAll() {
	s.Mask.RevealAll()
}

// Shown returns what the renderer may display at pos.
func (s *State) Shown(pos Position) (TileKind, error) {
	return s.Mask.RenderValueAt(pos, s.Grid)
}
