package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func TestNewStatePlacesTiles(t *testing.T) {
	s, err := NewState(OpenLayout(5, 5), Placement{
		Player:   Position{2, 2},
		Treasure: Position{0, 0},
		Features: map[Position]TileKind{{4, 4}: TileTrap, {4, 0}: TileHeal},
	})
	if err != nil {
		t.Fatalf("NewState() error: %v", err)
	}

	checks := map[Position]TileKind{
		{2, 2}: TilePlayer,
		{0, 0}: TileTreasure,
		{4, 4}: TileTrap,
		{4, 0}: TileHeal,
		{1, 1}: TileEmpty,
	}
	for pos, want := range checks {
		if got, _ := s.Grid.Get(pos); got != want {
			t.Errorf("Get(%v) = %v, want %v", pos, got, want)
		}
	}
	if s.Player() != (Position{2, 2}) {
		t.Errorf("Player() = %v, want (2, 2)", s.Player())
	}
	if s.RemainingFeatures() != 2 {
		t.Errorf("RemainingFeatures() = %d, want 2", s.RemainingFeatures())
	}
	if !s.Mask.IsRevealed(Position{2, 2}) {
		t.Error("player cell should start revealed")
	}
	if s.Mask.RevealedCount() != 1 {
		t.Errorf("RevealedCount() = %d, want 1 with no walls", s.Mask.RevealedCount())
	}
}

func TestNewStateRejectsBadPlacement(t *testing.T) {
	layout := ParseLayout(
		"#...",
		"....",
	)
	tests := []struct {
		name string
		p    Placement
	}{
		{"same cell", Placement{Player: Position{0, 1}, Treasure: Position{0, 1}}},
		{"player on wall", Placement{Player: Position{0, 0}, Treasure: Position{0, 1}}},
		{"treasure off grid", Placement{Player: Position{0, 1}, Treasure: Position{9, 9}}},
		{"feature on player", Placement{
			Player: Position{0, 1}, Treasure: Position{0, 2},
			Features: map[Position]TileKind{{0, 1}: TileTrap},
		}},
		{"bad feature kind", Placement{
			Player: Position{0, 1}, Treasure: Position{0, 2},
			Features: map[Position]TileKind{{1, 1}: TileWall},
		}},
	}

	for _, tt := range tests {
		_, err := NewState(layout, tt.p)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: error = %v, want ConfigError", tt.name, err)
		}
	}
}

func TestNewStateNeedsThreeFreeCells(t *testing.T) {
	_, err := NewState(ParseLayout("#..#"), Placement{Player: Position{0, 1}, Treasure: Position{0, 2}})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %v, want ConfigError", err)
	}
}

func TestMovePlayer(t *testing.T) {
	s, err := NewState(ParseLayout(
		"...",
		".#.",
	), Placement{
		Player:   Position{0, 0},
		Treasure: Position{0, 2},
		Features: map[Position]TileKind{{0, 1}: TileTrap},
	})
	if err != nil {
		t.Fatal(err)
	}

	prev, err := s.MovePlayer(Position{0, 1})
	if err != nil || prev != TileTrap {
		t.Fatalf("MovePlayer onto trap = %v, %v; want TileTrap", prev, err)
	}
	if got, _ := s.Grid.Get(Position{0, 0}); got != TileEmpty {
		t.Errorf("old cell = %v, want TileEmpty", got)
	}
	if s.HasFeature(Position{0, 1}) {
		t.Error("stepped-on trap should leave the feature set")
	}

	prev, _ = s.MovePlayer(Position{0, 2})
	if prev != TileTreasure {
		t.Errorf("MovePlayer onto treasure = %v, want TileTreasure", prev)
	}
	if _, ok := s.Treasure(); ok {
		t.Error("treasure should be collected")
	}
	if s.Grid.Count(TileTreasure) != 0 || s.Grid.Count(TilePlayer) != 1 {
		t.Error("grid should hold one player and no treasure")
	}

	if _, err := s.MovePlayer(Position{1, 1}); !errors.Is(err, ErrImpassable) {
		t.Errorf("MovePlayer onto wall error = %v, want ErrImpassable", err)
	}
	if s.Player() != (Position{0, 2}) {
		t.Errorf("Player() after refused move = %v, want (0, 2)", s.Player())
	}
}

func TestBuildReproducible(t *testing.T) {
	build := func(seed int64) *State {
		s, err := Build(context.Background(), BuildOptions{
			Rows:             DefaultRows,
			Cols:             DefaultCols,
			Generator:        MazeGenerator{},
			Rand:             rand.New(rand.NewSource(seed)),
			RequireReachable: true,
		})
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		return s
	}

	s1, s2 := build(12345), build(12345)
	if s1.Player() != s2.Player() {
		t.Errorf("player mismatch: %v != %v", s1.Player(), s2.Player())
	}
	for r := 0; r < DefaultRows; r++ {
		for c := 0; c < DefaultCols; c++ {
			a, _ := s1.Grid.Get(Position{r, c})
			b, _ := s2.Grid.Get(Position{r, c})
			if a != b {
				t.Errorf("tile mismatch at (%d,%d): %v != %v", r, c, a, b)
			}
		}
	}
}

func TestBuildInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		s, err := Build(context.Background(), BuildOptions{
			Rows:             DefaultRows,
			Cols:             DefaultCols,
			Generator:        MazeGenerator{},
			Rand:             rng,
			RequireReachable: true,
		})
		if err != nil {
			t.Fatalf("Build() error: %v", err)
		}
		if s.Grid.Count(TilePlayer) != 1 || s.Grid.Count(TileTreasure) != 1 {
			t.Fatalf("build %d: %d players, %d treasures", i, s.Grid.Count(TilePlayer), s.Grid.Count(TileTreasure))
		}
		if got, _ := s.Grid.Get(s.Player()); got != TilePlayer {
			t.Fatalf("build %d: player position holds %v", i, got)
		}
		treasure, _ := s.Treasure()
		if !Reachable(s.Grid, s.Player(), treasure) {
			t.Fatalf("build %d: treasure unreachable", i)
		}
	}
}

func TestBuildConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		opts BuildOptions
	}{
		{"zero rows", BuildOptions{Rows: 0, Cols: 5, Generator: MazeGenerator{}}},
		{"negative cols", BuildOptions{Rows: 5, Cols: -1, Generator: MazeGenerator{}}},
		{"no generator", BuildOptions{Rows: 5, Cols: 5}},
		{"shape mismatch", BuildOptions{Rows: 5, Cols: 5, Generator: LayoutGenerator{Layout: OpenLayout(4, 5)}}},
		{"all walls", BuildOptions{Rows: 3, Cols: 3, Generator: LayoutGenerator{Layout: solidLayout(3, 3)}}},
	}

	for _, tt := range tests {
		_, err := Build(context.Background(), tt.opts)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: error = %v, want ConfigError", tt.name, err)
		}
	}
}

func TestBuildUnreachableTreasure(t *testing.T) {
	// Two sealed pockets; with a fixed placement the treasure never connects
	opts := BuildOptions{
		Rows:      1,
		Cols:      5,
		Generator: LayoutGenerator{Layout: ParseLayout("..#..")},
		Placer: FixedPlacer{Placement: Placement{
			Player:   Position{0, 0},
			Treasure: Position{0, 4},
		}},
		RequireReachable: true,
		MaxAttempts:      3,
	}

	if _, err := Build(context.Background(), opts); err == nil {
		t.Fatal("expected error for unreachable treasure")
	}

	opts.RequireReachable = false
	if _, err := Build(context.Background(), opts); err != nil {
		t.Errorf("without reachability check: %v", err)
	}
}

func TestRandomPlacerDistinctCells(t *testing.T) {
	free := []Position{{0, 0}, {0, 1}, {0, 2}}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		p, err := RandomPlacer{}.Place(free, rng)
		if err != nil {
			t.Fatal(err)
		}
		if p.Player == p.Treasure {
			t.Fatalf("player and treasure share %v", p.Player)
		}
		for pos := range p.Features {
			if pos == p.Player || pos == p.Treasure {
				t.Fatalf("feature overlaps at %v", pos)
			}
		}
	}
}

func TestStockRandomWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	counts := map[TileKind]int{}
	const n = 12000
	for i := 0; i < n; i++ {
		counts[stockRandom(rng)]++
	}

	// Expect about 1000 of each feature; allow generous slack
	for _, kind := range []TileKind{TileTrap, TileHeal} {
		if counts[kind] < 800 || counts[kind] > 1200 {
			t.Errorf("%v count = %d, want about 1000", kind, counts[kind])
		}
	}
}
