package interaction

import (
	"testing"

	"github.com/samdwyer/fogmaze/internal/entity"
	"github.com/samdwyer/fogmaze/internal/world"
)

func newTestPlayer(health, money int) entity.Player {
	p := entity.NewPlayer(world.Position{Row: 1, Col: 1}, money)
	p.Health = health
	return p
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		tile        world.TileKind
		health      int
		money       int
		wantOutcome Outcome
		wantHealth  int
		wantMoney   int
		wantHDelta  int
		wantMDelta  int
	}{
		{"empty", world.TileEmpty, 100, 0, OutcomeNothing, 100, 0, 0, 0},
		{"treasure", world.TileTreasure, 100, 250, OutcomeTreasureFound, 100, 1250, 0, 1000},
		{"trap", world.TileTrap, 100, 0, OutcomeDamaged, 90, 0, -10, 0},
		{"trap to exactly zero", world.TileTrap, 10, 0, OutcomeDeath, 0, 0, -10, 0},
		{"trap below zero clamps", world.TileTrap, 4, 0, OutcomeDeath, 0, 0, -4, 0},
		{"heal", world.TileHeal, 50, 0, OutcomeHealed, 60, 0, 10, 0},
		{"heal capped", world.TileHeal, 95, 0, OutcomeHealed, 100, 0, 5, 0},
		{"heal at full", world.TileHeal, 100, 0, OutcomeHealed, 100, 0, 0, 0},
		{"wall", world.TileWall, 100, 0, OutcomeBlocked, 100, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := newTestPlayer(tt.health, tt.money)
			result, after := Resolve(tt.tile, before)

			if result.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %v, want %v", result.Outcome, tt.wantOutcome)
			}
			if after.Health != tt.wantHealth {
				t.Errorf("Health = %d, want %d", after.Health, tt.wantHealth)
			}
			if after.Money != tt.wantMoney {
				t.Errorf("Money = %d, want %d", after.Money, tt.wantMoney)
			}
			if result.HealthDelta != tt.wantHDelta || result.MoneyDelta != tt.wantMDelta {
				t.Errorf("deltas = (%d, %d), want (%d, %d)",
					result.HealthDelta, result.MoneyDelta, tt.wantHDelta, tt.wantMDelta)
			}
			if result.Message == "" {
				t.Error("Message should not be empty")
			}
			// The input is a value and must be left alone
			if before.Health != tt.health || before.Money != tt.money {
				t.Error("Resolve should not modify its input")
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeNothing, "nothing"},
		{OutcomeTreasureFound, "treasure_found"},
		{OutcomeDamaged, "damaged"},
		{OutcomeHealed, "healed"},
		{OutcomeDeath, "death"},
		{OutcomeBlocked, "blocked"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}
