// Package interaction decides what happens when the player enters a tile.
package interaction

import (
	"github.com/samdwyer/fogmaze/internal/entity"
	"github.com/samdwyer/fogmaze/internal/world"
)

const (
	// TreasureReward is the money gained from the treasure.
	TreasureReward = 1000
	// TrapDamage is the health lost on a trap.
	TrapDamage = 10
	// HealAmount is the health restored on a heal tile.
	HealAmount = 10
)

// Outcome tags the result of an attempted move.
type Outcome int

const (
	// OutcomeNothing - stepped onto an empty cell
	OutcomeNothing Outcome = iota
	// OutcomeTreasureFound - collected the treasure
	OutcomeTreasureFound
	// OutcomeDamaged - stepped on a trap and survived
	OutcomeDamaged
	// OutcomeHealed - stepped on a heal tile
	OutcomeHealed
	// OutcomeDeath - a trap brought health to zero
	OutcomeDeath
	// OutcomeBlocked - walked into a wall, nothing moved
	OutcomeBlocked
)

// String returns a short outcome name for logs and traces.
func (o Outcome) String() string {
	switch o {
	case OutcomeNothing:
		return "nothing"
	case OutcomeTreasureFound:
		return "treasure_found"
	case OutcomeDamaged:
		return "damaged"
	case OutcomeHealed:
		return "healed"
	case OutcomeDeath:
		return "death"
	case OutcomeBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of entering a tile plus the stat changes
// it caused.
type Result struct {
	Outcome     Outcome
	HealthDelta int    // Signed change in health
	MoneyDelta  int    // Change in money
	Message     string // Human-readable description
}

// Resolve decides what entering a tile does to the player. It works on a
// copy of the player and returns the updated copy; it never touches the
// grid or the fog.
func Resolve(tile world.TileKind, p entity.Player) (Result, entity.Player) {
	switch tile {
	case world.TileTreasure:
		gained := p.AddMoney(TreasureReward)
		return Result{
			Outcome:    OutcomeTreasureFound,
			MoneyDelta: gained,
			Message:    "TREASURE!",
		}, p

	case world.TileTrap:
		taken := p.TakeDamage(TrapDamage)
		result := Result{
			Outcome:     OutcomeDamaged,
			HealthDelta: -taken,
			Message:     "Trap!",
		}
		if !p.IsAlive() {
			result.Outcome = OutcomeDeath
			result.Message = "Trap! You died."
		}
		return result, p

	case world.TileHeal:
		healed := p.Heal(HealAmount)
		return Result{
			Outcome:     OutcomeHealed,
			HealthDelta: healed,
			Message:     "Heal!",
		}, p

	case world.TileWall:
		return Result{Outcome: OutcomeBlocked, Message: "There's a wall in the way."}, p

	default:
		return Result{Outcome: OutcomeNothing, Message: "Nothing here..."}, p
	}
}
