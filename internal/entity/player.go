// Package entity provides the player and its stats.
package entity

import "github.com/samdwyer/fogmaze/internal/world"

// MaxHealth is the health a player starts and resets with.
const MaxHealth = 100

// Player holds the explorer's stats. Pos is a cached copy of the world's
// player position and is resynchronised after every move.
type Player struct {
	Health    int
	MaxHealth int
	Money     int
	Pos       world.Position
}

// NewPlayer creates a player at full health carrying the given money.
func NewPlayer(pos world.Position, money int) Player {
	if money < 0 {
		money = 0
	}
	return Player{
		Health:    MaxHealth,
		MaxHealth: MaxHealth,
		Money:     money,
		Pos:       pos,
	}
}

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// TakeDamage reduces health, never below zero, and returns the actual
// damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}

// Heal restores health up to MaxHealth and returns the actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.Health+actual > p.MaxHealth {
		actual = p.MaxHealth - p.Health
	}
	p.Health += actual
	return actual
}

// AddMoney adds a non-negative amount and returns it.
func (p *Player) AddMoney(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.Money += amount
	return amount
}
