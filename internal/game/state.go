// Package game runs a FogMaze session and its terminal loop.
package game

// State represents where a session is in its lifecycle.
type State int

const (
	// StateActive accepts moves.
	StateActive State = iota
	// StateDead is terminal until Reset: moves are rejected.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
