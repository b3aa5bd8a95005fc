package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a position lies outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrDuplicateTile is returned when a Set would create a second
	// player or treasure cell.
	ErrDuplicateTile = errors.New("tile must be unique")
	// ErrInvalidTile is returned when a Set uses a kind that cannot be
	// stored, such as TileUnknown.
	ErrInvalidTile = errors.New("invalid tile kind")
)

// ConfigError reports invalid construction parameters. It is fatal at
// construction time: no partial world or session is created.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
