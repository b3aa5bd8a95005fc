package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fogmaze/internal/world"
)

// Command is one discrete player input.
type Command int

const (
	// CommandNone is anything the game does not understand. It is a no-op.
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveRight
	CommandMoveDown
	CommandMoveLeft
	CommandReset
	CommandRevealAll
	CommandQuit
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandMoveUp:
		return "move_up"
	case CommandMoveRight:
		return "move_right"
	case CommandMoveDown:
		return "move_down"
	case CommandMoveLeft:
		return "move_left"
	case CommandReset:
		return "reset"
	case CommandRevealAll:
		return "reveal_all"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction returns the move direction for a move command.
func (c Command) Direction() (world.Direction, bool) {
	switch c {
	case CommandMoveUp:
		return world.Up, true
	case CommandMoveRight:
		return world.Right, true
	case CommandMoveDown:
		return world.Down, true
	case CommandMoveLeft:
		return world.Left, true
	default:
		return 0, false
	}
}

// CommandForKey maps a key press to a command: WASD or arrows move, r
// resets, c clears the fog, Esc / q / Ctrl-C quit.
func CommandForKey(key tcell.Key, ch rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyUp:
		return CommandMoveUp
	case tcell.KeyRight:
		return CommandMoveRight
	case tcell.KeyDown:
		return CommandMoveDown
	case tcell.KeyLeft:
		return CommandMoveLeft
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return CommandMoveUp
		case 'd', 'D':
			return CommandMoveRight
		case 's', 'S':
			return CommandMoveDown
		case 'a', 'A':
			return CommandMoveLeft
		case 'r', 'R':
			return CommandReset
		case 'c', 'C':
			return CommandRevealAll
		case 'q', 'Q':
			return CommandQuit
		}
	}
	return CommandNone
}
