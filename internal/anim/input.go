package anim

import "github.com/iburimskiy/bouncing-cube/internal/config"

// Command is a keyboard request understood by the animation.
type Command uint8

const (
	CommandGrow Command = iota + 1
	CommandShrink
	CommandQuit
)

const keyEscape = 27

func (c Command) String() string {
	switch c {
	case CommandGrow:
		return "grow"
	case CommandShrink:
		return "shrink"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// CommandForRune maps a typed character to a command. ok is false for keys
// the animation ignores.
func CommandForRune(r rune) (cmd Command, ok bool) {
	switch r {
	case 'a', 'A':
		return CommandGrow, true
	case 'd', 'D':
		return CommandShrink, true
	case 'q', 'Q', keyEscape:
		return CommandQuit, true
	}
	return 0, false
}

// applyCommand resizes s for grow/shrink. It does not touch the oscillation
// direction. It reports whether cmd asks to quit.
func applyCommand(s *State, cmd Command) (quit bool) {
	switch cmd {
	case CommandGrow:
		s.Size = min(config.MaxSize, s.Size+config.SizeStep)
	case CommandShrink:
		s.Size = max(config.MinSize, s.Size-config.SizeStep)
	case CommandQuit:
		return true
	}
	return false
}
