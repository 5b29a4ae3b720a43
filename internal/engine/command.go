package engine

// Command is a logical input to the engine. The platform layer translates
// raw key events into commands and queues them between ticks; the engine
// consumes them in submission order at the start of each update, so a
// rotate-then-move pair lands exactly as the player entered it.
type Command uint8

const (
	CommandMoveLeft Command = iota
	CommandMoveRight
	CommandRotateCW
	CommandRotateCCW
	CommandSoftDrop
	CommandHardDrop
	CommandReset
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "MoveLeft"
	case CommandMoveRight:
		return "MoveRight"
	case CommandRotateCW:
		return "RotateCW"
	case CommandRotateCCW:
		return "RotateCCW"
	case CommandSoftDrop:
		return "SoftDrop"
	case CommandHardDrop:
		return "HardDrop"
	case CommandReset:
		return "Reset"
	default:
		return "Unknown"
	}
}
