package remote

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is what a remote command asks the presentation to do.
type Action int

const (
	Forward Action = iota
	Backward
	Jump
	Reset
)

// String returns the string representation of Action
func (a Action) String() string {
	switch a {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Jump:
		return "jump"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Command is a parsed command payload.
type Command struct {
	Action Action
	Slide  int // zero based, Jump only
}

// ParseCommand reads a payload such as "next", "prev", "jump 3" or "reset".
// Slide numbers in payloads start at 1.
func ParseCommand(payload string) (Command, error) {
	fields := strings.Fields(strings.ToLower(payload))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	switch fields[0] {
	case "next", "forward":
		return Command{Action: Forward}, nil
	case "prev", "previous", "backward", "back":
		return Command{Action: Backward}, nil
	case "reset":
		return Command{Action: Reset}, nil
	case "jump", "goto":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("jump needs a slide number")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 1 {
			return Command{}, fmt.Errorf("invalid slide number %q", fields[1])
		}
		return Command{Action: Jump, Slide: n - 1}, nil
	}
	return Command{}, fmt.Errorf("unknown command %q", fields[0])
}
