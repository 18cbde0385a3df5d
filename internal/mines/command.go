package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Action uint8

const (
	Reveal Action = iota + 1
	Mark
)

func (a Action) String() string {
	switch a {
	case Reveal:
		return "free"
	case Mark:
		return "mine"
	default:
		return "Action(" + strconv.Itoa(int(a)) + ")"
	}
}

// ParseAction accepts the terminal words "free" and "mine" as well as the
// "reveal"/"open" and "mark"/"flag" spellings used by the HTTP API.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free", "reveal", "open":
		return Reveal, nil
	case "mine", "mark", "flag":
		return Mark, nil
	default:
		return 0, badAction()
	}
}

type Command struct {
	X, Y   int
	Action Action
}

func (c Command) String() string {
	return fmt.Sprintf("%d %d %s", c.X, c.Y, c.Action)
}

// ParseCommand reads a command of the form "x y free" or "x y mine".
func ParseCommand(line string) (cmd Command, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return cmd, invalidCommand("x must be integer number")
	}
	if cmd.X, err = strconv.Atoi(fields[0]); err != nil {
		return cmd, invalidCommand("x must be integer number")
	}
	if len(fields) < 2 {
		return cmd, invalidCommand("y must be integer number")
	}
	if cmd.Y, err = strconv.Atoi(fields[1]); err != nil {
		return cmd, invalidCommand("y must be integer number")
	}
	if len(fields) != 3 {
		return cmd, badAction()
	}
	cmd.Action, err = ParseAction(fields[2])
	return cmd, err
}
