package evolve

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Op enumerates controller commands.
type Op uint8

const (
	OpNone Op = iota
	OpRule110
	OpRule30
	OpStep
	OpReset
	OpClear
	OpToggle
	OpQuit
)

var opNames = map[string]Op{
	"rule110": OpRule110,
	"q":       OpRule110,
	"rule30":  OpRule30,
	"w":       OpRule30,
	"step":    OpStep,
	"g":       OpStep,
	"reset":   OpReset,
	"r":       OpReset,
	"clear":   OpClear,
	"quit":    OpQuit,
}

// Command is one input to the controller. Row and Col are used by OpToggle.
type Command struct {
	Op       Op
	Row, Col int
}

// Toggle builds an OpToggle command.
func Toggle(row, col int) Command { return Command{Op: OpToggle, Row: row, Col: col} }

// Dispatch applies cmd and reports whether it asked to quit.
func (c *Controller) Dispatch(cmd Command) (quit bool) {
	switch cmd.Op {
	case OpRule110:
		c.AdvanceFrontier(Rule110)
	case OpRule30:
		c.AdvanceFrontier(Rule30)
	case OpStep:
		c.StepGeneration()
	case OpReset:
		c.Reset(true)
	case OpClear:
		c.Reset(false)
	case OpToggle:
		c.ToggleCell(cmd.Row, cmd.Col)
	case OpQuit:
		return true
	}
	return false
}

// ParseScript turns a whitespace separated command list into commands.
// Tokens are rule110 (q), rule30 (w), step (g), reset (r), clear, quit and
// toggle=ROW,COL; any token may carry a *N repeat suffix.
func ParseScript(script string) ([]Command, error) {
	var (
		cmds []Command
		err  error
	)
	for _, tok := range strings.Fields(script) {
		cmd, n, perr := parseToken(tok)
		if perr != nil {
			err = multierr.Append(err, perr)
			continue
		}
		for i := 0; i < n; i++ {
			cmds = append(cmds, cmd)
		}
	}
	if err != nil {
		return nil, err
	}
	return cmds, nil
}

func parseToken(tok string) (Command, int, error) {
	word, count := tok, 1
	if i := strings.LastIndexByte(tok, '*'); i >= 0 {
		n, err := strconv.Atoi(tok[i+1:])
		if err != nil || n < 1 {
			return Command{}, 0, fmt.Errorf("%q: bad repeat count", tok)
		}
		word, count = tok[:i], n
	}
	word = strings.ToLower(word)
	if op, ok := opNames[word]; ok {
		return Command{Op: op}, count, nil
	}
	if args, ok := strings.CutPrefix(word, "toggle="); ok {
		rs, cs, found := strings.Cut(args, ",")
		row, rerr := strconv.Atoi(rs)
		col, cerr := strconv.Atoi(cs)
		if !found || rerr != nil || cerr != nil {
			return Command{}, 0, fmt.Errorf("%q: want toggle=ROW,COL", tok)
		}
		return Toggle(row, col), count, nil
	}
	return Command{}, 0, fmt.Errorf("%q: unknown command", tok)
}
