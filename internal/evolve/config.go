package evolve

import (
	"fmt"

	"go.uber.org/multierr"
)

// ReseedPolicy selects which rows a full-sheet reseed randomizes.
type ReseedPolicy uint8

const (
	// EvenRowsOnly seeds rows 0, 2, 4, ...
	EvenRowsOnly ReseedPolicy = iota
	// EveryRow seeds every row.
	EveryRow
	// FirstRowOnly seeds row 0 alone.
	FirstRowOnly
)

var policyNames = map[ReseedPolicy]string{
	EvenRowsOnly: "even",
	EveryRow:     "every",
	FirstRowOnly: "first",
}

func (p ReseedPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("ReseedPolicy(%d)", uint8(p))
}

// Includes reports whether row is seeded under the policy.
func (p ReseedPolicy) Includes(row int) bool {
	switch p {
	case EveryRow:
		return true
	case FirstRowOnly:
		return row == 0
	default:
		return row%2 == 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ReseedPolicy) MarshalText() ([]byte, error) {
	if _, ok := policyNames[p]; !ok {
		return nil, fmt.Errorf("unknown reseed policy %d", uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ReseedPolicy) UnmarshalText(text []byte) error {
	for policy, name := range policyNames {
		if name == string(text) {
			*p = policy
			return nil
		}
	}
	return fmt.Errorf("unknown reseed policy %q (want even, every or first)", text)
}

// Mode distinguishes the full-sheet automaton from the frontier automata.
type Mode uint8

const (
	// ModeSheet evolves the whole grid with the Life rule.
	ModeSheet Mode = iota
	// ModeFrontier grows the grid downward one row at a time.
	ModeFrontier
)

func (m Mode) String() string {
	switch m {
	case ModeSheet:
		return "sheet"
	case ModeFrontier:
		return "frontier"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeSheet && m != ModeFrontier {
		return nil, fmt.Errorf("unknown mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "sheet":
		*m = ModeSheet
	case "frontier":
		*m = ModeFrontier
	default:
		return fmt.Errorf("unknown mode %q (want sheet or frontier)", text)
	}
	return nil
}

// Config holds the parameters of an evolution session.
type Config struct {
	Rows   int
	Cols   int
	Policy ReseedPolicy
	Mode   Mode
	Seed   int64
}

// DefaultConfig returns a 72x128 sheet seeded on even rows.
func DefaultConfig() Config {
	return Config{Rows: 72, Cols: 128, Policy: EvenRowsOnly, Mode: ModeSheet, Seed: 1}
}

// Validate reports every out-of-range field.
func (c Config) Validate() error {
	var err error
	if c.Rows < 2 {
		err = multierr.Append(err, fmt.Errorf("rows must be at least 2, got %d", c.Rows))
	}
	if c.Cols < 2 {
		err = multierr.Append(err, fmt.Errorf("cols must be at least 2, got %d", c.Cols))
	}
	if _, ok := policyNames[c.Policy]; !ok {
		err = multierr.Append(err, fmt.Errorf("unknown reseed policy %d", uint8(c.Policy)))
	}
	if c.Mode != ModeSheet && c.Mode != ModeFrontier {
		err = multierr.Append(err, fmt.Errorf("unknown mode %d", uint8(c.Mode)))
	}
	return err
}
