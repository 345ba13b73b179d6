// Package evolve owns a grid and drives it with the frontier automata and the
// full-sheet Life rule in response to commands.
package evolve

import (
	"fmt"

	"ca-sheet/internal/core"
	"ca-sheet/internal/sims/elementary"
	"ca-sheet/internal/sims/life"
)

// Rule selects the transition applied on the next command.
type Rule uint8

const (
	RuleNone Rule = iota
	Rule30
	Rule110
	RuleLife
)

func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case Rule30:
		return "rule30"
	case Rule110:
		return "rule110"
	case RuleLife:
		return "life"
	default:
		return fmt.Sprintf("Rule(%d)", uint8(r))
	}
}

func (r Rule) elementary() (elementary.Rule, bool) {
	switch r {
	case Rule30:
		return elementary.Rule30, true
	case Rule110:
		return elementary.Rule110, true
	default:
		return 0, false
	}
}

// State is the controller state entered by the last command.
type State uint8

const (
	StateIdle State = iota
	StateFrontierAdvancing
	StateGenerationStepping
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFrontierAdvancing:
		return "advancing"
	case StateGenerationStepping:
		return "stepping"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Controller exclusively owns and mutates a grid. It is not safe for
// concurrent use; every call runs to completion synchronously.
type Controller struct {
	cfg  Config
	grid *core.Grid
	rng  *core.RNG

	frontier   int
	generation int
	active     Rule
	state      State
	mode       Mode
}

// New builds a controller and seeds its grid for the configured mode.
func New(cfg Config) *Controller {
	c := &Controller{
		cfg:  cfg,
		grid: core.NewGrid(cfg.Rows, cfg.Cols),
		rng:  core.NewRNG(cfg.Seed),
		mode: cfg.Mode,
	}
	c.Reset(true)
	return c
}

// AdvanceFrontier derives the row below the frontier with a 1D rule and moves
// the frontier down. When the frontier already sits on the last row the grid
// is cleared, row 0 reseeded and the frontier rewound instead. Rules other
// than Rule30 and Rule110 are ignored.
func (c *Controller) AdvanceFrontier(rule Rule) {
	code, ok := rule.elementary()
	if !ok {
		return
	}
	c.active = rule
	c.mode = ModeFrontier
	c.state = StateFrontierAdvancing
	if c.frontier >= c.grid.Rows()-1 {
		c.grid.Clear()
		seedRow(c.grid, c.rng, 0)
		c.frontier = 0
		return
	}
	elementary.Next(c.grid, c.frontier, code)
	c.frontier++
}

// StepGeneration runs one synchronous Life generation over the whole grid.
func (c *Controller) StepGeneration() {
	c.active = RuleLife
	c.mode = ModeSheet
	c.state = StateGenerationStepping
	life.Stage(c.grid)
	c.grid.Publish()
	c.generation++
}

// Reset kills every cell and rewinds the frontier and generation counters.
// With reseed, sheet mode randomizes rows chosen by the reseed policy and
// frontier mode randomizes row 0.
func (c *Controller) Reset(reseed bool) {
	c.grid.Clear()
	c.frontier = 0
	c.generation = 0
	c.state = StateIdle
	if !reseed {
		return
	}
	if c.mode == ModeSheet {
		seedSheet(c.grid, c.rng, c.cfg.Policy)
		return
	}
	seedRow(c.grid, c.rng, 0)
}

// ToggleCell flips one cell. Out-of-bounds coordinates are ignored and
// reported as false.
func (c *Controller) ToggleCell(row, col int) bool {
	if !c.grid.InBounds(row, col) {
		return false
	}
	c.grid.Toggle(row, col)
	return true
}

// Alive reports the current state of (row, col); out-of-bounds cells are dead.
func (c *Controller) Alive(row, col int) bool {
	return c.grid.InBounds(row, col) && c.grid.Alive(row, col)
}

// Snapshot returns an independent copy of the grid.
func (c *Controller) Snapshot() *core.Grid { return c.grid.Clone() }

// Name identifies the active rule.
func (c *Controller) Name() string { return c.active.String() }

// Size returns the grid dimensions.
func (c *Controller) Size() core.Size { return c.grid.Size() }

// Cells exposes the current generation for rendering. Callers must not
// mutate it.
func (c *Controller) Cells() []uint8 { return c.grid.Cells() }

// Rows returns the number of rows.
func (c *Controller) Rows() int { return c.grid.Rows() }

// Cols returns the number of columns.
func (c *Controller) Cols() int { return c.grid.Cols() }

// Population counts live cells.
func (c *Controller) Population() int { return c.grid.Population() }

// Frontier returns the row the next frontier rule reads from.
func (c *Controller) Frontier() int { return c.frontier }

// Generation counts Life steps since the last reset.
func (c *Controller) Generation() int { return c.generation }

// Active returns the most recently applied rule.
func (c *Controller) Active() Rule { return c.active }

// State returns the state entered by the last command.
func (c *Controller) State() State { return c.state }

// Mode returns the current reseed mode.
func (c *Controller) Mode() Mode { return c.mode }

// Policy returns the full-sheet reseed policy.
func (c *Controller) Policy() ReseedPolicy { return c.cfg.Policy }

// Parameters describes the controller for status displays.
func (c *Controller) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Automaton",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", c.active.String()),
				core.StringParam("mode", "Mode", c.mode.String()),
				core.StringParam("state", "State", c.state.String()),
				core.StringParam("policy", "Reseed", c.cfg.Policy.String()),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("frontier", "Frontier", c.frontier),
				core.IntParam("generation", "Generation", c.generation),
				core.IntParam("population", "Population", c.Population()),
			},
		},
	}}
}

var _ core.View = (*Controller)(nil)
