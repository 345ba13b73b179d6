package evolve

import "ca-sheet/internal/core"

// seedRow makes each cell of row alive with probability 1/2.
func seedRow(g *core.Grid, rng *core.RNG, row int) {
	for col := 0; col < g.Cols(); col++ {
		g.Set(row, col, rng.Coin())
	}
}

// seedSheet applies seedRow to every row the policy includes.
func seedSheet(g *core.Grid, rng *core.RNG, policy ReseedPolicy) {
	for row := 0; row < g.Rows(); row++ {
		if policy.Includes(row) {
			seedRow(g, rng, row)
		}
	}
}
