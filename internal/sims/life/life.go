// Package life implements Conway's Game of Life over a toroidal core.Grid.
package life

import (
	"ca-sheet/internal/core"
)

// NextState applies the B3/S23 rule to a cell with n live neighbors.
func NextState(alive bool, n int) bool {
	return (alive && (n == 2 || n == 3)) || (!alive && n == 3)
}

// Neighbors counts live Moore neighbors of (row, col) with toroidal wrap.
func Neighbors(g *core.Grid, row, col int) int {
	n := 0
	for _, c := range core.Moore(row, col, g.Rows(), g.Cols()) {
		if g.Alive(c.Row, c.Col) {
			n++
		}
	}
	return n
}

// Successor computes the next state of one cell from the current generation.
func Successor(g *core.Grid, row, col int) bool {
	return NextState(g.Alive(row, col), Neighbors(g, row, col))
}

// Stage computes the whole next generation into the grid's staged buffer.
// The current generation is only read, so visiting order does not matter.
func Stage(g *core.Grid) {
	rows, cols := g.Rows(), g.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.Stage(row, col, Successor(g, row, col))
		}
	}
}

// Step advances the grid by one generation.
func Step(g *core.Grid) {
	Stage(g)
	g.Publish()
}
