// Package elementary implements one-dimensional Wolfram-code automata that
// extend a sheet downward one row at a time.
package elementary

import "ca-sheet/internal/core"

// Rule is a Wolfram code: bit l<<2|c<<1|r holds the successor of the
// neighborhood (l, c, r).
type Rule uint8

const (
	// Rule30 is alive exactly when left XOR (center OR right).
	Rule30 Rule = 30
	// Rule110 is dead only for 111, 100 and 000.
	Rule110 Rule = 110
)

// Apply returns the successor state of a cell with the given neighborhood.
func (r Rule) Apply(left, center, right bool) bool {
	idx := b2u(left)<<2 | b2u(center)<<1 | b2u(right)
	return (uint8(r)>>idx)&1 == 1
}

// Next derives row src+1 from row src with horizontal wraparound. Only row
// src is read and only row src+1 is written. src must be below the last row.
func Next(g *core.Grid, src int, rule Rule) {
	cols := g.Cols()
	for col := 0; col < cols; col++ {
		left, right := core.Horizontal(col, cols)
		g.Set(src+1, col, rule.Apply(g.Alive(src, left), g.Alive(src, col), g.Alive(src, right)))
	}
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
