package core

// Grid stores the cells of a toroidal sheet in row-major order. Each cell has
// a current alive state and a staged next state used by synchronous rules.
type Grid struct {
	rows, cols int
	alive      []uint8
	next       []uint8
}

// NewGrid allocates an all-dead grid. Dimensions below 2 are clamped to 2.
func NewGrid(rows, cols int) *Grid {
	if rows < 2 {
		rows = 2
	}
	if cols < 2 {
		cols = 2
	}
	total := rows * cols
	return &Grid{rows: rows, cols: cols, alive: make([]uint8, total), next: make([]uint8, total)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size reports the grid dimensions with W as columns and H as rows.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	return wrap(row, g.rows), wrap(col, g.cols)
}

// Alive reports the current state of (row, col).
func (g *Grid) Alive(row, col int) bool { return g.alive[g.Index(row, col)] != 0 }

// Set assigns the current state of (row, col).
func (g *Grid) Set(row, col int, alive bool) { g.alive[g.Index(row, col)] = b2u(alive) }

// Toggle flips the current state of (row, col).
func (g *Grid) Toggle(row, col int) {
	idx := g.Index(row, col)
	g.alive[idx] ^= 1
}

// Stage records the next state of (row, col) without touching the current
// generation.
func (g *Grid) Stage(row, col int, alive bool) { g.next[g.Index(row, col)] = b2u(alive) }

// Publish makes the staged generation current. Every cell must have been
// staged since the previous Publish.
func (g *Grid) Publish() { g.alive, g.next = g.next, g.alive }

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.alive {
		g.alive[i] = 0
	}
}

// Cells exposes the current generation as 0/1 bytes. Callers must not
// mutate the returned slice.
func (g *Grid) Cells() []uint8 { return g.alive }

// Row exposes one row of the current generation.
func (g *Grid) Row(row int) []uint8 {
	start := row * g.cols
	return g.alive[start : start+g.cols]
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.alive {
		n += int(c)
	}
	return n
}

// Clone returns an independent copy of the current generation.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.alive, g.alive)
	return c
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
