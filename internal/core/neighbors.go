package core

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Horizontal returns the wrapped left and right neighbor columns of col.
func Horizontal(col, cols int) (left, right int) {
	left, right = col-1, col+1
	if col == 0 {
		left = cols - 1
	}
	if col == cols-1 {
		right = 0
	}
	return left, right
}

// Moore returns the 8 toroidally wrapped neighbors of (row, col) in the order
// N, NE, E, SE, S, SW, W, NW. Input must be in range.
func Moore(row, col, rows, cols int) [8]Coord {
	up, down := row-1, row+1
	if row == 0 {
		up = rows - 1
	}
	if row == rows-1 {
		down = 0
	}
	left, right := Horizontal(col, cols)
	return [8]Coord{
		{up, col},
		{up, right},
		{row, right},
		{down, right},
		{down, col},
		{down, left},
		{row, left},
		{up, left},
	}
}

func wrap(i, n int) int { return (i%n + n) % n }
