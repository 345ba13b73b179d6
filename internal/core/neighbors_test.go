package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMooreStaysInRange(t *testing.T) {
	for rows := 2; rows <= 7; rows++ {
		for cols := 2; cols <= 7; cols++ {
			g := NewGrid(rows, cols)
			for row := 0; row < rows; row++ {
				for col := 0; col < cols; col++ {
					for _, n := range Moore(row, col, rows, cols) {
						require.True(t, g.InBounds(n.Row, n.Col),
							"%dx%d: neighbor %v of (%d,%d) out of range", rows, cols, n, row, col)
					}
					left, right := Horizontal(col, cols)
					require.True(t, left >= 0 && left < cols && right >= 0 && right < cols)
				}
			}
		}
	}
}

func TestMooreMatchesModularWrap(t *testing.T) {
	rows, cols := 4, 6
	g := NewGrid(rows, cols)
	offsets := [8][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			got := Moore(row, col, rows, cols)
			for i, d := range offsets {
				r, c := g.Wrap(row+d[0], col+d[1])
				assert.Equal(t, Coord{r, c}, got[i], "(%d,%d) offset %v", row, col, d)
			}
		}
	}
}

func TestCornerNeighborsWrap(t *testing.T) {
	rows, cols := 5, 3
	has := func(list [8]Coord, want Coord) bool {
		for _, c := range list {
			if c == want {
				return true
			}
		}
		return false
	}
	origin := Coord{0, 0}
	assert.True(t, has(Moore(rows-1, 0, rows, cols), origin))
	assert.True(t, has(Moore(0, cols-1, rows, cols), origin))
	assert.True(t, has(Moore(rows-1, cols-1, rows, cols), origin))

	left, right := Horizontal(0, cols)
	assert.Equal(t, cols-1, left)
	assert.Equal(t, 1, right)
	left, right = Horizontal(cols-1, cols)
	assert.Equal(t, cols-2, left)
	assert.Equal(t, 0, right)
}
