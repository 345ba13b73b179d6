package render

import (
	"bufio"
	"io"

	"ca-sheet/internal/core"
)

// WriteText prints the view one row per line using on for live cells and off
// for dead ones.
func WriteText(w io.Writer, v core.View, on, off byte) error {
	size := v.Size()
	cells := v.Cells()
	bw := bufio.NewWriter(w)
	line := make([]byte, size.W+1)
	line[size.W] = '\n'
	for row := 0; row < size.H; row++ {
		for col, c := range cells[row*size.W : (row+1)*size.W] {
			line[col] = off
			if c != 0 {
				line[col] = on
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
