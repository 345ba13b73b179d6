package render

import "image/color"

// Palette holds the colors used to paint tiles.
type Palette struct {
	On      color.Color
	Off     color.Color
	Outline color.Color
}

// DefaultPalette paints live cells white and dead cells red with black
// tile outlines.
func DefaultPalette() Palette {
	return Palette{
		On:      color.White,
		Off:     color.RGBA{R: 255, A: 255},
		Outline: color.Black,
	}
}

// fillTileRGBA converts binary cell data (0/1) laid out as cols columns into
// RGBA pixels in buf, drawing each cell as a tile x tile square. Tiles larger
// than two pixels get a one pixel outline on their top and left edges.
func fillTileRGBA(buf []byte, cells []uint8, cols, tile int, p Palette) {
	on, off, outline := rgba(p.On), rgba(p.Off), rgba(p.Outline)
	if tile < 1 {
		tile = 1
	}
	stride := cols * tile
	rows := len(cells) / cols
	for py := 0; py < rows*tile; py++ {
		row := py / tile
		for px := 0; px < stride; px++ {
			col := px / tile
			pix := off
			switch {
			case tile > 2 && (px%tile == 0 || py%tile == 0):
				pix = outline
			case cells[row*cols+col] != 0:
				pix = on
			}
			base := (py*stride + px) * 4
			copy(buf[base:base+4], pix[:])
		}
	}
}

// CellAt maps a pixel position inside the grid image to (row, col). ok is
// false when the position falls outside a grid of rows x cols tiles.
func CellAt(x, y, tile, rows, cols int) (row, col int, ok bool) {
	if tile < 1 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/tile, x/tile
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
