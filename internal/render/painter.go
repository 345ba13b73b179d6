//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	cols, rows, tile int
	palette          Palette
	img              *ebiten.Image
	buf              []byte
}

// NewGridPainter allocates a painter for a rows x cols grid drawn with
// tile-sized squares.
func NewGridPainter(cols, rows, tile int, palette Palette) *GridPainter {
	if tile < 1 {
		tile = 1
	}
	w, h := cols*tile, rows*tile
	return &GridPainter{
		cols:    cols,
		rows:    rows,
		tile:    tile,
		palette: palette,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
	}
}

// Blit uploads the provided cells into the painter image and draws it at the
// origin of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	if len(cells) != gp.cols*gp.rows {
		return
	}
	fillTileRGBA(gp.buf, cells, gp.cols, gp.tile, gp.palette)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the pixel dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.cols * gp.tile, gp.rows * gp.tile }
