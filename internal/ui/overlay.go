//go:build ebiten

package ui

import (
	"image/color"

	"ca-sheet/internal/evolve"
	"ca-sheet/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type frontierSource interface {
	Rows() int
	Cols() int
	Frontier() int
	Mode() evolve.Mode
}

// Overlay draws the pointer highlight and the frontier marker on top of the
// grid.
type Overlay struct {
	src          frontierSource
	cell         int
	showHover    bool
	showFrontier bool

	hoverRow, hoverCol int
	hovering           bool
}

// NewOverlay constructs an overlay for src drawn at cell pixels per tile.
func NewOverlay(src frontierSource, cell int) *Overlay {
	return &Overlay{src: src, cell: cell, showHover: true, showFrontier: true}
}

// Update handles toggles and tracks the cell under the pointer.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHover = !o.showHover
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showFrontier = !o.showFrontier
	}
	x, y := ebiten.CursorPosition()
	o.hoverRow, o.hoverCol, o.hovering = render.CellAt(x, y, o.cell, o.src.Rows(), o.src.Cols())
}

// Draw paints the enabled overlays.
func (o *Overlay) Draw(screen *ebiten.Image) {
	cell := float32(o.cell)
	if o.showFrontier && o.src.Mode() == evolve.ModeFrontier {
		y := float32(o.src.Frontier())*cell + cell
		vector.DrawFilledRect(screen, 0, y-1, float32(o.src.Cols())*cell, 2, frontierColor, false)
	}
	if o.showHover && o.hovering {
		x, y := float32(o.hoverCol)*cell, float32(o.hoverRow)*cell
		vector.StrokeRect(screen, x, y, cell, cell, 2, hoverColor, false)
	}
}

var (
	frontierColor = color.RGBA{R: 40, G: 110, B: 255, A: 200}
	hoverColor    = color.RGBA{R: 255, G: 210, B: 0, A: 255}
)
