//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"ca-sheet/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the grid view.
type HUD struct {
	source     core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	setter       core.IntParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided source and panel width. A zero
// width disables the panel.
func NewHUD(source core.ParameterProvider, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{source: source, width: width, title: title}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := source.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := source.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Update refreshes the cached snapshot and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.source.Parameters()
	h.layoutControls()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawParameters()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, group := range h.snapshot.Groups {
		y += groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		for _, p := range group.Params {
			y += paramLineHeight
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			w := text.BoundString(face, p.Value).Dx()
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-w, y, valueColor)
		}
	}
}

func (h *HUD) parametersBottom() int {
	y := panelPadding + headerBaseline
	for _, group := range h.snapshot.Groups {
		y += groupSpacing + len(group.Params)*paramLineHeight
	}
	return y
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if image.Pt(px, my).In(state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if image.Pt(px, my).In(state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) target(state *hudControlState, direction int) (int, bool) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if target < state.control.Min {
		target = state.control.Min
	}
	if target > state.control.Max {
		target = state.control.Max
	}
	return target, h.setter != nil && target != state.intValue
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	target, ok := h.target(state, direction)
	if !ok {
		return
	}
	if h.setter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		clr := valueColor
		if !state.hasValue {
			clr = disabledColor
		}
		w := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-w, labelY, clr)

		_, minusOK := h.target(state, -1)
		_, plusOK := h.target(state, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && minusOK)
		h.drawButton(state.plusRect, "+", state.hasValue && plusOK)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = disabledColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	top := h.parametersBottom() + groupSpacing
	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	titleColor    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor    = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	labelColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	valueColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	disabledColor = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const (
	panelPadding    = 12
	lineHeight      = 36
	paramLineHeight = 16
	groupSpacing    = 24
	buttonSize      = 24
	buttonGap       = 6
	headerBaseline  = 18
	labelBaseline   = 24
)
