//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"ca-sheet/internal/core"
	"ca-sheet/internal/evolve"
	"ca-sheet/internal/render"
	"ca-sheet/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var bindings = []struct {
	key ebiten.Key
	cmd evolve.Command
}{
	{ebiten.KeyQ, evolve.Command{Op: evolve.OpRule110}},
	{ebiten.KeyW, evolve.Command{Op: evolve.OpRule30}},
	{ebiten.KeyG, evolve.Command{Op: evolve.OpStep}},
	{ebiten.KeyR, evolve.Command{Op: evolve.OpReset}},
	{ebiten.KeyC, evolve.Command{Op: evolve.OpClear}},
	{ebiten.KeyEscape, evolve.Command{Op: evolve.OpQuit}},
}

// Game adapts an evolution controller to the ebiten.Game interface.
type Game struct {
	ctl     *evolve.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	cell     int
	hudWidth int
	stepTPS  int
	auto     bool
}

// New constructs a Game for the provided controller.
func New(ctl *evolve.Controller, cfg *Config) *Game {
	g := &Game{
		ctl:      ctl,
		painter:  render.NewGridPainter(ctl.Cols(), ctl.Rows(), cfg.Cell, render.DefaultPalette()),
		overlay:  ui.NewOverlay(ctl, cfg.Cell),
		pacer:    core.NewFixedStep(cfg.StepTPS),
		cell:     cfg.Cell,
		hudWidth: cfg.HUDWidth,
		stepTPS:  cfg.StepTPS,
		auto:     cfg.Auto,
	}
	g.hud = ui.NewHUD(g, "Cellular Automata", cfg.HUDWidth)
	return g
}

// Update handles per-frame input and paces automatic generation steps.
func (g *Game) Update() error {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) && g.ctl.Dispatch(b.cmd) {
			return ebiten.Termination
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.auto = !g.auto
		g.pacer.Restart()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := render.CellAt(x, y, g.cell, g.ctl.Rows(), g.ctl.Cols()); ok {
			g.ctl.Dispatch(evolve.Toggle(row, col))
		}
	}

	gridW, _ := g.painter.Size()
	g.hud.Update(gridW)
	g.overlay.Update()

	if g.auto && g.pacer.ShouldStep() {
		g.ctl.StepGeneration()
	}
	return nil
}

// Draw renders the current grid, overlay and status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	g.painter.Blit(screen, g.ctl.Cells())
	g.overlay.Draw(screen)
	gridW, gridH := g.painter.Size()
	g.hud.Draw(screen, gridW, gridH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + g.hudWidth, h
}

// Parameters merges the controller status with playback settings.
func (g *Game) Parameters() core.ParameterSnapshot {
	snap := g.ctl.Parameters()
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Playback",
		Params: []core.Parameter{
			core.BoolParam("auto", "Auto step", g.auto),
			core.IntParam("step_tps", "Steps/s", g.stepTPS),
		},
	})
	return snap
}

// ParameterControls exposes the adjustable playback rate.
func (g *Game) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{Key: "step_tps", Label: "Steps/s", Step: 1, Min: 1, Max: maxStepTPS}}
}

// SetIntParameter updates the playback rate from the HUD.
func (g *Game) SetIntParameter(key string, value int) bool {
	if key != "step_tps" || value < 1 || value > maxStepTPS {
		return false
	}
	g.stepTPS = value
	g.pacer.SetTPS(value)
	return true
}

// Title describes the window.
func (g *Game) Title() string {
	return fmt.Sprintf("Cellular Automata %dx%d", g.ctl.Cols(), g.ctl.Rows())
}
