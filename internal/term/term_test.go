package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"ca-sheet/internal/evolve"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	return s
}

func newController() *evolve.Controller {
	return evolve.New(evolve.Config{Rows: 4, Cols: 6, Policy: evolve.EvenRowsOnly, Mode: evolve.ModeFrontier, Seed: 3})
}

func key(ch rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone) }

func TestHandleKeys(t *testing.T) {
	s := newScreen(t, 20, 6)
	defer s.Fini()
	ctl := newController()
	r := New(s, ctl, Options{})

	assert.False(t, r.Handle(key('w')))
	assert.Equal(t, 1, ctl.Frontier())
	assert.False(t, r.Handle(key('Q')))
	assert.Equal(t, 2, ctl.Frontier())
	assert.Equal(t, evolve.Rule110, ctl.Active())

	assert.False(t, r.Handle(key('g')))
	assert.Equal(t, 1, ctl.Generation())

	assert.False(t, r.Handle(key(' ')))
	assert.True(t, r.Auto())

	assert.False(t, r.Handle(key('c')))
	assert.Zero(t, ctl.Population())

	assert.False(t, r.Handle(key('x')), "unbound keys are ignored")
	assert.True(t, r.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestHandleMouseTogglesOncePerPress(t *testing.T) {
	s := newScreen(t, 20, 6)
	defer s.Fini()
	ctl := newController()
	ctl.Reset(false)
	r := New(s, ctl, Options{})

	r.Handle(tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone))
	require.True(t, ctl.Alive(2, 2))

	// Drag events with the button held do not toggle again.
	r.Handle(tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone))
	assert.True(t, ctl.Alive(2, 2))

	r.Handle(tcell.NewEventMouse(5, 2, tcell.ButtonNone, tcell.ModNone))
	r.Handle(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))
	assert.False(t, ctl.Alive(2, 2), "second press toggles back")

	// Clicks on the status line fall outside the grid.
	r.Handle(tcell.NewEventMouse(0, 5, tcell.ButtonNone, tcell.ModNone))
	r.Handle(tcell.NewEventMouse(0, 5, tcell.Button1, tcell.ModNone))
	assert.Zero(t, ctl.Population())
}

func TestDrawPaintsCellsAndStatus(t *testing.T) {
	s := newScreen(t, 40, 6)
	defer s.Fini()
	ctl := newController()
	ctl.Reset(false)
	ctl.ToggleCell(1, 3)
	r := New(s, ctl, Options{})

	r.Draw()

	bgAt := func(x, y int) tcell.Color {
		_, _, style, _ := s.GetContent(x, y)
		_, bg, _ := style.Decompose()
		return bg
	}
	assert.Equal(t, tcell.ColorWhite, bgAt(6, 1))
	assert.Equal(t, tcell.ColorWhite, bgAt(7, 1))
	assert.Equal(t, tcell.ColorRed, bgAt(8, 1))
	assert.Equal(t, tcell.ColorRed, bgAt(0, 0))

	var line strings.Builder
	for x := 0; x < 40; x++ {
		ch, _, _, _ := s.GetContent(x, 4)
		line.WriteRune(ch)
	}
	assert.True(t, strings.HasPrefix(line.String(), "none frontier frontier 0 gen 0 pop 1"), line.String())
}

func TestRunStopsOnEscape(t *testing.T) {
	s := newScreen(t, 20, 6)
	ctl := newController()
	r := New(s, ctl, Options{StepInterval: time.Millisecond})

	s.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Run(ctx))
	assert.Equal(t, evolve.Rule30, ctl.Active())
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newScreen(t, 20, 6)
	r := New(s, newController(), Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, r.Run(ctx))
}
