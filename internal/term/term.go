// Package term presents an evolution controller on a tcell terminal screen.
package term

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"ca-sheet/internal/evolve"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// cellWidth is the number of terminal columns a grid cell occupies.
const cellWidth = 2

var keyCommands = map[rune]evolve.Command{
	'q': {Op: evolve.OpRule110},
	'w': {Op: evolve.OpRule30},
	'g': {Op: evolve.OpStep},
	'r': {Op: evolve.OpReset},
	'c': {Op: evolve.OpClear},
}

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Options tunes a Runner.
type Options struct {
	StepInterval time.Duration
	Auto         bool
}

// Runner draws the grid and feeds terminal input to the controller. All
// controller calls happen on the goroutine running the loop.
type Runner struct {
	screen   tcell.Screen
	ctl      *evolve.Controller
	interval time.Duration
	auto     bool
	pressed  bool
}

// New returns a Runner over an initialized screen.
func New(screen tcell.Screen, ctl *evolve.Controller, opts Options) *Runner {
	interval := opts.StepInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Runner{screen: screen, ctl: ctl, interval: interval, auto: opts.Auto}
}

// Auto reports whether automatic generation steps are running.
func (r *Runner) Auto() bool { return r.auto }

// Run drives the screen until quit or ctx is done, then finalizes the screen.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	events := make(chan tcell.Event)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(events)
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer r.screen.Fini()
		defer cancel()
		return r.loop(ctx, events)
	})
	return g.Wait()
}

func (r *Runner) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	r.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if r.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			if !r.auto {
				continue
			}
			r.ctl.StepGeneration()
		}
		r.Draw()
	}
}

// Handle applies one terminal event and reports whether it asked to quit.
func (r *Runner) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			ch := unicode.ToLower(ev.Rune())
			if ch == ' ' {
				r.auto = !r.auto
				return false
			}
			if cmd, ok := keyCommands[ch]; ok {
				return r.ctl.Dispatch(cmd)
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !r.pressed {
			x, y := ev.Position()
			r.ctl.Dispatch(evolve.Toggle(y, x/cellWidth))
		}
		r.pressed = down
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

// Draw paints the grid and the status line.
func (r *Runner) Draw() {
	rows, cols := r.ctl.Rows(), r.ctl.Cols()
	cells := r.ctl.Cells()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			style := deadStyle
			if cells[row*cols+col] != 0 {
				style = aliveStyle
			}
			for i := 0; i < cellWidth; i++ {
				r.screen.SetContent(col*cellWidth+i, row, ' ', nil, style)
			}
		}
	}
	w, _ := r.screen.Size()
	status := []rune(r.status())
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(status) {
			ch = status[x]
		}
		r.screen.SetContent(x, rows, ch, nil, statusStyle)
	}
	r.screen.Show()
}

func (r *Runner) status() string {
	auto := ""
	if r.auto {
		auto = " [auto]"
	}
	return fmt.Sprintf("%s %s frontier %d gen %d pop %d%s | q:110 w:30 g:step r:reset c:clear space:auto esc:quit",
		r.ctl.Active(), r.ctl.Mode(), r.ctl.Frontier(), r.ctl.Generation(), r.ctl.Population(), auto)
}
