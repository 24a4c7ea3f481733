// Package term is the terminal frontend: it draws the grid with one
// character per cell and maps keyboard and mouse input onto the brush.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"loosedirt/internal/brush"
	"loosedirt/internal/core"
	"loosedirt/internal/sims/sand"
)

// one rune and style per palette index: air, rock, water, sand.
var (
	cellRunes  = []rune{' ', '█', '~', '░'}
	cellStyles = []tcell.Style{
		tcell.StyleDefault,
		tcell.StyleDefault.Foreground(tcell.ColorGray),
		tcell.StyleDefault.Foreground(tcell.ColorBlue),
		tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
)

// statusRows is how many screen rows the status line occupies above the
// grid.
const statusRows = 1

// Runner drives the sand world inside a tcell screen.
type Runner struct {
	world   *sand.World
	screen  tcell.Screen
	palette []brush.Entry
	brush   brush.Brush

	tps      int
	seed     int64
	paused   bool
	tickOnce bool
}

// New initializes the terminal and returns a runner for the provided
// world.
func New(world *sand.World, tps int, seed int64) (*Runner, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return &Runner{
		world:   world,
		screen:  screen,
		palette: brush.Palette(),
		brush:   brush.New(),
		tps:     tps,
		seed:    seed,
	}, nil
}

// Run blocks until the user quits, advancing the simulation at the
// configured tick rate while drawing every frame.
func (r *Runner) Run() error {
	defer r.screen.Fini()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	frame := time.NewTicker(16 * time.Millisecond)
	defer frame.Stop()
	pace := core.NewFixedStep(r.tps)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !r.handleEvent(ev) {
				return nil
			}
		case <-frame.C:
			if (!r.paused && pace.ShouldStep()) || r.tickOnce {
				r.world.Step()
				r.tickOnce = false
			}
			r.draw()
		}
	}
}

// handleEvent reacts to one input event; it reports false when the user
// asked to quit.
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				r.paused = !r.paused
			case 'n':
				r.tickOnce = true
			case 'c':
				r.world.Reset(r.seed)
			case '+', '=':
				r.brush.Grow()
			case '-':
				r.brush.Shrink()
			default:
				for _, entry := range r.palette {
					if entry.Hotkey == ev.Rune() {
						r.brush.Paint = entry.Material
					}
				}
			}
		}
	case *tcell.EventMouse:
		mx, my := ev.Position()
		switch {
		case ev.Buttons()&tcell.Button1 != 0:
			r.brush.Apply(r.world, mx, my-statusRows, r.brush.Paint)
		case ev.Buttons()&tcell.Button2 != 0:
			r.brush.Apply(r.world, mx, my-statusRows, core.Empty)
		case ev.Buttons()&tcell.WheelUp != 0:
			r.brush.Grow()
		case ev.Buttons()&tcell.WheelDown != 0:
			r.brush.Shrink()
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

func (r *Runner) draw() {
	r.screen.Clear()
	r.drawStatus()

	size := r.world.Size()
	cells := r.world.Cells()
	for y := 0; y < size.H; y++ {
		row := y * size.W
		for x := 0; x < size.W; x++ {
			idx := int(cells[row+x])
			if idx >= len(cellRunes) {
				idx = len(cellRunes) - 1
			}
			r.screen.SetContent(x, y+statusRows, cellRunes[idx], nil, cellStyles[idx])
		}
	}
	r.screen.Show()
}

func (r *Runner) drawStatus() {
	status := ""
	for i, entry := range r.palette {
		if i > 0 {
			status += "  "
		}
		marker := " "
		if entry.Material.Kind == r.brush.Paint.Kind {
			marker = "*"
		}
		status += fmt.Sprintf("%s[%c]%s", marker, entry.Hotkey, entry.Name)
	}
	status += fmt.Sprintf("  brush %d  tick %d", r.brush.Size, r.world.Tick())
	if r.paused {
		status += "  paused"
	}

	style := tcell.StyleDefault.Reverse(true)
	for i, ch := range status {
		r.screen.SetContent(i, 0, ch, nil, style)
	}
}
