//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"loosedirt/internal/brush"
	"loosedirt/internal/core"
	"loosedirt/internal/render"
	"loosedirt/internal/sims/sand"
	"loosedirt/internal/ui"
)

// Game adapts the sand world to the ebiten.Game interface and feeds
// pointer and keyboard input back into it as brush strokes.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	hud     *ui.HUD
	palette []brush.Entry
	brush   brush.Brush

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, scale int, seed int64) *Game {
	size := world.Size()
	if scale <= 0 {
		scale = 1
	}
	palette := brush.Palette()
	return &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(palette),
		palette: palette,
		brush:   brush.New(),
		scale:   scale,
		seed:    seed,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Reset(g.seed)
	}

	for _, entry := range g.palette {
		if inpututil.IsKeyJustPressed(keyForRune(entry.Hotkey)) {
			g.brush.Paint = entry.Material
		}
	}

	if _, wheelY := ebiten.Wheel(); wheelY > 0 {
		g.brush.Grow()
	} else if wheelY < 0 {
		g.brush.Shrink()
	}

	g.applyPointer()

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

// applyPointer turns the held mouse button into a queued brush stroke:
// left paints the selected element, right erases.
func (g *Game) applyPointer() {
	var paint core.Material
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		paint = g.brush.Paint
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		paint = core.Empty
	default:
		return
	}
	mx, my := ebiten.CursorPosition()
	cx, cy := g.world.Grid().CoordinateOf(float64(mx), float64(my), float64(g.scale))
	g.brush.Apply(g.world, cx, cy, paint)
}

// Draw renders the current world state and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), render.MaterialPalette(), g.scale)
	g.hud.Draw(screen, g.brush.Paint, g.brush.Size, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W * g.scale, s.H * g.scale
}

func keyForRune(r rune) ebiten.Key {
	if r < 'a' || r > 'z' {
		return ebiten.KeyMax
	}
	return ebiten.KeyA + ebiten.Key(r-'a')
}
