package sand

import (
	"github.com/sirupsen/logrus"

	"loosedirt/internal/core"
)

// edit is one queued external cell write.
type edit struct {
	x, y int
	m    core.Material
}

// World runs the falling-sand automaton. A tick has three ordered
// phases: queued paint edits are applied to the grid, every non-empty
// cell is evaluated against the previous tick's neighbor snapshot and
// its move committed, then the snapshot and display buffer are
// refreshed from the cells that changed.
type World struct {
	cfg Config

	grid  *core.Grid
	snap  *snapshot
	rules Rules

	// consumed marks cells already used as a swap destination this
	// pass; they are not re-evaluated as sources until the next tick.
	consumed []bool

	pending []edit
	display []uint8
	rng     *core.RNG

	tick        uint64
	lastChanged int
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided
// options. Invalid dimensions are fatal to construction.
func NewWithConfig(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height, core.Empty)
	if err != nil {
		return nil, err
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:      cfg,
		grid:     grid,
		consumed: make([]bool, total),
		display:  make([]uint8, total),
	}
	w.Reset(cfg.Seed)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Cells exposes the palette-index display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the material grid for frontends that need coordinate
// mapping or direct reads. Mutation goes through QueuePaint.
func (w *World) Grid() *core.Grid { return w.grid }

// Config returns the configuration the world was built from.
func (w *World) Config() Config { return w.cfg }

// Tick reports how many steps have run since the last reset.
func (w *World) Tick() uint64 { return w.tick }

// ChangedLastTick reports how many cells changed value during the most
// recent step.
func (w *World) ChangedLastTick() int { return w.lastChanged }

// Reset rebuilds the world deterministically: an empty grid, the
// optional starting scene, and a fresh snapshot. A zero seed falls back
// to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.rules = Rules{
		LiquidEagerness:   w.cfg.Params.LiquidEagerness,
		GranularEagerness: w.cfg.Params.GranularEagerness,
		RNG:               w.rng,
	}

	w.grid.Fill(core.Empty)
	w.seedScene()
	w.grid.FlushChanged(nil)

	w.snap = newSnapshot(w.grid)
	for i, m := range w.grid.Cells() {
		w.display[i] = m.PaletteIndex()
	}
	for i := range w.consumed {
		w.consumed[i] = false
	}
	w.pending = w.pending[:0]
	w.tick = 0
	w.lastChanged = 0
}

// QueuePaint records an external cell edit to be applied at the start
// of the next tick. Out-of-range edits are dropped when applied.
func (w *World) QueuePaint(x, y int, m core.Material) {
	w.pending = append(w.pending, edit{x: x, y: y, m: m})
}

// Step advances the simulation by one tick.
func (w *World) Step() {
	w.applyEdits()
	w.runRules()
	w.refresh()
	w.tick++
}

func (w *World) applyEdits() {
	for _, e := range w.pending {
		if !w.grid.Set(e.x, e.y, e.m) {
			logrus.Debugf("sand: dropped paint outside grid at (%d,%d)", e.x, e.y)
		}
	}
	w.pending = w.pending[:0]
}

func (w *World) runRules() {
	for i := range w.consumed {
		w.consumed[i] = false
	}
	for x, y := range w.grid.All() {
		idx := w.grid.Index(x, y)
		if w.consumed[idx] {
			continue
		}
		m := w.grid.Cells()[idx]
		if m.Kind == core.KindEmpty {
			continue
		}
		w.commit(x, y, m, w.rules.Evaluate(m, x, y, w.snap.neighborhood(x, y)))
	}
}

// commit lands one evaluated move. In-place results write the new
// material only when it differs, so settled cells emit no change
// signal. Moves exchange the two cells' current materials; the
// destination is marked consumed for the remainder of the pass.
func (w *World) commit(x, y int, m core.Material, mv Move) {
	if mv.X == x && mv.Y == y {
		if mv.Material != m {
			w.grid.Set(x, y, mv.Material)
		}
		return
	}
	if !w.grid.Swap(x, y, mv.X, mv.Y) {
		return
	}
	w.consumed[w.grid.Index(mv.X, mv.Y)] = true
}

// refresh pushes every changed cell into the snapshot for the next
// tick's reads and keeps the display buffer in sync.
func (w *World) refresh() {
	w.lastChanged = w.grid.ChangedCount()
	w.grid.FlushChanged(func(idx int, m core.Material) {
		w.snap.observe(idx, m)
		w.display[idx] = m.PaletteIndex()
	})
}

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
