package core

import (
	"fmt"
	"iter"
	"math"
)

// Grid stores a 2D field of materials in row-major order. Dimensions are
// fixed for the grid's lifetime. Coordinates outside [0,W)x[0,H) are
// "no cell" rather than errors; every accessor is total.
//
// The grid remembers which cells changed value since the last
// FlushChanged call so that per-tick consumers (neighbor snapshot,
// display buffers) only touch cells that actually moved.
type Grid struct {
	w, h  int
	cells []Material

	dirty  []int
	marked []bool
}

// NewGrid allocates a grid with the given dimensions, every cell set to
// fill. Zero or negative dimensions are rejected.
func NewGrid(w, h int, fill Material) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid: dimensions must be positive, got %dx%d", w, h)
	}
	g := &Grid{
		w:      w,
		h:      h,
		cells:  make([]Material, w*h),
		marked: make([]bool, w*h),
	}
	if fill != Empty {
		g.Fill(fill)
	}
	return g, nil
}

// Width reports the horizontal cell count.
func (g *Grid) Width() int { return g.w }

// Height reports the vertical cell count.
func (g *Grid) Height() int { return g.h }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Cells exposes the backing slice for bulk reads.
func (g *Grid) Cells() []Material { return g.cells }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Coords is the inverse of Index.
func (g *Grid) Coords(idx int) (int, int) { return idx % g.w, idx / g.w }

// Get returns the material at (x, y), or false when the coordinate is
// outside the grid.
func (g *Grid) Get(x, y int) (Material, bool) {
	if !g.InBounds(x, y) {
		return Material{}, false
	}
	return g.cells[g.Index(x, y)], true
}

// Set replaces the material at (x, y). It reports whether the
// coordinate was in range; writing the value a cell already holds is
// accepted but produces no change signal.
func (g *Grid) Set(x, y int, m Material) bool {
	if !g.InBounds(x, y) {
		return false
	}
	idx := g.Index(x, y)
	if g.cells[idx] == m {
		return true
	}
	g.cells[idx] = m
	g.touch(idx)
	return true
}

// Swap exchanges the materials of two cells. It reports whether both
// coordinates were in range; out-of-range swaps are a no-op.
func (g *Grid) Swap(ax, ay, bx, by int) bool {
	if !g.InBounds(ax, ay) || !g.InBounds(bx, by) {
		return false
	}
	ai, bi := g.Index(ax, ay), g.Index(bx, by)
	if g.cells[ai] == g.cells[bi] {
		return true
	}
	g.cells[ai], g.cells[bi] = g.cells[bi], g.cells[ai]
	g.touch(ai)
	g.touch(bi)
	return true
}

// Fill sets every cell to m and discards pending change records. It is
// meant for wholesale resets, not mid-run mutation.
func (g *Grid) Fill(m Material) {
	for i := range g.cells {
		g.cells[i] = m
		g.marked[i] = false
	}
	g.dirty = g.dirty[:0]
}

func (g *Grid) touch(idx int) {
	if g.marked[idx] {
		return
	}
	g.marked[idx] = true
	g.dirty = append(g.dirty, idx)
}

// FlushChanged invokes fn once per cell whose value changed since the
// previous flush, then resets the change set. A nil fn just discards
// the records.
func (g *Grid) FlushChanged(fn func(idx int, m Material)) {
	for _, idx := range g.dirty {
		g.marked[idx] = false
		if fn != nil {
			fn(idx, g.cells[idx])
		}
	}
	g.dirty = g.dirty[:0]
}

// ChangedCount reports how many cells changed since the last flush.
func (g *Grid) ChangedCount() int { return len(g.dirty) }

// CoordinateOf maps a continuous position to the nearest cell by
// removing the one-unit origin offset, dividing by the cell scale and
// rounding to the nearest integer. The result may be out of range;
// callers probe it with Get or Set.
func (g *Grid) CoordinateOf(px, py, scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	x := math.Round((px - 1) / scale)
	y := math.Round((py - 1) / scale)
	return int(x), int(y)
}

// All enumerates every coordinate in row-major order, y outer, x inner.
// The sequence is finite and can be restarted each tick.
func (g *Grid) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}
