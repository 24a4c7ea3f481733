// Package brush translates pointer strokes into queued cell edits.
package brush

import "loosedirt/internal/core"

// Entry is one paintable element with its menu name and hotkey.
type Entry struct {
	Name     string
	Hotkey   rune
	Material core.Material
}

// Palette lists the paintable elements in menu order.
func Palette() []Entry {
	return []Entry{
		{Name: "Rock", Hotkey: 'r', Material: core.Solid},
		{Name: "Water", Hotkey: 'w', Material: core.Liquid},
		{Name: "Sand", Hotkey: 's', Material: core.Granular(0)},
	}
}

// Brush size bounds. Size 0 paints a single cell.
const (
	MinSize = 0
	MaxSize = 4
)

// Brush paints a square patch of one material around a target cell.
type Brush struct {
	Size  int
	Paint core.Material
}

// New returns a brush with the default selection.
func New() Brush {
	return Brush{Size: 1, Paint: Palette()[0].Material}
}

// Grow widens the brush by one step, capped at MaxSize.
func (b *Brush) Grow() {
	if b.Size < MaxSize {
		b.Size++
	}
}

// Shrink narrows the brush by one step, capped at MinSize.
func (b *Brush) Shrink() {
	if b.Size > MinSize {
		b.Size--
	}
}

// Apply queues m over the (2*Size+1)² cells centered on (cx, cy). Cells
// outside the grid are dropped by the painter; the stroke lands at the
// start of the sim's next tick.
func (b Brush) Apply(p core.Painter, cx, cy int, m core.Material) {
	for dy := -b.Size; dy <= b.Size; dy++ {
		for dx := -b.Size; dx <= b.Size; dx++ {
			p.QueuePaint(cx+dx, cy+dy, m)
		}
	}
}
