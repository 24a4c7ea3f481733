package sand

import "loosedirt/internal/core"

// snapshot is the one-tick-stale view of the grid that rule evaluation
// reads its neighbor materials from. Keeping reads a full tick behind
// writes means no evaluation can observe a value another cell was given
// earlier in the same pass, regardless of scan order.
//
// It is refreshed after commit from the grid's changed-cell set; cells
// that did not change keep their previous observation, which is already
// correct.
type snapshot struct {
	w, h  int
	cells []core.Material
}

func newSnapshot(g *core.Grid) *snapshot {
	s := &snapshot{
		w:     g.Width(),
		h:     g.Height(),
		cells: make([]core.Material, len(g.Cells())),
	}
	copy(s.cells, g.Cells())
	return s
}

// observe records the new material of a changed cell for consumption on
// the next tick.
func (s *snapshot) observe(idx int, m core.Material) {
	s.cells[idx] = m
}

func (s *snapshot) at(x, y int) Neighbor {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return Neighbor{}
	}
	return Neighbor{Material: s.cells[y*s.w+x], OK: true}
}

// neighborhood returns the four orthogonal observations around (x, y).
func (s *snapshot) neighborhood(x, y int) Neighborhood {
	return Neighborhood{
		Up:    s.at(x, y-1),
		Down:  s.at(x, y+1),
		Left:  s.at(x-1, y),
		Right: s.at(x+1, y),
	}
}
