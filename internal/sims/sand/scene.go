package sand

import "loosedirt/internal/core"

// seedScene builds the optional starting terrain: solid floor rows
// along the bottom edge and a sprinkling of loose grains above them.
// With the default parameters the world starts empty.
func (w *World) seedScene() {
	width, height := w.cfg.Width, w.cfg.Height
	floorTop := height - w.cfg.Params.FloorRows

	for y := floorTop; y < height; y++ {
		for x := 0; x < width; x++ {
			w.grid.Set(x, y, core.Solid)
		}
	}

	chance := w.cfg.Params.SandChance
	if chance <= 0 {
		return
	}
	for y := 0; y < floorTop; y++ {
		for x := 0; x < width; x++ {
			if w.rng.Float64() < chance {
				w.grid.Set(x, y, core.Granular(0))
			}
		}
	}
}
