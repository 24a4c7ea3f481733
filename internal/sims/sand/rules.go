package sand

import "loosedirt/internal/core"

// destabilizeThreshold is the support strength at which a compacting
// pile stops building up and sheds sideways instead.
const destabilizeThreshold = 3

// Neighbor is one snapshot observation. OK is false outside the grid;
// an absent neighbor is distinct from an Empty one.
type Neighbor struct {
	Material core.Material
	OK       bool
}

// Neighborhood holds the four orthogonal observations for one cell as
// they stood at the end of the previous tick. Down is the cell at
// (x, y+1), the direction material falls toward.
type Neighborhood struct {
	Up, Down, Left, Right Neighbor
}

// Move is the outcome of evaluating one cell: the coordinate its
// material heads for and the material it becomes. A destination equal
// to the source means an in-place conversion.
type Move struct {
	X, Y     int
	Material core.Material
}

// Source supplies the randomness for lateral tie-breaking. A nil source
// disables lateral motion entirely.
type Source interface {
	Float64Between(lo, hi float64) float64
}

// Rules evaluates material transitions. It is pure: the same material,
// neighborhood and random draw always produce the same move.
type Rules struct {
	LiquidEagerness   float64
	GranularEagerness float64
	RNG               Source
}

// Evaluate applies the transition rules to the material at (x, y).
// Empty cells are inert; callers skip them.
func (r Rules) Evaluate(m core.Material, x, y int, n Neighborhood) Move {
	switch m.Kind {
	case core.KindSolid:
		// Rock holds as long as it touches other rock or the grid
		// boundary on any side; fully surrounded by movables it
		// crumbles in place.
		if anchored(n.Up) || anchored(n.Down) || anchored(n.Left) || anchored(n.Right) {
			return Move{X: x, Y: y, Material: m}
		}
		return Move{X: x, Y: y, Material: core.Granular(0)}

	case core.KindLiquid:
		if n.Down.OK && n.Down.Material.Kind == core.KindEmpty {
			return Move{X: x, Y: y + 1, Material: core.Liquid}
		}
		return Move{X: x + r.lateralOffset(n.Left, n.Right, r.LiquidEagerness), Y: y, Material: core.Liquid}

	case core.KindGranular:
		// The cell's own counter is ignored on read; only the
		// neighbor below contributes its stored compaction.
		below := n.Down
		switch {
		case below.OK && (below.Material.Kind == core.KindEmpty || below.Material.Kind == core.KindLiquid):
			return Move{X: x, Y: y + 1, Material: core.Granular(0)}
		case !below.OK || below.Material.Kind == core.KindSolid:
			return Move{X: x, Y: y, Material: core.Granular(0)}
		default:
			strength := satAdd(below.Material.Compaction, supportStrength(n.Left)+supportStrength(n.Right)+1)
			if strength < destabilizeThreshold {
				return Move{X: x, Y: y, Material: core.Granular(strength)}
			}
			return Move{X: x + r.lateralOffset(n.Left, n.Right, r.GranularEagerness), Y: y, Material: core.Granular(0)}
		}
	}
	return Move{X: x, Y: y, Material: m}
}

// lateralOffset picks -1, 0 or +1 by drawing uniformly from
// [-eagerness, 0], [0, eagerness] or [-eagerness, eagerness] depending
// on which sides are open. The draw is truncated to an integer before
// taking its sign, so draws inside (-1, 1) stay put; that is what makes
// eagerness near 1 shed rarely while large values almost always move.
func (r Rules) lateralOffset(left, right Neighbor, eagerness float64) int {
	if r.RNG == nil {
		return 0
	}
	lo, hi := 0.0, 0.0
	if flowsInto(left) {
		lo = -eagerness
	}
	if flowsInto(right) {
		hi = eagerness
	}
	if lo == 0 && hi == 0 {
		return 0
	}
	switch v := r.RNG.Float64Between(lo, hi); {
	case v >= 1:
		return 1
	case v <= -1:
		return -1
	default:
		return 0
	}
}

// anchored reports whether a neighbor counts as structural support for
// rock: more rock, or the grid boundary.
func anchored(n Neighbor) bool {
	return !n.OK || n.Material.Kind == core.KindSolid
}

// flowsInto reports whether lateral motion toward this neighbor is
// possible.
func flowsInto(n Neighbor) bool {
	return n.OK && (n.Material.Kind == core.KindEmpty || n.Material.Kind == core.KindLiquid)
}

// supportStrength grades the lateral support a neighbor lends a pile:
// rock braces harder than loose grains, everything else not at all.
func supportStrength(n Neighbor) uint8 {
	if !n.OK {
		return 0
	}
	switch n.Material.Kind {
	case core.KindGranular:
		return 1
	case core.KindSolid:
		return 2
	default:
		return 0
	}
}

func satAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
