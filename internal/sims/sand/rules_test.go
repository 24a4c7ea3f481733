package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"loosedirt/internal/core"
)

// fixedSource always draws the same value, ignoring the range.
type fixedSource struct{ v float64 }

func (f fixedSource) Float64Between(lo, hi float64) float64 { return f.v }

func defaultRules(src Source) Rules {
	p := DefaultConfig().Params
	return Rules{LiquidEagerness: p.LiquidEagerness, GranularEagerness: p.GranularEagerness, RNG: src}
}

func nb(m core.Material) Neighbor { return Neighbor{Material: m, OK: true} }

func edge() Neighbor { return Neighbor{} }

func hood(up, down, left, right Neighbor) Neighborhood {
	return Neighborhood{Up: up, Down: down, Left: left, Right: right}
}

func TestSolidHoldsWithAnySupport(t *testing.T) {
	r := defaultRules(nil)

	cases := map[string]Neighborhood{
		"all solid":        hood(nb(core.Solid), nb(core.Solid), nb(core.Solid), nb(core.Solid)),
		"boundary above":   hood(edge(), nb(core.Empty), nb(core.Empty), nb(core.Empty)),
		"one solid side":   hood(nb(core.Empty), nb(core.Empty), nb(core.Solid), nb(core.Empty)),
		"solid below only": hood(nb(core.Liquid), nb(core.Solid), nb(core.Granular(0)), nb(core.Empty)),
	}
	for name, n := range cases {
		mv := r.Evaluate(core.Solid, 4, 4, n)
		assert.Equal(t, Move{X: 4, Y: 4, Material: core.Solid}, mv, name)
	}
}

func TestSolidCrumblesWithoutSupport(t *testing.T) {
	r := defaultRules(nil)
	n := hood(nb(core.Empty), nb(core.Liquid), nb(core.Granular(1)), nb(core.Empty))
	mv := r.Evaluate(core.Solid, 4, 4, n)
	assert.Equal(t, Move{X: 4, Y: 4, Material: core.Granular(0)}, mv)
}

func TestLiquidSeeksDownFirst(t *testing.T) {
	// Even with both sides open, an empty cell below wins.
	r := defaultRules(fixedSource{v: 4.9})
	n := hood(nb(core.Empty), nb(core.Empty), nb(core.Empty), nb(core.Empty))
	mv := r.Evaluate(core.Liquid, 2, 2, n)
	assert.Equal(t, Move{X: 2, Y: 3, Material: core.Liquid}, mv)
}

func TestLiquidSpreadsTowardOpenSide(t *testing.T) {
	blockedDown := nb(core.Solid)

	r := defaultRules(fixedSource{v: 3})
	mv := r.Evaluate(core.Liquid, 2, 2, hood(nb(core.Empty), blockedDown, nb(core.Solid), nb(core.Empty)))
	assert.Equal(t, Move{X: 3, Y: 2, Material: core.Liquid}, mv, "spread right")

	r = defaultRules(fixedSource{v: -3})
	mv = r.Evaluate(core.Liquid, 2, 2, hood(nb(core.Empty), blockedDown, nb(core.Liquid), nb(core.Solid)))
	assert.Equal(t, Move{X: 1, Y: 2, Material: core.Liquid}, mv, "spread left, liquid counts as open")
}

func TestLateralOffsetBounds(t *testing.T) {
	r := defaultRules(core.NewRNG(1))
	open := nb(core.Empty)
	closed := nb(core.Solid)

	for i := 0; i < 500; i++ {
		off := r.lateralOffset(open, open, 5.0)
		assert.Contains(t, []int{-1, 0, 1}, off)
		assert.Zero(t, r.lateralOffset(closed, closed, 5.0), "no open side, no motion")
		assert.Zero(t, r.lateralOffset(edge(), nb(core.Granular(0)), 5.0), "boundary is not open")
		assert.LessOrEqual(t, r.lateralOffset(closed, open, 5.0), 1)
		assert.GreaterOrEqual(t, r.lateralOffset(closed, open, 5.0), 0)
		assert.LessOrEqual(t, r.lateralOffset(open, closed, 5.0), 0)
	}
}

func TestLateralOffsetTruncatesBeforeSign(t *testing.T) {
	open := nb(core.Empty)

	// Draws inside (-1, 1) keep the cell in place.
	assert.Zero(t, defaultRules(fixedSource{v: 0.9}).lateralOffset(open, open, 1.3))
	assert.Zero(t, defaultRules(fixedSource{v: -0.99}).lateralOffset(open, open, 1.3))
	assert.Equal(t, 1, defaultRules(fixedSource{v: 1.0}).lateralOffset(open, open, 1.3))
	assert.Equal(t, -1, defaultRules(fixedSource{v: -1.2}).lateralOffset(open, open, 1.3))
}

func TestLateralOffsetWithoutRandomness(t *testing.T) {
	r := defaultRules(nil)
	assert.Zero(t, r.lateralOffset(nb(core.Empty), nb(core.Empty), 5.0))

	n := hood(nb(core.Empty), nb(core.Solid), nb(core.Empty), nb(core.Empty))
	mv := r.Evaluate(core.Liquid, 2, 2, n)
	assert.Equal(t, Move{X: 2, Y: 2, Material: core.Liquid}, mv, "liquid stays put without a source")
}

func TestGranularFallsIntoEmptyAndLiquid(t *testing.T) {
	r := defaultRules(nil)
	for _, below := range []core.Material{core.Empty, core.Liquid} {
		n := hood(nb(core.Empty), nb(below), nb(core.Empty), nb(core.Empty))
		mv := r.Evaluate(core.Granular(2), 3, 1, n)
		assert.Equal(t, Move{X: 3, Y: 2, Material: core.Granular(0)}, mv, below.String())
	}
}

func TestGranularRestsOnSolidAndBoundary(t *testing.T) {
	r := defaultRules(nil)
	for name, below := range map[string]Neighbor{"solid": nb(core.Solid), "boundary": edge()} {
		n := hood(nb(core.Empty), below, nb(core.Empty), nb(core.Empty))
		mv := r.Evaluate(core.Granular(7), 3, 1, n)
		assert.Equal(t, Move{X: 3, Y: 1, Material: core.Granular(0)}, mv, "compaction resets on %s", name)
	}
}

func TestGranularCompactsOnPile(t *testing.T) {
	r := defaultRules(nil)

	// Fresh pile, no side support: strength 0+0+0+1.
	n := hood(nb(core.Empty), nb(core.Granular(0)), nb(core.Empty), nb(core.Empty))
	mv := r.Evaluate(core.Granular(0), 3, 1, n)
	assert.Equal(t, Move{X: 3, Y: 1, Material: core.Granular(1)}, mv)

	// Grains brace a little: strength 1+1+0+1 hits the threshold.
	n = hood(nb(core.Empty), nb(core.Granular(1)), nb(core.Granular(0)), nb(core.Empty))
	mv = r.Evaluate(core.Granular(1), 3, 1, n)
	assert.Equal(t, Move{X: 3, Y: 1, Material: core.Granular(0)}, mv, "destabilized but no open side to shed toward (right is empty: offset without rng is 0)")

	// Rock braces hard: strength 0+2+2+1 destabilizes immediately,
	// but walled in on both sides there is nowhere to go.
	n = hood(nb(core.Empty), nb(core.Granular(0)), nb(core.Solid), nb(core.Solid))
	mv = r.Evaluate(core.Granular(0), 3, 1, n)
	assert.Equal(t, Move{X: 3, Y: 1, Material: core.Granular(0)}, mv)
}

func TestGranularDestabilizesSideways(t *testing.T) {
	// Below the threshold nothing moves; at it, the grain may shed
	// toward an open flank.
	r := defaultRules(fixedSource{v: 1.25})
	n := hood(nb(core.Empty), nb(core.Granular(2)), nb(core.Empty), nb(core.Empty))
	mv := r.Evaluate(core.Granular(0), 3, 1, n)
	assert.Equal(t, Move{X: 4, Y: 1, Material: core.Granular(0)}, mv)
}

func TestStoredCompactionStaysBelowThreshold(t *testing.T) {
	// Whatever the inputs, an in-place compaction write is < 3 and a
	// destabilization resets to 0, so stored counters never reach the
	// threshold.
	r := defaultRules(nil)
	supports := []Neighbor{edge(), nb(core.Empty), nb(core.Liquid), nb(core.Granular(0)), nb(core.Solid)}
	for d := 0; d <= 4; d++ {
		for _, left := range supports {
			for _, right := range supports {
				n := hood(nb(core.Empty), nb(core.Granular(uint8(d))), left, right)
				mv := r.Evaluate(core.Granular(0), 3, 1, n)
				assert.Less(t, mv.Material.Compaction, uint8(destabilizeThreshold))
			}
		}
	}
}

func TestSupportStrength(t *testing.T) {
	assert.Equal(t, uint8(1), supportStrength(nb(core.Granular(9))))
	assert.Equal(t, uint8(2), supportStrength(nb(core.Solid)))
	assert.Equal(t, uint8(0), supportStrength(nb(core.Empty)))
	assert.Equal(t, uint8(0), supportStrength(nb(core.Liquid)))
	assert.Equal(t, uint8(0), supportStrength(edge()))
}

func TestSatAddSaturates(t *testing.T) {
	assert.Equal(t, uint8(255), satAdd(250, 10))
	assert.Equal(t, uint8(7), satAdd(3, 4))
}
