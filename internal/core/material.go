package core

import "fmt"

// Kind identifies the variant of material occupying a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindSolid
	KindLiquid
	KindGranular
)

// Material is the value held by exactly one grid cell. Compaction is
// meaningful only for granular material: it counts accumulated vertical
// support from the pile beneath and saturates at 255.
type Material struct {
	Kind       Kind
	Compaction uint8
}

var (
	// Empty marks a vacant cell. Empty cells are inert.
	Empty = Material{Kind: KindEmpty}
	// Solid is immovable rock; it converts to loose granular material
	// when it loses all structural support.
	Solid = Material{Kind: KindSolid}
	// Liquid falls and spreads sideways into open cells.
	Liquid = Material{Kind: KindLiquid}
)

// Granular returns loose granular material carrying the given compaction
// counter.
func Granular(compaction uint8) Material {
	return Material{Kind: KindGranular, Compaction: compaction}
}

// PaletteIndex maps the material to its display buffer value. The
// indices are stable and shared by every frontend palette.
func (m Material) PaletteIndex() uint8 {
	switch m.Kind {
	case KindSolid:
		return 1
	case KindLiquid:
		return 2
	case KindGranular:
		return 3
	default:
		return 0
	}
}

func (m Material) String() string {
	switch m.Kind {
	case KindSolid:
		return "solid"
	case KindLiquid:
		return "liquid"
	case KindGranular:
		return fmt.Sprintf("granular(%d)", m.Compaction)
	default:
		return "empty"
	}
}
