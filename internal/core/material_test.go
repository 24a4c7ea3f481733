package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteIndices(t *testing.T) {
	assert.Equal(t, uint8(0), Empty.PaletteIndex())
	assert.Equal(t, uint8(1), Solid.PaletteIndex())
	assert.Equal(t, uint8(2), Liquid.PaletteIndex())
	assert.Equal(t, uint8(3), Granular(0).PaletteIndex())
	assert.Equal(t, uint8(3), Granular(200).PaletteIndex(), "compaction does not affect display")
}

func TestMaterialEquality(t *testing.T) {
	assert.Equal(t, Granular(2), Granular(2))
	assert.NotEqual(t, Granular(0), Granular(1), "compaction is part of the value")
	assert.NotEqual(t, Empty, Liquid)
}

func TestMaterialString(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "granular(3)", Granular(3).String())
}
