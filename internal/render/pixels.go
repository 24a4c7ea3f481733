package render

import "image/color"

// MaterialPalette returns the display colors indexed by
// Material.PaletteIndex: air, rock, water, sand.
func MaterialPalette() []color.RGBA {
	return []color.RGBA{
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		{R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
		{R: 0x2f, G: 0x6f, B: 0xd8, A: 0xff},
		{R: 0xd6, G: 0xae, B: 0x80, A: 0xff},
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a
// palette. Values past the palette end clamp to its last color; an
// empty palette clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
