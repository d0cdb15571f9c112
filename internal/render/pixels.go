package render

import "image/color"

// EnergyPalette maps display values 0..9 to a dark-to-bright ramp and the
// flash value (10) to white.
func EnergyPalette() []color.RGBA {
	pal := make([]color.RGBA, 11)
	for i := 0; i < 10; i++ {
		v := uint8(8 + i*16)
		pal[i] = color.RGBA{R: v / 3, G: v / 2, B: v, A: 255}
	}
	pal[10] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	return pal
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
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
