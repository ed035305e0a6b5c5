package field

import (
	"image/color"
	"strings"
)

// DefaultPalette maps levels 0..3 to dark blue through pale yellow.
var DefaultPalette = []color.RGBA{
	{R: 0x10, G: 0x12, B: 0x2a, A: 0xff},
	{R: 0x2e, G: 0x4a, B: 0x9c, A: 0xff},
	{R: 0xd9, G: 0x6c, B: 0x3b, A: 0xff},
	{R: 0xfb, G: 0xe8, B: 0xa6, A: 0xff},
}

// DefaultGlyphs renders levels 0..3 as text.
const DefaultGlyphs = " .oO"

// FillRGBA converts grid levels into RGBA pixels in buf (4 bytes per cell).
// Levels beyond the palette use its last colour; an empty palette clears buf
// to transparent black.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
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

// Text renders cells as cols-wide lines using one glyph per level. Levels
// beyond the glyph set use its last glyph.
func Text(cells []uint8, cols int, glyphs string) string {
	if cols <= 0 || len(cells) == 0 {
		return ""
	}
	g := []rune(glyphs)
	if len(g) == 0 {
		g = []rune(DefaultGlyphs)
	}
	last := len(g) - 1

	var sb strings.Builder
	sb.Grow(len(cells) + len(cells)/cols)
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		sb.WriteRune(g[idx])
		if (i+1)%cols == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
