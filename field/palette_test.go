package field

import (
	"image/color"
	"testing"
)

func TestFillRGBA(t *testing.T) {
	cells := []uint8{0, 1, 2, 3, 9}
	buf := make([]byte, 4*len(cells))
	FillRGBA(buf, cells, DefaultPalette)

	for i, c := range cells {
		idx := int(c)
		if idx >= len(DefaultPalette) {
			idx = len(DefaultPalette) - 1
		}
		want := DefaultPalette[idx]
		got := color.RGBA{R: buf[4*i], G: buf[4*i+1], B: buf[4*i+2], A: buf[4*i+3]}
		if got != want {
			t.Fatalf("cell %d: got %v, want %v", i, got, want)
		}
	}
}

func TestFillRGBAEmptyPalette(t *testing.T) {
	cells := []uint8{1, 2}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}
}

func TestText(t *testing.T) {
	got := Text([]uint8{0, 1, 2, 3, 3, 2, 1, 7}, 4, DefaultGlyphs)
	want := " .oO\nOo.O\n"
	if got != want {
		t.Fatalf("Text = %q, want %q", got, want)
	}
	if Text(nil, 4, "") != "" {
		t.Fatal("Text(nil) not empty")
	}
}
