package lut

import (
	"encoding/binary"
	"fmt"
	"math"
)

// entryBytes is the width of one float32 table entry.
const entryBytes = 4

// Layout describes the fixed segment sizes of a Region. Offsets are derived
// from the sizes; segments are contiguous and never overlap.
type Layout struct {
	Rows     int
	Cols     int
	TrigSize int
	RootSize int
}

// NewLayout returns the layout for cfg.
func NewLayout(cfg Config) Layout {
	return Layout{
		Rows:     cfg.Rows,
		Cols:     cfg.Cols,
		TrigSize: cfg.TrigSize,
		RootSize: RootSize,
	}
}

// GridOffset is always 0.
func (l Layout) GridOffset() int { return 0 }

// GridLen is the number of grid cells (one byte each).
func (l Layout) GridLen() int { return l.Rows * l.Cols }

// SinOffset is the byte offset of the sine table.
func (l Layout) SinOffset() int { return l.GridOffset() + l.GridLen() }

// CosOffset is the byte offset of the cosine table.
func (l Layout) CosOffset() int { return l.SinOffset() + l.TrigSize*entryBytes }

// RootOffset is the byte offset of the square-root table.
func (l Layout) RootOffset() int { return l.CosOffset() + l.TrigSize*entryBytes }

// Size is the total region size in bytes.
func (l Layout) Size() int { return l.RootOffset() + l.RootSize*entryBytes }

// Region is a single contiguous byte buffer holding the pixel grid and the
// lookup tables. Grid accessors are bounds-checked against the grid segment
// only, so a grid write can never reach a table.
type Region struct {
	layout Layout
	buf    []byte
}

// NewRegion allocates a zeroed region for layout.
func NewRegion(layout Layout) *Region {
	return &Region{layout: layout, buf: make([]byte, layout.Size())}
}

// Layout returns the region's layout.
func (r *Region) Layout() Layout { return r.layout }

// Len returns the region size in bytes.
func (r *Region) Len() int { return len(r.buf) }

// Bytes returns a copy of the whole region.
func (r *Region) Bytes() []byte {
	out := make([]byte, len(r.buf))
	copy(out, r.buf)
	return out
}

// ReadPixel returns the level stored at offset = x + y*Cols.
func (r *Region) ReadPixel(offset int) (uint8, error) {
	if offset < 0 || offset >= r.layout.GridLen() {
		return 0, fmt.Errorf("%w: %d", ErrOffsetOutOfRange, offset)
	}
	return r.buf[r.layout.GridOffset()+offset], nil
}

// WritePixel stores level at offset = x + y*Cols.
func (r *Region) WritePixel(offset int, level uint8) error {
	if offset < 0 || offset >= r.layout.GridLen() {
		return fmt.Errorf("%w: %d", ErrOffsetOutOfRange, offset)
	}
	if level > MaxLevel {
		return fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}
	r.buf[r.layout.GridOffset()+offset] = level
	return nil
}

// Cell returns the level at (x, y).
func (r *Region) Cell(x, y int) (uint8, error) {
	off, err := r.cellOffset(x, y)
	if err != nil {
		return 0, err
	}
	return r.ReadPixel(off)
}

// SetCell stores level at (x, y).
func (r *Region) SetCell(x, y int, level uint8) error {
	off, err := r.cellOffset(x, y)
	if err != nil {
		return err
	}
	return r.WritePixel(off, level)
}

func (r *Region) cellOffset(x, y int) (int, error) {
	if x < 0 || x >= r.layout.Cols || y < 0 || y >= r.layout.Rows {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOffsetOutOfRange, x, y)
	}
	return x + y*r.layout.Cols, nil
}

// Grid returns a copy of the grid segment in row-major order.
func (r *Region) Grid() []uint8 {
	out := make([]uint8, r.layout.GridLen())
	r.CopyGrid(out)
	return out
}

// CopyGrid copies the grid segment into dst and returns the number of cells copied.
func (r *Region) CopyGrid(dst []uint8) int {
	off := r.layout.GridOffset()
	return copy(dst, r.buf[off:off+r.layout.GridLen()])
}

// SinAt returns sine table entry i.
func (r *Region) SinAt(i int) (float32, error) {
	if i < 0 || i >= r.layout.TrigSize {
		return 0, fmt.Errorf("%w: sin[%d]", ErrIndexOutOfRange, i)
	}
	return r.sin(i), nil
}

// CosAt returns cosine table entry i.
func (r *Region) CosAt(i int) (float32, error) {
	if i < 0 || i >= r.layout.TrigSize {
		return 0, fmt.Errorf("%w: cos[%d]", ErrIndexOutOfRange, i)
	}
	return r.cos(i), nil
}

// RootAt returns square-root table entry i.
func (r *Region) RootAt(i int) (float32, error) {
	if i < 0 || i >= r.layout.RootSize {
		return 0, fmt.Errorf("%w: root[%d]", ErrIndexOutOfRange, i)
	}
	return r.root(i), nil
}

// Unchecked accessors for the hot path. Callers guarantee the index range;
// slice bounds checks still catch a violation.

func (r *Region) sin(i int) float32  { return r.load(r.layout.SinOffset() + i*entryBytes) }
func (r *Region) cos(i int) float32  { return r.load(r.layout.CosOffset() + i*entryBytes) }
func (r *Region) root(i int) float32 { return r.load(r.layout.RootOffset() + i*entryBytes) }

func (r *Region) setSin(i int, v float32)  { r.store(r.layout.SinOffset()+i*entryBytes, v) }
func (r *Region) setCos(i int, v float32)  { r.store(r.layout.CosOffset()+i*entryBytes, v) }
func (r *Region) setRoot(i int, v float32) { r.store(r.layout.RootOffset()+i*entryBytes, v) }

func (r *Region) load(off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(r.buf[off : off+entryBytes]))
}

func (r *Region) store(off int, v float32) {
	binary.LittleEndian.PutUint32(r.buf[off:off+entryBytes], math.Float32bits(v))
}
