package analysis

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-lut/field"
)

var errGridSize = errors.New("analysis: renderers have different grid sizes")

// FrameDiff counts the cells on which two renderers disagree for one frame.
type FrameDiff struct {
	Frame     int     `csv:"frame"`
	Cells     int     `csv:"cells"`
	Differing int     `csv:"differing"`
	MaxDelta  int     `csv:"max_delta"`
	MeanDelta float64 `csv:"mean_delta"`
}

// Fraction returns the share of differing cells.
func (d FrameDiff) Fraction() float64 {
	if d.Cells == 0 {
		return 0
	}
	return float64(d.Differing) / float64(d.Cells)
}

// CompareRenders renders each frame with a and then b and diffs the grids.
// The renderers may share an engine; each grid is copied before the next
// render overwrites it.
func CompareRenders(a, b *field.Renderer, frames []int) ([]FrameDiff, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("compare renders: %w", ErrEmptySweep)
	}
	aw, ah := a.Size()
	bw, bh := b.Size()
	if aw != bw || ah != bh {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", errGridSize, aw, ah, bw, bh)
	}

	out := make([]FrameDiff, 0, len(frames))
	for _, f := range frames {
		if err := a.Render(f); err != nil {
			return nil, err
		}
		ga := a.Grid()
		if err := b.Render(f); err != nil {
			return nil, err
		}
		gb := b.Grid()

		d := FrameDiff{Frame: f, Cells: len(ga)}
		total := 0
		for i := range ga {
			delta := int(ga[i]) - int(gb[i])
			if delta < 0 {
				delta = -delta
			}
			if delta == 0 {
				continue
			}
			d.Differing++
			total += delta
			if delta > d.MaxDelta {
				d.MaxDelta = delta
			}
		}
		if d.Cells > 0 {
			d.MeanDelta = float64(total) / float64(d.Cells)
		}
		out = append(out, d)
	}
	return out, nil
}

// FrameRange returns n frame indices starting at first, stride apart.
func FrameRange(first, n, stride int) []int {
	if n <= 0 {
		return nil
	}
	if stride <= 0 {
		stride = 1
	}
	out := make([]int, n)
	for i := range out {
		out[i] = first + i*stride
	}
	return out
}
