package field

import (
	"fmt"

	"github.com/cwbudde/algo-lut/lut"
)

// Point is a source position in grid coordinates.
type Point struct {
	X, Y float32
}

// Renderer writes the quantized field into an engine's pixel grid. It is the
// only writer of that grid and is not safe for concurrent use.
type Renderer struct {
	cfg    Config
	prims  Primitives
	region *lut.Region
	rows   int
	cols   int
}

// New builds a renderer drawing into e's grid. e must be ready.
func New(e *lut.Engine, opts ...Option) (*Renderer, error) {
	if !e.Ready() {
		return nil, ErrEngineNotReady
	}

	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	if err := validateConfig(s.cfg); err != nil {
		return nil, err
	}
	if s.prims == nil {
		s.prims = Lookup(e)
	}

	l := e.Layout()
	return &Renderer{
		cfg:    s.cfg,
		prims:  s.prims,
		region: e.Region(),
		rows:   l.Rows,
		cols:   l.Cols,
	}, nil
}

// Config returns the renderer parameters.
func (r *Renderer) Config() Config { return r.cfg }

// Sources returns the two source positions for frame.
func (r *Renderer) Sources(frame int) [2]Point {
	t := float32(frame) / r.cfg.FrameRate
	rad := r.cfg.Radius

	var pts [2]Point
	for k, s := range r.cfg.Sources {
		pts[k] = Point{
			X: (r.prims.Sin(t*s.FreqX) + 1) * rad,
			Y: (r.prims.Cos(t*s.FreqY) + 1) * rad,
		}
	}
	return pts
}

// Intensity returns Σ w_k / hypot(Δx_k, Δy_k/A) at (x, y). A cell on top of
// a source yields +Inf.
func (r *Renderer) Intensity(x, y float32, src [2]Point) float32 {
	var d float32
	for k, p := range src {
		dist := r.prims.Hypot(x-p.X, (y-p.Y)/r.cfg.Aspect)
		d += r.cfg.Sources[k].Weight / dist
	}
	return d
}

// Level returns the quantized level at (x, y) for the given sources.
func (r *Renderer) Level(x, y int, src [2]Point) uint8 {
	d := r.Intensity(float32(x), float32(y), src)
	return Quantize(d, r.cfg.Low, r.cfg.High, r.cfg.Levels)
}

// Render evaluates the field for frame and writes every grid cell. The
// result depends only on frame and the renderer's configuration.
func (r *Renderer) Render(frame int) error {
	src := r.Sources(frame)
	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			if err := r.region.SetCell(x, y, r.Level(x, y, src)); err != nil {
				return fmt.Errorf("render frame %d: %w", frame, err)
			}
		}
	}
	return nil
}

// Grid returns a copy of the grid after the last Render.
func (r *Renderer) Grid() []uint8 { return r.region.Grid() }

// Size returns the grid dimensions as (cols, rows).
func (r *Renderer) Size() (int, int) { return r.cols, r.rows }
