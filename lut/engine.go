package lut

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Engine owns a Region and answers approximate math queries from its tables.
type Engine struct {
	cfg    Config
	region *Region
	ready  bool

	// trigScale maps radians to fractional table positions: TrigSize / 2π.
	trigScale float64
}

// New validates opts, allocates the region and generates the tables.
// The returned engine is ready for lookups.
func New(opts ...Option) (*Engine, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:       cfg,
		region:    NewRegion(NewLayout(cfg)),
		trigScale: float64(cfg.TrigSize) / (2 * math.Pi),
	}
	e.Setup()
	return e, nil
}

// MustNew is like New but panics on invalid options.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Setup populates the sine, cosine and square-root tables from the exact
// functions. New already calls it; calling it again rewrites identical values.
func (e *Engine) Setup() {
	if e.region == nil {
		panic(errNotSetup)
	}

	n := e.cfg.TrigSize
	ramp := make([]float64, n)
	for i := range ramp {
		ramp[i] = float64(i)
	}
	angles := make([]float64, n)
	vecmath.ScaleBlock(angles, ramp, 2*math.Pi/float64(n))

	for i, a := range angles {
		e.region.setSin(i, float32(math.Sin(a)))
		e.region.setCos(i, float32(math.Cos(a)))
	}
	for i := 0; i < RootSize; i++ {
		e.region.setRoot(i, float32(math.Sqrt(float64(i))))
	}

	e.ready = true
}

// Ready reports whether the tables have been generated.
func (e *Engine) Ready() bool { return e != nil && e.ready }

// Config returns the dimensions the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Layout returns the region layout.
func (e *Engine) Layout() Layout { return e.region.Layout() }

// Region exposes the backing memory region, including the pixel grid.
func (e *Engine) Region() *Region { return e.region }

func (e *Engine) mustReady() {
	if !e.ready {
		panic(errNotSetup)
	}
}
