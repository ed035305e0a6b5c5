package field

// Source describes one moving field source. Its position at time t is
// ((sin(t·FreqX)+1)·R, (cos(t·FreqY)+1)·R).
type Source struct {
	FreqX  float32
	FreqY  float32
	Weight float32
}

// Config holds renderer parameters.
type Config struct {
	FrameRate float32 // frames per time unit; t = frame / FrameRate
	Radius    float32 // R, half the travel range of a source
	Aspect    float32 // A, vertical distances are divided by this
	Sources   [2]Source

	// Smoothstep quantizer: intensities at or below Low map to level 0,
	// at or above High to Levels-1.
	Low    float32
	High   float32
	Levels int
}

// DefaultConfig returns the parameters of the reference animation on a
// 16x16 grid.
func DefaultConfig() Config {
	return Config{
		FrameRate: 60,
		Radius:    7.5,
		Aspect:    1.25,
		Sources: [2]Source{
			{FreqX: 1.0, FreqY: 0.7, Weight: 2.5},
			{FreqX: 1.3, FreqY: 1.9, Weight: 2.0},
		},
		Low:    0.75,
		High:   1.0,
		Levels: 4,
	}
}

// Option mutates renderer settings.
type Option func(*settings)

type settings struct {
	cfg   Config
	prims Primitives
}

// WithConfig replaces the renderer parameters.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// WithPrimitives selects the trig and distance implementation. The default is
// the engine's lookup tables.
func WithPrimitives(p Primitives) Option {
	return func(s *settings) {
		if p != nil {
			s.prims = p
		}
	}
}
