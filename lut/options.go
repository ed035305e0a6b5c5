package lut

// Layout sizes of the default region.
const (
	DefaultRows     = 16
	DefaultCols     = 16
	DefaultTrigSize = 256

	// RootSize is fixed: the scale decomposition divides by 100 because
	// sqrt(100) = 10.
	RootSize = 100

	// MaxLevel is the highest value a grid cell may hold.
	MaxLevel = 3
)

// Config defines the table dimensions of an Engine.
type Config struct {
	Rows     int
	Cols     int
	TrigSize int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the 16x16 grid with 256-entry trig tables.
func DefaultConfig() Config {
	return Config{
		Rows:     DefaultRows,
		Cols:     DefaultCols,
		TrigSize: DefaultTrigSize,
	}
}

// WithGridSize sets the pixel grid dimensions.
func WithGridSize(rows, cols int) Option {
	return func(cfg *Config) {
		cfg.Rows = rows
		cfg.Cols = cols
	}
}

// WithTrigSize sets the number of entries in the sine and cosine tables.
func WithTrigSize(n int) Option {
	return func(cfg *Config) {
		cfg.TrigSize = n
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c Config) validate() error {
	if err := validateGrid(c.Rows, c.Cols); err != nil {
		return err
	}
	return validateTrigSize(c.TrigSize)
}
