// Package config loads application settings for the lookup engine, the field
// renderer, the accuracy report and the visualizers.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-lut/analysis"
	"github.com/cwbudde/algo-lut/field"
	"github.com/cwbudde/algo-lut/lut"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all application settings.
type Config struct {
	Engine   EngineConfig   `yaml:"engine"`
	Field    FieldConfig    `yaml:"field"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Display  DisplayConfig  `yaml:"display"`
}

// EngineConfig holds the table dimensions.
type EngineConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	TrigSize int `yaml:"trig_size"`
}

// FieldConfig holds metaball renderer parameters.
type FieldConfig struct {
	Mode      string         `yaml:"mode"`
	FrameRate float64        `yaml:"frame_rate"`
	Radius    float64        `yaml:"radius"`
	Aspect    float64        `yaml:"aspect"` // vertical distance divisor
	Sources   []SourceConfig `yaml:"sources"`
	Low       float64        `yaml:"low"`
	High      float64        `yaml:"high"`
	Levels    int            `yaml:"levels"`
}

// SourceConfig describes one moving source.
type SourceConfig struct {
	FreqX  float64 `yaml:"freq_x"`
	FreqY  float64 `yaml:"freq_y"`
	Weight float64 `yaml:"weight"`
}

// AnalysisConfig holds accuracy report sweep sizes.
type AnalysisConfig struct {
	Decades     int `yaml:"decades"`
	PerDecade   int `yaml:"per_decade"`
	TrigSamples int `yaml:"trig_samples"`
	FFTSize     int `yaml:"fft_size"`
	Cycles      int `yaml:"cycles"`
	Frames      int `yaml:"frames"`
	FrameStride int `yaml:"frame_stride"`
}

// DisplayConfig holds visualizer settings.
type DisplayConfig struct {
	FPS    int    `yaml:"fps"`
	Scale  int    `yaml:"scale"`  // window pixels per cell
	Glyphs string `yaml:"glyphs"` // terminal glyph per level
}

// Load reads the embedded defaults and then, if path is non-empty, the user
// file on top of them.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the effective configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// EngineOptions converts the engine section to lut options.
func (c *Config) EngineOptions() []lut.Option {
	return []lut.Option{
		lut.WithGridSize(c.Engine.Rows, c.Engine.Cols),
		lut.WithTrigSize(c.Engine.TrigSize),
	}
}

// NewEngine builds a ready engine from the engine section.
func (c *Config) NewEngine() (*lut.Engine, error) {
	e, err := lut.New(c.EngineOptions()...)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return e, nil
}

// FieldRenderer builds a renderer on e from the field section.
func (c *Config) FieldRenderer(e *lut.Engine) (*field.Renderer, error) {
	fc, err := c.fieldConfig()
	if err != nil {
		return nil, err
	}
	mode, err := field.ParseMode(c.Field.Mode)
	if err != nil {
		return nil, err
	}
	prims, err := field.NewPrimitives(mode, e)
	if err != nil {
		return nil, err
	}
	return field.New(e, field.WithConfig(fc), field.WithPrimitives(prims))
}

func (c *Config) fieldConfig() (field.Config, error) {
	f := c.Field
	if len(f.Sources) != 2 {
		return field.Config{}, fmt.Errorf("field: exactly 2 sources required, got %d", len(f.Sources))
	}

	fc := field.Config{
		FrameRate: float32(f.FrameRate),
		Radius:    float32(f.Radius),
		Aspect:    float32(f.Aspect),
		Low:       float32(f.Low),
		High:      float32(f.High),
		Levels:    f.Levels,
	}
	for i, s := range f.Sources {
		fc.Sources[i] = field.Source{
			FreqX:  float32(s.FreqX),
			FreqY:  float32(s.FreqY),
			Weight: float32(s.Weight),
		}
	}
	return fc, nil
}

// AnalysisOptions converts the analysis section.
func (c *Config) AnalysisOptions() analysis.Options {
	a := c.Analysis
	return analysis.Options{
		Decades:     a.Decades,
		PerDecade:   a.PerDecade,
		TrigSamples: a.TrigSamples,
		FFTSize:     a.FFTSize,
		Cycles:      a.Cycles,
		Frames:      a.Frames,
		FrameStride: a.FrameStride,
	}
}
