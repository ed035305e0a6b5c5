package field

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-lut/lut"
)

var (
	// ErrUnknownMode is returned for an unrecognised primitive mode.
	ErrUnknownMode = errors.New("field: unknown primitive mode")

	// ErrEngineNotReady is returned when a renderer is built on a missing or
	// uninitialised engine.
	ErrEngineNotReady = errors.New("field: engine not ready")
)

func validateConfig(cfg Config) error {
	if cfg.FrameRate <= 0 {
		return fmt.Errorf("field: frame rate must be > 0: %v", cfg.FrameRate)
	}
	if cfg.Aspect <= 0 {
		return fmt.Errorf("field: aspect must be > 0: %v", cfg.Aspect)
	}
	if cfg.High <= cfg.Low {
		return fmt.Errorf("field: quantizer high must exceed low: [%v, %v]", cfg.Low, cfg.High)
	}
	if cfg.Levels < 1 || cfg.Levels > lut.MaxLevel+1 {
		return fmt.Errorf("field: levels must be in [1,%d]: %d", lut.MaxLevel+1, cfg.Levels)
	}
	for i, s := range cfg.Sources {
		if s.Weight <= 0 {
			return fmt.Errorf("field: source %d weight must be > 0: %v", i, s.Weight)
		}
	}
	return nil
}
