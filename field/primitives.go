package field

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-lut/lut"
	"github.com/meko-christian/algo-approx"
)

// Primitives supplies the trig and distance functions the renderer uses.
type Primitives interface {
	Sin(x float32) float32
	Cos(x float32) float32
	Hypot(a, b float32) float32
}

// Mode selects a Primitives implementation.
type Mode int

const (
	// ModeLookup uses the engine's tables.
	ModeLookup Mode = iota

	// ModeExact uses the math package.
	ModeExact

	// ModeFast uses exact trig and the algo-approx square root.
	ModeFast
)

// String returns the mode name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeLookup:
		return "lookup"
	case ModeExact:
		return "exact"
	case ModeFast:
		return "fast"
	default:
		return "unknown"
	}
}

// ParseMode parses "lookup", "exact" or "fast" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lookup", "lut":
		return ModeLookup, nil
	case "exact":
		return ModeExact, nil
	case "fast":
		return ModeFast, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// NewPrimitives returns the implementation for mode. ModeLookup requires a
// ready engine.
func NewPrimitives(mode Mode, e *lut.Engine) (Primitives, error) {
	switch mode {
	case ModeLookup:
		if !e.Ready() {
			return nil, ErrEngineNotReady
		}
		return Lookup(e), nil
	case ModeExact:
		return Exact(), nil
	case ModeFast:
		return Fast(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

// Lookup returns primitives backed by e. *lut.Engine already satisfies
// Primitives; this keeps call sites symmetric with Exact and Fast.
func Lookup(e *lut.Engine) Primitives { return e }

type exact struct{}

// Exact returns primitives backed by the math package.
func Exact() Primitives { return exact{} }

func (exact) Sin(x float32) float32 { return float32(math.Sin(float64(x))) }
func (exact) Cos(x float32) float32 { return float32(math.Cos(float64(x))) }
func (exact) Hypot(a, b float32) float32 {
	return float32(math.Sqrt(float64(a)*float64(a) + float64(b)*float64(b)))
}

type fast struct{ exact }

// Fast returns exact trig with the algo-approx square root.
func Fast() Primitives { return fast{} }

func (fast) Hypot(a, b float32) float32 {
	return float32(approx.FastSqrt(float64(a)*float64(a) + float64(b)*float64(b)))
}
