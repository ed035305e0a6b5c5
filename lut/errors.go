package lut

import (
	"errors"
	"fmt"
)

var (
	// ErrOffsetOutOfRange is returned for grid coordinates or offsets outside the grid segment.
	ErrOffsetOutOfRange = errors.New("lut: grid offset out of range")

	// ErrLevelOutOfRange is returned when a grid write carries a level above MaxLevel.
	ErrLevelOutOfRange = errors.New("lut: level out of range")

	// ErrIndexOutOfRange is returned for table indices outside a table segment.
	ErrIndexOutOfRange = errors.New("lut: table index out of range")

	// ErrNegativeInput is returned by CheckedSqrt for negative input.
	ErrNegativeInput = errors.New("lut: negative input")

	// ErrNonFinite is returned by CheckedSqrt for NaN or infinite input.
	ErrNonFinite = errors.New("lut: non-finite input")
)

const errNotSetup = "lut: engine used before setup"

func validateGrid(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("lut: grid size must be > 0: %dx%d", rows, cols)
	}
	return nil
}

func validateTrigSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("lut: trig table size must be > 0: %d", n)
	}
	return nil
}
