package sand

import (
	"errors"
	"fmt"
)

// Domain errors for world construction and editing.
var (
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("sand: coordinate out of bounds")

	// ErrInvalidDimensions indicates a world size that cannot be tiled by chunks.
	ErrInvalidDimensions = errors.New("sand: invalid world dimensions")

	// ErrInvalidMaterial indicates a material tag outside the enumerated set.
	ErrInvalidMaterial = errors.New("sand: invalid material")

	// ErrUnknownBrush indicates a brush name with no preset.
	ErrUnknownBrush = errors.New("sand: unknown brush")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("sand: invalid config")
)

// BoundsError reports the offending coordinate of a rejected grid access.
type BoundsError struct {
	X, Y int
	W, H int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sand: (%d,%d) outside %dx%d grid", e.X, e.Y, e.W, e.H)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
