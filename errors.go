package algonuft

import "errors"

// Sentinel errors returned by transform operations.
var (
	// ErrDimensionMismatch is returned when the vertex dimensionality does not
	// agree with the length of the resolution or period tuples.
	ErrDimensionMismatch = errors.New("algonuft: ambient dimension mismatch")

	// ErrCountMismatch is returned when the element table and the signal array
	// disagree on the number of rows.
	ErrCountMismatch = errors.New("algonuft: element/signal row count mismatch")

	// ErrInvalidSimplex is returned when the element table width is neither
	// j+1 nor the ghost-vertex form (j columns with j equal to the ambient
	// dimension).
	ErrInvalidSimplex = errors.New("algonuft: invalid simplex table width")

	// ErrIndexOutOfRange is returned when an element references a vertex index
	// outside the vertex set.
	ErrIndexOutOfRange = errors.New("algonuft: vertex index out of range")

	// ErrInvalidMode is returned for a Mode value that is neither ModeDensity
	// nor ModeMass.
	ErrInvalidMode = errors.New("algonuft: invalid normalization mode")

	// ErrInvalidDevice is returned for a Device value that is neither
	// DeviceCPU nor DeviceGPU.
	ErrInvalidDevice = errors.New("algonuft: invalid device")

	// ErrInvalidResolution is returned when a resolution entry is not a
	// positive integer, or fewer than two axes are requested.
	ErrInvalidResolution = errors.New("algonuft: invalid resolution")

	// ErrInvalidPeriod is returned when a period entry is not a positive real.
	ErrInvalidPeriod = errors.New("algonuft: invalid period")

	// ErrInvalidPad is returned when a padding request is negative, odd, or
	// leaves no headroom on the Hermitian axis.
	ErrInvalidPad = errors.New("algonuft: invalid pad amount")
)
