package gpu

import "errors"

var (
	// ErrNoBackend is returned when no GPU backend is registered.
	ErrNoBackend = errors.New("algonuft/gpu: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// available on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("algonuft/gpu: backend unavailable")

	// ErrUnsupportedDimension is returned when a kernel is requested for an
	// ambient dimension other than 2 or 3.
	ErrUnsupportedDimension = errors.New("algonuft/gpu: ambient dimension must be 2 or 3")

	// ErrInvalidArgs is returned when kernel arguments are inconsistent
	// (mismatched array lengths or a wrong output size).
	ErrInvalidArgs = errors.New("algonuft/gpu: invalid kernel arguments")

	// ErrNotImplemented is returned by stubbed operations.
	ErrNotImplemented = errors.New("algonuft/gpu: not implemented")
)
