package gpu

import "sync"

// Backend is implemented by device backends (CUDA, OpenCL, compute shaders).
// It is responsible for device discovery and kernel execution contexts.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context represents a backend-specific execution context tied to a device.
type Context interface {
	Device() DeviceInfo
	// NewKernel compiles or binds the simplex transform kernel for a 2-D or
	// 3-D frequency grid, honoring the plan options where applicable.
	NewKernel(nDims int, opts PlanOptions) (Kernel, error)
	Close() error
}

// Kernel executes the per-simplex Fourier integral over a dense frequency
// grid. Implementations must guarantee that each execution lane writes only
// its own output cells.
type Kernel interface {
	Launch(args *KernelArgs) error
	Close() error
}

// DeviceInfo describes a device.
type DeviceInfo struct {
	Name       string
	Vendor     string
	Driver     string
	MemoryMB   int
	ComputeCap string
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}

// KernelArgs carries the device-visible inputs and output of one launch.
// All arrays are host-resident; backends are responsible for staging.
type KernelArgs struct {
	// Res is the full frequency-grid resolution, one entry per ambient
	// dimension (2 or 3). The stored output halves the last axis.
	Res []int

	// J is the simplex dimension (number of vertices minus one).
	J int

	// Channels is the number of signal channels.
	Channels int

	// Eps is the frequency offset guarding the integral's singularities.
	Eps float64

	// P holds the simplex vertex positions, nElem x (J+1) x len(Res),
	// flattened row-major.
	P []float64

	// C holds one signed content per simplex, pre-scaled by J!.
	C []float64

	// Signal holds the per-simplex channel values, nElem x Channels.
	Signal []float64

	// Omega holds the per-axis angular scale 2*pi/t[d].
	Omega []float64

	// Out receives the accumulated spectrum in centered ordering along all
	// axes but the last, row-major over Res[0] x ... x Res[last]/2 x Channels.
	// The i^j factor is not applied by the kernel.
	Out []complex128
}

// NElem returns the number of simplices described by the arguments.
func (a *KernelArgs) NElem() int {
	return len(a.C)
}

// Validate checks the mutual consistency of the argument arrays.
func (a *KernelArgs) Validate() error {
	n := len(a.Res)
	if n != 2 && n != 3 {
		return ErrUnsupportedDimension
	}
	if len(a.Omega) != n || a.J < 0 || a.Channels < 1 {
		return ErrInvalidArgs
	}
	nElem := len(a.C)
	if len(a.P) != nElem*(a.J+1)*n || len(a.Signal) != nElem*a.Channels {
		return ErrInvalidArgs
	}
	cells := a.Channels
	for d := 0; d < n-1; d++ {
		cells *= a.Res[d]
	}
	cells *= a.Res[n-1] / 2
	if len(a.Out) != cells {
		return ErrInvalidArgs
	}
	return nil
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers a device backend. Passing nil clears the backend.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}

func getBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}
