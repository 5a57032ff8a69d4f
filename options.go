package algonuft

import "log"

// eps is the global numerical guard: it offsets the zero frequency and
// scales the random vertex perturbation that keeps the divided-difference
// integral away from its removable singularities.
const eps = 1e-5

// Mode selects the amplitude normalization of the output spectrum.
type Mode uint8

const (
	// ModeDensity scales the output by res[0]^j so that amplitude represents
	// per-unit-volume signal strength. The scaling is exact only for
	// isotropic resolutions; anisotropic resolutions produce a warning.
	ModeDensity Mode = iota

	// ModeMass leaves the raw integral untouched, preserving the total
	// integrated quantity independent of resolution.
	ModeMass
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeDensity:
		return "density"
	case ModeMass:
		return "mass"
	default:
		return "unknown"
	}
}

// Device selects the execution engine.
type Device uint8

const (
	// DeviceCPU uses the breadth-first streaming engine. Any ambient
	// dimension >= 2 is supported.
	DeviceCPU Device = iota

	// DeviceGPU uses the grid-parallel engine through the backend registered
	// with the gpu subpackage. Only 2-D and 3-D domains are supported.
	DeviceGPU
)

// String returns a human-readable name for the device.
func (d Device) String() string {
	switch d {
	case DeviceCPU:
		return "cpu"
	case DeviceGPU:
		return "gpu"
	default:
		return "unknown"
	}
}

// Options controls a transform call. The zero value selects density
// normalization on the CPU engine with the default noise amplitude and seed.
type Options struct {
	// Mode selects density- or mass-preserving normalization.
	Mode Mode

	// Device selects the CPU or GPU engine.
	Device Device

	// Seed seeds the random perturbation applied to V. Calls with equal
	// inputs and equal seeds produce identical output. Zero means seed 1.
	Seed int64

	// Noise is the amplitude of the vertex perturbation. Zero means the
	// default (1e-5).
	Noise float64

	// Progress, if non-nil, is called by the CPU engine after each simplex
	// is accumulated. Advisory only; done grows monotonically to total.
	Progress func(done, total int)

	// Warnf receives non-fatal numerical warnings. Nil means log.Printf.
	Warnf func(format string, args ...any)
}

// withDefaults returns a copy of o with zero values replaced by defaults.
// A nil receiver yields the default options.
func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Seed == 0 {
		out.Seed = 1
	}
	if out.Noise == 0 {
		out.Noise = eps
	}
	if out.Warnf == nil {
		out.Warnf = log.Printf
	}
	return out
}
