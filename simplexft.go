package algonuft

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-nuft/gpu"
	"github.com/cwbudde/algo-nuft/internal/geom"
	"github.com/cwbudde/algo-nuft/internal/grid"
	"github.com/cwbudde/algo-nuft/internal/kernels"
)

// SimplexFT computes the Fourier transform of a signal defined on a set of
// j-simplices embedded in n-dimensional space.
//
// V lists vertex coordinates (n_vertex rows of n_dims entries), E lists one
// simplex per row as vertex indices into V, and D lists one channel vector
// per simplex. Each E row holds j+1 indices; alternatively, when j equals
// the ambient dimension, rows may hold j indices and an implicit origin
// vertex is appended, with content signed by the right-hand rule. res and t
// give the frequency-grid resolution and the physical period per dimension.
//
// V is perturbed in place by a small seeded random offset before processing;
// this keeps the per-simplex integral away from its removable singularities.
// Calls with identical inputs and the same Options.Seed produce identical
// output.
//
// The result is a Hermitian-half spectrum of shape
// res[0] x ... x res[n-1]/2 x channels.
func SimplexFT(V [][]float64, E [][]int, D [][]float64, res []int, t []float64, j int, opts *Options) (*Spectrum, error) {
	o := opts.withDefaults()
	if o.Mode > ModeMass {
		return nil, ErrInvalidMode
	}
	if o.Device > DeviceGPU {
		return nil, ErrInvalidDevice
	}
	if len(V) == 0 || j < 0 {
		return nil, ErrInvalidSimplex
	}

	nDims := len(V[0])
	if len(res) != nDims || len(t) != nDims {
		return nil, ErrDimensionMismatch
	}
	if len(res) < 2 {
		return nil, ErrInvalidResolution
	}
	for _, r := range res {
		if r < 1 {
			return nil, ErrInvalidResolution
		}
	}
	// The Hermitian-half axis keeps res[last]/2 bins; below 2 the spectrum
	// would be silently empty.
	if res[len(res)-1] < 2 {
		return nil, ErrInvalidResolution
	}
	for _, ti := range t {
		if ti <= 0 {
			return nil, ErrInvalidPeriod
		}
	}
	for _, v := range V {
		if len(v) != nDims {
			return nil, ErrDimensionMismatch
		}
	}
	if len(E) == 0 || len(E) != len(D) {
		return nil, ErrCountMismatch
	}
	channels := len(D[0])
	if channels < 1 {
		return nil, ErrCountMismatch
	}
	for _, row := range D {
		if len(row) != channels {
			return nil, ErrCountMismatch
		}
	}

	cols := len(E[0])
	ghost := cols == j && nDims == j
	if cols != j+1 && !ghost {
		return nil, ErrInvalidSimplex
	}
	if o.Device == DeviceGPU && nDims != 2 && nDims != 3 {
		// Rejected up front so a failed call leaves V untouched.
		return nil, gpu.ErrUnsupportedDimension
	}

	// Perturb V in place; degenerate coincident phases would otherwise hit
	// the integral's removable singularities.
	rng := rand.New(rand.NewSource(o.Seed))
	for _, v := range V {
		for d := range v {
			v[d] += o.Noise * rng.Float64()
		}
	}

	verts := V
	if ghost {
		verts = make([][]float64, len(V), len(V)+1)
		copy(verts, V)
		verts = append(verts, make([]float64, nDims))
	}

	simplices := make([]geom.Simplex, len(E))
	for ie, row := range E {
		if len(row) != cols {
			return nil, ErrInvalidSimplex
		}
		s := geom.Simplex{Verts: make([]int, 0, j+1), Oriented: ghost}
		for _, iv := range row {
			if iv < 0 || iv >= len(V) {
				return nil, ErrIndexOutOfRange
			}
			s.Verts = append(s.Verts, iv)
		}
		if ghost {
			s.Verts = append(s.Verts, len(verts)-1)
		}
		simplices[ie] = s
	}

	var (
		out *Spectrum
		err error
	)
	switch o.Device {
	case DeviceCPU:
		out, err = transformCPU(verts, simplices, D, res, t, nDims, j, channels, &o)
	case DeviceGPU:
		out, err = transformGPU(verts, simplices, D, res, t, nDims, j, channels, &o)
	}
	if err != nil {
		return nil, err
	}

	if o.Mode == ModeDensity {
		for _, r := range res {
			if r != res[0] {
				o.Warnf("algonuft: density mode rescale is approximate for anisotropic resolutions")
				break
			}
		}
		out.Scale(complex(math.Pow(float64(res[0]), float64(j)), 0))
	}
	return out, nil
}

func transformCPU(verts [][]float64, simplices []geom.Simplex, D [][]float64,
	res []int, t []float64, nDims, j, channels int, o *Options) (*Spectrum, error) {

	omega, dims, err := grid.Freqs(res, t, eps)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResolution, err)
	}
	out := NewSpectrum(dims, channels)
	err = kernels.Stream(verts, simplices, D, omega, nDims, j, out.data, channels, o.Progress, o.Warnf)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func transformGPU(verts [][]float64, simplices []geom.Simplex, D [][]float64,
	res []int, t []float64, nDims, j, channels int, o *Options) (*Spectrum, error) {

	plan, err := gpu.NewPlan(nDims, gpu.PlanOptions{})
	if err != nil {
		return nil, err
	}
	defer plan.Close()

	nElem := len(simplices)
	c := make([]float64, nElem)
	p := make([]float64, nElem*(j+1)*nDims)
	vertVecs := make([][]float64, j+1)
	for ie, s := range simplices {
		for k, iv := range s.Verts {
			vertVecs[k] = verts[iv]
			copy(p[(ie*(j+1)+k)*nDims:], verts[iv])
		}
		content, err := geom.Content(j, nDims, s.Oriented, vertVecs, o.Warnf)
		if err != nil {
			return nil, err
		}
		c[ie] = geom.Factorial(j) * content
	}

	signal := make([]float64, nElem*channels)
	for ie, row := range D {
		copy(signal[ie*channels:], row)
	}
	omega := make([]float64, nDims)
	for d := 0; d < nDims; d++ {
		omega[d] = 2 * math.Pi / t[d]
	}

	dims := grid.Dims(res)
	out := NewSpectrum(dims, channels)
	args := &gpu.KernelArgs{
		Res:      res,
		J:        j,
		Channels: channels,
		Eps:      eps,
		P:        p,
		C:        c,
		Signal:   signal,
		Omega:    omega,
		Out:      out.data,
	}
	if err := plan.Transform(args); err != nil {
		return nil, err
	}

	// The kernel leaves out the i^j factor and produces the first axes in
	// centered ordering.
	phase := [4]complex128{1, 1i, -1, -1i}
	out.Scale(phase[j%4])
	grid.IFFTShift(out.data, dims, channels, nDims-1)
	return out, nil
}
