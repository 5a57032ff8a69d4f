// Package kernels holds the per-simplex Fourier integral evaluator and the
// two execution strategies built on it: the breadth-first CPU streaming
// engine and the position-based form used by the grid-parallel device path.
package kernels

import "math/cmplx"

// ipow returns i^j.
func ipow(j int) complex128 {
	switch j % 4 {
	case 0:
		return 1
	case 1:
		return 1i
	case 2:
		return -1
	default:
		return -1i
	}
}

// Integral evaluates the closed-form Fourier integral of a unit-density
// j-simplex at a single frequency, from the cached per-vertex phases sig and
// complex exponentials esig (both of length j+1). The i^j factor is
// included. For j = 0 the integral degenerates to the vertex exponential.
//
// The divided-difference denominators have removable singularities when two
// vertices share a phase; the upstream vertex perturbation keeps the
// evaluation away from them.
func Integral(sig []float64, esig []complex128) complex128 {
	j := len(sig) - 1
	if j == 0 {
		return esig[0]
	}
	var fi complex128
	for dim := 0; dim <= j; dim++ {
		denom := 1.0
		for d := 0; d <= j; d++ {
			if d != dim {
				denom *= sig[dim] - sig[d]
			}
		}
		fi += esig[dim] / complex(denom, 0)
	}
	return fi * ipow(j)
}

// IntegralAt evaluates the same integral directly from flattened vertex
// positions p (nVert rows of len(w) coordinates) at the frequency vector w.
// The i^j factor is NOT applied here; the device path applies it once after
// the kernel completes.
func IntegralAt(p []float64, nVert int, w []float64) complex128 {
	n := len(w)
	var fi complex128
	for dim := 0; dim < nVert; dim++ {
		di := 0.0
		for d := 0; d < n; d++ {
			di += w[d] * p[dim*n+d]
		}
		denom := 1.0
		for v := 0; v < nVert; v++ {
			if v == dim {
				continue
			}
			dv := 0.0
			for d := 0; d < n; d++ {
				dv += w[d] * p[v*n+d]
			}
			denom *= di - dv
		}
		fi += cmplx.Exp(complex(0, -di)) / complex(denom, 0)
	}
	return fi
}
