// Package grid builds the frequency sample lattice shared by the transform
// engines and provides the spectral shift used by the grid-parallel path.
package grid

import (
	"errors"
	"math"
)

// ErrResolution is returned when fewer than two axes are requested or an
// axis resolution is not positive.
var ErrResolution = errors.New("grid: resolution must list at least two positive axes")

// Dims returns the stored axis lengths of a Hermitian-half lattice: the full
// resolution on every axis except the last, which keeps res[last]/2 bins.
func Dims(res []int) []int {
	dims := append([]int(nil), res...)
	dims[len(dims)-1] = res[len(res)-1] / 2
	return dims
}

// Freqs builds the flattened frequency lattice for the given resolution,
// periods and epsilon guard. The returned slice holds one n-dimensional
// angular frequency vector per grid cell, row-major over Dims(res).
//
// All axes but the last use the full standard frequency ordering
// (0..r/2-1, -r/2..-1); the last axis keeps only the non-negative half,
// excluding the Nyquist bin. The first two coordinate components are
// swapped, matching the vertex coordinate convention of the engines. The
// zero-frequency cell is offset by eps before each component is scaled to
// physical angular frequency by 2*pi/t[dim].
func Freqs(res []int, t []float64, eps float64) ([]float64, []int, error) {
	n := len(res)
	if n < 2 {
		return nil, nil, ErrResolution
	}
	for _, r := range res {
		if r < 1 {
			return nil, nil, ErrResolution
		}
	}
	if res[n-1] < 2 {
		// A Hermitian half below one bin would make the lattice empty.
		return nil, nil, ErrResolution
	}

	freqs := make([][]float64, n)
	for dim := 0; dim < n-1; dim++ {
		r := res[dim]
		f := make([]float64, r)
		for i := 0; i < r; i++ {
			if i < (r+1)/2 {
				f[i] = float64(i)
			} else {
				f[i] = float64(i - r)
			}
		}
		freqs[dim] = f
	}
	half := res[n-1] / 2
	f := make([]float64, half)
	for i := range f {
		f[i] = float64(i)
	}
	freqs[n-1] = f

	dims := Dims(res)
	total := 1
	for _, d := range dims {
		total *= d
	}

	omega := make([]float64, total*n)
	idx := make([]int, n)
	for cell := 0; cell < total; cell++ {
		for d := 0; d < n; d++ {
			omega[cell*n+d] = freqs[d][idx[d]]
		}
		// Swap the first two components: component 0 carries the axis-1
		// frequency and vice versa.
		omega[cell*n], omega[cell*n+1] = omega[cell*n+1], omega[cell*n]
		for d := n - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < dims[d] {
				break
			}
			idx[d] = 0
		}
	}

	for d := 0; d < n; d++ {
		omega[d] += eps
	}
	for cell := 0; cell < total; cell++ {
		for d := 0; d < n; d++ {
			omega[cell*n+d] *= 2 * math.Pi / t[d]
		}
	}
	return omega, dims, nil
}

// IFFTShift undoes a centered frequency ordering along the first nAxes axes
// of a flat complex tensor with the given spatial dims and trailing channel
// count, in place.
func IFFTShift(data []complex128, dims []int, channels, nAxes int) {
	total := channels
	for _, d := range dims {
		total *= d
	}
	tmp := make([]complex128, total)
	copy(tmp, data)

	strides := make([]int, len(dims))
	stride := channels
	for d := len(dims) - 1; d >= 0; d-- {
		strides[d] = stride
		stride *= dims[d]
	}

	idx := make([]int, len(dims))
	for cell := 0; cell < total/channels; cell++ {
		src := 0
		dst := 0
		for d := range dims {
			i := idx[d]
			dst += i * strides[d]
			if d < nAxes {
				i = (i + dims[d]/2) % dims[d]
			}
			src += i * strides[d]
		}
		copy(data[dst:dst+channels], tmp[src:src+channels])
		for d := len(dims) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < dims[d] {
				break
			}
			idx[d] = 0
		}
	}
}
