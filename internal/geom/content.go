package geom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDimension is returned when a vertex does not have the declared
	// ambient dimensionality.
	ErrDimension = errors.New("geom: vertex dimension mismatch")

	// ErrSignedContent is returned when signed content is requested for a
	// simplex of lower dimension than the ambient space; orientation is
	// undefined there.
	ErrSignedContent = errors.New("geom: signed content requires j == ambient dimension")
)

// Factorial returns n! for small non-negative n.
func Factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// Content computes the j-dimensional volume of the simplex spanned by the
// j+1 vertex vectors in verts.
//
// Unsigned content uses the Cayley–Menger determinant and is valid for any
// j <= nDims. Signed content divides the edge-matrix determinant by j! and
// requires j == nDims. A negative squared content from the Cayley–Menger
// formula is numerical noise: it is clamped to zero and reported through
// warnf (which may be nil).
func Content(j, nDims int, signed bool, verts [][]float64, warnf func(format string, args ...any)) (float64, error) {
	if len(verts) != j+1 {
		return 0, ErrDimension
	}
	for _, v := range verts {
		if len(v) != nDims {
			return 0, ErrDimension
		}
	}
	if signed && nDims > j {
		return 0, ErrSignedContent
	}

	if !signed {
		b := mat.NewDense(j+2, j+2, nil)
		for i := 1; i < j+2; i++ {
			b.Set(i, 0, 1)
			b.Set(0, i, 1)
		}
		for r := 1; r < j+2; r++ {
			for c := r + 1; c < j+2; c++ {
				d2 := 0.0
				for d := 0; d < nDims; d++ {
					diff := verts[r-1][d] - verts[c-1][d]
					d2 += diff * diff
				}
				b.Set(r, c, d2)
				b.Set(c, r, d2)
			}
		}
		sign := 1.0
		if j%2 == 0 {
			sign = -1
		}
		fj := Factorial(j)
		vol2 := sign / math.Pow(2, float64(j)) / (fj * fj) * mat.Det(b)
		if vol2 < 0 {
			if warnf != nil {
				warnf("algonuft: zeroing small negative squared content %g", vol2)
			}
			vol2 = 0
		}
		return math.Sqrt(vol2), nil
	}

	m := mat.NewDense(j, j, nil)
	for c := 0; c < j; c++ {
		for r := 0; r < j; r++ {
			m.Set(r, c, verts[c][r]-verts[j][r])
		}
	}
	return mat.Det(m) / Factorial(j), nil
}
