package algonuft

import (
	"math/cmplx"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplexTolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

// cloneVerts deep-copies a vertex array so repeated transform calls see the
// same unperturbed coordinates.
func cloneVerts(v [][]float64) [][]float64 {
	out := make([][]float64, len(v))
	for i, row := range v {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// unitSquare returns the ghost-vertex polygon description of the unit
// square: corner vertices and the edge table closing each triangle with the
// implicit origin.
func unitSquare() (v [][]float64, e [][]int, d [][]float64) {
	v = [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	e = [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	d = [][]float64{{1}, {1}, {1}, {1}}
	return v, e, d
}
