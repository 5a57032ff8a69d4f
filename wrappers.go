package algonuft

// PointFT computes the Fourier transform of a signal defined on a point set
// (the discrete Fourier transform of scattered points). D holds one channel
// vector per vertex.
func PointFT(V, D [][]float64, res []int, t []float64, opts *Options) (*Spectrum, error) {
	E := make([][]int, len(V))
	for i := range E {
		E[i] = []int{i}
	}
	return SimplexFT(V, E, D, res, t, 0, opts)
}

// LineFT computes the Fourier transform of a signal defined on a line
// segment set. Each E row holds 2 vertex indices.
func LineFT(V [][]float64, E [][]int, D [][]float64, res []int, t []float64, opts *Options) (*Spectrum, error) {
	return SimplexFT(V, E, D, res, t, 1, opts)
}

// SurfFT computes the Fourier transform of a signal defined on a triangle
// set. Each E row holds 3 vertex indices, or 2 in a 2-D domain to close each
// triangle with the implicit origin vertex (signed by the right-hand rule).
func SurfFT(V [][]float64, E [][]int, D [][]float64, res []int, t []float64, opts *Options) (*Spectrum, error) {
	return SimplexFT(V, E, D, res, t, 2, opts)
}

// VolumeFT computes the Fourier transform of a signal defined on a
// tetrahedron set. Each E row holds 4 vertex indices, or 3 in a 3-D domain
// to close each tetrahedron with the implicit origin vertex.
func VolumeFT(V [][]float64, E [][]int, D [][]float64, res []int, t []float64, opts *Options) (*Spectrum, error) {
	return SimplexFT(V, E, D, res, t, 3, opts)
}
