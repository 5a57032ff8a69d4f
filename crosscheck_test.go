package algonuft

import (
	"math/rand"
	"testing"

	"github.com/mjibson/go-dsp/fft"
)

// TestPointSetMatchesFFT2 cross-checks the point transform against a
// uniform-grid 2-D FFT: sampling every cell of an N x N image as a point
// mass with period N must reproduce the image's DFT (transposed, because
// the frequency lattice swaps its first two coordinate components).
func TestPointSetMatchesFFT2(t *testing.T) {
	const n = 8
	rng := rand.New(rand.NewSource(7))

	img := make([][]complex128, n)
	var v, d [][]float64
	for x0 := 0; x0 < n; x0++ {
		img[x0] = make([]complex128, n)
		for x1 := 0; x1 < n; x1++ {
			val := rng.Float64()
			img[x0][x1] = complex(val, 0)
			v = append(v, []float64{float64(x0), float64(x1)})
			d = append(d, []float64{val})
		}
	}

	want := fft.FFT2(img)
	got, err := PointFT(v, d, []int{n, n}, []float64{n, n}, &Options{Mode: ModeMass})
	if err != nil {
		t.Fatalf("PointFT: %v", err)
	}

	for i0 := 0; i0 < n; i0++ {
		for i1 := 0; i1 < n/2; i1++ {
			assertApproxComplexTolf(t, got.At([]int{i0, i1}, 0), want[i1][i0], 0.05,
				"frequency (%d,%d)", i0, i1)
		}
	}
}
