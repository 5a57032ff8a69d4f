package grid

import (
	"errors"
	"math"
	"testing"
)

func TestFreqsLattice(t *testing.T) {
	res := []int{4, 4}
	period := []float64{1, 1}
	omega, dims, err := Freqs(res, period, 0)
	if err != nil {
		t.Fatalf("Freqs: %v", err)
	}
	if dims[0] != 4 || dims[1] != 2 {
		t.Fatalf("dims = %v", dims)
	}

	// Axis 0 runs the full standard ordering 0,1,-2,-1; axis 1 keeps the
	// non-negative half 0,1. The two coordinate components are swapped.
	axis0 := []float64{0, 1, -2, -1}
	axis1 := []float64{0, 1}
	for i0 := 0; i0 < 4; i0++ {
		for i1 := 0; i1 < 2; i1++ {
			cell := (i0*2 + i1) * 2
			want0 := axis1[i1] * 2 * math.Pi
			want1 := axis0[i0] * 2 * math.Pi
			if math.Abs(omega[cell]-want0) > 1e-12 || math.Abs(omega[cell+1]-want1) > 1e-12 {
				t.Fatalf("cell (%d,%d): got (%v,%v), want (%v,%v)",
					i0, i1, omega[cell], omega[cell+1], want0, want1)
			}
		}
	}
}

func TestFreqsEpsilonAndPeriod(t *testing.T) {
	const eps = 1e-5
	omega, _, err := Freqs([]int{4, 4}, []float64{2, 4}, eps)
	if err != nil {
		t.Fatalf("Freqs: %v", err)
	}

	// The zero-frequency cell is offset by eps before period scaling.
	if math.Abs(omega[0]-eps*2*math.Pi/2) > 1e-18 {
		t.Fatalf("zero cell component 0 = %v", omega[0])
	}
	if math.Abs(omega[1]-eps*2*math.Pi/4) > 1e-18 {
		t.Fatalf("zero cell component 1 = %v", omega[1])
	}

	// A non-zero cell carries no offset: cell (1,0) has swapped components
	// (0, 1) scaled by 2*pi/t.
	cell := (1*2 + 0) * 2
	if omega[cell] != 0 {
		t.Fatalf("cell (1,0) component 0 = %v, want 0", omega[cell])
	}
	if math.Abs(omega[cell+1]-2*math.Pi/4) > 1e-12 {
		t.Fatalf("cell (1,0) component 1 = %v", omega[cell+1])
	}
}

func TestFreqsValidation(t *testing.T) {
	if _, _, err := Freqs([]int{4}, []float64{1}, 0); !errors.Is(err, ErrResolution) {
		t.Fatalf("single axis: got %v", err)
	}
	if _, _, err := Freqs([]int{4, 0}, []float64{1, 1}, 0); !errors.Is(err, ErrResolution) {
		t.Fatalf("zero resolution: got %v", err)
	}
	if _, _, err := Freqs([]int{4, 1}, []float64{1, 1}, 0); !errors.Is(err, ErrResolution) {
		t.Fatalf("degenerate last axis: got %v", err)
	}
}

func TestIFFTShift(t *testing.T) {
	// Centered ordering on axis 0: index i holds frequency i - 2. After the
	// shift, frequency f sits at the standard index f mod 4.
	data := []complex128{-2, -1, 0, 1}
	IFFTShift(data, []int{4}, 1, 1)
	want := []complex128{0, 1, -2, -1}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("data = %v, want %v", data, want)
		}
	}
}

func TestIFFTShiftPartialAxes(t *testing.T) {
	// Only the first axis is shifted; the second (Hermitian) axis and the
	// channel stay put.
	data := []complex128{
		0, 1,
		10, 11,
		20, 21,
		30, 31,
	}
	IFFTShift(data, []int{4, 2}, 1, 1)
	want := []complex128{
		20, 21,
		30, 31,
		0, 1,
		10, 11,
	}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("data = %v, want %v", data, want)
		}
	}
}
