package gpu

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockBackendDiscovery(t *testing.T) {
	b := NewMockBackend()
	require.True(t, b.Available())

	devices, err := b.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, "MockGPU", devices[0].Name)
	require.NotEmpty(t, devices[0].ComputeCap)

	_, err = b.NewContext(1)
	require.Error(t, err)

	ctx, err := b.NewContext(0)
	require.NoError(t, err)
	defer ctx.Close()

	_, err = ctx.NewKernel(4, PlanOptions{})
	require.ErrorIs(t, err, ErrUnsupportedDimension)
}

func TestMockKernelHonorsWorkers(t *testing.T) {
	b := NewMockBackend()
	ctx, err := b.NewContext(0)
	require.NoError(t, err)
	defer ctx.Close()

	k, err := ctx.NewKernel(2, PlanOptions{Workers: 2})
	require.NoError(t, err)
	defer k.Close()
	require.Equal(t, 2, k.(*mockKernel).workers)

	k, err = ctx.NewKernel(3, PlanOptions{})
	require.NoError(t, err)
	defer k.Close()
	require.Greater(t, k.(*mockKernel).workers, 0)
}

func TestPlanRequiresBackend(t *testing.T) {
	RegisterBackend(nil)
	_, err := NewPlan(2, PlanOptions{})
	require.ErrorIs(t, err, ErrNoBackend)

	_, err = NewPlan(4, PlanOptions{})
	require.ErrorIs(t, err, ErrUnsupportedDimension)
}

func TestKernelArgsValidate(t *testing.T) {
	args := pointArgs()
	require.NoError(t, args.Validate())

	bad := pointArgs()
	bad.Res = []int{4}
	require.ErrorIs(t, bad.Validate(), ErrUnsupportedDimension)

	bad = pointArgs()
	bad.P = bad.P[:1]
	require.ErrorIs(t, bad.Validate(), ErrInvalidArgs)

	bad = pointArgs()
	bad.Out = bad.Out[:3]
	require.ErrorIs(t, bad.Validate(), ErrInvalidArgs)
}

// pointArgs describes a single unit point mass at the origin on a 4x4 grid.
func pointArgs() *KernelArgs {
	return &KernelArgs{
		Res:      []int{4, 4},
		J:        0,
		Channels: 1,
		Eps:      1e-5,
		P:        []float64{0, 0},
		C:        []float64{1},
		Signal:   []float64{1},
		Omega:    []float64{1, 1},
		Out:      make([]complex128, 4*2),
	}
}

func TestMockKernelPointMass(t *testing.T) {
	RegisterMockBackend()
	defer RegisterBackend(nil)

	plan, err := NewPlan(2, PlanOptions{})
	require.NoError(t, err)
	defer plan.Close()

	args := pointArgs()
	require.NoError(t, plan.Transform(args))

	// A unit point at the origin contributes magnitude one to every cell.
	for i, v := range args.Out {
		require.InDeltaf(t, 1.0, cmplx.Abs(v), 1e-9, "cell %d", i)
	}
}

func TestMockKernelLaunchesAgree(t *testing.T) {
	// The lane partitioning must not change the result: a single-lane
	// launch and the default multi-lane launch accumulate identically.
	args := &KernelArgs{
		Res:      []int{8, 8},
		J:        2,
		Channels: 2,
		Eps:      1e-5,
		P: []float64{
			0, 0, 1, 0, 0, 1,
			1, 1, 2, 1, 1, 2,
		},
		C:      []float64{1, -0.5},
		Signal: []float64{1, 2, 3, 4},
		Omega:  []float64{3.14, 3.14},
		Out:    make([]complex128, 8*4*2),
	}

	serial := &mockKernel{nDims: 2, workers: 1}
	require.NoError(t, serial.Launch(args))
	want := append([]complex128(nil), args.Out...)

	for i := range args.Out {
		args.Out[i] = 0
	}
	parallel := &mockKernel{nDims: 2, workers: 4}
	require.NoError(t, parallel.Launch(args))

	for i := range want {
		require.InDeltaf(t, 0, cmplx.Abs(args.Out[i]-want[i]), 1e-12, "cell %d", i)
	}
}
