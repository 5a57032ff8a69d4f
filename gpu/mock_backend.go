package gpu

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-nuft/internal/cpu"
	"github.com/cwbudde/algo-nuft/internal/kernels"
)

// MockBackend is a CPU-backed device backend for development and tests. It
// satisfies the backend interfaces but executes the kernel with host worker
// goroutines, each lane owning a disjoint stride of first-axis grid rows.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend with a single fake device whose
// capability string reports the host SIMD level.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:       "MockGPU",
			Vendor:     "algonuft",
			Driver:     "mock",
			MemoryMB:   0,
			ComputeCap: cpu.DetectFeatures().SIMDLabel(),
		},
	}
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock device backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("mock backend: device index %d out of range", deviceIndex)
	}
	return &mockContext{device: b.device}, nil
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

type mockContext struct {
	device DeviceInfo
}

func (c *mockContext) Device() DeviceInfo {
	return c.device
}

func (c *mockContext) NewKernel(nDims int, opts PlanOptions) (Kernel, error) {
	if nDims != 2 && nDims != 3 {
		return nil, ErrUnsupportedDimension
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &mockKernel{nDims: nDims, workers: workers}, nil
}

func (c *mockContext) Close() error {
	return nil
}

type mockKernel struct {
	nDims   int
	workers int
}

// Launch runs the grid-parallel kernel on host goroutines. Lane w handles
// first-axis rows w, w+workers, ... so writes never overlap across lanes.
func (k *mockKernel) Launch(args *KernelArgs) error {
	workers := k.workers
	if workers < 1 {
		workers = 1
	}
	if workers > args.Res[0] {
		workers = args.Res[0]
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(lane int) {
			defer wg.Done()
			if k.nDims == 2 {
				laneRun2(args, lane, workers)
			} else {
				laneRun3(args, lane, workers)
			}
		}(w)
	}
	wg.Wait()
	return nil
}

func (k *mockKernel) Close() error {
	return nil
}

func laneRun2(args *KernelArgs, lane, stride int) {
	r0, r1 := args.Res[0], args.Res[1]/2
	nVert := args.J + 1
	pStride := nVert * 2
	uv := make([]float64, 2)

	for iu := lane; iu < r0; iu += stride {
		u := (float64(iu) - float64(args.Res[0])/2 + args.Eps) * args.Omega[0]
		for iv := 0; iv < r1; iv++ {
			v := (float64(iv) + args.Eps) * args.Omega[1]
			uv[0], uv[1] = v, u
			cell := (iu*r1 + iv) * args.Channels
			for i := 0; i < args.NElem(); i++ {
				fi := kernels.IntegralAt(args.P[i*pStride:(i+1)*pStride], nVert, uv)
				fc := fi * complex(args.C[i], 0)
				for ic := 0; ic < args.Channels; ic++ {
					args.Out[cell+ic] += fc * complex(args.Signal[i*args.Channels+ic], 0)
				}
			}
		}
	}
}

func laneRun3(args *KernelArgs, lane, stride int) {
	r0, r1, r2 := args.Res[0], args.Res[1], args.Res[2]/2
	nVert := args.J + 1
	pStride := nVert * 3
	uvw := make([]float64, 3)

	for iu := lane; iu < r0; iu += stride {
		u := (float64(iu) - float64(args.Res[0])/2 + args.Eps) * args.Omega[0]
		for iv := 0; iv < r1; iv++ {
			v := (float64(iv) - float64(args.Res[1])/2 + args.Eps) * args.Omega[1]
			for iw := 0; iw < r2; iw++ {
				w := (float64(iw) + args.Eps) * args.Omega[2]
				uvw[0], uvw[1], uvw[2] = v, u, w
				cell := ((iu*r1+iv)*r2 + iw) * args.Channels
				for i := 0; i < args.NElem(); i++ {
					fi := kernels.IntegralAt(args.P[i*pStride:(i+1)*pStride], nVert, uvw)
					fc := fi * complex(args.C[i], 0)
					for ic := 0; ic < args.Channels; ic++ {
						args.Out[cell+ic] += fc * complex(args.Signal[i*args.Channels+ic], 0)
					}
				}
			}
		}
	}
}
