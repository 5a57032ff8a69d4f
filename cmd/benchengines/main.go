// Command benchengines times the CPU streaming engine against the mock
// device backend on randomly generated triangle meshes.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	algonuft "github.com/cwbudde/algo-nuft"
	"github.com/cwbudde/algo-nuft/gpu"
)

func main() {
	var (
		resList = flag.String("res", "16,32", "comma-separated grid resolutions")
		nTri    = flag.Int("tris", 64, "number of triangles")
		iters   = flag.Int("iters", 3, "iterations per engine")
		seed    = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	gpu.RegisterMockBackend()

	resolutions := parseSizes(*resList)
	if len(resolutions) == 0 {
		fmt.Println("no resolutions specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))
	v, e, d := randomMesh(rnd, *nTri)

	fmt.Printf("triangles=%d iters=%d\n", *nTri, *iters)
	fmt.Printf("%8s  %8s  %12s\n", "res", "device", "ms/op")

	for _, r := range resolutions {
		res := []int{r, r}
		period := []float64{2, 2}
		for _, dev := range []algonuft.Device{algonuft.DeviceCPU, algonuft.DeviceGPU} {
			opts := &algonuft.Options{Mode: algonuft.ModeMass, Device: dev, Seed: *seed}
			start := time.Now()
			for i := 0; i < *iters; i++ {
				if _, err := algonuft.SurfFT(cloneVerts(v), e, d, res, period, opts); err != nil {
					fmt.Printf("%8d  %8s  error: %v\n", r, dev, err)
					return
				}
			}
			perOp := float64(time.Since(start).Milliseconds()) / float64(*iters)
			fmt.Printf("%8d  %8s  %12.2f\n", r, dev, perOp)
		}
	}
}

func randomMesh(rnd *rand.Rand, nTri int) (v [][]float64, e [][]int, d [][]float64) {
	for i := 0; i < nTri; i++ {
		base := 3 * i
		for k := 0; k < 3; k++ {
			v = append(v, []float64{rnd.Float64(), rnd.Float64()})
		}
		e = append(e, []int{base, base + 1, base + 2})
		d = append(d, []float64{rnd.Float64()})
	}
	return v, e, d
}

func cloneVerts(v [][]float64) [][]float64 {
	out := make([][]float64, len(v))
	for i, row := range v {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func parseSizes(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 2 {
			continue
		}
		out = append(out, n)
	}
	return out
}
