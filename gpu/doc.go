// Package gpu provides the grid-parallel device backend for algonuft.
//
// The package defines a backend abstraction for launching the per-simplex
// Fourier kernel over a dense 2-D or 3-D frequency grid. Each execution lane
// owns a disjoint set of output cells and iterates over all simplices, so no
// synchronization is needed between lanes. A CPU-backed mock backend is
// provided for development and tests; real device backends register
// themselves at runtime.
package gpu
