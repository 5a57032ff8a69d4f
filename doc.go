// Package algonuft computes the non-uniform Fourier transform of signals
// defined on simplicial complexes (point sets, line segments, triangulated
// surfaces, tetrahedral volumes) embedded in n-dimensional space.
//
// Unlike a uniform-grid FFT, the transform evaluates a closed-form Fourier
// integral per simplex and accumulates the result over a fixed frequency
// lattice, producing a Hermitian-half spectrum suitable as a fixed-resolution
// tensor representation of mesh geometry.
//
// The CPU engine streams over the complex breadth-first with a bounded
// per-vertex phase cache. The GPU engine evaluates each (simplex, grid cell)
// pair independently through a pluggable backend; see the gpu subpackage.
package algonuft
