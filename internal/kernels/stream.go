package kernels

import (
	"math/cmplx"

	"github.com/cwbudde/algo-nuft/internal/geom"
)

// Stream runs the breadth-first streaming engine over a simplicial complex,
// accumulating each simplex's contribution into out exactly once.
//
// The engine keeps a FIFO queue of active vertices and a mutable adjacency
// list of unprocessed incident simplices. Per-vertex phase signatures over
// the frequency lattice are computed lazily on first touch and evicted as
// soon as the vertex's pending simplices are exhausted, so peak memory is
// bounded by the traversal frontier rather than the vertex count.
//
// verts holds the (possibly ghost-extended) vertex coordinates, omega the
// flattened frequency lattice (one nDims vector per cell), and out the
// row-major output of len(omega)/nDims cells times channels. progress and
// warnf are advisory and may be nil.
func Stream(verts [][]float64, simplices []geom.Simplex, signal [][]float64,
	omega []float64, nDims, j int, out []complex128, channels int,
	progress func(done, total int), warnf func(format string, args ...any)) error {

	nVert := len(verts)
	nFreq := len(omega) / nDims
	total := len(simplices)

	adj := geom.VertexElements(nVert, simplices)
	queue := make([]int, 0, nVert)
	inQueue := make([]bool, nVert)

	// Slot arrays for the lazy phase cache; nil means not cached.
	sig := make([][]float64, nVert)
	esig := make([][]complex128, nVert)

	cache := func(iv int) {
		if sig[iv] != nil {
			return
		}
		s := make([]float64, nFreq)
		e := make([]complex128, nFreq)
		v := verts[iv]
		for g := 0; g < nFreq; g++ {
			dot := 0.0
			for d := 0; d < nDims; d++ {
				dot += v[d] * omega[g*nDims+d]
			}
			s[g] = dot
			e[g] = cmplx.Exp(complex(0, -dot))
		}
		sig[iv] = s
		esig[iv] = e
	}

	vertVecs := make([][]float64, j+1)
	sigv := make([]float64, j+1)
	esigv := make([]complex128, j+1)

	done := 0
	for done < total {
		if len(queue) == 0 {
			// Reseed from any vertex that still has pending simplices.
			for iv, l := range adj {
				if len(l) > 0 {
					queue = append(queue, iv)
					inQueue[iv] = true
					break
				}
			}
		}
		iv := queue[0]
		queue = queue[1:]

		if len(adj[iv]) > 0 {
			pending := append([]int(nil), adj[iv]...)
			for _, ie := range pending {
				s := simplices[ie]
				for _, vert := range s.Verts {
					geom.RemoveElement(adj, vert, ie)
					if !inQueue[vert] {
						queue = append(queue, vert)
						inQueue[vert] = true
					}
					cache(vert)
				}

				for k, vert := range s.Verts {
					vertVecs[k] = verts[vert]
				}
				content, err := geom.Content(j, nDims, s.Oriented, vertVecs, warnf)
				if err != nil {
					return err
				}
				detJ := geom.Factorial(j) * content

				for g := 0; g < nFreq; g++ {
					for k, vert := range s.Verts {
						sigv[k] = sig[vert][g]
						esigv[k] = esig[vert][g]
					}
					f0 := complex(detJ, 0) * Integral(sigv, esigv)
					for ch := 0; ch < channels; ch++ {
						out[g*channels+ch] += f0 * complex(signal[ie][ch], 0)
					}
				}

				done++
				if progress != nil {
					progress(done, total)
				}
			}
		}

		// Evict this vertex's phase cache; the frontier has moved past it.
		sig[iv] = nil
		esig[iv] = nil
	}
	return nil
}
