// Package geom provides the simplex-level geometric helpers of the
// transform: the tagged simplex representation, simplex content via the
// Cayley–Menger determinant, and vertex-to-element adjacency.
package geom

// Simplex is one element of a simplicial complex. Verts always holds j+1
// vertex indices. For an oriented simplex the last index points at the
// shared ghost origin and the content is signed by the right-hand rule;
// otherwise all vertices are explicit and the content is unsigned.
type Simplex struct {
	Verts    []int
	Oriented bool
}

// VertexElements builds the vertex -> incident simplex adjacency list.
// Each element id appears at most once per vertex even when a degenerate
// simplex references the same vertex twice.
func VertexElements(nVert int, simplices []Simplex) [][]int {
	adj := make([][]int, nVert)
	for ie, s := range simplices {
		for _, iv := range s.Verts {
			l := adj[iv]
			if len(l) > 0 && l[len(l)-1] == ie {
				continue
			}
			adj[iv] = append(l, ie)
		}
	}
	return adj
}

// RemoveElement deletes element ie from the adjacency list of vertex iv,
// if present.
func RemoveElement(adj [][]int, iv, ie int) {
	l := adj[iv]
	for i, e := range l {
		if e == ie {
			adj[iv] = append(l[:i], l[i+1:]...)
			return
		}
	}
}
