package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_mesh01(tst *testing.T) {

	chk.PrintTitle("mesh01. build a two-triangle quad and check half-edge invariants")

	// quad 0,1,2,3 split by diagonal 0-2 into triangles (0,1,2) and (0,2,3)
	m := Build(4, [][]int{{0, 1, 2}, {0, 2, 3}})

	if len(m.Verts) != 4 {
		tst.Fatalf("expected 4 vertices, got %d", len(m.Verts))
	}
	if len(m.Faces) != 2 {
		tst.Fatalf("expected 2 faces, got %d", len(m.Faces))
	}
	if len(m.Halfedges) != 6 {
		tst.Fatalf("expected 6 halfedges, got %d", len(m.Halfedges))
	}
	// edges: 0-1, 1-2, 2-0(shared), 0-2... wait 2-3, 3-0 -> 5 distinct undirected edges
	if len(m.Edges) != 5 {
		tst.Fatalf("expected 5 edges, got %d", len(m.Edges))
	}

	// the shared diagonal must have sibling count 2; every boundary edge self-loops
	var diagEdge = -1
	for e := range m.Edges {
		if m.SiblingCount(e) == 2 {
			diagEdge = e
		}
	}
	if diagEdge < 0 {
		tst.Fatalf("expected to find the shared diagonal edge with sibling count 2")
	}

	for h := range m.Halfedges {
		if m.Halfedges[m.Halfedges[h].Next].Start != m.HeTipVertex(h) {
			tst.Fatalf("he_tip_vertex invariant broken at halfedge %d", h)
		}
	}

	// every face loop must close after exactly 3 steps (both faces are triangles)
	for f := range m.Faces {
		start := m.Faces[f].He
		cur := m.Halfedges[start].Next
		steps := 1
		for cur != start {
			cur = m.Halfedges[cur].Next
			steps++
			if steps > 10 {
				tst.Fatalf("face %d loop did not close", f)
			}
		}
		if steps != 3 {
			tst.Fatalf("expected a triangular face, got a %d-cycle", steps)
		}
	}
}

func Test_mesh02(tst *testing.T) {

	chk.PrintTitle("mesh02. split_edge on the shared diagonal grows the mesh consistently")

	m := Build(4, [][]int{{0, 1, 2}, {0, 2, 3}})
	var diagEdge = -1
	for e := range m.Edges {
		if m.SiblingCount(e) == 2 {
			diagEdge = e
		}
	}
	nFacesBefore := len(m.Faces)
	nVertsBefore := len(m.Verts)

	nv := m.SplitEdge(diagEdge)

	if nv != nVertsBefore {
		tst.Fatalf("expected the new vertex id to be %d, got %d", nVertsBefore, nv)
	}
	if len(m.Faces) != nFacesBefore+2 {
		tst.Fatalf("expected face count to grow by 2 (one split per touched face), got %d -> %d",
			nFacesBefore, len(m.Faces))
	}
	// every face must still be a closed triangle after the split
	for f := range m.Faces {
		start := m.Faces[f].He
		cur := m.Halfedges[start].Next
		steps := 1
		for cur != start {
			cur = m.Halfedges[cur].Next
			steps++
			if steps > 10 {
				tst.Fatalf("face %d loop did not close after split_edge", f)
			}
		}
		if steps != 3 {
			tst.Fatalf("expected every post-split face to remain a triangle, got a %d-cycle", steps)
		}
	}
	for h := range m.Halfedges {
		if m.Halfedges[m.Halfedges[h].Next].Start != m.HeTipVertex(h) {
			tst.Fatalf("he_tip_vertex invariant broken at halfedge %d after split_edge", h)
		}
	}
}

func Test_mesh03(tst *testing.T) {

	chk.PrintTitle("mesh03. split_face divides a quad along its diagonal")

	m := Build(4, [][]int{{0, 1, 2, 3}})
	if len(m.Faces) != 1 {
		tst.Fatalf("expected a single quad face, got %d", len(m.Faces))
	}

	h := m.SplitFace(0, 0, 2)
	if m.Halfedges[h].Start != 0 {
		tst.Fatalf("expected the returned halfedge to start at vertex 0")
	}
	if m.HeTipVertex(h) != 2 {
		tst.Fatalf("expected the returned halfedge to end at vertex 2")
	}
	if len(m.Faces) != 2 {
		tst.Fatalf("expected 2 faces after split_face, got %d", len(m.Faces))
	}
	for f := range m.Faces {
		start := m.Faces[f].He
		cur := m.Halfedges[start].Next
		steps := 1
		for cur != start {
			cur = m.Halfedges[cur].Next
			steps++
			if steps > 10 {
				tst.Fatalf("face %d loop did not close after split_face", f)
			}
		}
		if steps != 3 {
			tst.Fatalf("expected both post-split faces to be triangles, got a %d-cycle", steps)
		}
	}
}
