package constraint

import (
	"github.com/cpmech/gpf/predicates"
	"github.com/cpmech/gpf/tet"
)

// Marks is the output of constraint-triangle insertion: five arrays the BSP
// build consumes to recover which tets/faces each constraint triangle
// touches (spec.md §4.7.2's "five mark arrays").
type Marks struct {
	// Face[tid][f] lists the constraint triangle ids coplanar with tet tid's
	// face f (covers both the "exact tet face match" and the "3 planar, 1
	// non-planar" face-coplanar classification; more than one original
	// triangle can share a face once a polygon has been fan-triangulated).
	Face map[int][4][]int
	// EdgeCrossing[tid] lists constraint triangle ids whose edge properly
	// crosses through tid (the "2 planar, 1+1 non-planar" classification).
	EdgeCrossing map[int][]int
	// VertexIncidence[tid] lists constraint triangle ids incident to tid
	// through a single shared vertex (the "1 planar, 1+2 non-planar"
	// classification).
	VertexIncidence map[int][]int
	// Improper[tid] lists constraint triangle ids that pierce tid's
	// interior without being face/edge/vertex aligned (the "0 planar"
	// classification — spec.md's marks[4]).
	Improper map[int][]int
}

func NewMarks() *Marks {
	return &Marks{
		Face:            map[int][4][]int{},
		EdgeCrossing:    map[int][]int{},
		VertexIncidence: map[int][]int{},
		Improper:        map[int][]int{},
	}
}

func (mk *Marks) faceRow(tid int) [4][]int {
	return mk.Face[tid]
}

// markFace appends id to tet tid's face f list, keeping it sorted (mirrors
// the reference implementation's insert_coplanar_triangles binary-search
// insert, minus the n_ori_triangles virtual-constraint filter: every id is
// recorded here, and bsp.Build drops the virtual ones when it reads the
// face lists).
func (mk *Marks) markFace(tid, f, id int) {
	row := mk.faceRow(tid)
	pos := 0
	for pos < len(row[f]) && row[f][pos] < id {
		pos++
	}
	if pos < len(row[f]) && row[f][pos] == id {
		mk.Face[tid] = row
		return
	}
	row[f] = append(row[f], 0)
	copy(row[f][pos+1:], row[f][pos:len(row[f])-1])
	row[f][pos] = id
	mk.Face[tid] = row
}

// InsertConstraintTriangles runs spec.md §4.7.2's per-triangle insertion in
// order, recording every tet each constraint triangle touches into marks.
func InsertConstraintTriangles(tm *tet.Mesh, tris []Triangle) *Marks {
	marks := NewMarks()
	for id, tri := range tris {
		insertOne(tm, marks, id, tri)
	}
	return marks
}

func insertOne(tm *tet.Mesh, marks *Marks, id int, tri Triangle) {
	// step 1: exact tet-face match.
	if f, tid, ok := findExactFace(tm, tri); ok {
		marks.markFace(tid, f, id)
		nb := tm.Tets[tid].Nbrs[f]
		if nb.Tet >= 0 {
			marks.markFace(nb.Tet, nb.Ver/6, id)
		}
		return
	}

	// steps 2-3: walk each edge of the triangle through the mesh,
	// accumulating every tet touched along the way.
	intersected := map[int]bool{}
	for _, e := range [3][2]int{{tri.Org, tri.Dest}, {tri.Dest, tri.Apex}, {tri.Apex, tri.Org}} {
		for _, tid := range walkEdgeTets(tm, e[0], e[1]) {
			intersected[tid] = true
		}
	}

	// step 4: classify every intersected tet's relationship to the
	// triangle's plane by splitting its four vertices zero/pos/neg.
	frontier := []int{}
	for tid := range intersected {
		classifyAndMark(tm, marks, id, tri, tid)
		frontier = append(frontier, tid)
	}

	// step 5: flood outward, re-classifying neighbours; hull tets are never
	// entered, and the flood continues only through tets classified as
	// face-coplanar or improper.
	visited := map[int]bool{}
	for _, t := range frontier {
		visited[t] = true
	}
	for len(frontier) > 0 {
		tid := frontier[0]
		frontier = frontier[1:]
		for f := 0; f < 4; f++ {
			nb := tm.Tets[tid].Nbrs[f].Tet
			if nb < 0 || visited[nb] || tm.IsHullTet(nb) {
				continue
			}
			visited[nb] = true
			if classifyAndMark(tm, marks, id, tri, nb) {
				frontier = append(frontier, nb)
			}
		}
	}
}

// findExactFace reports whether tri's three vertices coincide exactly with
// some tet's face, returning that face index and tet id.
func findExactFace(tm *tet.Mesh, tri Triangle) (int, int, bool) {
	start := tm.P2T[tri.Org]
	if start < 0 {
		return 0, 0, false
	}
	want := vset{tri.Org, tri.Dest, tri.Apex}
	normalize(&want)
	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		tid := queue[0]
		queue = queue[1:]
		touches := false
		for _, v := range tm.Tets[tid].Verts {
			if v == tri.Org {
				touches = true
			}
		}
		if touches {
			for f := 0; f < 4; f++ {
				if faceMatches(tm, tid, f, want) {
					return f, tid, true
				}
			}
			for f := 0; f < 4; f++ {
				nb := tm.Tets[tid].Nbrs[f].Tet
				if nb >= 0 && !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}
	return 0, 0, false
}

type vset [3]int

func normalize(v *vset) {
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1] > v[2] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
}

var faceLocalVerts = [4][3]int{{1, 2, 3}, {0, 3, 2}, {0, 1, 3}, {0, 2, 1}}

func faceMatches(tm *tet.Mesh, tid, f int, want vset) bool {
	local := faceLocalVerts[f]
	got := vset{tm.Tets[tid].Verts[local[0]], tm.Tets[tid].Verts[local[1]], tm.Tets[tid].Verts[local[2]]}
	normalize(&got)
	return got == want
}

// walkEdgeTets returns every tet visited while walking from vertex orgV
// towards vertex destV via repeated orient3d face tests, the same style of
// walk tet.Locate performs for an arbitrary query point, here driven to the
// coordinates of an existing mesh vertex (spec.md §4.7.2 step 2).
func walkEdgeTets(tm *tet.Mesh, orgV, destV int) []int {
	start := tm.P2T[orgV]
	if start < 0 {
		return nil
	}
	target := tm.Points[destV]
	var path []int
	visited := map[int]bool{}
	cur := start
	for steps := 0; steps < len(tm.Tets)+16; steps++ {
		if visited[cur] {
			break
		}
		visited[cur] = true
		path = append(path, cur)
		reached := false
		for _, v := range tm.Tets[cur].Verts {
			if v == destV {
				reached = true
			}
		}
		if reached {
			break
		}
		moved := false
		for f := 0; f < 4; f++ {
			org, dest, apex := faceVerts3(tm, cur, f)
			if org == tm.GhostID || dest == tm.GhostID || apex == tm.GhostID {
				continue
			}
			o := predicates.Orient3DGeneric(tm.Points[org], tm.Points[dest], tm.Points[apex], target)
			if o == predicates.Negative {
				nb := tm.Tets[cur].Nbrs[f].Tet
				if nb >= 0 && !visited[nb] {
					cur = nb
					moved = true
					break
				}
			}
		}
		if !moved {
			break
		}
	}
	return path
}

func faceVerts3(tm *tet.Mesh, tid, f int) (int, int, int) {
	local := faceLocalVerts[f]
	v := tm.Tets[tid].Verts
	return v[local[0]], v[local[1]], v[local[2]]
}

// classifyAndMark evaluates tid's four vertices against tri's plane,
// records the appropriate mark, and reports whether the classification
// (inner-crossing or face-coplanar, per spec.md step 5) means flood
// propagation should continue through tid's neighbours.
func classifyAndMark(tm *tet.Mesh, marks *Marks, id int, tri Triangle, tid int) bool {
	verts := tm.Tets[tid].Verts
	var signs [4]predicates.Orientation
	nZero, nPos, nNeg := 0, 0, 0
	for i, v := range verts {
		if v == tm.GhostID {
			signs[i] = predicates.Undefined
			continue
		}
		signs[i] = predicates.Orient3DGeneric(tm.Points[tri.Org], tm.Points[tri.Dest], tm.Points[tri.Apex], tm.Points[v])
		switch signs[i] {
		case predicates.Zero:
			nZero++
		case predicates.Positive:
			nPos++
		case predicates.Negative:
			nNeg++
		}
	}

	switch {
	case nZero == 3:
		// 3 planar, 1 non-planar: face-coplanar with the face opposite the
		// single non-planar vertex (tet-local vertex index f is always the
		// vertex opposite face f, per tet.oppositeVertex's convention).
		for f := 0; f < 4; f++ {
			if signs[f] != predicates.Zero {
				marks.markFace(tid, f, id)
				return true
			}
		}
	case nZero == 2 && nPos >= 1 && nNeg >= 1:
		marks.EdgeCrossing[tid] = append(marks.EdgeCrossing[tid], id)
	case nZero == 1 && (nPos+nNeg) == 3:
		marks.VertexIncidence[tid] = append(marks.VertexIncidence[tid], id)
	case nZero == 0 && nPos >= 1 && nNeg >= 1:
		marks.Improper[tid] = append(marks.Improper[tid], id)
		return true
	}
	return false
}
