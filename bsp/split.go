package bsp

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/mesh"
	"github.com/cpmech/gpf/point"
	"github.com/cpmech/gpf/predicates"
)

func isVirtual(tid, nOri int) bool { return tid >= nOri }

// SplitCell implements spec.md §4.8.2's split_cell: pop the cell's last
// inner triangle, separate out anything coplanar with its plane, classify
// every vertex of the cell against that plane, split every straddling edge,
// and replace cid with two children partitioned by side.
//
// This implementation scopes step 6-7's mesh surgery down: it does not
// construct the new internal cross-section face bounding the two children
// against each other (see the bsp/ entry in the design ledger for why that
// is safe for the classification pass that consumes this structure).
func (c *Complex) SplitCell(cid int) {
	cell := c.Cells[cid]
	n := len(cell.InnerTriangles)
	if n == 0 {
		chk.Panic("bsp: SplitCell called on a non-splittable cell %d", cid)
	}
	tid := cell.InnerTriangles[n-1]
	tri := c.Triangles[tid]
	plane := [3]int{tri.Org, tri.Dest, tri.Apex}
	remaining := append([]int(nil), cell.InnerTriangles[:n-1]...)

	coplanar, stillCrossing := c.separateCoplanar(plane, remaining)
	if !isVirtual(tid, c.NOriTriangles) {
		coplanar = append(coplanar, tid)
	}

	verts, edges := c.cellVertsAndEdges(cell.Faces)
	for _, v := range verts {
		c.classifyVertex(v, plane)
	}

	nOver, nUnder := 0, 0
	for _, v := range verts {
		switch c.vertOrient[v] {
		case predicates.Positive:
			nOver++
		case predicates.Negative:
			nUnder++
		}
	}
	if nOver == 0 || nUnder == 0 {
		chk.Panic("bsp: cell %d has no vertex on one side of its splitting plane", cid)
	}

	faces := append([]int(nil), cell.Faces...)
	for _, eid := range edges {
		he := c.Mesh.Edges[eid].He
		a := c.Mesh.Halfedges[he].Start
		b := c.Mesh.HeTipVertex(he)
		if predicates.SignReversed(c.vertOrient[a], c.vertOrient[b]) {
			_, newFaces := c.splitEdgeOnPlane(eid, plane)
			faces = append(faces, newFaces...)
		}
	}

	// re-walk the (now face-augmented) boundary to pick up every vertex and
	// the new ear-cut faces SplitEdge carved off of cell.Faces above: a
	// once-triangular face straddled by a split edge loses its far vertex to
	// the brand new sub-face, so without this the far vertex would silently
	// drop out of the cell.
	allVerts, _ := c.cellVertsAndEdges(faces)
	var overVerts, underVerts []int
	for _, v := range allVerts {
		if c.vertOrient[v] != predicates.Negative {
			overVerts = append(overVerts, v)
		}
		if c.vertOrient[v] != predicates.Positive {
			underVerts = append(underVerts, v)
		}
	}

	candidates := append(append([]int(nil), stillCrossing...), coplanar...)
	overTris := c.keepCrossing(candidates, overVerts)
	underTris := c.keepCrossing(candidates, underVerts)

	overCell := Cell{Faces: append([]int(nil), faces...), InnerTriangles: overTris}
	underCell := Cell{Faces: append([]int(nil), faces...), InnerTriangles: underTris}

	c.Cells[cid] = overCell
	c.Cells = append(c.Cells, underCell)

	for _, v := range allVerts {
		c.vertOrient[v] = predicates.Undefined
	}
}

// separateCoplanar partitions ids into those lying exactly on plane (minus
// any that are virtual, which are simply dropped) and those still properly
// crossing it, mirroring the reference's separate_out_coplanar_triangles.
func (c *Complex) separateCoplanar(plane [3]int, ids []int) (coplanar, stillCrossing []int) {
	pa, pb, pc := c.Points[plane[0]], c.Points[plane[1]], c.Points[plane[2]]
	for _, tid := range ids {
		tri := c.Triangles[tid]
		flat := true
		for _, v := range [3]int{tri.Org, tri.Dest, tri.Apex} {
			if isPointBuiltFromPlane(c.Points[v], pa, pb, pc) {
				continue
			}
			if predicates.Orient3DGeneric(c.Points[v], pa, pb, pc) != predicates.Zero {
				flat = false
				break
			}
		}
		if flat {
			if !isVirtual(tid, c.NOriTriangles) {
				coplanar = append(coplanar, tid)
			}
		} else {
			stillCrossing = append(stillCrossing, tid)
		}
	}
	return
}

// classifyVertex fills in vertOrient[v] against plane, caching the result
// (Undefined means "not yet classified this round" — reset after each
// split) and special-casing implicit points structurally built from plane
// itself, which are Zero by construction even when the raw determinant
// would be too close to call.
func (c *Complex) classifyVertex(v int, plane [3]int) {
	if c.vertOrient[v] != predicates.Undefined {
		return
	}
	pa, pb, pc := c.Points[plane[0]], c.Points[plane[1]], c.Points[plane[2]]
	if isPointBuiltFromPlane(c.Points[v], pa, pb, pc) {
		c.vertOrient[v] = predicates.Zero
		return
	}
	c.vertOrient[v] = predicates.Orient3DGeneric(c.Points[v], pa, pb, pc)
}

// keepCrossing re-tests every candidate triangle's own plane against verts,
// keeping it only if verts still straddle both sides (spec.md's "re-tested
// by plane orient3d on the new cell's vertices").
func (c *Complex) keepCrossing(ids []int, verts []int) []int {
	var out []int
	seen := map[int]bool{}
	for _, tid := range ids {
		if seen[tid] {
			continue
		}
		seen[tid] = true
		tri := c.Triangles[tid]
		pa, pb, pc := c.Points[tri.Org], c.Points[tri.Dest], c.Points[tri.Apex]
		hasPos, hasNeg := false, false
		for _, v := range verts {
			if isPointBuiltFromPlane(c.Points[v], pa, pb, pc) {
				continue
			}
			switch predicates.Orient3DGeneric(c.Points[v], pa, pb, pc) {
			case predicates.Positive:
				hasPos = true
			case predicates.Negative:
				hasNeg = true
			}
		}
		if hasPos && hasNeg {
			out = append(out, tid)
		}
	}
	return out
}

// cellVertsAndEdges collects every distinct vertex and edge touched by
// faces' boundary loops, mirroring the reference's cell_verts_and_edges
// (which uses a toggled visited array rather than a map — a map is simpler
// here and these lists are small).
func (c *Complex) cellVertsAndEdges(faces []int) (verts, edges []int) {
	seenV, seenE := map[int]bool{}, map[int]bool{}
	for _, fid := range faces {
		start := c.Mesh.Faces[fid].He
		h := start
		for {
			v := c.Mesh.Halfedges[h].Start
			if !seenV[v] {
				seenV[v] = true
				verts = append(verts, v)
			}
			e := c.Mesh.Halfedges[h].Edge
			if !seenE[e] {
				seenE[e] = true
				edges = append(edges, e)
			}
			h = c.Mesh.Halfedges[h].Next
			if h == start {
				break
			}
		}
	}
	return
}

// splitEdgeOnPlane splits eid (straddling plane) via the mesh's generic
// SplitEdge, computing the new vertex's implicit-point form from eid's
// recorded parents and plane, then classifies every new edge produced
// (continuation pieces keep eid's own parents; the fresh apex-chord per
// side becomes a plane-pair edge between plane and that side's own
// standing plane) per spec.md §4.8.2 step 5.
func (c *Complex) splitEdgeOnPlane(eid int, plane [3]int) (nv int, newFaces []int) {
	start := c.Mesh.Edges[eid].He
	origA := c.Mesh.Halfedges[start].Start
	origB := c.Mesh.HeTipVertex(start)

	type sideInfo struct{ face, apex int }
	var sides []sideInfo
	for h := start; ; {
		face := c.Mesh.Halfedges[h].Face
		apex := c.Mesh.Halfedges[prevInFace(c.Mesh, h)].Start
		sides = append(sides, sideInfo{face, apex})
		h = c.Mesh.Halfedges[h].Sibling
		if h == start {
			break
		}
	}

	parent := c.edgeParent[eid]
	var newPoint *point.Point3D
	if parent.kind == vertexPair {
		newPoint = point.NewLPI(
			c.Points[parent.a].ExplicitCoords(), c.Points[parent.b].ExplicitCoords(),
			c.Points[plane[0]].ExplicitCoords(), c.Points[plane[1]].ExplicitCoords(), c.Points[plane[2]].ExplicitCoords(),
		)
	} else {
		newPoint = threePlanesIntersection(c.Points, parent.plane1, parent.plane2, plane)
	}

	beforeFaces := len(c.Mesh.Faces)
	nv = c.Mesh.SplitEdge(eid)
	c.Points[nv] = newPoint
	c.vertOrient[nv] = predicates.Zero

	apexPlane := map[int][3]int{}
	for i, s := range sides {
		newFace := beforeFaces + i
		// the new sub-face inherits its parent's plane/adjacency/marker
		// bookkeeping wholesale: both pieces of a split face still border the
		// same two cells and still carry whatever original triangle was
		// coplanar with the whole face before the cut.
		c.facePlane[newFace] = c.facePlane[s.face]
		c.FaceCells[newFace] = c.FaceCells[s.face]
		c.FaceTriangles[newFace] = append([]int(nil), c.FaceTriangles[s.face]...)
		apexPlane[s.apex] = c.facePlane[s.face]
		newFaces = append(newFaces, newFace)
	}

	start2 := c.Mesh.Verts[nv].Out
	for h := start2; ; {
		other := c.Mesh.HeTipVertex(h)
		eid2 := c.Mesh.Halfedges[h].Edge
		if other == origA || other == origB {
			c.edgeParent[eid2] = parent
		} else if pl, ok := apexPlane[other]; ok {
			c.edgeParent[eid2] = edgeParent{kind: planePair, plane1: plane, plane2: pl}
		}
		h = c.Mesh.Halfedges[h].NextOut
		if h == start2 {
			break
		}
	}
	return nv, newFaces
}

// prevInFace returns the halfedge whose Next is h, walking h's face loop
// (mirrors mesh's own unexported eprevInFace; bsp needs its own copy since
// it only has access to mesh's exported fields).
func prevInFace(m *mesh.Mesh, h int) int {
	cur := h
	for {
		next := m.Halfedges[cur].Next
		if next == h {
			return cur
		}
		cur = next
	}
}
