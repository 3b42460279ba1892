// Package bsp implements BSPComplex, the cell/face/edge structure built from
// a constrained tet mesh and then recursively split along each cell's
// remaining inner (properly crossing) constraint triangles until every cell
// is free of them (spec.md §4.8).
package bsp

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/constraint"
	"github.com/cpmech/gpf/mesh"
	"github.com/cpmech/gpf/point"
	"github.com/cpmech/gpf/predicates"
	"github.com/cpmech/gpf/tet"
)

// Cell is one polyhedral piece of the complex: the faces bounding it and the
// constraint triangles that still properly cross its interior.
type Cell struct {
	Faces          []int
	InnerTriangles []int
}

// parentKind discriminates how a mesh edge's "parents" should be
// interpreted when that edge is later split along a cutting plane (spec.md
// §4.8.2 step 5).
type parentKind int

const (
	vertexPair parentKind = iota // two explicit vertex ids: line through both
	planePair                    // two explicit-vertex triples: two bounding planes
)

type edgeParent struct {
	kind       parentKind
	a, b       int    // vertexPair
	plane1     [3]int // planePair
	plane2     [3]int
}

// Complex is the BSP cell complex: a half-edge surface mesh of faces shared
// between pairs of cells, plus the points (explicit and, after splitting,
// implicit LPI/TPI) those faces reference.
type Complex struct {
	Points []*point.Point3D
	Mesh   *mesh.Mesh
	Cells  []Cell

	// Triangles is the full constraint-triangle table (original, index <
	// NOriTriangles, followed by virtual ones); FaceTriangles entries and
	// Cell.InnerTriangles index into it.
	Triangles     []constraint.Triangle
	NOriTriangles int

	// FaceCells[fid] names the two cells fid borders.
	FaceCells map[int][2]int
	// FaceTriangles[fid] lists the original (non-virtual) constraint
	// triangle ids coplanar with face fid.
	FaceTriangles map[int][]int
	// facePlane[fid] is a stable explicit-vertex triple spanning fid's
	// plane, set once at Build and inherited by any face split off it.
	facePlane map[int][3]int

	edgeParent map[int]edgeParent
	vertOrient []predicates.Orientation
}

// the tet-local vertex index sets for each of a tet's 4 faces, in the
// package's own outward-winding convention (mirrors tet's unexported
// faceVerts table, recomputed here since bsp needs its own copy to read a
// face's vertices without exposing tet's internals).
var faceLocal = [4][3]int{{1, 2, 3}, {0, 3, 2}, {0, 1, 3}, {0, 2, 1}}

// Build constructs the initial BSPComplex from a constrained tet mesh: one
// cell per non-ghost tet, one face per tet-face not shared with a
// lower-indexed non-ghost tet (spec.md §4.8.1).
func Build(tm *tet.Mesh, marks *constraint.Marks, triangles []constraint.Triangle, nOriTriangles int) *Complex {
	c := &Complex{
		Points:        append([]*point.Point3D(nil), tm.Points...),
		Triangles:     triangles,
		NOriTriangles: nOriTriangles,
		FaceCells:     map[int][2]int{},
		FaceTriangles: map[int][]int{},
		facePlane:     map[int][3]int{},
		edgeParent:    map[int]edgeParent{},
	}

	newOrder := make([]int, len(tm.Tets))
	idx := 0
	for tid := range tm.Tets {
		if tm.IsHullTet(tid) {
			newOrder[tid] = -1
		} else {
			newOrder[tid] = idx
			idx++
		}
	}

	type facePos struct{ tid, f int }
	facePositions := map[facePos]int{}
	var polys [][]int
	cells := make([]Cell, idx)

	for tid := range tm.Tets {
		cid := newOrder[tid]
		if cid < 0 {
			continue
		}
		var cellFaces []int
		for f := 0; f < 4; f++ {
			nb := tm.Tets[tid].Nbrs[f]
			adjCid := -1
			if nb.Tet >= 0 {
				adjCid = newOrder[nb.Tet]
			}
			if adjCid > cid || adjCid < 0 {
				fid := len(polys)
				org, dst, apx := faceVerts(tm, tid, f)
				polys = append(polys, []int{org, dst, apx})
				c.facePlane[fid] = [3]int{org, dst, apx}
				c.FaceTriangles[fid] = filterOriginal(marks.Face[tid][f], nOriTriangles)
				c.FaceCells[fid] = [2]int{cid, adjCid}
				facePositions[facePos{tid, f}] = fid
				cellFaces = append(cellFaces, fid)
			} else {
				fid, ok := facePositions[facePos{nb.Tet, nb.Ver / 6}]
				if !ok {
					chk.Panic("bsp: neighbour face (%d,%d) not yet recorded", nb.Tet, nb.Ver/6)
				}
				c.FaceTriangles[fid] = mergeSorted(c.FaceTriangles[fid], filterOriginal(marks.Face[tid][f], nOriTriangles))
				cellFaces = append(cellFaces, fid)
			}
		}
		var inner []int
		inner = append(inner, marks.EdgeCrossing[tid]...)
		inner = append(inner, marks.VertexIncidence[tid]...)
		inner = append(inner, marks.Improper[tid]...)
		cells[cid] = Cell{Faces: cellFaces, InnerTriangles: inner}
	}

	c.Mesh = mesh.Build(len(c.Points), polys)
	c.Cells = cells
	c.vertOrient = make([]predicates.Orientation, len(c.Points))
	for i := range c.vertOrient {
		c.vertOrient[i] = predicates.Undefined
	}
	for eid := range c.Mesh.Edges {
		he := c.Mesh.Edges[eid].He
		a := c.Mesh.Halfedges[he].Start
		b := c.Mesh.HeTipVertex(he)
		c.edgeParent[eid] = edgeParent{kind: vertexPair, a: a, b: b}
	}
	c.Mesh.AddObserver(c)
	return c
}

// faceVerts reads tet tid's own face f in tid's own winding (not the
// neighbour's): tet's bondByVertexSet simplification doesn't guarantee a
// neighbour TriFace's Ver satisfies the textbook org/dest reversal the
// reference implementation's "read from the neighbour" trick relies on, so
// bsp sources every new face's winding from its owning tet directly.
func faceVerts(tm *tet.Mesh, tid, f int) (int, int, int) {
	local := faceLocal[f]
	v := tm.Tets[tid].Verts
	return v[local[0]], v[local[1]], v[local[2]]
}

func filterOriginal(ids []int, nOri int) []int {
	var out []int
	for _, id := range ids {
		if id < nOri {
			out = append(out, id)
		}
	}
	return out
}

func mergeSorted(a, b []int) []int {
	for _, id := range b {
		pos := sort.SearchInts(a, id)
		if pos < len(a) && a[pos] == id {
			continue
		}
		a = append(a, 0)
		copy(a[pos+1:], a[pos:len(a)-1])
		a[pos] = id
	}
	return a
}

// Splittable reports whether cell cid still has a constraint triangle
// properly crossing its interior.
func (c *Complex) Splittable(cid int) bool {
	return len(c.Cells[cid].InnerTriangles) > 0
}

// Observer implementation: only vertex growth needs a pre-sized parallel
// array (Points/vertOrient are indexed directly by vertex id the instant a
// new vertex is created, before the caller has a chance to fill it in).
// Edge/face bookkeeping (edgeParent, facePlane, FaceCells, FaceTriangles) is
// set explicitly by the caller immediately after each mesh mutation, so no
// growth hook is needed for it.
func (c *Complex) OnVertexAdded(id int) {
	for len(c.Points) <= id {
		c.Points = append(c.Points, nil)
	}
	for len(c.vertOrient) <= id {
		c.vertOrient = append(c.vertOrient, predicates.Undefined)
	}
}
func (c *Complex) OnEdgeAdded(id int)     {}
func (c *Complex) OnFaceAdded(id int)     {}
func (c *Complex) OnHalfedgeAdded(id int) {}
