// Package mesh implements SurfaceMesh, the half-edge structure the BSP
// complex uses to represent a cell's boundary face lattice (spec.md §3.4,
// §4.4). Halfedges around an edge form a sibling cycle rather than a strict
// twin, so a single edge can carry any number of incident faces — needed
// since a BSP face can border more than two cells' worth of bookkeeping
// during construction.
package mesh

import (
	"github.com/cpmech/gosl/chk"
)

const nilID = -1

// Vertex is identified by its index into Mesh.Verts. Out is one outgoing
// halfedge, used only as an entry point into the vertex's outgoing cycle.
type Vertex struct {
	Out int
}

// Halfedge is a directed edge inside one face.
type Halfedge struct {
	Start   int // origin vertex
	Next    int // next halfedge around Face
	Sibling int // next halfedge in the sibling cycle around the same undirected edge
	Face    int
	Edge    int
	NextOut int // next halfedge in the cyclic list of halfedges leaving Start
	NextIn  int // next halfedge in the cyclic list of halfedges arriving at the tip vertex
}

// Edge holds one representative halfedge of its sibling cycle.
type Edge struct {
	He int
}

// Face holds one representative halfedge of its boundary loop.
type Face struct {
	He int
}

// Observer is notified whenever the mesh grows, so that parallel
// attached-data arrays (edge-squared-lengths, face-to-tet maps, ...) can grow
// in lock-step (spec.md §4.4, "propagate to attached-data observers").
type Observer interface {
	OnVertexAdded(id int)
	OnEdgeAdded(id int)
	OnFaceAdded(id int)
	OnHalfedgeAdded(id int)
}

// Mesh is a half-edge surface mesh built from a sequence of polygons.
type Mesh struct {
	Verts     []Vertex
	Halfedges []Halfedge
	Edges     []Edge
	Faces     []Face

	observers []Observer
}

// AddObserver registers o to be notified of every future growth event.
func (m *Mesh) AddObserver(o Observer) { m.observers = append(m.observers, o) }

func (m *Mesh) newVertex() int {
	id := len(m.Verts)
	m.Verts = append(m.Verts, Vertex{Out: nilID})
	for _, o := range m.observers {
		o.OnVertexAdded(id)
	}
	return id
}

func (m *Mesh) newHalfedge(start, face int) int {
	id := len(m.Halfedges)
	m.Halfedges = append(m.Halfedges, Halfedge{Start: start, Face: face, Next: nilID, Sibling: nilID, Edge: nilID, NextOut: nilID, NextIn: nilID})
	for _, o := range m.observers {
		o.OnHalfedgeAdded(id)
	}
	return id
}

func (m *Mesh) newEdge(he int) int {
	id := len(m.Edges)
	m.Edges = append(m.Edges, Edge{He: he})
	for _, o := range m.observers {
		o.OnEdgeAdded(id)
	}
	return id
}

func (m *Mesh) newFace(he int) int {
	id := len(m.Faces)
	m.Faces = append(m.Faces, Face{He: he})
	for _, o := range m.observers {
		o.OnFaceAdded(id)
	}
	return id
}

// HeTipVertex returns the vertex the halfedge points to: the start vertex of
// the next halfedge around the same face (spec.md §3.4).
func (m *Mesh) HeTipVertex(h int) int {
	return m.Halfedges[m.Halfedges[h].Next].Start
}

type edgeKey struct{ a, b int }

func keyOf(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Build constructs a half-edge mesh from a sequence of polygons, each a
// variable-length list of vertex indices in CCW boundary order. nVerts is
// the total number of distinct vertex indices referenced by polys.
func Build(nVerts int, polys [][]int) *Mesh {
	m := &Mesh{}
	for i := 0; i < nVerts; i++ {
		m.newVertex()
	}

	// step 1: create halfedges in polygon order, linking Next within each face.
	groups := map[edgeKey][]int{}
	for _, poly := range polys {
		n := len(poly)
		if n < 3 {
			chk.Panic("polygon must have at least 3 vertices, got %d", n)
		}
		fid := m.newFace(nilID)
		first := -1
		prev := -1
		for i, v := range poly {
			hid := m.newHalfedge(v, fid)
			if i == 0 {
				first = hid
			} else {
				m.Halfedges[prev].Next = hid
			}
			prev = hid
			tip := poly[(i+1)%n]
			groups[keyOf(v, tip)] = append(groups[keyOf(v, tip)], hid)
		}
		m.Halfedges[prev].Next = first
		m.Faces[fid].He = first
	}

	// step 2: link sibling cycles (or self-loop a lone side), one Edge per
	// undirected-edge group.
	for _, hs := range groups {
		eid := m.newEdge(hs[0])
		n := len(hs)
		for i, h := range hs {
			m.Halfedges[h].Edge = eid
			m.Halfedges[h].Sibling = hs[(i+1)%n]
		}
	}

	// step 3: bucket-sort pass building the cyclic outgoing/incoming lists.
	m.relinkVertexCycles()
	return m
}

// relinkVertexCycles rebuilds every vertex's outgoing/incoming cyclic lists
// from scratch by bucketing all halfedges by Start (resp. tip) vertex — used
// after Build and after any topology-changing split.
func (m *Mesh) relinkVertexCycles() {
	outBuckets := make([][]int, len(m.Verts))
	inBuckets := make([][]int, len(m.Verts))
	for h := range m.Halfedges {
		s := m.Halfedges[h].Start
		t := m.HeTipVertex(h)
		outBuckets[s] = append(outBuckets[s], h)
		inBuckets[t] = append(inBuckets[t], h)
	}
	for v := range m.Verts {
		outs := outBuckets[v]
		if len(outs) == 0 {
			m.Verts[v].Out = nilID
		} else {
			m.Verts[v].Out = outs[0]
			for i, h := range outs {
				m.Halfedges[h].NextOut = outs[(i+1)%len(outs)]
			}
		}
		ins := inBuckets[v]
		for i, h := range ins {
			m.Halfedges[h].NextIn = ins[(i+1)%len(ins)]
		}
	}
}

// SiblingCount returns the number of halfedges in eid's sibling cycle.
func (m *Mesh) SiblingCount(eid int) int {
	start := m.Edges[eid].He
	n := 1
	for h := m.Halfedges[start].Sibling; h != start; h = m.Halfedges[h].Sibling {
		n++
	}
	return n
}

// checkInvariants runs the connectivity sentinel check spec.md §7 calls for
// after every split: every Next and Sibling index is in range, and every
// sibling cycle closes back on its starting halfedge.
func (m *Mesh) checkInvariants() {
	for h := range m.Halfedges {
		he := m.Halfedges[h]
		if he.Next < 0 || he.Next >= len(m.Halfedges) {
			chk.Panic("halfedge %d has invalid Next %d", h, he.Next)
		}
		if he.Sibling < 0 || he.Sibling >= len(m.Halfedges) {
			chk.Panic("halfedge %d has invalid Sibling %d", h, he.Sibling)
		}
	}
	for h := range m.Halfedges {
		steps := 0
		for s := m.Halfedges[h].Sibling; s != h; s = m.Halfedges[s].Sibling {
			steps++
			if steps > len(m.Halfedges) {
				chk.Panic("sibling cycle of halfedge %d does not close", h)
			}
		}
	}
}
