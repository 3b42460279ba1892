package mesh

import "github.com/cpmech/gosl/chk"

// eprevInFace returns the halfedge whose Next is h, found by walking h's
// face loop (faces are small — triangles or the occasional quad — so a
// linear walk is cheap and needs no extra bookkeeping).
func (m *Mesh) eprevInFace(h int) int {
	cur := h
	for {
		next := m.Halfedges[cur].Next
		if next == h {
			return cur
		}
		cur = next
	}
}

// SplitEdge inserts a new vertex at the midpoint of eid's sibling cycle,
// creating one new halfedge per sibling and splitting each incident
// (triangular) face into two by inserting a new halfedge between the new
// vertex and the face's apex vertex opposite eid. Returns the new vertex id
// (spec.md §4.4).
//
// Each sibling a_i->b_i (a face's own view of the edge, oriented however
// that face winds it) becomes two pieces a_i->nv (the mutated original
// halfedge) and nv->b_i (new), plus a brand new nv-apex_i edge closing off
// the freshly cut-off sub-face. The a_i->nv / nv->b_i pieces are re-bonded
// into sibling cycles afterward by vertex-pair key, exactly like Build's
// step 2 — this works regardless of how the original siblings were
// individually oriented.
func (m *Mesh) SplitEdge(eid int) int {
	start := m.Edges[eid].He
	var siblings []int
	for h := start; ; {
		siblings = append(siblings, h)
		h = m.Halfedges[h].Sibling
		if h == start {
			break
		}
	}

	nv := m.newVertex()
	var outerHalves []int // the a_i->nv and nv->b_i pieces, to be re-bonded below

	for _, h := range siblings {
		face := m.Halfedges[h].Face
		prev := m.eprevInFace(h) // apex -> a
		apex := m.Halfedges[prev].Start
		oldNext := m.Halfedges[h].Next // b -> apex, the remaining third side

		hiHalf := m.newHalfedge(nv, nilID) // nv -> b, face fixed up below

		newFace := m.newFace(nilID)
		apexToNv := m.newHalfedge(apex, newFace) // apex -> nv, closes the new sub-face
		m.Halfedges[hiHalf].Face = newFace
		m.Halfedges[hiHalf].Next = oldNext
		m.Halfedges[oldNext].Face = newFace
		m.Halfedges[oldNext].Next = apexToNv
		m.Halfedges[apexToNv].Next = hiHalf
		m.Faces[newFace].He = hiHalf

		nvToApex := m.newHalfedge(nv, face) // nv -> apex, closes the shrunken old face
		m.Halfedges[h].Next = nvToApex
		m.Halfedges[nvToApex].Next = prev
		m.Faces[face].He = prev

		apexEdge := m.newEdge(nvToApex)
		m.Halfedges[nvToApex].Edge = apexEdge
		m.Halfedges[apexToNv].Edge = apexEdge
		m.Halfedges[nvToApex].Sibling = apexToNv
		m.Halfedges[apexToNv].Sibling = nvToApex

		outerHalves = append(outerHalves, h, hiHalf)
	}

	m.rebond(outerHalves, eid)

	m.relinkVertexCycles()
	m.checkInvariants()
	return nv
}

// rebond regroups halves (halfedges whose endpoints may have just changed)
// into sibling cycles keyed by their undirected vertex pair, reusing reuse
// for the first group found and allocating new Edge entries for the rest.
func (m *Mesh) rebond(halves []int, reuse int) {
	groups := map[edgeKey][]int{}
	for _, h := range halves {
		k := keyOf(m.Halfedges[h].Start, m.HeTipVertex(h))
		groups[k] = append(groups[k], h)
	}
	first := true
	for _, hs := range groups {
		eid := reuse
		if first {
			first = false
		} else {
			eid = m.newEdge(hs[0])
		}
		m.Edges[eid].He = hs[0]
		n := len(hs)
		for i, h := range hs {
			m.Halfedges[h].Edge = eid
			m.Halfedges[h].Sibling = hs[(i+1)%n]
		}
	}
}

// fixFaceLoop rewrites every halfedge's Face field while walking the loop
// starting at he, so a newly split-off face loop is self-consistent.
func (m *Mesh) fixFaceLoop(face, he int) {
	m.Faces[face].He = he
	cur := he
	for {
		m.Halfedges[cur].Face = face
		cur = m.Halfedges[cur].Next
		if cur == he {
			break
		}
	}
}

// SplitFace splits face fid into two along the directed segment va->vb
// (both already on the face's boundary), adding one new edge and one new
// face. Returns the directed halfedge va->vb lying inside the new face
// (spec.md §4.4).
func (m *Mesh) SplitFace(fid, va, vb int) int {
	heAtVa := m.findBoundaryHe(fid, va)
	heAtVb := m.findBoundaryHe(fid, vb)
	if heAtVa == nilID || heAtVb == nilID {
		chk.Panic("split_face: va=%d or vb=%d not on face %d's boundary", va, vb, fid)
	}

	cutFwd := m.newHalfedge(va, nilID) // va -> vb, bounds the new face
	cutBack := m.newHalfedge(vb, fid)  // vb -> va, stays in the old face

	prevAtVa := m.eprevInFace(heAtVa)
	prevAtVb := m.eprevInFace(heAtVb)

	m.Halfedges[cutFwd].Next = heAtVb
	m.Halfedges[prevAtVa].Next = cutFwd

	m.Halfedges[cutBack].Next = heAtVa
	m.Halfedges[prevAtVb].Next = cutBack

	newFace := m.newFace(cutFwd)
	m.fixFaceLoop(newFace, cutFwd)
	m.Faces[fid].He = cutBack
	m.fixFaceLoop(fid, cutBack)

	eid := m.newEdge(cutFwd)
	m.Halfedges[cutFwd].Edge = eid
	m.Halfedges[cutBack].Edge = eid
	m.Halfedges[cutFwd].Sibling = cutBack
	m.Halfedges[cutBack].Sibling = cutFwd

	m.relinkVertexCycles()
	m.checkInvariants()
	return cutFwd
}

// findBoundaryHe returns the halfedge starting at v on face fid's boundary
// loop, or nilID if v is not on that loop.
func (m *Mesh) findBoundaryHe(fid, v int) int {
	start := m.Faces[fid].He
	cur := start
	for {
		if m.Halfedges[cur].Start == v {
			return cur
		}
		cur = m.Halfedges[cur].Next
		if cur == start {
			return nilID
		}
	}
}
