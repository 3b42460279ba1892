package tet

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/point"
	"github.com/cpmech/gpf/predicates"
)

// NewMesh builds the initial tetrahedralization: a single tet over the first
// four non-coplanar points of pts (ordered so that Orient3D of its vertices
// is Negative, i.e. every face in faceVerts order has the opposite vertex on
// its Positive side), closed off by four ghost tets so that the ghost vertex
// (index len(pts)) sits opposite every hull face (spec.md §4.5.1, §4.5.3).
// pts must already be dedup'd; the spatial insertion order (BRIO + Hilbert,
// §4.5.4) is applied later by InsertAll. NewMesh needs points 0, 1, 2 and one
// later point to not be coplanar, so it scans forward past any that are; pts
// itself is never reordered.
func NewMesh(pts []*point.Point3D) *Mesh {
	if len(pts) < 4 {
		chk.Panic("tet: need at least 4 points to seed a tetrahedralization, got %d", len(pts))
	}

	a, b, c, dIdx := 0, 1, 2, 3
	for ; dIdx < len(pts); dIdx++ {
		o := predicates.Orient3DGeneric(pts[a], pts[b], pts[c], pts[dIdx])
		if o == predicates.Positive || o == predicates.Negative {
			break
		}
	}
	if dIdx == len(pts) {
		chk.Panic("tet: all input points are coplanar, cannot seed a tetrahedralization")
	}
	d := dIdx

	// orient so that Orient3D(a,b,c,d) is Negative: then face 0 (b,c,d) and
	// every other face in faceVerts order has the opposite vertex, and so the
	// tet's interior, on its Positive side, which is what Locate relies on.
	if predicates.Orient3DGeneric(pts[a], pts[b], pts[c], pts[d]) == predicates.Positive {
		b, c = c, b
	}

	ghost := len(pts)
	m := &Mesh{
		Points:  pts,
		GhostID: ghost,
		P2T:     make([]int, ghost),
	}
	for i := range m.P2T {
		m.P2T[i] = nilTetID
	}

	core := m.newTet([4]int{a, b, c, d})
	var outer [4]int
	for f := 0; f < 4; f++ {
		tri := faceVerts[f]
		outer[f] = m.newTet([4]int{
			m.Tets[core].Verts[tri[0]],
			m.Tets[core].Verts[tri[1]],
			m.Tets[core].Verts[tri[2]],
			ghost,
		})
		// outer[f]'s face 3 (opposite its ghost vertex) is core face f,
		// wound the other way round.
		m.Bond(TriFace{Tet: core, Ver: f * 6}, TriFace{Tet: outer[f], Ver: 3 * 6})
	}
	// bond the four ghost tets to each other along their shared ghost faces:
	// outer[f]'s three other faces each join one edge of core face f to the
	// ghost vertex, and each is shared with the outer tet of the other core
	// face on that edge.
	for f := 0; f < 4; f++ {
		for g := 0; g < 4; g++ {
			if f == g {
				continue
			}
			fa, fb := findSharedFace(m, outer[f], outer[g])
			if fa >= 0 {
				m.Bond(fa2tf(outer[f], fa), fa2tf(outer[g], fb))
			}
		}
	}

	for v := 0; v < ghost; v++ {
		if m.P2T[v] == nilTetID {
			m.P2T[v] = core
		}
	}
	return m
}

const nilTetID = -1

func fa2tf(tid, f int) TriFace { return TriFace{Tet: tid, Ver: f * 6} }

// findSharedFace finds a pair of faces (one on t1, one on t2) sharing the
// same three vertices, other than the face already bonded to core (which
// callers must skip by having bonded it first and relying on Bond being
// idempotent-safe to re-scan — here we simply look for the still-unbonded
// face pair, which is unique once the core-facing face is excluded).
func findSharedFace(m *Mesh, t1, t2 int) (int, int) {
	for f1 := 0; f1 < 4; f1++ {
		if m.Tets[t1].Nbrs[f1].Tet != nilTetID {
			continue
		}
		s1 := faceVertSet(m, t1, f1)
		for f2 := 0; f2 < 4; f2++ {
			if m.Tets[t2].Nbrs[f2].Tet != nilTetID {
				continue
			}
			if faceVertSet(m, t2, f2) == s1 {
				return f1, f2
			}
		}
	}
	return -1, -1
}

type vset [3]int

func faceVertSet(m *Mesh, tid, f int) vset {
	tri := faceVerts[f]
	vs := vset{m.Tets[tid].Verts[tri[0]], m.Tets[tid].Verts[tri[1]], m.Tets[tid].Verts[tri[2]]}
	if vs[0] > vs[1] {
		vs[0], vs[1] = vs[1], vs[0]
	}
	if vs[1] > vs[2] {
		vs[1], vs[2] = vs[2], vs[1]
	}
	if vs[0] > vs[1] {
		vs[0], vs[1] = vs[1], vs[0]
	}
	return vs
}

func (m *Mesh) newTet(verts [4]int) int {
	id := len(m.Tets)
	t := Tet{Verts: verts}
	for f := range t.Nbrs {
		t.Nbrs[f] = TriFace{Tet: nilTetID, Ver: 0}
	}
	m.Tets = append(m.Tets, t)
	for _, v := range verts {
		if v != m.GhostID && m.P2T[v] == nilTetID {
			m.P2T[v] = id
		}
	}
	return id
}

// LocateResult classifies where a query point fell during locate_dt
// (spec.md §4.5.2).
type LocateResult int

const (
	Outside LocateResult = iota
	InTetrahedron
	OnVertex
	OnEdge
	OnFace
)

// Locate walks from start towards p via repeated orient3d tests against the
// four faces of the current tet, stepping across whichever face p is on the
// far side of, until p is enclosed (spec.md §4.5.2). Returns the classified
// result and the TriFace the result refers to (the enclosing tet itself for
// InTetrahedron/OnVertex, or the specific face/edge TriFace otherwise).
func (m *Mesh) Locate(p *point.Point3D, start int) (LocateResult, TriFace) {
	cur := start
	for steps := 0; steps < len(m.Tets)*4+16; steps++ {
		var onFace = -1
		ok := true
		for f := 0; f < 4; f++ {
			tf := fa2tf(cur, f)
			o := predicates.Orient3DGeneric(m.Points[m.Org(tf)], m.Points[m.Dest(tf)], m.Points[m.Apex(tf)], p)
			if o == predicates.Negative {
				nb := m.Fsym(tf)
				cur = nb.Tet
				ok = false
				break
			}
			if o == predicates.Zero {
				onFace = f
			}
		}
		if !ok {
			continue
		}
		if onFace < 0 {
			return InTetrahedron, TriFace{Tet: cur, Ver: 0}
		}
		return classifyOnBoundary(m, cur, onFace, p)
	}
	chk.Panic("tet: locate failed to converge from tet %d", start)
	return Outside, TriFace{}
}

func classifyOnBoundary(m *Mesh, tid, f int, p *point.Point3D) (LocateResult, TriFace) {
	tf := fa2tf(tid, f)
	zeros := 0
	var zeroVer int
	for k, v := range []int{m.Org(tf), m.Dest(tf), m.Apex(tf)} {
		if SamePointAt(m, v, p) {
			zeros++
			zeroVer = k
		}
	}
	if zeros == 1 {
		_ = zeroVer
		return OnVertex, tf
	}
	if zeros == 2 {
		return OnEdge, tf
	}
	return OnFace, tf
}

// SamePointAt reports whether point index v coincides with p.
func SamePointAt(m *Mesh, v int, p *point.Point3D) bool {
	if v == m.GhostID {
		return false
	}
	return predicates.LessThanOnAxis(0, m.Points[v], p) == predicates.Zero &&
		predicates.LessThanOnAxis(1, m.Points[v], p) == predicates.Zero &&
		predicates.LessThanOnAxis(2, m.Points[v], p) == predicates.Zero
}
