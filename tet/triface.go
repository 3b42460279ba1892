// Package tet implements the tetrahedron mesh and Bowyer–Watson incremental
// Delaunay insertion (spec.md §3.5, §4.5): Tet/TriFace oriented-face
// encoding, a ghost vertex closing the convex hull, point location and
// cavity-based vertex insertion.
package tet

import "github.com/cpmech/gpf/point"

// NilTet marks "no neighbouring tet" (a hull tet's outward-facing faces
// start out this way before being bonded to a ghost tet by the frame
// builder; in practice every face always ends up bonded).
const NilTet = -1

// faceVerts[f] names the tet-local vertex indices (0..3) forming face f, in
// the order that gives that face an outward-pointing (CCW as seen from
// outside the tet) orientation for a tet whose Orient3D(v0,v1,v2,v3) is
// Negative, the orientation NewMesh and InsertPoint create.
var faceVerts = [4][3]int{
	{1, 2, 3},
	{0, 3, 2},
	{0, 1, 3},
	{0, 2, 1},
}

// oppositeVertex[f] is the tet-local vertex index not on face f.
var oppositeVertex = [4]int{0, 1, 2, 3}

// perm6 enumerates all six permutations of {0,1,2}; perm6[0..2] are the
// cyclic (even) rotations, perm6[3..5] the odd (orientation-reversing) ones.
// A TriFace's Ver is face*6 + permIndex: perm6[permIndex] = (i0,i1,i2) gives
// the face-local indices of (org, dest, apex) for that version.
var perm6 = [6][3]int{
	{0, 1, 2}, {1, 2, 0}, {2, 0, 1}, // even
	{1, 0, 2}, {0, 2, 1}, {2, 1, 0}, // odd
}

// enextPerm/eprevPerm/esymPerm are derived once at init time from perm6,
// rather than transcribed as magic numbers, implementing enext/eprev/esym as
// the table-driven symmetry-group operations spec.md §3.5 calls for.
var enextPerm, eprevPerm, esymPerm [6]int

func permIndexOf(tuple [3]int) int {
	for i, p := range perm6 {
		if p == tuple {
			return i
		}
	}
	panic("tet: not a valid permutation of {0,1,2}")
}

func init() {
	for i, p := range perm6 {
		enextPerm[i] = permIndexOf([3]int{p[1], p[2], p[0]})
		eprevPerm[i] = permIndexOf([3]int{p[2], p[0], p[1]})
		esymPerm[i] = permIndexOf([3]int{p[1], p[0], p[2]})
	}
}

// TriFace is the oriented-face handle (tet, ver) of spec.md §3.5: ver
// encodes both the face (ver/6) and an oriented edge within that face
// (ver%6, one of six org/dest/apex assignments).
type TriFace struct {
	Tet int
	Ver int
}

func NewTriFace(tet, ver int) TriFace { return TriFace{Tet: tet, Ver: ver} }

func (f TriFace) face() int { return f.Ver / 6 }
func (f TriFace) perm() int { return f.Ver % 6 }

// Tet owns four vertex indices and four neighbour TriFaces, one per face,
// bonded so that Nbrs[i]'s face is the same undirected triangle as face i of
// this tet but viewed from the other side.
type Tet struct {
	Verts [4]int
	Nbrs  [4]TriFace
}

// Mesh is a tetrahedralization of a dedup'd explicit point set, plus one
// ghost vertex (index len(Points)) closing the convex hull.
type Mesh struct {
	Points  []*point.Point3D
	Tets    []Tet
	P2T     []int // one incident non-ghost tet per (non-ghost) vertex
	GhostID int
}

func (m *Mesh) IsHullTet(tid int) bool {
	for _, v := range m.Tets[tid].Verts {
		if v == m.GhostID {
			return true
		}
	}
	return false
}

func (m *Mesh) Org(f TriFace) int {
	p := perm6[f.perm()]
	return m.Tets[f.Tet].Verts[faceVerts[f.face()][p[0]]]
}

func (m *Mesh) Dest(f TriFace) int {
	p := perm6[f.perm()]
	return m.Tets[f.Tet].Verts[faceVerts[f.face()][p[1]]]
}

func (m *Mesh) Apex(f TriFace) int {
	p := perm6[f.perm()]
	return m.Tets[f.Tet].Verts[faceVerts[f.face()][p[2]]]
}

func (m *Mesh) Oppo(f TriFace) int {
	return m.Tets[f.Tet].Verts[oppositeVertex[f.face()]]
}

// Enext rotates (org,dest,apex) -> (dest,apex,org), staying on the same
// face.
func Enext(f TriFace) TriFace {
	return TriFace{Tet: f.Tet, Ver: f.face()*6 + enextPerm[f.perm()]}
}

// Eprev is Enext's inverse.
func Eprev(f TriFace) TriFace {
	return TriFace{Tet: f.Tet, Ver: f.face()*6 + eprevPerm[f.perm()]}
}

// Esym reverses the edge direction (swaps org and dest), keeping the same
// face and apex.
func Esym(f TriFace) TriFace {
	return TriFace{Tet: f.Tet, Ver: f.face()*6 + esymPerm[f.perm()]}
}

// Fsym returns the TriFace across f's face in the neighbouring tet.
func (m *Mesh) Fsym(f TriFace) TriFace {
	return m.Tets[f.Tet].Nbrs[f.face()]
}

// Fnext moves to the next tet sharing f's (org,dest) edge, rotating around
// that edge: the textbook esym(fsym(esym(f))) composition.
func (m *Mesh) Fnext(f TriFace) TriFace {
	return Esym(m.Fsym(Esym(f)))
}

// Bond links f1 and f2 as neighbours across their shared face, storing each
// TriFace as given; it does not adjust Ver so that org(f1)==dest(f2) and
// dest(f1)==org(f2).
func (m *Mesh) Bond(f1, f2 TriFace) {
	m.Tets[f1.Tet].Nbrs[f1.face()] = f2
	m.Tets[f2.Tet].Nbrs[f2.face()] = f1
}
