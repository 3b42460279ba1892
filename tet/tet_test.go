package tet

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/point"
)

func cubeCorners() []*point.Point3D {
	return []*point.Point3D{
		point.NewExplicit(0, 0, 0),
		point.NewExplicit(1, 0, 0),
		point.NewExplicit(0, 1, 0),
		point.NewExplicit(0, 0, 1),
	}
}

func Test_tet01(tst *testing.T) {

	chk.PrintTitle("tet01. NewMesh seeds a single core tet plus four ghost tets")

	pts := cubeCorners()
	m := NewMesh(pts)

	if len(m.Tets) != 5 {
		tst.Fatalf("expected 5 tets (1 core + 4 ghost), got %d", len(m.Tets))
	}
	if m.GhostID != 4 {
		tst.Fatalf("expected ghost id 4, got %d", m.GhostID)
	}

	nHull := 0
	for t := range m.Tets {
		if m.IsHullTet(t) {
			nHull++
		}
	}
	if nHull != 4 {
		tst.Fatalf("expected 4 hull tets, got %d", nHull)
	}

	// every face of every tet must be bonded to something.
	for t := range m.Tets {
		for f := 0; f < 4; f++ {
			if m.Tets[t].Nbrs[f].Tet == nilTetID {
				tst.Fatalf("tet %d face %d is unbonded", t, f)
			}
		}
	}
}

func Test_tet02(tst *testing.T) {

	chk.PrintTitle("tet02. Locate finds the core tet for an interior query point")

	pts := cubeCorners()
	m := NewMesh(pts)

	q := point.NewExplicit(0.1, 0.1, 0.1)
	res, tf := m.Locate(q, 0)
	if res != InTetrahedron {
		tst.Fatalf("expected InTetrahedron, got %v", res)
	}
	if m.IsHullTet(tf.Tet) {
		tst.Fatalf("expected the interior point to locate inside the core (non-hull) tet")
	}
}

func Test_tet03(tst *testing.T) {

	chk.PrintTitle("tet03. InsertPoint grows the mesh and keeps every face bonded")

	pts := cubeCorners()
	m := NewMesh(pts)

	nv := point.NewExplicit(0.2, 0.2, 0.2)
	m.Points = append(m.Points, nv)
	pIdx := len(m.Points) - 1

	nTetsBefore := len(m.Tets)
	core := m.InsertPoint(pIdx, 0)

	if len(m.Tets) <= nTetsBefore {
		tst.Fatalf("expected InsertPoint to grow the tet list, had %d, now %d", nTetsBefore, len(m.Tets))
	}
	if m.Tets[core].Verts[0] < 0 {
		tst.Fatalf("expected InsertPoint to return a live tet")
	}

	found := false
	for _, v := range m.Tets[core].Verts {
		if v == pIdx {
			found = true
		}
	}
	if !found {
		tst.Fatalf("expected the returned tet to be incident to the newly inserted point")
	}

	for t := range m.Tets {
		if m.Tets[t].Verts[0] < 0 {
			continue // a deleted (formerly cavity) tet, left as a tombstone
		}
		for f := 0; f < 4; f++ {
			if m.Tets[t].Nbrs[f].Tet == nilTetID {
				tst.Fatalf("live tet %d face %d is unbonded after InsertPoint", t, f)
			}
		}
	}
}

func Test_tet04(tst *testing.T) {

	chk.PrintTitle("tet04. InsphereS breaks an exact cosphericity tie deterministically")

	pts := []*point.Point3D{
		point.NewExplicit(0, 0, 0),
		point.NewExplicit(1, 0, 0),
		point.NewExplicit(0, 1, 0),
		point.NewExplicit(0, 0, 1),
		point.NewExplicit(1, 1, 1), // on the sphere through the above (centre 0.5,0.5,0.5); exercises the tie-break path
	}
	m := &Mesh{Points: pts}
	o1 := InsphereS(m, 0, 1, 2, 3, 4)
	o2 := InsphereS(m, 0, 1, 2, 3, 4)
	if o1 != o2 {
		tst.Fatalf("expected InsphereS to be deterministic across repeated calls, got %v then %v", o1, o2)
	}
}
