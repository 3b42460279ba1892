package constraint

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/mesh"
	"github.com/cpmech/gpf/point"
	"github.com/cpmech/gpf/tet"
)

func cubeTetMesh() *tet.Mesh {
	pts := []*point.Point3D{
		point.NewExplicit(0, 0, 0),
		point.NewExplicit(1, 0, 0),
		point.NewExplicit(0, 1, 0),
		point.NewExplicit(0, 0, 1),
	}
	return tet.NewMesh(pts)
}

func Test_constraint01(tst *testing.T) {

	chk.PrintTitle("constraint01. BuildVirtualConstraints anchors a lone boundary edge")

	tm := cubeTetMesh()
	// a single triangle (0,1,2) in the surface mesh: the shared-pair groups
	// are its three edges, each with exactly one incident halfedge.
	sm := mesh.Build(4, [][]int{{0, 1, 2}})

	tris := BuildVirtualConstraints(sm, tm)
	if len(tris) == 0 {
		tst.Fatalf("expected at least one virtual constraint triangle to be synthesized")
	}
	for _, tri := range tris {
		if tri.Apex == tri.Org || tri.Apex == tri.Dest {
			tst.Fatalf("expected the synthesized apex to differ from both edge endpoints")
		}
	}
}

func Test_constraint02(tst *testing.T) {

	chk.PrintTitle("constraint02. InsertConstraintTriangles marks the exactly-matching tet face")

	tm := cubeTetMesh()
	// the core tet's own face (1,2,3) should be found as an exact match.
	tri := Triangle{Org: 1, Dest: 2, Apex: 3}
	marks := InsertConstraintTriangles(tm, []Triangle{tri})

	found := false
	for _, row := range marks.Face {
		for _, ids := range row {
			for _, id := range ids {
				if id == 0 {
					found = true
				}
			}
		}
	}
	if !found {
		tst.Fatalf("expected the exact-match triangle to be recorded in marks.Face")
	}
}
