package bsp

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/constraint"
	"github.com/cpmech/gpf/point"
	"github.com/cpmech/gpf/predicates"
	"github.com/cpmech/gpf/tet"
)

func cubeTetMesh() *tet.Mesh {
	pts := []*point.Point3D{
		point.NewExplicit(0, 0, 0),
		point.NewExplicit(1, 0, 0),
		point.NewExplicit(0, 1, 0),
		point.NewExplicit(0, 0, 1),
		// extra explicit points used only to anchor a cutting plane's frame,
		// never referenced by the tet mesh itself.
		point.NewExplicit(0.5, 0, 0),
		point.NewExplicit(0.5, 1, 0),
		point.NewExplicit(0.5, 0, 1),
	}
	return tet.NewMesh(pts)
}

func Test_bsp01(tst *testing.T) {

	chk.PrintTitle("bsp01. Build makes one cell with four faces for a single core tet")

	tm := cubeTetMesh()
	marks := constraint.NewMarks()
	c := Build(tm, marks, nil, 0)

	if len(c.Cells) != 1 {
		tst.Fatalf("expected exactly 1 cell, got %d", len(c.Cells))
	}
	if len(c.Cells[0].Faces) != 4 {
		tst.Fatalf("expected 4 faces, got %d", len(c.Cells[0].Faces))
	}
	if c.Splittable(0) {
		tst.Fatalf("expected cell 0 to not be splittable without any inner triangle marks")
	}
	for _, fid := range c.Cells[0].Faces {
		pair := c.FaceCells[fid]
		if pair[0] != 0 || pair[1] != -1 {
			tst.Fatalf("expected every face of the lone cell to border the exterior, got %v", pair)
		}
	}
}

func Test_bsp02(tst *testing.T) {

	chk.PrintTitle("bsp02. SplitCell partitions the core tet's cell across its cutting plane")

	tm := cubeTetMesh()
	marks := constraint.NewMarks()

	// the plane x=0.5 (points 4,5,6) separates vertex 1 (x=1) from vertices
	// 0, 2, 3 (all x=0).
	tris := []constraint.Triangle{{Org: 4, Dest: 5, Apex: 6}}
	marks.EdgeCrossing[0] = []int{0}

	c := Build(tm, marks, tris, 1)
	if !c.Splittable(0) {
		tst.Fatalf("expected cell 0 to be splittable")
	}

	c.SplitCell(0)

	if len(c.Cells) != 2 {
		tst.Fatalf("expected 2 cells after one split, got %d", len(c.Cells))
	}
	if c.Splittable(0) {
		tst.Fatalf("expected child 0 to have no remaining inner triangles")
	}
	if c.Splittable(1) {
		tst.Fatalf("expected child 1 to have no remaining inner triangles")
	}

	// every vertex orientation cache should have been reset to Undefined.
	for v, o := range c.vertOrient {
		if o != predicates.Undefined {
			tst.Fatalf("expected vertOrient[%d] to be reset to Undefined after split, got %v", v, o)
		}
	}

	// at least one new (split-introduced) vertex should exist beyond the
	// original 7 explicit points.
	if len(c.Points) <= 7 {
		tst.Fatalf("expected new implicit points to have been introduced by the split, got %d total", len(c.Points))
	}
}

func Test_bsp03(tst *testing.T) {

	chk.PrintTitle("bsp03. Classify marks a lone exterior cell outside both operands, Evaluate combines them")

	tm := cubeTetMesh()
	marks := constraint.NewMarks()
	c := Build(tm, marks, nil, 0)

	inside := Classify(c, 2, nil)
	if len(inside) != 1 {
		tst.Fatalf("expected one cell's worth of labels, got %d", len(inside))
	}
	if inside[0][0] || inside[0][1] {
		tst.Fatalf("expected the lone cell to be outside both operands, got %v", inside[0])
	}

	union := Evaluate(inside, Union)
	inter := Evaluate(inside, Intersection)
	if union[0] {
		tst.Fatalf("expected union of two outside operands to be outside")
	}
	if inter[0] {
		tst.Fatalf("expected intersection of two outside operands to be outside")
	}
}
