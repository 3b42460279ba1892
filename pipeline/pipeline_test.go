package pipeline

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/point"
)

// triArea2D is the test's own area helper (not exported by triangulate.go,
// which only needs orientation sign, not magnitude).
func triArea2D(p [][2]float64, tri [3]int) float64 {
	a, b, c := p[tri[0]], p[tri[1]], p[tri[2]]
	return 0.5 * ((b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0]))
}

func Test_pipeline01(tst *testing.T) {

	chk.PrintTitle("pipeline01. earClip triangulates a unit square into two triangles covering it exactly")

	square := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tris := earClip(square)
	if len(tris) != 2 {
		tst.Fatalf("expected 2 triangles, got %d", len(tris))
	}

	seen := map[int]bool{}
	var total float64
	for _, tri := range tris {
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			tst.Fatalf("degenerate triangle %v", tri)
		}
		a := triArea2D(square, tri)
		if a <= 0 {
			tst.Fatalf("expected a positively-oriented (CCW) triangle, got area %v for %v", a, tri)
		}
		total += a
		seen[tri[0]], seen[tri[1]], seen[tri[2]] = true, true, true
	}
	if len(seen) != 4 {
		tst.Fatalf("expected all 4 square corners to appear across the triangulation, got %d", len(seen))
	}
	if total < 0.999 || total > 1.001 {
		tst.Fatalf("expected the triangulation's total area to match the unit square's area 1.0, got %v", total)
	}
}

func Test_pipeline02(tst *testing.T) {

	chk.PrintTitle("pipeline02. earClip triangulates a non-convex L-shaped hexagon without dropping the reflex corner")

	// an L-shape: a 2x2 square with its top-right 1x1 quadrant removed.
	lshape := [][2]float64{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
	tris := earClip(lshape)
	if len(tris) != 4 {
		tst.Fatalf("expected 4 triangles for a 6-gon, got %d", len(tris))
	}

	seen := map[int]bool{}
	var total float64
	for _, tri := range tris {
		a := triArea2D(lshape, tri)
		if a <= 0 {
			tst.Fatalf("expected every triangle to come out positively oriented, got %v for %v", a, tri)
		}
		total += a
		seen[tri[0]], seen[tri[1]], seen[tri[2]] = true, true, true
	}
	if len(seen) != 6 {
		tst.Fatalf("expected all 6 corners to appear across the triangulation, got %d", len(seen))
	}
	// L-shape area = 2x2 square minus the 1x1 missing quadrant = 3.0
	if total < 2.999 || total > 3.001 {
		tst.Fatalf("expected total triangulated area 3.0, got %v", total)
	}
}

func Test_pipeline03(tst *testing.T) {

	chk.PrintTitle("pipeline03. project2D recovers in-plane coordinates under an axis-aligned frame")

	frame := [9]float64{
		0, 0, 0, // origin
		1, 0, 0, // u-axis
		0, 1, 0, // v-axis
	}
	pts := []point.Vec3{{X: 2, Y: 3, Z: 5}, {X: -1, Y: 4, Z: 0}}
	out := project2D(frame, pts)
	if len(out) != 2 {
		tst.Fatalf("expected 2 projected points, got %d", len(out))
	}
	if out[0][0] != 2 || out[0][1] != 3 {
		tst.Fatalf("expected (2,3), got %v", out[0])
	}
	if out[1][0] != -1 || out[1][1] != 4 {
		tst.Fatalf("expected (-1,4), got %v", out[1])
	}
}

func Test_pipeline04(tst *testing.T) {

	chk.PrintTitle("pipeline04. combine tags every face with the operand it came from and offsets b's vertex indices")

	a := Solid{
		Points: []point.Vec3{{X: 0}, {X: 1}, {X: 2}},
		Faces:  []Face{{Verts: []int{0, 1, 2}}},
	}
	b := Solid{
		Points: []point.Vec3{{X: 10}, {X: 11}},
		Faces:  []Face{{Verts: []int{0, 1}}, {Verts: []int{1, 0}}},
	}

	pts, faces, operand := combine(a, b)
	if len(pts) != 5 {
		tst.Fatalf("expected 5 merged points, got %d", len(pts))
	}
	if len(faces) != 3 {
		tst.Fatalf("expected 3 merged faces, got %d", len(faces))
	}
	if operand[0] != 0 {
		tst.Fatalf("expected a's face to be tagged operand 0, got %d", operand[0])
	}
	if operand[1] != 1 || operand[2] != 1 {
		tst.Fatalf("expected b's faces to be tagged operand 1, got %v", operand[1:])
	}
	if faces[1].Verts[0] != 3 || faces[1].Verts[1] != 4 {
		tst.Fatalf("expected b's vertex indices to be offset by len(a.Points)=3, got %v", faces[1].Verts)
	}
}
