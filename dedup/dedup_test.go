package dedup

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/point"
)

func Test_dedup01(tst *testing.T) {

	chk.PrintTitle("dedup01. eps=0 is the identity transform")

	pts := []point.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 2, Z: 3}, {X: 1, Y: 2, Z: 3}}
	res := RemoveDuplicates(pts, 0)

	if len(res.Points) != len(pts) {
		tst.Fatalf("expected eps=0 to keep all %d points, got %d", len(pts), len(res.Points))
	}
	for i, v := range res.PMap {
		if v != i {
			tst.Fatalf("expected pmap[%d]=%d (identity), got %d", i, i, v)
		}
	}
}

func Test_dedup02(tst *testing.T) {

	chk.PrintTitle("dedup02. near-coincident points collapse, far-apart points survive")

	pts := []point.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1e-9, Y: 1e-9, Z: 1e-9}, // collapses into point 0 at a generous eps
		{X: 5, Y: 5, Z: 5},
	}
	res := RemoveDuplicates(pts, 1e-3)

	if len(res.Points) != 2 {
		tst.Fatalf("expected 2 distinct points after collapse, got %d", len(res.Points))
	}
	if res.PMap[0] != res.PMap[1] {
		tst.Fatalf("expected points 0 and 1 to map to the same collapsed index")
	}
	if res.PMap[2] == res.PMap[0] {
		tst.Fatalf("expected the far-away point to keep its own index")
	}
}

func Test_dedup03(tst *testing.T) {

	chk.PrintTitle("dedup03. pmap is a total surjection onto the output range")

	pts := []point.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1},
		{X: 1, Y: 1, Z: 1}, {X: 2, Y: 2, Z: 2},
	}
	res := RemoveDuplicates(pts, 1e-6)

	for _, v := range res.PMap {
		if v < 0 || v >= len(res.Points) {
			tst.Fatalf("pmap entry %d out of range for %d output points", v, len(res.Points))
		}
	}
	seen := make([]bool, len(res.Points))
	for _, v := range res.PMap {
		seen[v] = true
	}
	for i, ok := range seen {
		if !ok {
			tst.Fatalf("output point %d is never targeted by pmap", i)
		}
	}
}
