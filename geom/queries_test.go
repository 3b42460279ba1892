package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/point"
)

func Test_geom01(tst *testing.T) {

	chk.PrintTitle("geom01. point strictly inside and outside a triangle in the xy-plane")

	v1 := point.NewExplicit(0, 0, 0)
	v2 := point.NewExplicit(4, 0, 0)
	v3 := point.NewExplicit(0, 4, 0)
	inside := point.NewExplicit(1, 1, 0)
	outside := point.NewExplicit(3, 3, 0)
	onEdge := point.NewExplicit(2, 0, 0)

	if !PointInInnerTriangle(inside, v1, v2, v3) {
		tst.Fatalf("expected (1,1,0) inside")
	}
	if PointInInnerTriangle(outside, v1, v2, v3) {
		tst.Fatalf("expected (3,3,0) outside")
	}
	if PointInInnerTriangle(onEdge, v1, v2, v3) {
		tst.Fatalf("expected an edge point to NOT count as strictly inside")
	}
}

func Test_geom02(tst *testing.T) {

	chk.PrintTitle("geom02. point strictly between two collinear endpoints")

	a := point.NewExplicit(0, 0, 0)
	b := point.NewExplicit(10, 0, 0)
	mid := point.NewExplicit(5, 0, 0)
	beyond := point.NewExplicit(15, 0, 0)
	offLine := point.NewExplicit(5, 1, 0)

	if !PointInInnerSegment(mid, a, b) {
		tst.Fatalf("expected the midpoint strictly between a and b")
	}
	if PointInInnerSegment(a, a, b) {
		tst.Fatalf("an endpoint is not strictly inside its own segment")
	}
	if PointInInnerSegment(beyond, a, b) {
		tst.Fatalf("a point beyond b is not inside segment a-b")
	}
	if PointInInnerSegment(offLine, a, b) {
		tst.Fatalf("a point off the supporting line is never inside the segment")
	}
}

func Test_geom03(tst *testing.T) {

	chk.PrintTitle("geom03. point_in_segment_general includes the endpoints")

	a := point.NewExplicit(0, 0, 0)
	b := point.NewExplicit(10, 0, 0)
	if !PointInSegmentGeneral(a, a, b) {
		tst.Fatalf("expected endpoint a to count as on segment a-b")
	}
	if !PointInSegmentGeneral(b, a, b) {
		tst.Fatalf("expected endpoint b to count as on segment a-b")
	}
	if !PointInSegment(a, a, b) {
		tst.Fatalf("expected PointInSegment to also accept the endpoint")
	}
}

func Test_geom04(tst *testing.T) {

	chk.PrintTitle("geom04. a segment crossing a triangle's interior is detected")

	v1 := point.NewExplicit(0, 0, 0)
	v2 := point.NewExplicit(4, 0, 0)
	v3 := point.NewExplicit(0, 4, 0)
	s0 := point.NewExplicit(1, 1, -1)
	s1 := point.NewExplicit(1, 1, 1)

	if !InnerSegmentCrossInnerTriangle(s0, s1, v1, v2, v3) {
		tst.Fatalf("expected a vertical segment through (1,1,0) to cross the triangle")
	}

	// a segment that passes outside the triangle's footprint must not cross
	s2 := point.NewExplicit(10, 10, -1)
	s3 := point.NewExplicit(10, 10, 1)
	if InnerSegmentCrossInnerTriangle(s2, s3, v1, v2, v3) {
		tst.Fatalf("did not expect a far-away vertical segment to cross")
	}

	// a coplanar segment (lying in the triangle's own plane) never "crosses"
	s4 := point.NewExplicit(1, 1, 0)
	s5 := point.NewExplicit(2, 2, 0)
	if InnerSegmentCrossInnerTriangle(s4, s5, v1, v2, v3) {
		tst.Fatalf("a coplanar segment must not be reported as a proper crossing")
	}
}

func Test_geom05(tst *testing.T) {

	chk.PrintTitle("geom05. two segments crossing in the xy-plane")

	a0 := point.NewExplicit(0, 0, 0)
	a1 := point.NewExplicit(4, 4, 0)
	b0 := point.NewExplicit(0, 4, 0)
	b1 := point.NewExplicit(4, 0, 0)
	if !InnerSegmentsCross(a0, a1, b0, b1) {
		tst.Fatalf("expected the two diagonals of a unit square to cross")
	}

	c0 := point.NewExplicit(0, 0, 0)
	c1 := point.NewExplicit(1, 1, 0)
	d0 := point.NewExplicit(5, 5, 0)
	d1 := point.NewExplicit(6, 6, 0)
	if InnerSegmentsCross(c0, c1, d0, d1) {
		tst.Fatalf("disjoint collinear segments must not be reported as crossing")
	}
}

func Test_geom06(tst *testing.T) {

	chk.PrintTitle("geom06. same_half_plane and mis_alignment on the xy-plane")

	a := point.NewExplicit(0, 0, 0)
	b := point.NewExplicit(1, 0, 0)
	c := point.NewExplicit(0, 1, 0)
	d := point.NewExplicit(0, 2, 0)
	e := point.NewExplicit(0, -1, 0)

	if !SameHalfPlane(c, d, a, b) {
		tst.Fatalf("expected c and d on the same side of line a-b")
	}
	if SameHalfPlane(c, e, a, b) {
		tst.Fatalf("expected c and e on opposite sides of line a-b")
	}
	if !MisAlignment(a, b, c) {
		tst.Fatalf("expected a,b,c to not be collinear")
	}
	onLine := point.NewExplicit(2, 0, 0)
	if MisAlignment(a, b, onLine) {
		tst.Fatalf("expected a,b,onLine to be collinear")
	}
}

func Test_geom07(tst *testing.T) {

	chk.PrintTitle("geom07. inner_segment_cross_triangle catches a coplanar edge crossing")

	v1 := point.NewExplicit(0, 0, 0)
	v2 := point.NewExplicit(4, 0, 0)
	v3 := point.NewExplicit(0, 4, 0)
	segA := point.NewExplicit(2, -1, 0)
	segB := point.NewExplicit(2, 1, 0)

	if !InnerSegmentCrossTriangle(segA, segB, v1, v2, v3) {
		tst.Fatalf("expected a segment straddling edge v1-v2 in-plane to count as crossing the triangle")
	}

	farAway := point.NewExplicit(20, 20, 0)
	farAway2 := point.NewExplicit(20, 21, 0)
	if InnerSegmentCrossTriangle(farAway, farAway2, v1, v2, v3) {
		tst.Fatalf("did not expect a far-away coplanar segment to cross")
	}
}
