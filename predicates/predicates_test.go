package predicates

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/point"
)

func Test_orient3d01(tst *testing.T) {

	chk.PrintTitle("orient3d01. nearly-coplanar quadruple is still Positive")

	// (0,0,0),(1,0,0),(0,1,0),(eps,eps,delta) with delta = 2^-60
	e := 1e-8
	delta := math.Pow(2, -60)
	o := Orient3D([3]float64{0, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{e, e, delta})
	if o != Positive {
		tst.Fatalf("expected Positive, got %v", o)
	}
}

func Test_orient2d01(tst *testing.T) {

	chk.PrintTitle("orient2d01. counterclockwise triangle is Positive")

	o := Orient2D(0, 0, 1, 0, 0, 1)
	if o != Positive {
		tst.Fatalf("expected Positive, got %v", o)
	}
	o = Orient2D(0, 0, 0, 1, 1, 0)
	if o != Negative {
		tst.Fatalf("expected Negative, got %v", o)
	}
}

func Test_incircle01(tst *testing.T) {

	chk.PrintTitle("incircle01. center of unit circle is inside")

	o := InCircle([2]float64{1, 0}, [2]float64{0, 1}, [2]float64{-1, 0}, [2]float64{0, 0})
	if o != Positive {
		tst.Fatalf("expected Positive (inside), got %v", o)
	}
	o = InCircle([2]float64{1, 0}, [2]float64{0, 1}, [2]float64{-1, 0}, [2]float64{10, 10})
	if o != Negative {
		tst.Fatalf("expected Negative (outside), got %v", o)
	}
}

func Test_insphere01(tst *testing.T) {

	chk.PrintTitle("insphere01. center of unit tetrahedron circumsphere is inside")

	a := [3]float64{1, 1, 1}
	b := [3]float64{1, -1, -1}
	c := [3]float64{-1, 1, -1}
	d := [3]float64{-1, -1, 1}
	o := InSphere(a, b, c, d, [3]float64{0, 0, 0})
	if o != Positive {
		tst.Fatalf("expected Positive, got %v", o)
	}
	o = InSphere(a, b, c, d, [3]float64{100, 100, 100})
	if o != Negative {
		tst.Fatalf("expected Negative, got %v", o)
	}
}

func Test_orient3dGeneric01(tst *testing.T) {

	chk.PrintTitle("orient3dGeneric01. LPI point in the plane of a,b,c gets a decided orientation")

	a := point.NewExplicit(0, 0, 0)
	b := point.NewExplicit(1, 0, 0)
	c := point.NewExplicit(0, 1, 0)
	// LPI: segment (0.3,0.3,2)-(0.3,0.3,-2) through plane z=0 -> the point
	// (0.3,0.3,0), which lies in the plane of a,b,c (the degenerate case)
	lpi := point.NewLPI(point.Vec3{0.3, 0.3, 2}, point.Vec3{0.3, 0.3, -2},
		point.Vec3{1, 0, 0}, point.Vec3{0, 1, 0}, point.Vec3{-1, -1, 0})
	o := Orient3DGeneric(a, b, c, lpi)
	if o == Undefined {
		tst.Fatalf("expected a decided orientation")
	}
}

func Test_lessThan01(tst *testing.T) {

	chk.PrintTitle("lessThan01. explicit points compare along each axis")

	a := point.NewExplicit(1, 5, 9)
	b := point.NewExplicit(2, 5, 9)
	if LessThanOnAxis(0, a, b) != Negative {
		tst.Fatalf("expected a<b on x")
	}
	if LessThanOnAxis(1, a, b) != Zero {
		tst.Fatalf("expected a==b on y")
	}
}

func Test_signReversed01(tst *testing.T) {

	chk.PrintTitle("signReversed01. Zero/Undefined never satisfy sign_reversed")

	if !SignReversed(Positive, Negative) {
		tst.Fatalf("expected sign_reversed(Positive,Negative)")
	}
	if SignReversed(Zero, Negative) || SignReversed(Undefined, Positive) {
		tst.Fatalf("Zero/Undefined must never be sign_reversed")
	}
}
