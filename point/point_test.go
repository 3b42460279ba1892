package point

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_point01(tst *testing.T) {

	chk.PrintTitle("point01. LPI of a vertical segment through the z=0 plane")

	p := Vec3{0, 0, 1}
	q := Vec3{0, 0, -1}
	r := Vec3{1, 0, 0}
	s := Vec3{0, 1, 0}
	t := Vec3{-1, -1, 0}
	lpi := NewLPI(p, q, r, s, t)
	x, y, z, d, _, ok := lpi.StaticLambda()
	if !ok {
		tst.Fatalf("expected decidable LPI")
	}
	approx := lpi.ApproxCoords()
	if math.Abs(approx.X) > 1e-9 || math.Abs(approx.Y) > 1e-9 || math.Abs(approx.Z) > 1e-9 {
		tst.Fatalf("expected origin, got %v (raw x=%v y=%v z=%v d=%v)", approx, x, y, z, d)
	}
}

func Test_point02(tst *testing.T) {

	chk.PrintTitle("point02. explicit point lambda form is trivial")

	e := NewExplicit(1, 2, 3)
	x, y, z, d, _, ok := e.StaticLambda()
	if !ok || x != 1 || y != 2 || z != 3 || d != 1 {
		tst.Fatalf("unexpected explicit lambda: %v %v %v %v", x, y, z, d)
	}
}

func Test_point03(tst *testing.T) {

	chk.PrintTitle("point03. TPI of three axis-aligned planes meets at corner")

	// plane x=1: through (1,0,0),(1,1,0),(1,0,1)
	v1, v2, v3 := Vec3{1, 0, 0}, Vec3{1, 1, 0}, Vec3{1, 0, 1}
	// plane y=1
	w1, w2, w3 := Vec3{0, 1, 0}, Vec3{1, 1, 0}, Vec3{0, 1, 1}
	// plane z=1
	u1, u2, u3 := Vec3{0, 0, 1}, Vec3{1, 0, 1}, Vec3{0, 1, 1}
	tpi := NewTPI(v1, v2, v3, w1, w2, w3, u1, u2, u3)
	approx := tpi.ApproxCoords()
	if math.Abs(approx.X-1) > 1e-6 || math.Abs(approx.Y-1) > 1e-6 || math.Abs(approx.Z-1) > 1e-6 {
		tst.Fatalf("expected (1,1,1), got %v", approx)
	}
}

func Test_point04(tst *testing.T) {

	chk.PrintTitle("point04. interval and exact tiers agree in sign with static tier")

	p := Vec3{0, 0, 1}
	q := Vec3{0, 0, -1}
	r := Vec3{1, 0, 0}
	s := Vec3{0, 1, 0}
	t := Vec3{-1, -1, 0}
	lpi := NewLPI(p, q, r, s, t)
	_, _, _, d, _, _ := lpi.StaticLambda()
	_, _, _, id, _ := lpi.IntervalLambda()
	_, _, _, ed, _ := lpi.ExactLambda()
	if (d > 0) != (ed.Sign() > 0) {
		tst.Fatalf("static/exact sign mismatch on d: %v vs %v", d, ed.Sign())
	}
	if id.NotZero() && (id.Sign() > 0) != (ed.Sign() > 0) {
		tst.Fatalf("interval/exact sign mismatch on d")
	}
}
