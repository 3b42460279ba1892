package predicates

import (
	"math"

	"github.com/cpmech/gpf/arith"
	"github.com/cpmech/gpf/point"
)

// machineEpsilon is half a ULP of 1.0, the constant Shewchuk-style error
// bounds are built from.
const machineEpsilon = 1.1102230246251565e-16

// Orient2D is the double-only, explicit-operand orientation of c relative to
// the directed line a->b: Positive if a,b,c turn counterclockwise.
//
// Uses a fast filter (error bound scaled from the inputs' magnitude) and
// falls back to exact expansion arithmetic when the bound isn't met — the
// adaptive scheme spec.md §4.2 asks for, specialized to all-explicit
// operands (the common case, served without touching the point package).
func Orient2D(ax, ay, bx, by, cx, cy float64) Orientation {
	acx := ax - cx
	bcx := bx - cx
	acy := ay - cy
	bcy := by - cy
	det := acx*bcy - acy*bcx

	detsum := math.Abs(acx*bcy) + math.Abs(acy*bcx)
	errBound := 3.3306690738754716e-16 * detsum
	if det > errBound || det < -errBound {
		return FromSign(sign(det))
	}
	return orient2DExact(ax, ay, bx, by, cx, cy)
}

func orient2DExact(ax, ay, bx, by, cx, cy float64) Orientation {
	A := arith.NewExpansion
	acx := arith.Diff(A(ax), A(cx))
	bcx := arith.Diff(A(bx), A(cx))
	acy := arith.Diff(A(ay), A(cy))
	bcy := arith.Diff(A(by), A(cy))
	det := arith.Diff(arith.Mul(acx, bcy), arith.Mul(acy, bcx))
	return FromSign(det.Sign())
}

// Orient3D is the double-only orientation of d relative to the plane through
// a,b,c: Positive if d is below the plane for a,b,c wound counterclockwise
// when viewed from above (Shewchuk's convention).
func Orient3D(a, b, c, d [3]float64) Orientation {
	adx, ady, adz := a[0]-d[0], a[1]-d[1], a[2]-d[2]
	bdx, bdy, bdz := b[0]-d[0], b[1]-d[1], b[2]-d[2]
	cdx, cdy, cdz := c[0]-d[0], c[1]-d[1], c[2]-d[2]

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	cdxady := cdx * ady
	adxcdy := adx * cdy
	adxbdy := adx * bdy
	bdxady := bdx * ady

	det := adz*(bdxcdy-cdxbdy) + bdz*(cdxady-adxcdy) + cdz*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy) + math.Abs(cdxbdy)) * math.Abs(adz) +
		(math.Abs(cdxady) + math.Abs(adxcdy)) * math.Abs(bdz) +
		(math.Abs(adxbdy) + math.Abs(bdxady)) * math.Abs(cdz)
	errBound := 7.771561172376096e-16 * permanent
	if det > errBound || det < -errBound {
		return FromSign(sign(det))
	}
	return orient3DExact(a, b, c, d)
}

func orient3DExact(a, b, c, d [3]float64) Orientation {
	A := func(v [3]float64, i int) arith.Expansion { return arith.NewExpansion(v[i]) }
	sub := func(u, v [3]float64, i int) arith.Expansion { return arith.Diff(A(u, i), A(v, i)) }
	adx, ady, adz := sub(a, d, 0), sub(a, d, 1), sub(a, d, 2)
	bdx, bdy, bdz := sub(b, d, 0), sub(b, d, 1), sub(b, d, 2)
	cdx, cdy, cdz := sub(c, d, 0), sub(c, d, 1), sub(c, d, 2)
	t1 := arith.Mul(adz, arith.Diff(arith.Mul(bdx, cdy), arith.Mul(cdx, bdy)))
	t2 := arith.Mul(bdz, arith.Diff(arith.Mul(cdx, ady), arith.Mul(adx, cdy)))
	t3 := arith.Mul(cdz, arith.Diff(arith.Mul(adx, bdy), arith.Mul(bdx, ady)))
	det := arith.Sum(arith.Sum(t1, t2), t3)
	return FromSign(det.Sign())
}

// InCircle reports the orientation of d with respect to the circle through
// a,b,c (Positive iff d lies inside, for a,b,c wound counterclockwise).
func InCircle(a, b, c, d [2]float64) Orientation {
	adx, ady := a[0]-d[0], a[1]-d[1]
	bdx, bdy := b[0]-d[0], b[1]-d[1]
	cdx, cdy := c[0]-d[0], c[1]-d[1]

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy) + math.Abs(cdxbdy)) * alift +
		(math.Abs(cdxady) + math.Abs(adxcdy)) * blift +
		(math.Abs(adxbdy) + math.Abs(bdxady)) * clift
	errBound := 1.1102230246251565e-15 * permanent
	if det > errBound || det < -errBound {
		return FromSign(sign(det))
	}
	return inCircleExact(a, b, c, d)
}

func inCircleExact(a, b, c, d [2]float64) Orientation {
	A := arith.NewExpansion
	adx := arith.Diff(A(a[0]), A(d[0]))
	ady := arith.Diff(A(a[1]), A(d[1]))
	bdx := arith.Diff(A(b[0]), A(d[0]))
	bdy := arith.Diff(A(b[1]), A(d[1]))
	cdx := arith.Diff(A(c[0]), A(d[0]))
	cdy := arith.Diff(A(c[1]), A(d[1]))
	alift := arith.Sum(arith.Mul(adx, adx), arith.Mul(ady, ady))
	blift := arith.Sum(arith.Mul(bdx, bdx), arith.Mul(bdy, bdy))
	clift := arith.Sum(arith.Mul(cdx, cdx), arith.Mul(cdy, cdy))
	t1 := arith.Mul(alift, arith.Diff(arith.Mul(bdx, cdy), arith.Mul(cdx, bdy)))
	t2 := arith.Mul(blift, arith.Diff(arith.Mul(cdx, ady), arith.Mul(adx, cdy)))
	t3 := arith.Mul(clift, arith.Diff(arith.Mul(adx, bdy), arith.Mul(bdx, ady)))
	det := arith.Sum(arith.Sum(t1, t2), t3)
	return FromSign(det.Sign())
}

// InSphere reports the orientation of e with respect to the sphere through
// a,b,c,d (Positive iff e lies inside, for a,b,c,d oriented Positive by
// Orient3D).
func InSphere(a, b, c, d, e [3]float64) Orientation {
	sub := func(u, v [3]float64) [3]float64 { return [3]float64{u[0] - v[0], u[1] - v[1], u[2] - v[2]} }
	lift := func(v [3]float64) float64 { return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] }

	ae, be, ce, de := sub(a, e), sub(b, e), sub(c, e), sub(d, e)
	al, bl, cl, dl := lift(ae), lift(be), lift(ce), lift(de)

	det := dl*det3(ae, be, ce) - cl*det3(ae, be, de) + bl*det3(ae, ce, de) - al*det3(be, ce, de)

	permanent := al*absDet3(be, ce, de) + bl*absDet3(ae, ce, de) + cl*absDet3(ae, be, de) + dl*absDet3(ae, be, ce)
	errBound := 1.1102230246251565e-15 * permanent
	if det > errBound || det < -errBound {
		return FromSign(sign(det))
	}
	return inSphereExact(a, b, c, d, e)
}

func det3(u, v, w [3]float64) float64 {
	return u[0]*(v[1]*w[2]-v[2]*w[1]) - u[1]*(v[0]*w[2]-v[2]*w[0]) + u[2]*(v[0]*w[1]-v[1]*w[0])
}

func absDet3(u, v, w [3]float64) float64 {
	return math.Abs(u[0]*(v[1]*w[2])) + math.Abs(u[0]*(v[2]*w[1])) +
		math.Abs(u[1]*(v[0]*w[2])) + math.Abs(u[1]*(v[2]*w[0])) +
		math.Abs(u[2]*(v[0]*w[1])) + math.Abs(u[2]*(v[1]*w[0]))
}

func inSphereExact(a, b, c, d, e [3]float64) Orientation {
	A := func(v [3]float64, i int) arith.Expansion { return arith.NewExpansion(v[i]) }
	sub := func(u, v [3]float64) [3]arith.Expansion {
		return [3]arith.Expansion{arith.Diff(A(u, 0), A(v, 0)), arith.Diff(A(u, 1), A(v, 1)), arith.Diff(A(u, 2), A(v, 2))}
	}
	lift := func(v [3]arith.Expansion) arith.Expansion {
		return arith.Sum(arith.Sum(arith.Mul(v[0], v[0]), arith.Mul(v[1], v[1])), arith.Mul(v[2], v[2]))
	}
	detE := func(u, v, w [3]arith.Expansion) arith.Expansion {
		t1 := arith.Mul(u[0], arith.Diff(arith.Mul(v[1], w[2]), arith.Mul(v[2], w[1])))
		t2 := arith.Mul(u[1], arith.Diff(arith.Mul(v[0], w[2]), arith.Mul(v[2], w[0])))
		t3 := arith.Mul(u[2], arith.Diff(arith.Mul(v[0], w[1]), arith.Mul(v[1], w[0])))
		return arith.Sum(arith.Diff(t1, t2), t3)
	}
	ae, be, ce, de := sub(a, e), sub(b, e), sub(c, e), sub(d, e)
	al, bl, cl, dl := lift(ae), lift(be), lift(ce), lift(de)
	t1 := arith.Mul(al, detE(be, ce, de))
	t2 := arith.Mul(bl, detE(ae, ce, de))
	t3 := arith.Mul(cl, detE(ae, be, de))
	t4 := arith.Mul(dl, detE(ae, be, ce))
	det := arith.Diff(arith.Sum(arith.Diff(t4, t3), t2), t1)
	return FromSign(det.Sign())
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// approxVec3 converts a Point3D's best-effort double coordinates
// for use by the fast explicit-only paths above, when a caller holds generic
// points but already knows (from context) that all operands are explicit.
func approxVec3(p *point.Point3D) [3]float64 {
	v := p.ApproxCoords()
	return [3]float64{v.X, v.Y, v.Z}
}
