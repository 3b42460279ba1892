package predicates

import (
	"github.com/cpmech/gpf/arith"
	"github.com/cpmech/gpf/point"
)

// kindLetter returns the pattern letter ('E','L','T') for a point's kind.
func kindLetter(p *point.Point3D) byte {
	switch p.Kind {
	case point.LPI:
		return 'L'
	case point.TPI:
		return 'T'
	default:
		return 'E'
	}
}

func patternOf(pts ...*point.Point3D) string {
	letters := make([]byte, len(pts))
	for i, p := range pts {
		letters[i] = kindLetter(p)
	}
	return pattern(letters)
}

func allExplicit(pts ...*point.Point3D) bool {
	for _, p := range pts {
		if p.Kind != point.Explicit {
			return false
		}
	}
	return true
}

// Orient3DGeneric is orient3d over four (possibly implicit) points, per
// spec.md §4.2's three-tier cascade. Dispatches straight to the double-only
// fast path when all operands are explicit.
func Orient3DGeneric(a, b, c, d *point.Point3D) Orientation {
	if allExplicit(a, b, c, d) {
		return Orient3D(approxVec3(a), approxVec3(b), approxVec3(c), approxVec3(d))
	}

	// static tier
	xa, ya, za, da, mva, oka := a.StaticLambda()
	xb, yb, zb, db, mvb, okb := b.StaticLambda()
	xc, yc, zc, dc, mvc, okc := c.StaticLambda()
	xd, yd, zd, dd, mvd, okd := d.StaticLambda()
	if !oka || !okb || !okc || !okd {
		return Undefined
	}
	maxVar := maxOf(mva, mvb, mvc, mvd)
	det := det4x4Static([4][4]float64{
		{xa, ya, za, da}, {xb, yb, zb, db}, {xc, yc, zc, dc}, {xd, yd, zd, dd},
	})
	dsign := sign(da) * sign(db) * sign(dc) * sign(dd)
	eps, ok := orient3dEps[patternOf(a, b, c, d)]
	if ok {
		bound := eps.bound(maxVar)
		if det > bound || det < -bound {
			return FromSign(sign(det) * dsign)
		}
	}

	// dynamic tier
	ixa, iya, iza, ida, oka2 := a.IntervalLambda()
	ixb, iyb, izb, idb, okb2 := b.IntervalLambda()
	ixc, iyc, izc, idc, okc2 := c.IntervalLambda()
	ixd, iyd, izd, idd, okd2 := d.IntervalLambda()
	if oka2 && okb2 && okc2 && okd2 {
		idet := det4x4Interval([4][4]arith.Interval{
			{ixa, iya, iza, ida}, {ixb, iyb, izb, idb}, {ixc, iyc, izc, idc}, {ixd, iyd, izd, idd},
		})
		if idet.NotZero() && ida.NotZero() && idb.NotZero() && idc.NotZero() && idd.NotZero() {
			idsign := ida.Sign() * idb.Sign() * idc.Sign() * idd.Sign()
			return FromSign(idet.Sign() * idsign)
		}
	}

	// exact tier
	exa, eya, eza, eda, oka3 := a.ExactLambda()
	exb, eyb, ezb, edb, okb3 := b.ExactLambda()
	exc, eyc, ezc, edc, okc3 := c.ExactLambda()
	exd, eyd, ezd, edd, okd3 := d.ExactLambda()
	if !oka3 || !okb3 || !okc3 || !okd3 {
		return Undefined
	}
	edet := det4x4Exact([4][4]arith.Expansion{
		{exa, eya, eza, eda}, {exb, eyb, ezb, edb}, {exc, eyc, ezc, edc}, {exd, eyd, ezd, edd},
	})
	edsign := eda.Sign() * edb.Sign() * edc.Sign() * edd.Sign()
	return FromSign(edet.Sign() * edsign)
}

// Orient2DByAxis is orient2d over three points projected onto the plane
// perpendicular to axis (0=x,1=y,2=z dropped), mirroring
// `orient2d_by_axis`/`_xy`/`_yz`/`_zx` in the reference implementation.
func Orient2DByAxis(axis int, a, b, c *point.Point3D) Orientation {
	u, v := axisPair(axis)
	if allExplicit(a, b, c) {
		av, bv, cv := a.ApproxCoords(), b.ApproxCoords(), c.ApproxCoords()
		return Orient2D(comp(av, u), comp(av, v), comp(bv, u), comp(bv, v), comp(cv, u), comp(cv, v))
	}

	xa, ya, za, da, mva, oka := a.StaticLambda()
	xb, yb, zb, db, mvb, okb := b.StaticLambda()
	xc, yc, zc, dc, mvc, okc := c.StaticLambda()
	if !oka || !okb || !okc {
		return Undefined
	}
	la := []float64{xa, ya, za}
	lb := []float64{xb, yb, zb}
	lc := []float64{xc, yc, zc}
	maxVar := maxOf(mva, mvb, mvc)
	det := det3x3Static([3][3]float64{
		{la[u], la[v], da}, {lb[u], lb[v], db}, {lc[u], lc[v], dc},
	})
	dsign := sign(da) * sign(db) * sign(dc)
	if eps, ok := orient2dEps[patternOf(a, b, c)]; ok {
		bound := eps.bound(maxVar)
		if det > bound || det < -bound {
			return FromSign(sign(det) * dsign)
		}
	}

	ixa, iya, iza, ida, oka2 := a.IntervalLambda()
	ixb, iyb, izb, idb, okb2 := b.IntervalLambda()
	ixc, iyc, izc, idc, okc2 := c.IntervalLambda()
	if oka2 && okb2 && okc2 {
		ila := []arith.Interval{ixa, iya, iza}
		ilb := []arith.Interval{ixb, iyb, izb}
		ilc := []arith.Interval{ixc, iyc, izc}
		idet := det3x3Interval([3][3]arith.Interval{
			{ila[u], ila[v], ida}, {ilb[u], ilb[v], idb}, {ilc[u], ilc[v], idc},
		})
		if idet.NotZero() && ida.NotZero() && idb.NotZero() && idc.NotZero() {
			return FromSign(idet.Sign() * ida.Sign() * idb.Sign() * idc.Sign())
		}
	}

	exa, eya, eza, eda, oka3 := a.ExactLambda()
	exb, eyb, ezb, edb, okb3 := b.ExactLambda()
	exc, eyc, ezc, edc, okc3 := c.ExactLambda()
	if !oka3 || !okb3 || !okc3 {
		return Undefined
	}
	ela := []arith.Expansion{exa, eya, eza}
	elb := []arith.Expansion{exb, eyb, ezb}
	elc := []arith.Expansion{exc, eyc, ezc}
	edet := det3x3Exact([3][3]arith.Expansion{
		{ela[u], ela[v], eda}, {elb[u], elb[v], edb}, {elc[u], elc[v], edc},
	})
	return FromSign(edet.Sign() * eda.Sign() * edb.Sign() * edc.Sign())
}

// LessThanOnAxis compares a and b's coordinate along axis (0=x,1=y,2=z):
// Negative if a<b, Positive if a>b, Zero if equal, Undefined if undecidable.
func LessThanOnAxis(axis int, a, b *point.Point3D) Orientation {
	if allExplicit(a, b) {
		av, bv := a.ApproxCoords(), b.ApproxCoords()
		return FromSign(sign(comp(av, axis) - comp(bv, axis)))
	}
	la, da, mva, oka := staticComp(a, axis)
	lb, db, mvb, okb := staticComp(b, axis)
	if !oka || !okb {
		return Undefined
	}
	// a/da - b/db compares as la*db - lb*da, scaled by sign(da*db)
	det := la*db - lb*da
	maxVar := maxOf(mva, mvb)
	if eps, ok := lessThanEps[patternOf(a, b)]; ok {
		bound := eps.bound(maxVar)
		if det > bound || det < -bound {
			return FromSign(sign(det) * sign(da) * sign(db))
		}
	}
	ila, ida, oka2 := intervalComp(a, axis)
	ilb, idb, okb2 := intervalComp(b, axis)
	if oka2 && okb2 {
		idet := ila.Mul(idb).Sub(ilb.Mul(ida))
		if idet.NotZero() && ida.NotZero() && idb.NotZero() {
			return FromSign(idet.Sign() * ida.Sign() * idb.Sign())
		}
	}
	ela, eda, oka3 := exactComp(a, axis)
	elb, edb, okb3 := exactComp(b, axis)
	if !oka3 || !okb3 {
		return Undefined
	}
	edet := arith.Diff(arith.Mul(ela, edb), arith.Mul(elb, eda))
	return FromSign(edet.Sign() * eda.Sign() * edb.Sign())
}

func staticComp(p *point.Point3D, axis int) (comp, d, maxVar float64, ok bool) {
	x, y, z, d, mv, ok := p.StaticLambda()
	switch axis {
	case 0:
		return x, d, mv, ok
	case 1:
		return y, d, mv, ok
	default:
		return z, d, mv, ok
	}
}

func intervalComp(p *point.Point3D, axis int) (comp, d arith.Interval, ok bool) {
	x, y, z, d, ok := p.IntervalLambda()
	switch axis {
	case 0:
		return x, d, ok
	case 1:
		return y, d, ok
	default:
		return z, d, ok
	}
}

func exactComp(p *point.Point3D, axis int) (comp, d arith.Expansion, ok bool) {
	x, y, z, d, ok := p.ExactLambda()
	switch axis {
	case 0:
		return x, d, ok
	case 1:
		return y, d, ok
	default:
		return z, d, ok
	}
}

func axisPair(axis int) (u, v int) {
	switch axis {
	case 0: // drop x -> (y,z)
		return 1, 2
	case 1: // drop y -> (z,x)
		return 2, 0
	default: // drop z -> (x,y)
		return 0, 1
	}
}

func comp(v point.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func maxOf(vs ...float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
