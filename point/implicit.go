package point

import (
	"math"

	"github.com/cpmech/gpf/arith"
)

// This file gives each of the three precision tiers (static double, dynamic
// interval, exact expansion) its own parallel implementation of the LPI and
// TPI lambda formulas, mirroring the way Shewchuk-style predicate libraries
// keep a fast and an exact path textually side by side rather than behind a
// generic numeric abstraction — easier to audit against the reference
// formula one tier at a time.

// ---------------------------------------------------------------- LPI/static

func lpiStatic(p, q, r, s, t Vec3) (x, y, z, d, maxVar float64) {
	sr := Vec3{s.X - r.X, s.Y - r.Y, s.Z - r.Z}
	tr := Vec3{t.X - r.X, t.Y - r.Y, t.Z - r.Z}
	n := Cross(sr, tr)
	qp := Vec3{q.X - p.X, q.Y - p.Y, q.Z - p.Z}
	rp := Vec3{r.X - p.X, r.Y - p.Y, r.Z - p.Z}
	d = Dot(n, qp)
	num := Dot(n, rp)
	x = p.X*d + num*qp.X
	y = p.Y*d + num*qp.Y
	z = p.Z*d + num*qp.Z
	maxVar = maxAbs(p.X, p.Y, p.Z, q.X, q.Y, q.Z, r.X, r.Y, r.Z, s.X, s.Y, s.Z, t.X, t.Y, t.Z)
	return
}

func maxAbs(vs ...float64) float64 {
	m := 0.0
	for _, v := range vs {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// ---------------------------------------------------------------- LPI/interval

func lpiInterval(p, q, r, s, t Vec3) (x, y, z, d arith.Interval) {
	P, Q, R, S, T := ivVec(p), ivVec(q), ivVec(r), ivVec(s), ivVec(t)
	sr := ivSub(S, R)
	tr := ivSub(T, R)
	n := ivCross(sr, tr)
	qp := ivSub(Q, P)
	rp := ivSub(R, P)
	d = ivDot(n, qp)
	num := ivDot(n, rp)
	x = P[0].Mul(d).AddInterval(num.Mul(qp[0]))
	y = P[1].Mul(d).AddInterval(num.Mul(qp[1]))
	z = P[2].Mul(d).AddInterval(num.Mul(qp[2]))
	return
}

type ivVec3 [3]arith.Interval

func ivVec(v Vec3) ivVec3 {
	return ivVec3{arith.FromFloat(v.X), arith.FromFloat(v.Y), arith.FromFloat(v.Z)}
}

func ivSub(a, b ivVec3) ivVec3 {
	return ivVec3{a[0].Sub(b[0]), a[1].Sub(b[1]), a[2].Sub(b[2])}
}

func ivCross(a, b ivVec3) ivVec3 {
	return ivVec3{
		a[1].Mul(b[2]).Sub(a[2].Mul(b[1])),
		a[2].Mul(b[0]).Sub(a[0].Mul(b[2])),
		a[0].Mul(b[1]).Sub(a[1].Mul(b[0])),
	}
}

func ivDot(a, b ivVec3) arith.Interval {
	return a[0].Mul(b[0]).AddInterval(a[1].Mul(b[1])).AddInterval(a[2].Mul(b[2]))
}

// ---------------------------------------------------------------- LPI/exact

func lpiExact(p, q, r, s, t Vec3) (x, y, z, d arith.Expansion) {
	P, Q, R, S, T := exVec(p), exVec(q), exVec(r), exVec(s), exVec(t)
	sr := exSub(S, R)
	tr := exSub(T, R)
	n := exCross(sr, tr)
	qp := exSub(Q, P)
	rp := exSub(R, P)
	d = exDot(n, qp)
	num := exDot(n, rp)
	x = arith.Sum(arith.Mul(P[0], d), arith.Mul(num, qp[0]))
	y = arith.Sum(arith.Mul(P[1], d), arith.Mul(num, qp[1]))
	z = arith.Sum(arith.Mul(P[2], d), arith.Mul(num, qp[2]))
	return
}

type exVec3 [3]arith.Expansion

func exVec(v Vec3) exVec3 {
	return exVec3{arith.NewExpansion(v.X), arith.NewExpansion(v.Y), arith.NewExpansion(v.Z)}
}

func exSub(a, b exVec3) exVec3 {
	return exVec3{arith.Diff(a[0], b[0]), arith.Diff(a[1], b[1]), arith.Diff(a[2], b[2])}
}

func exCross(a, b exVec3) exVec3 {
	return exVec3{
		arith.Diff(arith.Mul(a[1], b[2]), arith.Mul(a[2], b[1])),
		arith.Diff(arith.Mul(a[2], b[0]), arith.Mul(a[0], b[2])),
		arith.Diff(arith.Mul(a[0], b[1]), arith.Mul(a[1], b[0])),
	}
}

func exDot(a, b exVec3) arith.Expansion {
	return arith.Sum(arith.Sum(arith.Mul(a[0], b[0]), arith.Mul(a[1], b[1])), arith.Mul(a[2], b[2]))
}

// ---------------------------------------------------------------- TPI

// planeNormalStatic returns a plane's normal (v2-v1)x(v3-v1) and its RHS n.v1, for
// the static tier.
func planeNormalStatic(v1, v2, v3 Vec3) (n Vec3, rhs float64) {
	n = Cross(Vec3{v2.X - v1.X, v2.Y - v1.Y, v2.Z - v1.Z}, Vec3{v3.X - v1.X, v3.Y - v1.Y, v3.Z - v1.Z})
	rhs = Dot(n, v1)
	return
}

func det3Static(a, b, c Vec3) float64 {
	return a.X*(b.Y*c.Z-b.Z*c.Y) - a.Y*(b.X*c.Z-b.Z*c.X) + a.Z*(b.X*c.Y-b.Y*c.X)
}

func tpiStatic(v1, v2, v3, w1, w2, w3, u1, u2, u3 Vec3) (x, y, z, d, maxVar float64) {
	n1, r1 := planeNormalStatic(v1, v2, v3)
	n2, r2 := planeNormalStatic(w1, w2, w3)
	n3, r3 := planeNormalStatic(u1, u2, u3)
	d = det3Static(n1, n2, n3)
	x = det3Static(Vec3{r1, n1.Y, n1.Z}, Vec3{r2, n2.Y, n2.Z}, Vec3{r3, n3.Y, n3.Z})
	y = det3Static(Vec3{n1.X, r1, n1.Z}, Vec3{n2.X, r2, n2.Z}, Vec3{n3.X, r3, n3.Z})
	z = det3Static(Vec3{n1.X, n1.Y, r1}, Vec3{n2.X, n2.Y, r2}, Vec3{n3.X, n3.Y, r3})
	maxVar = maxAbs(v1.X, v1.Y, v1.Z, v2.X, v2.Y, v2.Z, v3.X, v3.Y, v3.Z,
		w1.X, w1.Y, w1.Z, w2.X, w2.Y, w2.Z, w3.X, w3.Y, w3.Z,
		u1.X, u1.Y, u1.Z, u2.X, u2.Y, u2.Z, u3.X, u3.Y, u3.Z)
	return
}

func planeNormalInterval(v1, v2, v3 Vec3) (n ivVec3, rhs arith.Interval) {
	V1, V2, V3 := ivVec(v1), ivVec(v2), ivVec(v3)
	n = ivCross(ivSub(V2, V1), ivSub(V3, V1))
	rhs = ivDot(n, V1)
	return
}

func det3Interval(a, b, c ivVec3) arith.Interval {
	t1 := a[0].Mul(b[1].Mul(c[2]).Sub(b[2].Mul(c[1])))
	t2 := a[1].Mul(b[0].Mul(c[2]).Sub(b[2].Mul(c[0])))
	t3 := a[2].Mul(b[0].Mul(c[1]).Sub(b[1].Mul(c[0])))
	return t1.Sub(t2).AddInterval(t3)
}

func tpiInterval(v1, v2, v3, w1, w2, w3, u1, u2, u3 Vec3) (x, y, z, d arith.Interval) {
	n1, r1 := planeNormalInterval(v1, v2, v3)
	n2, r2 := planeNormalInterval(w1, w2, w3)
	n3, r3 := planeNormalInterval(u1, u2, u3)
	d = det3Interval(n1, n2, n3)
	x = det3Interval(ivVec3{r1, n1[1], n1[2]}, ivVec3{r2, n2[1], n2[2]}, ivVec3{r3, n3[1], n3[2]})
	y = det3Interval(ivVec3{n1[0], r1, n1[2]}, ivVec3{n2[0], r2, n2[2]}, ivVec3{n3[0], r3, n3[2]})
	z = det3Interval(ivVec3{n1[0], n1[1], r1}, ivVec3{n2[0], n2[1], r2}, ivVec3{n3[0], n3[1], r3})
	return
}

func planeNormalExact(v1, v2, v3 Vec3) (n exVec3, rhs arith.Expansion) {
	V1, V2, V3 := exVec(v1), exVec(v2), exVec(v3)
	n = exCross(exSub(V2, V1), exSub(V3, V1))
	rhs = exDot(n, V1)
	return
}

func det3Exact(a, b, c exVec3) arith.Expansion {
	t1 := arith.Mul(a[0], arith.Diff(arith.Mul(b[1], c[2]), arith.Mul(b[2], c[1])))
	t2 := arith.Mul(a[1], arith.Diff(arith.Mul(b[0], c[2]), arith.Mul(b[2], c[0])))
	t3 := arith.Mul(a[2], arith.Diff(arith.Mul(b[0], c[1]), arith.Mul(b[1], c[0])))
	return arith.Sum(arith.Diff(t1, t2), t3)
}

func tpiExact(v1, v2, v3, w1, w2, w3, u1, u2, u3 Vec3) (x, y, z, d arith.Expansion) {
	n1, r1 := planeNormalExact(v1, v2, v3)
	n2, r2 := planeNormalExact(w1, w2, w3)
	n3, r3 := planeNormalExact(u1, u2, u3)
	d = det3Exact(n1, n2, n3)
	x = det3Exact(exVec3{r1, n1[1], n1[2]}, exVec3{r2, n2[1], n2[2]}, exVec3{r3, n3[1], n3[2]})
	y = det3Exact(exVec3{n1[0], r1, n1[2]}, exVec3{n2[0], r2, n2[2]}, exVec3{n3[0], r3, n3[2]})
	z = det3Exact(exVec3{n1[0], n1[1], r1}, exVec3{n2[0], n2[1], r2}, exVec3{n3[0], n3[1], r3})
	return
}
