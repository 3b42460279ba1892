// Package point implements Point3D, the tagged explicit/LPI/TPI point
// variant that predicates and the BSP complex operate over, plus the lazily
// computed three-tier lambda cache each implicit point carries.
package point

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gpf/arith"
)

// Vec3 is an explicit, fully-evaluated 3-D coordinate triple.
type Vec3 struct {
	X, Y, Z float64
}

// Sub, Cross and Dot are the explicit-point vector helpers; Cross and Dot
// are thin wrappers over gosl/utl's Cross3d and Dot3d, Sub is computed
// directly.
func Sub(a, b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func Cross(a, b Vec3) Vec3 {
	c := utl.Cross3d([]float64{a.X, a.Y, a.Z}, []float64{b.X, b.Y, b.Z})
	return Vec3{c[0], c[1], c[2]}
}

func Dot(a, b Vec3) float64 {
	return utl.Dot3d([]float64{a.X, a.Y, a.Z}, []float64{b.X, b.Y, b.Z})
}

// Kind discriminates the Point3D variant.
type Kind int

const (
	Explicit Kind = iota
	LPI           // line p-q meets plane r-s-t
	TPI           // three planes (v1v2v3), (w1w2w3), (u1u2u3) meet
)

// lambdaForm caches an implicit point's homogeneous (x, y, z, d) coordinates
// at each of the three precision tiers, filled in lazily and at most once
// (insertion is sequential, so a single bool flag per tier is sufficient —
// no writer races are possible, see spec.md §5).
type lambdaForm struct {
	staticDone                 bool
	sx, sy, sz, sd, maxVar     float64
	intervalDone               bool
	ix, iy, iz, id             arith.Interval
	exactDone                  bool
	ex, ey, ez, ed             arith.Expansion
}

// Point3D is an explicit coordinate triple or an implicit LPI/TPI point.
type Point3D struct {
	Kind Kind
	E    Vec3 // valid iff Kind == Explicit

	// LPI operands: line through P,Q meets plane through R,S,T.
	P, Q, R, S, T Vec3

	// TPI operands: planes (V1V2V3), (W1W2W3), (U1U2U3).
	V1, V2, V3, W1, W2, W3, U1, U2, U3 Vec3

	cache lambdaForm
}

// NewExplicit builds an explicit point.
func NewExplicit(x, y, z float64) *Point3D {
	return &Point3D{Kind: Explicit, E: Vec3{x, y, z}}
}

// NewLPI builds the implicit intersection of segment pq with plane rst.
func NewLPI(p, q, r, s, t Vec3) *Point3D {
	return &Point3D{Kind: LPI, P: p, Q: q, R: r, S: s, T: t}
}

// NewTPI builds the implicit common intersection of three planes.
func NewTPI(v1, v2, v3, w1, w2, w3, u1, u2, u3 Vec3) *Point3D {
	return &Point3D{Kind: TPI, V1: v1, V2: v2, V3: v3, W1: w1, W2: w2, W3: w3, U1: u1, U2: u2, U3: u3}
}

// IsExplicit reports whether p is an explicit point.
func (p *Point3D) IsExplicit() bool { return p.Kind == Explicit }

// ExplicitCoords returns p's coordinates; it panics (programmer error, not a
// geometric degeneracy) if p is not
// an explicit point; callers should have branched on Kind first.
func (p *Point3D) ExplicitCoords() Vec3 {
	if p.Kind != Explicit {
		chk.Panic("point is not explicit (kind=%d)", p.Kind)
	}
	return p.E
}

// StaticLambda returns the double-precision (x,y,z,d,max_var) static-filter
// form, computing and caching it on first use. ok is false iff d==0, which
// propagates as an Undefined orientation per spec §3.1's invariant.
func (p *Point3D) StaticLambda() (x, y, z, d, maxVar float64, ok bool) {
	if p.Kind == Explicit {
		return p.E.X, p.E.Y, p.E.Z, 1, 0, true
	}
	if !p.cache.staticDone {
		switch p.Kind {
		case LPI:
			p.cache.sx, p.cache.sy, p.cache.sz, p.cache.sd, p.cache.maxVar = lpiStatic(p.P, p.Q, p.R, p.S, p.T)
		case TPI:
			p.cache.sx, p.cache.sy, p.cache.sz, p.cache.sd, p.cache.maxVar = tpiStatic(p.V1, p.V2, p.V3, p.W1, p.W2, p.W3, p.U1, p.U2, p.U3)
		}
		p.cache.staticDone = true
	}
	return p.cache.sx, p.cache.sy, p.cache.sz, p.cache.sd, p.cache.maxVar, p.cache.sd != 0
}

// IntervalLambda returns the dynamic-filter interval form.
func (p *Point3D) IntervalLambda() (x, y, z, d arith.Interval, ok bool) {
	if p.Kind == Explicit {
		one := arith.FromFloat(1)
		return arith.FromFloat(p.E.X), arith.FromFloat(p.E.Y), arith.FromFloat(p.E.Z), one, true
	}
	if !p.cache.intervalDone {
		switch p.Kind {
		case LPI:
			p.cache.ix, p.cache.iy, p.cache.iz, p.cache.id = lpiInterval(p.P, p.Q, p.R, p.S, p.T)
		case TPI:
			p.cache.ix, p.cache.iy, p.cache.iz, p.cache.id = tpiInterval(p.V1, p.V2, p.V3, p.W1, p.W2, p.W3, p.U1, p.U2, p.U3)
		}
		p.cache.intervalDone = true
	}
	return p.cache.ix, p.cache.iy, p.cache.iz, p.cache.id, p.cache.id.NotZero()
}

// ExactLambda returns the exact-expansion form.
func (p *Point3D) ExactLambda() (x, y, z, d arith.Expansion, ok bool) {
	if p.Kind == Explicit {
		one := arith.NewExpansion(1)
		return arith.NewExpansion(p.E.X), arith.NewExpansion(p.E.Y), arith.NewExpansion(p.E.Z), one, true
	}
	if !p.cache.exactDone {
		switch p.Kind {
		case LPI:
			p.cache.ex, p.cache.ey, p.cache.ez, p.cache.ed = lpiExact(p.P, p.Q, p.R, p.S, p.T)
		case TPI:
			p.cache.ex, p.cache.ey, p.cache.ez, p.cache.ed = tpiExact(p.V1, p.V2, p.V3, p.W1, p.W2, p.W3, p.U1, p.U2, p.U3)
		}
		p.cache.exactDone = true
	}
	return p.cache.ex, p.cache.ey, p.cache.ez, p.cache.ed, p.cache.ed.Sign() != 0
}

// ApproxCoords returns the best-effort double approximation x/d,y/d,z/d of an
// implicit point (or the coordinates directly for an explicit one). Used
// only for non-robust purposes: debug printing, Hilbert sort keys, bounding
// boxes — never for a sign decision.
func (p *Point3D) ApproxCoords() Vec3 {
	if p.Kind == Explicit {
		return p.E
	}
	x, y, z, d, _, _ := p.StaticLambda()
	if d == 0 {
		return Vec3{}
	}
	return Vec3{x / d, y / d, z / d}
}
