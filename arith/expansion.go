// Package arith implements the exact and interval arithmetic that backs the
// three-tier predicate filter cascade: ExpansionNumber (exact, Shewchuk-style
// floating-point expansions) and IntervalNumber (dynamic, outward-rounded
// interval arithmetic).
package arith

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// splitter used by Shewchuk's Two-Product error-free transformation for
// IEEE-754 doubles (2^27 + 1).
const splitter = 134217729.0

// Expansion is a nonoverlapping sequence of doubles, increasing in
// magnitude, representing the exact sum of its components. Zero components
// are elided, so zero is the empty expansion; sign is the sign of the last
// (largest-magnitude) component.
type Expansion []float64

// NewExpansion builds a single-component expansion from a plain double.
func NewExpansion(x float64) Expansion {
	if x == 0 {
		return Expansion{}
	}
	return Expansion{x}
}

// twoSum is the error-free transformation a+b = x+y with x = fl(a+b).
func twoSum(a, b float64) (x, y float64) {
	x = a + b
	bv := x - a
	av := x - bv
	br := b - bv
	ar := a - av
	y = ar + br
	return
}

// fastTwoSum assumes |a| >= |b|.
func fastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bv := x - a
	y = b - bv
	return
}

// twoProduct is the error-free transformation a*b = x+y with x = fl(a*b).
func twoProduct(a, b float64) (x, y float64) {
	x = a * b
	c := splitter * a
	abig := c - a
	ahi := c - abig
	alo := a - ahi
	c = splitter * b
	bbig := c - b
	bhi := c - bbig
	blo := b - bhi
	y = ((ahi*bhi-x)+ahi*blo+alo*bhi) + alo*blo
	return
}

// growExpansion adds a single double to an expansion, returning a newly
// allocated expansion (linear-time, produces a nonoverlapping result); e is
// left unchanged.
func growExpansion(e Expansion, b float64) Expansion {
	out := make(Expansion, 0, len(e)+1)
	q := b
	for _, ei := range e {
		var x, y float64
		if math.Abs(ei) < math.Abs(q) {
			x, y = fastTwoSum(q, ei)
		} else {
			x, y = fastTwoSum(ei, q)
		}
		if y != 0 {
			out = append(out, y)
		}
		q = x
	}
	if q != 0 || len(out) == 0 {
		out = append(out, q)
	}
	return compress(out)
}

// Sum returns an expansion equal to the infinite-precision sum a+b.
func Sum(a, b Expansion) Expansion {
	out := append(Expansion{}, a...)
	for _, bi := range b {
		out = growExpansion(out, bi)
	}
	if len(out) == 0 {
		return Expansion{}
	}
	return out
}

// Neg returns an expansion with every component's sign flipped.
func Neg(a Expansion) Expansion {
	out := make(Expansion, len(a))
	for i, v := range a {
		out[i] = -v
	}
	return out
}

// Diff returns an expansion equal to the infinite-precision difference a-b.
func Diff(a, b Expansion) Expansion {
	return Sum(a, Neg(b))
}

// scaleExpansion multiplies an expansion by a single double.
func scaleExpansion(e Expansion, b float64) Expansion {
	if len(e) == 0 || b == 0 {
		return Expansion{}
	}
	out := make(Expansion, 0, 2*len(e))
	hi, lo := twoProduct(e[0], b)
	q := hi
	if lo != 0 {
		out = append(out, lo)
	}
	for i := 1; i < len(e); i++ {
		phi, plo := twoProduct(e[i], b)
		var sx, sy float64
		if math.Abs(q) < math.Abs(phi) {
			sx, sy = twoSum(phi, q)
		} else {
			sx, sy = twoSum(q, phi)
		}
		if sy != 0 {
			out = append(out, sy)
		}
		var tx, ty float64
		if math.Abs(sx) < math.Abs(plo) {
			tx, ty = fastTwoSum(plo, sx)
		} else {
			tx, ty = fastTwoSum(sx, plo)
		}
		if ty != 0 {
			out = append(out, ty)
		}
		q = tx
	}
	if q != 0 || len(out) == 0 {
		out = append(out, q)
	}
	return compress(out)
}

// Mul returns an expansion equal to the infinite-precision product a*b.
// Distributes b's components over a via repeated scale-and-sum, which is
// sufficient (if not maximally compact) for the degrees this kernel needs
// (products of at most three or four linear terms).
func Mul(a, b Expansion) Expansion {
	if len(a) == 0 || len(b) == 0 {
		return Expansion{}
	}
	out := scaleExpansion(a, b[0])
	for i := 1; i < len(b); i++ {
		out = Sum(out, scaleExpansion(a, b[i]))
	}
	return out
}

// compress removes residual zero components. It does not check the
// nonoverlapping, increasing-magnitude invariant (checkInvariant does).
func compress(e Expansion) Expansion {
	out := e[:0:0]
	for _, v := range e {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

// Estimate returns the double nearest the exact sum (sum of all components).
func (e Expansion) Estimate() float64 {
	s := 0.0
	for _, v := range e {
		s += v
	}
	return s
}

// Sign returns -1, 0 or +1: the sign of the last (largest-magnitude)
// component, which is the sign of the whole expansion.
func (e Expansion) Sign() int {
	if len(e) == 0 {
		return 0
	}
	last := e[len(e)-1]
	switch {
	case last > 0:
		return 1
	case last < 0:
		return -1
	default:
		return 0
	}
}

// checkInvariant panics (DegenerateInput-class failure) if e is not
// nonoverlapping/increasing in magnitude; used only from tests, since
// production code must never pay for it on the hot path.
func checkInvariant(e Expansion) {
	for i := 0; i < len(e); i++ {
		if e[i] == 0 {
			chk.Panic("expansion has a zero component at index %d", i)
		}
		if i > 0 && math.Abs(e[i]) < math.Abs(e[i-1]) {
			chk.Panic("expansion component %d is not increasing in magnitude", i)
		}
	}
}
