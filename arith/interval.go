package arith

import "math"

// Interval is [Lo, Hi] with Lo <= x <= Hi for the (unknown) exact value x it
// bounds. All arithmetic below widens monotonically and rounds outward so
// that the bound never tightens past truth.
type Interval struct {
	Lo, Hi float64
}

// FromFloat returns the degenerate interval [x, x].
func FromFloat(x float64) Interval {
	return Interval{Lo: x, Hi: x}
}

// bumpUp returns the next representable double strictly above x (or x if x
// is already +Inf); used to round interval endpoints outward after an
// arithmetic op computed with round-to-nearest.
func bumpUp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}

func bumpDown(x float64) float64 {
	return math.Nextafter(x, math.Inf(-1))
}

// NotZero reports whether 0 is outside the interval, i.e. the sign of the
// quantity it bounds is decidable at this precision tier.
func (iv Interval) NotZero() bool {
	return iv.Lo > 0 || iv.Hi < 0
}

// Sign returns the sign of the interval when decidable (NotZero), else 0
// (undecided — caller must escalate to the next filter tier).
func (iv Interval) Sign() int {
	switch {
	case iv.Lo > 0:
		return 1
	case iv.Hi < 0:
		return -1
	default:
		return 0
	}
}

// AddInterval returns an interval enclosing every a+b, a in iv, b in other.
func (iv Interval) AddInterval(other Interval) Interval {
	return Interval{Lo: bumpDown(iv.Lo + other.Lo), Hi: bumpUp(iv.Hi + other.Hi)}
}

// Sub returns an interval enclosing every a-b.
func (iv Interval) Sub(other Interval) Interval {
	return Interval{Lo: bumpDown(iv.Lo - other.Hi), Hi: bumpUp(iv.Hi - other.Lo)}
}

// Neg negates an interval.
func (iv Interval) Neg() Interval {
	return Interval{Lo: -iv.Hi, Hi: -iv.Lo}
}

// Mul returns an interval enclosing every a*b, a in iv, b in other.
//
// Dispatches on the nine sign combinations of (iv.Lo<0,iv.Hi<0) x
// (other.Lo<0,other.Hi<0) to pick the two corner products bounding the
// result, then bumps both endpoints one ULP outward (spec §4.1).
func (iv Interval) Mul(other Interval) Interval {
	a, b := iv, other
	var lo, hi float64
	switch {
	case a.Lo >= 0 && b.Lo >= 0: // both non-negative
		lo, hi = a.Lo*b.Lo, a.Hi*b.Hi
	case a.Lo >= 0 && b.Hi <= 0: // a>=0, b<=0
		lo, hi = a.Hi*b.Lo, a.Lo*b.Hi
	case a.Lo >= 0: // a>=0, b straddles
		lo, hi = a.Hi*b.Lo, a.Hi*b.Hi
	case a.Hi <= 0 && b.Lo >= 0: // a<=0, b>=0
		lo, hi = a.Lo*b.Hi, a.Hi*b.Lo
	case a.Hi <= 0 && b.Hi <= 0: // both non-positive
		lo, hi = a.Hi*b.Hi, a.Lo*b.Lo
	case a.Hi <= 0: // a<=0, b straddles
		lo, hi = a.Lo*b.Hi, a.Lo*b.Lo
	case b.Lo >= 0: // a straddles, b>=0
		lo, hi = a.Lo*b.Hi, a.Hi*b.Hi
	case b.Hi <= 0: // a straddles, b<=0
		lo, hi = a.Hi*b.Lo, a.Lo*b.Lo
	default: // both straddle zero
		lo = math.Min(a.Lo*b.Hi, a.Hi*b.Lo)
		hi = math.Max(a.Lo*b.Lo, a.Hi*b.Hi)
	}
	return Interval{Lo: bumpDown(lo), Hi: bumpUp(hi)}
}

// FromExpansion returns a (wide but cheap) interval enclosing an exact
// expansion's value, used when escalating from the exact tier back down is
// never needed but a consistency check against the dynamic tier is useful.
func FromExpansion(e Expansion) Interval {
	lo, hi := 0.0, 0.0
	for _, c := range e {
		lo += c
		hi += c
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Interval{Lo: bumpDown(lo), Hi: bumpUp(hi)}
}
