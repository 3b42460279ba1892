package predicates

// Epsilon coefficients for the static (double) filter tier of the
// generic-point predicates, reproduced from the reference implementation's
// per-combination adaptive bounds (original_source/src/predicates/{orient2d,
// orient3d}.rs). Each bound has the shape coeff * max_var^degree, where
// max_var is the largest absolute input coordinate seen across every operand
// (explicit or the explicit points backing an implicit operand).
//
// Patterns are named by the sorted multiset of point kinds among the
// predicate's operands, 'E' explicit, 'L' an LPI point, 'T' a TPI point —
// exactly the "LEE, LLE, LLT, LTT, TTT..." naming spec.md §4.2 uses. The all
// explicit-operand pattern isn't listed here: that case never reaches the
// generic cascade, it's served directly by the plain double orient2d/orient3d
// in double.go.
type epsBound struct {
	degree int
	coeff  float64
}

// orient2dEps holds the bound for orient2d over three points (one coordinate
// axis projected out) — spec.md's three-point predicate family.
var orient2dEps = map[string]epsBound{
	"EEL": {5, 4.752773695437811e-14},
	"EET": {8, 9.061883188277186e-13},
	"ELL": {11, 1.699690735379461e-11},
	"ELT": {14, 2.184958117212875e-10},
	"ETT": {20, 3.307187945722514e-08},
	"LLL": {14, 1.75634284893534e-10},
	"LLT": {17, 2.144556754402072e-09},
	"LTT": {20, 2.535681042914479e-08},
	"TTT": {26, 3.103174776697445e-06},
}

// orient3dEps holds the bound for orient3d over four points.
var orient3dEps = map[string]epsBound{
	"EEEL": {6, 1.861039534284405e-13},
	"EEET": {9, 3.070283610684406e-12},
	"EELL": {9, 5.12855469897434e-12},
	"EELT": {12, 7.437036403379365e-11},
	"EETT": {15, 1.036198238324465e-09},
	"ELLL": {12, 1.270161397934349e-10},
	"ELLT": {15, 1.7060943907632e-09},
	"ELTT": {18, 2.211968919141342e-08},
	"ETTT": {21, 2.808754828720361e-07},
	"LLLL": {21, 1.164303613521164e-07},
	"LLLT": {30, 0.0001675978376241023},
	"LLTT": {33, 0.001770733197190587},
	"LTTT": {36, 0.01883943108077826},
	"TTTT": {39, 0.1952243033447331},
}

// pattern returns the sorted-by-letter multiset key for kindLetters, e.g.
// {'T','E','L'} -> "ELT".
func pattern(letters []byte) string {
	out := append([]byte{}, letters...)
	// insertion sort: tuples are always tiny (3 or 4 letters)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return string(out)
}

// bound computes coeff*maxVar^degree for a table entry; a zero-value entry
// (degree 0) yields 1e300, i.e. never decidable at the static tier. Patterns
// missing from a table are handled by the callers' map lookup, not here.
func (b epsBound) bound(maxVar float64) float64 {
	if b.degree == 0 {
		return 1e300
	}
	v := maxVar
	acc := 1.0
	for i := 0; i < b.degree; i++ {
		acc *= v
	}
	return b.coeff * acc
}

// lessThanEps holds the bound for comparing two points' coordinates along a
// single axis (original_source/src/predicates/less_than.rs).
var lessThanEps = map[string]epsBound{
	"EL": {5, 1.932297637868842e-14},
	"ET": {7, 3.980270973924514e-13},
	"LL": {7, 2.922887626377607e-13},
	"LT": {10, 4.321380059346694e-12},
	"TT": {13, 5.504141586953918e-11},
}

// incircleEps / insphereEps alias the orient2d/orient3d tables; the
// reference tables for incircle/insphere live in predicates.rs but were not
// transcribed here. Nothing in this package reads them: there is no
// generic-point incircle or insphere, only the explicit-only InCircle and
// InSphere of double.go.
var incircleEps = orient2dEps
var insphereEps = orient3dEps
