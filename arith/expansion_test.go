package arith

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_expansion01(tst *testing.T) {

	chk.PrintTitle("expansion01. (1 + 2^-53) - 1 == 2^-53 exactly")

	a := NewExpansion(1.0)
	b := NewExpansion(math.Pow(2, -53))
	sum := Sum(a, b) // 1 + 2^-53, exact since it doesn't fit in one double
	one := NewExpansion(1.0)
	diff := Diff(sum, one)
	if diff.Estimate() != math.Pow(2, -53) {
		tst.Fatalf("expected 2^-53, got %v", diff.Estimate())
	}
	checkInvariant(diff)
}

func Test_expansion02(tst *testing.T) {

	chk.PrintTitle("expansion02. a*a - a*a is the empty expansion")

	a := NewExpansion(0.1)
	aa := Mul(a, a)
	zero := Diff(aa, aa)
	if len(zero) != 0 {
		tst.Fatalf("expected empty expansion, got %v components", len(zero))
	}
	if zero.Sign() != 0 {
		tst.Fatalf("expected sign 0, got %d", zero.Sign())
	}
}

func Test_expansion03(tst *testing.T) {

	chk.PrintTitle("expansion03. no zero components, increasing magnitude")

	vals := []float64{1.0, 1e-20, -3.5, 1e10, 7.0, -1e-5}
	e := Expansion{}
	for _, v := range vals {
		e = growExpansion(e, v)
	}
	checkInvariant(e)
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	if math.Abs(e.Estimate()-sum) > 1e-6 {
		tst.Fatalf("estimate mismatch: %v vs %v", e.Estimate(), sum)
	}
}

func Test_expansion04(tst *testing.T) {

	chk.PrintTitle("expansion04. sign tracks last component")

	pos := Expansion{1e-10, 5.0}
	if pos.Sign() != 1 {
		tst.Fatalf("expected positive sign")
	}
	neg := Expansion{1e-10, -5.0}
	if neg.Sign() != -1 {
		tst.Fatalf("expected negative sign")
	}
}
