package arith

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_interval01(tst *testing.T) {

	chk.PrintTitle("interval01. multiplication encloses every corner product")

	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		a := Interval{Lo: -10 + 20*r.Float64(), Hi: 0}
		a.Hi = a.Lo + 20*r.Float64()
		b := Interval{Lo: -10 + 20*r.Float64(), Hi: 0}
		b.Hi = b.Lo + 20*r.Float64()
		prod := a.Mul(b)
		for i := 0; i < 50; i++ {
			x := a.Lo + (a.Hi-a.Lo)*r.Float64()
			y := b.Lo + (b.Hi-b.Lo)*r.Float64()
			if x*y < prod.Lo || x*y > prod.Hi {
				tst.Fatalf("product %v*%v=%v escapes enclosure [%v,%v]", x, y, x*y, prod.Lo, prod.Hi)
			}
		}
	}
}

func Test_interval02(tst *testing.T) {

	chk.PrintTitle("interval02. NotZero and Sign agree on clearly-signed intervals")

	pos := Interval{Lo: 0.1, Hi: 1.0}
	if !pos.NotZero() || pos.Sign() != 1 {
		tst.Fatalf("expected decidable positive sign")
	}
	neg := Interval{Lo: -1.0, Hi: -0.1}
	if !neg.NotZero() || neg.Sign() != -1 {
		tst.Fatalf("expected decidable negative sign")
	}
	straddle := Interval{Lo: -0.1, Hi: 0.1}
	if straddle.NotZero() || straddle.Sign() != 0 {
		tst.Fatalf("expected undecided sign")
	}
}
