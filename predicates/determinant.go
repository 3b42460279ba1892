package predicates

import "github.com/cpmech/gpf/arith"

// det3x3Static/det3x3Interval/det3x3Exact and their 4x4 counterparts give the
// generic-point cascade (generic.go) a homogeneous-coordinate determinant at
// each precision tier: rows are a point's (comp_u, comp_v, d) or
// (x, y, z, d) lambda form, so the same formula works whether the point is
// explicit (d=1) or an LPI/TPI implicit point — see SPEC_FULL.md §D and
// spec.md §9's "adapter functions ... uniform template body" note.

func det3x3Static(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func det3x3Interval(m [3][3]arith.Interval) arith.Interval {
	t1 := m[0][0].Mul(m[1][1].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][1])))
	t2 := m[0][1].Mul(m[1][0].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][0])))
	t3 := m[0][2].Mul(m[1][0].Mul(m[2][1]).Sub(m[1][1].Mul(m[2][0])))
	return t1.Sub(t2).AddInterval(t3)
}

func det3x3Exact(m [3][3]arith.Expansion) arith.Expansion {
	t1 := arith.Mul(m[0][0], arith.Diff(arith.Mul(m[1][1], m[2][2]), arith.Mul(m[1][2], m[2][1])))
	t2 := arith.Mul(m[0][1], arith.Diff(arith.Mul(m[1][0], m[2][2]), arith.Mul(m[1][2], m[2][0])))
	t3 := arith.Mul(m[0][2], arith.Diff(arith.Mul(m[1][0], m[2][1]), arith.Mul(m[1][1], m[2][0])))
	return arith.Sum(arith.Diff(t1, t2), t3)
}

// det4x4* expand along the first row (cofactors are the 3x3 minors of the
// remaining three rows with that column dropped).

func det4x4Static(m [4][4]float64) float64 {
	minors := make([]float64, 4)
	for col := 0; col < 4; col++ {
		var rows [3][3]float64
		oi := 0
		for i := 1; i < 4; i++ {
			ci := 0
			for c := 0; c < 4; c++ {
				if c == col {
					continue
				}
				rows[oi][ci] = m[i][c]
				ci++
			}
			oi++
		}
		minors[col] = det3x3Static(rows)
	}
	return m[0][0]*minors[0] - m[0][1]*minors[1] + m[0][2]*minors[2] - m[0][3]*minors[3]
}

func det4x4Interval(m [4][4]arith.Interval) arith.Interval {
	minors := make([]arith.Interval, 4)
	for col := 0; col < 4; col++ {
		var rows [3][3]arith.Interval
		oi := 0
		for i := 1; i < 4; i++ {
			ci := 0
			for c := 0; c < 4; c++ {
				if c == col {
					continue
				}
				rows[oi][ci] = m[i][c]
				ci++
			}
			oi++
		}
		minors[col] = det3x3Interval(rows)
	}
	return m[0][0].Mul(minors[0]).Sub(m[0][1].Mul(minors[1])).AddInterval(m[0][2].Mul(minors[2])).Sub(m[0][3].Mul(minors[3]))
}

func det4x4Exact(m [4][4]arith.Expansion) arith.Expansion {
	minors := make([]arith.Expansion, 4)
	for col := 0; col < 4; col++ {
		var rows [3][3]arith.Expansion
		oi := 0
		for i := 1; i < 4; i++ {
			ci := 0
			for c := 0; c < 4; c++ {
				if c == col {
					continue
				}
				rows[oi][ci] = m[i][c]
				ci++
			}
			oi++
		}
		minors[col] = det3x3Exact(rows)
	}
	t1 := arith.Diff(arith.Mul(m[0][0], minors[0]), arith.Mul(m[0][1], minors[1]))
	t2 := arith.Diff(arith.Mul(m[0][2], minors[2]), arith.Mul(m[0][3], minors[3]))
	return arith.Sum(t1, t2)
}
