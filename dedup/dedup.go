// Package dedup implements RemoveDuplicates, the coordinate quantization and
// collapse pass that runs before tetrahedralization (spec.md §4.6).
package dedup

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gpf/point"
)

// Result is the output of RemoveDuplicates: the deduplicated point array and
// the old-index -> new-index surjection spec.md §4.6 calls pmap.
type Result struct {
	Points []point.Vec3
	PMap   []int
}

// quantized is a coordinate triple rounded to a multiple of base, used only
// as a sort/collapse key — the emitted points keep their original
// unquantized coordinates (quantization decides *which* points collapse, not
// what the collapsed point's coordinates are).
type quantized struct {
	qx, qy, qz int64
	orig       int
}

// RemoveDuplicates collapses points closer together than eps into a single
// representative (spec.md §4.6). eps == 0 is the identity transform — every
// point keeps its own slot and pmap[i] == i.
//
// For eps > 0, e = floor(log2(eps)) - 1 and base = 2^e; every coordinate is
// rounded to the nearest multiple of base, points are sorted
// lexicographically by their quantized triple, and runs of equal quantized
// triples collapse to their first member. The contract this establishes:
// any two points folded together differ by less than 2*base < eps.
func RemoveDuplicates(pts []point.Vec3, eps float64) Result {
	n := len(pts)
	if eps == 0 {
		pmap := make([]int, n)
		for i := range pmap {
			pmap[i] = i
		}
		return Result{Points: append([]point.Vec3(nil), pts...), PMap: pmap}
	}
	if eps < 0 {
		chk.Panic("dedup: eps must be >= 0, got %v", eps)
	}

	e := math.Floor(math.Log2(eps)) - 1
	base := math.Pow(2, e)

	round := func(x float64) int64 { return int64(math.Round(x / base)) }

	qs := make([]quantized, n)
	for i, p := range pts {
		qs[i] = quantized{qx: round(p.X), qy: round(p.Y), qz: round(p.Z), orig: i}
	}
	sort.Slice(qs, func(i, j int) bool {
		a, b := qs[i], qs[j]
		if a.qx != b.qx {
			return a.qx < b.qx
		}
		if a.qy != b.qy {
			return a.qy < b.qy
		}
		return a.qz < b.qz
	})

	pmap := make([]int, n)
	var out []point.Vec3
	for i := 0; i < n; {
		j := i + 1
		for j < n && qs[j].qx == qs[i].qx && qs[j].qy == qs[i].qy && qs[j].qz == qs[i].qz {
			j++
		}
		newIdx := len(out)
		out = append(out, pts[qs[i].orig])
		for k := i; k < j; k++ {
			pmap[qs[k].orig] = newIdx
		}
		i = j
	}
	return Result{Points: out, PMap: pmap}
}
