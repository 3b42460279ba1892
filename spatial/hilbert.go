// Package spatial implements the input point pre-ordering that feeds tet's
// Bowyer–Watson insertion (spec.md §4.5.4): a uniform BRIO shuffle combined
// with a 3-D Hilbert space-filling curve sort, so that insertion order keeps
// spatial locality and locate_dt walks stay short.
package spatial

// transGC and tsb1Mod3 transcribe original_source's gray_code()/
// trailing_set_bits_mod3() "Compact Hilbert Indices" tables (Hamilton &
// Rau-Chaplin, CS-2006-07) term for term, computed once at package init
// instead of Rust's const fn (Go has no const-time loop evaluation).
var transGC [8][3][8]int
var tsb1Mod3 [8]int

func init() {
	const n1, n2, mask = 3, 8, 7
	var gc [8]int
	for i := 0; i < n2; i++ {
		gc[i] = i ^ (i >> 1)
	}
	for e := 0; e < n2; e++ {
		for d := 0; d < n1; d++ {
			f := e ^ (1 << uint(d))
			travelBit := e ^ f
			for i := 0; i < n2; i++ {
				k := gc[i] * (travelBit << 1)
				g := (k | (k / n2)) & mask
				transGC[e][d][i] = g ^ e
			}
		}
	}

	tsb1Mod3[0] = 0
	for i := 1; i < n2; i++ {
		v := ^i
		v = (v ^ (v - 1)) >> 1
		c := 0
		for v != 0 {
			v >>= 1
			c++
		}
		tsb1Mod3[i] = c % n1
	}
}

// BBox is an axis-aligned bounding box [xlo,ylo,zlo,xhi,yhi,zhi].
type BBox [6]float64

// coord fetches axis a (0=x,1=y,2=z) of point idx out of a flat xyz-triples
// slice, mirroring original_source's point() helper.
func coord(points []float64, idx, axis int) float64 { return points[idx*3+axis] }

// hilbertSplit partitions indices in place by axis (gc0^gc1)>>1 around the
// bbox midpoint on that axis, directed by gc0's bit on that axis, returning
// the split point (spec.md §4.5.4 step 3, "partition ... by three median
// splits").
func hilbertSplit(points []float64, indices []int, gc0, gc1 int, bbox BBox) int {
	n := len(indices)
	if n == 1 {
		return 0
	}
	axis := (gc0 ^ gc1) >> 1
	split := (bbox[axis] + bbox[axis+3]) * 0.5

	i, j := 0, 0
	if gc0&(1<<uint(axis)) == 0 {
		for {
			for i < n && coord(points, indices[i], axis) < split {
				i++
			}
			for j < n && coord(points, indices[n-1-j], axis) >= split {
				j++
			}
			if i+j == n {
				break
			}
			indices[i], indices[n-1-j] = indices[n-1-j], indices[i]
		}
	} else {
		for {
			for i < n && coord(points, indices[i], axis) > split {
				i++
			}
			for j < n && coord(points, indices[n-1-j], axis) <= split {
				j++
			}
			if i+j == n {
				break
			}
			indices[i], indices[n-1-j] = indices[n-1-j], indices[i]
		}
	}
	return i
}

// SortOption configures both stages of the pre-order (spec.md §4.5.4).
type SortOption struct {
	// Threshold is BRIO's recursion floor: below this many points, stop
	// splitting off a random 1-ratio-sized slice and Hilbert-sort the rest
	// directly (step 2).
	Threshold int
	// HilbertOrder caps recursion depth (0 = unlimited, i.e. recurse to the
	// 8-point stopping case named in step 3).
	HilbertOrder int
	// HilbertLimit: an octant at or below this many points is left as-is
	// rather than recursed into further.
	HilbertLimit int
	// Ratio is BRIO's split fraction (spec.md step 2: 0.125).
	Ratio float64
}

// DefaultOption matches spec.md §4.5.4's stated constants: an 0.125/0.875
// BRIO split down to a ~64-point threshold, Hilbert recursion stopping once
// an octant holds 8 points or fewer (HilbertOrder is a generous depth cap,
// never actually reached in practice, carried over from original_source's
// own constant of the same value).
func DefaultOption() SortOption {
	return SortOption{Threshold: 64, HilbertOrder: 52, HilbertLimit: 8, Ratio: 0.125}
}

// HilbertSort recursively subdivides indices into the eight octants of a
// Compact Hilbert Index traversal, reordering indices in place so that
// points close along the curve are adjacent (spec.md §4.5.4 step 3).
func HilbertSort(points []float64, indices []int, bbox BBox, opt SortOption, e, d, depth int) {
	mid := hilbertSplit(points, indices, transGC[e][d][3], transGC[e][d][4], bbox)
	left, right := indices[:mid], indices[mid:]

	lMid := hilbertSplit(points, left, transGC[e][d][1], transGC[e][d][2], bbox)
	lLeft, lRight := left[:lMid], left[lMid:]
	llMid := hilbertSplit(points, lLeft, transGC[e][d][0], transGC[e][d][1], bbox)
	rlMid := hilbertSplit(points, lRight, transGC[e][d][2], transGC[e][d][3], bbox)

	rMid := hilbertSplit(points, right, transGC[e][d][5], transGC[e][d][6], bbox)
	rLeft, rRight := right[:rMid], right[rMid:]
	lrMid := hilbertSplit(points, rLeft, transGC[e][d][4], transGC[e][d][5], bbox)
	rrMid := hilbertSplit(points, rRight, transGC[e][d][6], transGC[e][d][7], bbox)

	if opt.HilbertOrder > 0 && depth+1 == opt.HilbertOrder {
		return
	}

	llLeft, llRight := lLeft[:llMid], lLeft[llMid:]
	rlLeft, rlRight := lRight[:rlMid], lRight[rlMid:]
	lrLeft, lrRight := rLeft[:lrMid], rLeft[lrMid:]
	rrLeft, rrRight := rRight[:rrMid], rRight[rrMid:]
	arr := [8][]int{llLeft, llRight, rlLeft, rlRight, lrLeft, lrRight, rrLeft, rrRight}

	const mask, n = 7, 3
	for w := 0; w < 8; w++ {
		if len(arr[w]) <= opt.HilbertLimit {
			continue
		}
		var eW int
		if w != 0 {
			k := 2 * ((w - 1) / 2)
			eW = k ^ (k >> 1)
		}
		k := eW
		eW = ((k << uint(d+1)) & mask) | ((k >> uint(n-d-1)) & mask)
		ei := e ^ eW

		var dW int
		if w != 0 {
			if w%2 == 0 {
				dW = tsb1Mod3[w-1]
			} else {
				dW = tsb1Mod3[w]
			}
		}
		di := (d + dW + 1) % n

		var sbox BBox
		if transGC[e][d][w]&1 != 0 {
			sbox[0] = (bbox[0] + bbox[3]) * 0.5
			sbox[3] = bbox[3]
		} else {
			sbox[0] = bbox[0]
			sbox[3] = (bbox[0] + bbox[3]) * 0.5
		}
		if transGC[e][d][w]&2 != 0 {
			sbox[1] = (bbox[1] + bbox[4]) * 0.5
			sbox[4] = bbox[4]
		} else {
			sbox[1] = bbox[1]
			sbox[4] = (bbox[1] + bbox[4]) * 0.5
		}
		if transGC[e][d][w]&4 != 0 {
			sbox[2] = (bbox[2] + bbox[5]) * 0.5
			sbox[5] = bbox[5]
		} else {
			sbox[2] = bbox[2]
			sbox[5] = (bbox[2] + bbox[5]) * 0.5
		}
		HilbertSort(points, arr[w], sbox, opt, ei, di, depth+1)
	}
}
