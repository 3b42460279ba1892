package spatial

import (
	"github.com/cpmech/gosl/rnd"
)

// UniformShuffle randomizes the order of indices in place via gosl/rnd's
// Fisher–Yates shuffle, breaking any input ordering bias before BRIO's
// recursive split (spec.md §4.5.4 step 2; mirrors original_source's
// `sorted_pt_inds.shuffle(&mut rand::thread_rng())`).
func UniformShuffle(indices []int) {
	rnd.IntShuffle(indices)
}

// BrioSort splits indices into a ratio-sized prefix and the remainder,
// recurses on the prefix, and Hilbert-sorts the remainder — the
// "Biased Randomized Insertion Order" pre-order of spec.md §4.5.4 step 2:
// once indices is below opt.Threshold, the whole remaining slice is
// Hilbert-sorted directly instead of split further.
func BrioSort(points []float64, indices []int, bbox BBox, opt SortOption) {
	if len(indices) >= opt.Threshold {
		mid := int(float64(len(indices)) * opt.Ratio)
		left, right := indices[:mid], indices[mid:]
		BrioSort(points, left, bbox, opt)
		HilbertSort(points, right, bbox, opt, 0, 0, 0)
		return
	}
	HilbertSort(points, indices, bbox, opt, 0, 0, 0)
}

// Order returns the insertion order spec.md §4.5.4 prescribes for nPoints
// explicit points laid out flat in xyz triples in pts: a uniform shuffle of
// 0..nPoints followed by the BRIO/Hilbert recursive sort.
func Order(pts []float64, nPoints int, opt SortOption) []int {
	indices := make([]int, nPoints)
	for i := range indices {
		indices[i] = i
	}
	UniformShuffle(indices)

	bbox := boundingBox(pts, nPoints)
	BrioSort(pts, indices, bbox, opt)
	return indices
}

func boundingBox(pts []float64, nPoints int) BBox {
	bbox := BBox{pts[0], pts[1], pts[2], pts[0], pts[1], pts[2]}
	for i := 1; i < nPoints; i++ {
		x, y, z := pts[i*3], pts[i*3+1], pts[i*3+2]
		if x < bbox[0] {
			bbox[0] = x
		}
		if y < bbox[1] {
			bbox[1] = y
		}
		if z < bbox[2] {
			bbox[2] = z
		}
		if x > bbox[3] {
			bbox[3] = x
		}
		if y > bbox[4] {
			bbox[4] = y
		}
		if z > bbox[5] {
			bbox[5] = z
		}
	}
	return bbox
}
