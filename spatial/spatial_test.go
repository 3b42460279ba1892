package spatial

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

func Test_spatial01(tst *testing.T) {

	chk.PrintTitle("spatial01. hilbert sort keeps all indices and stays in the bounding box")

	pts := []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		1, 1, 1,
		0.5, 0.5, 0.5,
		0.2, 0.8, 0.1,
		0.9, 0.1, 0.3,
		0.4, 0.4, 0.9,
		0.1, 0.1, 0.1,
	}
	n := len(pts) / 3
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	bbox := boundingBox(pts, n)
	opt := DefaultOption()
	opt.HilbertLimit = 2

	HilbertSort(pts, indices, bbox, opt, 0, 0, 0)

	seen := map[int]bool{}
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			tst.Fatalf("hilbert sort produced an out-of-range index %d", idx)
		}
		seen[idx] = true
	}
	if len(seen) != n {
		tst.Fatalf("expected all %d indices to survive the sort exactly once, got %d distinct", n, len(seen))
	}
}

func Test_spatial02(tst *testing.T) {

	chk.PrintTitle("spatial02. Order produces a permutation of 0..n-1 for a small point set")

	rnd.Init(0)
	pts := []float64{
		0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1,
		1, 1, 1, 2, 2, 2, 3, 1, 2, 1, 3, 2,
	}
	n := len(pts) / 3
	order := Order(pts, n, DefaultOption())

	if len(order) != n {
		tst.Fatalf("expected Order to return %d indices, got %d", n, len(order))
	}
	seen := map[int]bool{}
	for _, idx := range order {
		seen[idx] = true
	}
	if len(seen) != n {
		tst.Fatalf("expected Order to return a permutation, got %d distinct of %d", len(seen), n)
	}
}
