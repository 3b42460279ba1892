package pipeline

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gpf/point"
)

// project2D expresses pts in face's own local (u,v) frame. The frame's third
// axis (u×v) completes an orthonormal basis so the projection is a single
// matrix-vector solve rather than a full system inversion — mirrors how the
// teacher's element routines orient a local strain/stress frame with
// la.MatVecMul rather than hand-unrolled dot products.
func project2D(frame [9]float64, pts []point.Vec3) [][2]float64 {
	ox, oy, oz := frame[0], frame[1], frame[2]
	ux, uy, uz := frame[3], frame[4], frame[5]
	vx, vy, vz := frame[6], frame[7], frame[8]
	nx, ny, nz := uy*vz-uz*vy, uz*vx-ux*vz, ux*vy-uy*vx

	axes := la.MatAlloc(3, 3)
	axes[0][0], axes[0][1], axes[0][2] = ux, uy, uz
	axes[1][0], axes[1][1], axes[1][2] = vx, vy, vz
	axes[2][0], axes[2][1], axes[2][2] = nx, ny, nz

	out := make([][2]float64, len(pts))
	delta := make([]float64, 3)
	res := make([]float64, 3)
	for i, p := range pts {
		delta[0], delta[1], delta[2] = p.X-ox, p.Y-oy, p.Z-oz
		la.MatVecMul(res, 1, axes, delta)
		out[i] = [2]float64{res[0], res[1]}
	}
	return out
}

// earClip triangulates a simple polygon given as 2-D points in boundary
// order, by repeatedly cutting off a convex vertex whose triangle contains
// no other remaining vertex (the textbook ear-clipping algorithm). spec.md
// scopes the full 2-D constrained Delaunay triangulator out ("used only to
// triangulate input polygons before the 3-D pipeline"), so this plain,
// non-Delaunay triangulation is the intentionally-scoped-down stand-in.
//
// Returns triangles as index triples into poly2D.
func earClip(poly2D [][2]float64) [][3]int {
	n := len(poly2D)
	if n < 3 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if signedArea2D(poly2D, idx) < 0 {
		for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
			idx[i], idx[j] = idx[j], idx[i]
		}
	}

	var tris [][3]int
	for len(idx) > 3 {
		cut := -1
		for i := range idx {
			prev := idx[(i-1+len(idx))%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			if !isConvexTurn(poly2D[prev], poly2D[cur], poly2D[next]) {
				continue
			}
			if anyVertexInside(poly2D, idx, prev, cur, next) {
				continue
			}
			cut = i
			break
		}
		if cut < 0 {
			// a numerically degenerate ring (collinear run, a near-zero
			// ear): stop clipping and fan out the remainder below rather
			// than spin forever looking for an ear that isn't there.
			break
		}
		prev := idx[(cut-1+len(idx))%len(idx)]
		cur := idx[cut]
		next := idx[(cut+1)%len(idx)]
		tris = append(tris, [3]int{prev, cur, next})
		idx = append(idx[:cut], idx[cut+1:]...)
	}
	if len(idx) == 3 {
		tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	} else {
		for i := 1; i < len(idx)-1; i++ {
			tris = append(tris, [3]int{idx[0], idx[i], idx[i+1]})
		}
	}
	return tris
}

func signedArea2D(p [][2]float64, idx []int) float64 {
	var sum float64
	n := len(idx)
	for i := 0; i < n; i++ {
		a, b := p[idx[i]], p[idx[(i+1)%n]]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum / 2
}

func isConvexTurn(a, b, c [2]float64) bool {
	return cross2(a, b, c) > 0
}

func cross2(a, b, c [2]float64) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func pointInTriangle(p, a, b, c [2]float64) bool {
	d1, d2, d3 := cross2(a, b, p), cross2(b, c, p), cross2(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func anyVertexInside(p [][2]float64, idx []int, prev, cur, next int) bool {
	for _, k := range idx {
		if k == prev || k == cur || k == next {
			continue
		}
		if pointInTriangle(p[k], p[prev], p[cur], p[next]) {
			return true
		}
	}
	return false
}
