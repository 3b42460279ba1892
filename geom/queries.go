// Package geom implements the higher-level geometric queries built on top of
// predicates: point-in-triangle/segment tests and segment/triangle crossing
// tests used while tracing a constraint edge through the tet mesh (spec.md
// §4.3, §4.7.2).
package geom

import (
	"github.com/cpmech/gpf/point"
	"github.com/cpmech/gpf/predicates"
)

// the three "drop one axis" projections, in the order the reference
// implementation checks them: (x,y), (y,z), (x,z).
var projections = [3]int{2, 0, 1}

func bbox(pts ...*point.Point3D) (lo, hi point.Vec3) {
	lo = point.Vec3{X: +inf, Y: +inf, Z: +inf}
	hi = point.Vec3{X: -inf, Y: -inf, Z: -inf}
	for _, p := range pts {
		v := p.ApproxCoords()
		if v.X < lo.X {
			lo.X = v.X
		}
		if v.Y < lo.Y {
			lo.Y = v.Y
		}
		if v.Z < lo.Z {
			lo.Z = v.Z
		}
		if v.X > hi.X {
			hi.X = v.X
		}
		if v.Y > hi.Y {
			hi.Y = v.Y
		}
		if v.Z > hi.Z {
			hi.Z = v.Z
		}
	}
	return
}

const inf = 1e308

func bboxOverlap(lo1, hi1, lo2, hi2 point.Vec3) bool {
	return lo1.X <= hi2.X && lo2.X <= hi1.X &&
		lo1.Y <= hi2.Y && lo2.Y <= hi1.Y &&
		lo1.Z <= hi2.Z && lo2.Z <= hi1.Z
}

// PointInInnerTriangle reports whether p lies strictly inside triangle
// (v1,v2,v3): for every one of the three coordinate-plane projections,
// p must fall on the same side of each edge as the triangle's opposite
// vertex. In a projection where the triangle is degenerate (zero area), p
// must be Zero against every edge there too, so a triangle lying in a
// coordinate plane is accepted; p exactly on an edge in a projection where
// the triangle is not degenerate fails the test.
func PointInInnerTriangle(p, v1, v2, v3 *point.Point3D) bool {
	for _, axis := range projections {
		ref := predicates.Orient2DByAxis(axis, v1, v2, v3)
		if ref == predicates.Undefined {
			return false
		}
		if predicates.Orient2DByAxis(axis, p, v2, v3) != ref {
			return false
		}
		if predicates.Orient2DByAxis(axis, p, v3, v1) != ref {
			return false
		}
		if predicates.Orient2DByAxis(axis, p, v1, v2) != ref {
			return false
		}
	}
	return true
}

// SamePoint reports whether a and b are the same point within exact
// arithmetic — i.e. they compare equal on all three axes.
func SamePoint(a, b *point.Point3D) bool {
	return predicates.LessThanOnAxis(0, a, b) == predicates.Zero &&
		predicates.LessThanOnAxis(1, a, b) == predicates.Zero &&
		predicates.LessThanOnAxis(2, a, b) == predicates.Zero
}

// MisAlignment reports whether p, q, r fail to be collinear: true iff at
// least one of the three coordinate-plane projections shows a nonzero
// orientation.
func MisAlignment(p, q, r *point.Point3D) bool {
	for _, axis := range projections {
		o := predicates.Orient2DByAxis(axis, p, q, r)
		if o != predicates.Zero {
			return true
		}
	}
	return false
}

// SameHalfPlane reports whether p and q lie on the same side of line v1v2 in
// every one of the three coordinate-plane projections.
func SameHalfPlane(p, q, v1, v2 *point.Point3D) bool {
	for _, axis := range projections {
		op := predicates.Orient2DByAxis(axis, p, v1, v2)
		oq := predicates.Orient2DByAxis(axis, q, v1, v2)
		if op != oq {
			return false
		}
	}
	return true
}

// PointInInnerSegment reports whether p lies strictly between v1 and v2
// (collinear, excluding the endpoints): not misaligned with v1v2, and
// strictly between them on at least one coordinate axis.
func PointInInnerSegment(p, v1, v2 *point.Point3D) bool {
	if MisAlignment(p, v1, v2) {
		return false
	}
	for axis := 0; axis < 3; axis++ {
		lo := predicates.LessThanOnAxis(axis, v1, v2)
		if lo == predicates.Negative {
			if predicates.LessThanOnAxis(axis, v1, p) == predicates.Negative &&
				predicates.LessThanOnAxis(axis, p, v2) == predicates.Negative {
				return true
			}
		} else if lo == predicates.Positive {
			if predicates.LessThanOnAxis(axis, v1, p) == predicates.Positive &&
				predicates.LessThanOnAxis(axis, p, v2) == predicates.Positive {
				return true
			}
		}
	}
	return false
}

// PointInSegment reports whether p lies on the closed segment [v1,v2],
// comparing coordinates directly (same_point-or-strictly-inside).
func PointInSegment(p, v1, v2 *point.Point3D) bool {
	return SamePoint(p, v1) || SamePoint(p, v2) || PointInInnerSegment(p, v1, v2)
}

// PointInSegmentGeneral reports whether p lies on segment [v1,v2], assuming
// the three points are already known to be collinear: walks axis by axis
// (x, then y, then z) looking for a decided, consistent ordering of v1 < p <
// v2 (or v1 > p > v2); a Zero on either comparison for a given axis means p
// coincides with that endpoint along this axis, which is still "on" the
// segment. If every axis is Zero (v1 == p == v2, a degenerate point segment)
// the point trivially counts as on it.
func PointInSegmentGeneral(p, v1, v2 *point.Point3D) bool {
	for axis := 0; axis < 3; axis++ {
		c1 := predicates.LessThanOnAxis(axis, v1, p)
		c2 := predicates.LessThanOnAxis(axis, p, v2)
		if c1 != c2 {
			if c1 == predicates.Zero || c2 == predicates.Zero {
				return true
			}
			return false
		}
		if c1 != predicates.Zero {
			return true
		}
	}
	return true
}

// InnerSegmentCrossInnerTriangle reports whether segment (s0,s1) properly
// crosses the interior of triangle (v1,v2,v3): a bounding-box pre-reject,
// then opposite-sign orient3d of the segment endpoints against the
// triangle's plane and equal, nonzero-sign orient3d of the segment against
// every triangle edge. Coplanar configurations are never a proper crossing.
func InnerSegmentCrossInnerTriangle(s0, s1, v1, v2, v3 *point.Point3D) bool {
	lo1, hi1 := bbox(s0, s1)
	lo2, hi2 := bbox(v1, v2, v3)
	if !bboxOverlap(lo1, hi1, lo2, hi2) {
		return false
	}

	o0 := predicates.Orient3DGeneric(s0, v1, v2, v3)
	o1 := predicates.Orient3DGeneric(s1, v1, v2, v3)
	if o0 == predicates.Undefined || o1 == predicates.Undefined {
		return false
	}
	if o0 == predicates.Zero || o1 == predicates.Zero || o0 == o1 {
		return false // coplanar with, or both on the same side of, the triangle's plane
	}

	edges := [3][2]*point.Point3D{{v1, v2}, {v2, v3}, {v3, v1}}
	var first predicates.Orientation
	for i, e := range edges {
		o := predicates.Orient3DGeneric(s0, s1, e[0], e[1])
		if o == predicates.Undefined || o == predicates.Zero {
			return false
		}
		if i == 0 {
			first = o
		} else if o != first {
			return false
		}
	}
	return true
}

// InnerSegmentsCross reports whether two coplanar segments properly cross:
// the four endpoints must be coplanar, neither segment's endpoints may both
// lie in the same half-plane of the other, each endpoint must be
// non-collinear with the opposite segment, and at least one coordinate-plane
// projection must show an actual crossing.
func InnerSegmentsCross(u1, u2, v1, v2 *point.Point3D) bool {
	if predicates.Orient3DGeneric(u1, u2, v1, v2) != predicates.Zero {
		return false
	}
	if SameHalfPlane(u1, u2, v1, v2) || SameHalfPlane(v1, v2, u1, u2) {
		return false
	}
	if !MisAlignment(u1, v1, v2) || !MisAlignment(u2, v1, v2) ||
		!MisAlignment(v1, u1, u2) || !MisAlignment(v2, u1, u2) {
		return false
	}
	for _, axis := range projections {
		if predicates.Orient2DByAxis(axis, u1, u2, v1) != predicates.Zero {
			return true
		}
		if predicates.Orient2DByAxis(axis, v1, v2, u2) != predicates.Zero {
			return true
		}
	}
	return false
}

// InnerSegmentCrossTriangle reports whether segment (u1,u2) meets triangle
// (v1,v2,v3) anywhere — interior crossing, a triangle vertex lying strictly
// inside the segment, or the segment crossing a triangle edge in the shared
// plane.
func InnerSegmentCrossTriangle(u1, u2, v1, v2, v3 *point.Point3D) bool {
	return PointInInnerSegment(v1, u1, u2) ||
		PointInInnerSegment(v2, u1, u2) ||
		PointInInnerSegment(v3, u1, u2) ||
		InnerSegmentsCross(v2, v3, u1, u2) ||
		InnerSegmentsCross(v3, v1, u1, u2) ||
		InnerSegmentsCross(v1, v2, u1, u2) ||
		InnerSegmentCrossInnerTriangle(u1, u2, v1, v2, v3)
}
