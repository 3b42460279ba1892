package bsp

import "github.com/cpmech/gpf/point"

func vecEq(a, b point.Vec3) bool { return a.X == b.X && a.Y == b.Y && a.Z == b.Z }

// isPointBuiltFromPlane reports whether p is structurally known to lie on
// plane (pa,pb,pc) from how it was constructed, sparing the caller an
// orient3d call that symbolic perturbation would otherwise have to break a
// tie on (mirrors the reference's is_point_built_from_plane).
func isPointBuiltFromPlane(p, pa, pb, pc *point.Point3D) bool {
	switch p.Kind {
	case point.Explicit:
		pe := p.ExplicitCoords()
		return vecEq(pe, pa.ExplicitCoords()) || vecEq(pe, pb.ExplicitCoords()) || vecEq(pe, pc.ExplicitCoords())
	case point.LPI:
		A, B := pa.ExplicitCoords(), pb.ExplicitCoords()
		Bp, C := pb.ExplicitCoords(), pc.ExplicitCoords()
		Cp, Ap := pc.ExplicitCoords(), pa.ExplicitCoords()
		if (vecEq(p.P, A) && vecEq(p.Q, B)) || (vecEq(p.P, B) && vecEq(p.Q, A)) {
			return true
		}
		if (vecEq(p.P, Bp) && vecEq(p.Q, C)) || (vecEq(p.P, C) && vecEq(p.Q, Bp)) {
			return true
		}
		if (vecEq(p.P, Cp) && vecEq(p.Q, Ap)) || (vecEq(p.P, Ap) && vecEq(p.Q, Cp)) {
			return true
		}
		return vecEq(p.R, A) && vecEq(p.S, B) && vecEq(p.T, C)
	case point.TPI:
		A, B, C := pa.ExplicitCoords(), pb.ExplicitCoords(), pc.ExplicitCoords()
		if vecEq(p.V1, A) && vecEq(p.V2, B) && vecEq(p.V3, C) {
			return true
		}
		if vecEq(p.W1, A) && vecEq(p.W2, B) && vecEq(p.W3, C) {
			return true
		}
		return vecEq(p.U1, A) && vecEq(p.U2, B) && vecEq(p.U3, C)
	}
	return false
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// threePlanesIntersection builds the implicit point where 3 planes (each an
// explicit-vertex triple) meet: LPI if two of the planes share an edge (2
// common vertices), since then the third plane just cuts that shared line;
// TPI otherwise (mirrors the reference's three_planes_intersection, which
// checks all 3 circular pairings before falling back to the general case).
func threePlanesIntersection(pts []*point.Point3D, p1, p2, p3 [3]int) *point.Point3D {
	planes := [3][3]int{p1, p2, p3}
	for i := 0; i < 3; i++ {
		tri := planes[i]
		tri1 := planes[(i+1)%3]
		tri2 := planes[(i+2)%3]
		var common []int
		for _, va := range tri1 {
			if contains(tri2[:], va) {
				common = append(common, va)
				if len(common) > 1 {
					break
				}
			}
		}
		if len(common) > 1 {
			return point.NewLPI(
				pts[common[0]].ExplicitCoords(), pts[common[1]].ExplicitCoords(),
				pts[tri[0]].ExplicitCoords(), pts[tri[1]].ExplicitCoords(), pts[tri[2]].ExplicitCoords(),
			)
		}
	}
	return point.NewTPI(
		pts[p1[0]].ExplicitCoords(), pts[p1[1]].ExplicitCoords(), pts[p1[2]].ExplicitCoords(),
		pts[p2[0]].ExplicitCoords(), pts[p2[1]].ExplicitCoords(), pts[p2[2]].ExplicitCoords(),
		pts[p3[0]].ExplicitCoords(), pts[p3[1]].ExplicitCoords(), pts[p3[2]].ExplicitCoords(),
	)
}
