// Package pipeline wires dedup, spatial, tet, constraint and bsp together
// into the one public entry point spec.md §6 describes: two boundary solids
// in, a classified BSP complex and a kept/discarded cell bit out.
package pipeline

import "github.com/cpmech/gpf/point"

// Face is one boundary polygon of a Solid: Verts is its boundary loop (CCW,
// possibly non-triangular) indexing Solid.Points, and Frame is the 9-tuple
// (origin, u-axis, v-axis) spec.md §6 requires every face to carry so it can
// be triangulated in its own local 2-D coordinates before the 3-D pipeline
// ever sees it.
type Face struct {
	Verts []int
	Frame [9]float64
}

// Solid is one boolean operand: a point array plus the faces bounding it
// (spec.md §6's external interface).
type Solid struct {
	Points []point.Vec3
	Faces  []Face
}

// combine merges two solids into a single point array and face list, tagging
// every face with the operand (0 for a, 1 for b) it came from. This operand
// index is what bsp.Classify's triShell argument ultimately keys on — a
// Solid may itself be made of several disjoint shells, but for boolean
// purposes only which of the two operands a triangle belongs to matters.
func combine(a, b Solid) (pts []point.Vec3, faces []Face, operand []int) {
	pts = append(pts, a.Points...)
	pts = append(pts, b.Points...)

	faces = append(faces, a.Faces...)
	offset := len(a.Points)
	for _, f := range b.Faces {
		shifted := make([]int, len(f.Verts))
		for i, v := range f.Verts {
			shifted[i] = v + offset
		}
		faces = append(faces, Face{Verts: shifted, Frame: f.Frame})
	}

	operand = make([]int, len(faces))
	for i := len(a.Faces); i < len(faces); i++ {
		operand[i] = 1
	}
	return
}
