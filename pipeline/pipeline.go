package pipeline

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gpf/bsp"
	"github.com/cpmech/gpf/constraint"
	"github.com/cpmech/gpf/dedup"
	"github.com/cpmech/gpf/mesh"
	"github.com/cpmech/gpf/point"
	"github.com/cpmech/gpf/spatial"
	"github.com/cpmech/gpf/tet"
)

// Config threads the one run-time knob spec.md's external interface names
// (the dedup epsilon) plus a Verbose switch, mirroring fem.Domain.Verbose's
// gated io.Pf* logging rather than any package-level flag.
type Config struct {
	Epsilon float64
	Verbose bool
}

// Result is the classified complex plus the keep/discard bit the requested
// operation selects per cell (spec.md §6's output).
type Result struct {
	Complex *bsp.Complex
	Keep    []bool
}

// Run executes the dedup -> triangulate -> tetrahedralize -> constrain ->
// split -> classify pipeline on two solids and evaluates op over the
// result. Any panic raised by the kernel below (DegenerateInput,
// InvalidMeshConnectivity, an inconsistent split) is recovered exactly once,
// here at the driver boundary, and returned as an error rather than left to
// unwind into the caller — mirrors main.go's own top-level recover.
func Run(a, b Solid, op bsp.Op, cfg Config) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = chk.Err("pipeline: %v", r)
		}
	}()

	rawPts, faces, operand := combine(a, b)
	if cfg.Verbose {
		io.Pf(">> pipeline: %d input points, %d faces\n", len(rawPts), len(faces))
	}

	dd := dedup.RemoveDuplicates(rawPts, cfg.Epsilon)
	if cfg.Verbose {
		io.Pfyel(">> pipeline: deduplicated to %d points (eps=%v)\n", len(dd.Points), cfg.Epsilon)
	}

	var triangles []constraint.Triangle
	var triShell []int
	var triPolys [][]int
	for fi, f := range faces {
		remapped := make([]int, len(f.Verts))
		for i, v := range f.Verts {
			remapped[i] = dd.PMap[v]
		}
		coords := make([]point.Vec3, len(remapped))
		for i, v := range remapped {
			coords[i] = dd.Points[v]
		}
		for _, tri := range earClip(project2D(f.Frame, coords)) {
			org, dest, apex := remapped[tri[0]], remapped[tri[1]], remapped[tri[2]]
			if org == dest || dest == apex || apex == org {
				continue // corners collapsed onto one another by dedup
			}
			triangles = append(triangles, constraint.Triangle{Org: org, Dest: dest, Apex: apex})
			triShell = append(triShell, operand[fi])
			triPolys = append(triPolys, []int{org, dest, apex})
		}
	}
	nOriTriangles := len(triangles)
	if cfg.Verbose {
		io.Pf(">> pipeline: %d boundary triangles after ear-clipping\n", nOriTriangles)
	}

	sm := mesh.Build(len(dd.Points), triPolys)

	explicitPts := make([]*point.Point3D, len(dd.Points))
	flat := make([]float64, len(dd.Points)*3)
	for i, p := range dd.Points {
		explicitPts[i] = point.NewExplicit(p.X, p.Y, p.Z)
		flat[i*3], flat[i*3+1], flat[i*3+2] = p.X, p.Y, p.Z
	}

	order := spatial.Order(flat, len(dd.Points), spatial.DefaultOption())
	tm := tet.NewMesh(explicitPts)
	tm.InsertAll(order)
	if cfg.Verbose {
		io.Pf(">> pipeline: tetrahedralized into %d tets\n", len(tm.Tets))
	}

	virtuals := constraint.BuildVirtualConstraints(sm, tm)
	if cfg.Verbose {
		io.Pf(">> pipeline: %d virtual constraints synthesized\n", len(virtuals))
	}
	triangles = append(triangles, virtuals...)

	marks := constraint.InsertConstraintTriangles(tm, triangles)

	bc := bsp.Build(tm, marks, triangles, nOriTriangles)
	if cfg.Verbose {
		io.Pf(">> pipeline: %d cells before splitting\n", len(bc.Cells))
	}

	for cid := 0; cid < len(bc.Cells); {
		if bc.Splittable(cid) {
			bc.SplitCell(cid)
		} else {
			cid++
		}
	}
	if cfg.Verbose {
		io.Pfgreen(">> pipeline: %d cells after splitting\n", len(bc.Cells))
	}

	inside := bsp.Classify(bc, 2, triShell)
	keep := bsp.Evaluate(inside, op)
	return &Result{Complex: bc, Keep: keep}, nil
}
