package bsp

import "github.com/cpmech/gosl/chk"

// Op names the boolean combination Evaluate reduces a two-operand inside/
// outside labelling to (spec.md §4.8.3's "final boolean").
type Op int

const (
	Union Op = iota
	Intersection
	DifferenceAB // A minus B
	DifferenceBA // B minus A
)

// Classify labels every cell inside/outside each of nShells operands by a
// two-coloring graph traversal across the cell-adjacency dual: starting from
// the cells touching the true mesh boundary (all outside), crossing a face
// flips an operand's bit iff that face carries a coplanar original
// (non-virtual) triangle belonging to that operand (spec.md §4.8.3).
//
// triShell[id] names which of the nShells operands original triangle id
// belongs to. Adjacency is rebuilt from c.Cells' own Faces lists rather than
// the Build-time FaceCells map, since SplitCell (see its doc comment) grows
// Cells without updating FaceCells; a face inherited by both of a split
// cell's children is simply treated as bordering every cell that lists it,
// which is exact for untouched faces and a documented over-approximation for
// a once-straddling face whose true child-exclusive ownership this
// implementation does not track.
func Classify(c *Complex, nShells int, triShell []int) [][]bool {
	faceOwners := map[int][]int{}
	for cid, cell := range c.Cells {
		for _, fid := range cell.Faces {
			faceOwners[fid] = append(faceOwners[fid], cid)
		}
	}

	exterior := map[int]bool{}
	for fid, pair := range c.FaceCells {
		if pair[0] < 0 || pair[1] < 0 {
			exterior[fid] = true
		}
	}

	inside := make([][]bool, len(c.Cells))
	visited := make([]bool, len(c.Cells))
	var queue []int
	for fid := range exterior {
		for _, cid := range faceOwners[fid] {
			if visited[cid] {
				continue
			}
			visited[cid] = true
			inside[cid] = make([]bool, nShells)
			queue = append(queue, cid)
		}
	}

	for len(queue) > 0 {
		cid := queue[0]
		queue = queue[1:]
		for _, fid := range c.Cells[cid].Faces {
			flips := make([]bool, nShells)
			for _, tid := range c.FaceTriangles[fid] {
				flips[triShell[tid]] = !flips[triShell[tid]]
			}
			for _, cid2 := range faceOwners[fid] {
				if cid2 == cid || visited[cid2] {
					continue
				}
				visited[cid2] = true
				next := make([]bool, nShells)
				for i := 0; i < nShells; i++ {
					next[i] = inside[cid][i] != flips[i]
				}
				inside[cid2] = next
				queue = append(queue, cid2)
			}
		}
	}

	// any cell never reached (fully enclosed with no path to a true exterior
	// face, which shouldn't happen for a well-formed input) is left nil;
	// callers should treat that as every operand outside.
	for cid := range inside {
		if inside[cid] == nil {
			inside[cid] = make([]bool, nShells)
		}
	}
	return inside
}

// Evaluate reduces a two-operand inside/outside labelling (as produced by
// Classify with nShells==2) to a single kept/discarded bit per cell per op.
func Evaluate(inside [][]bool, op Op) []bool {
	out := make([]bool, len(inside))
	for cid, bits := range inside {
		if len(bits) != 2 {
			chk.Panic("bsp: Evaluate requires exactly 2 operands, got %d", len(bits))
		}
		a, b := bits[0], bits[1]
		switch op {
		case Union:
			out[cid] = a || b
		case Intersection:
			out[cid] = a && b
		case DifferenceAB:
			out[cid] = a && !b
		case DifferenceBA:
			out[cid] = b && !a
		}
	}
	return out
}
